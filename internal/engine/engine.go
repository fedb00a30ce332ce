// Package engine bridges an event-driven translation engine into the
// awaitable call contract the message router needs, reusing engine
// sessions per language pair.
package engine

import "context"

// Session is an engine handle configured for one source/target pair.
// Establishing a session is the dominant cost in the underlying engine,
// so the bridge keeps the last one alive for reuse.
type Session interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Engine is the event-driven surface of the underlying translator.
// Configure does not return a session; it triggers asynchronous session
// creation, delivered later through the callback registered with
// OnSessionReady.
type Engine interface {
	// OnSessionReady registers the single callback invoked when a
	// configuration completes (or fails). Must be set before the first
	// Configure call.
	OnSessionReady(fn func(s Session, err error))

	// Configure requests a session for the language pair. The result
	// arrives via the OnSessionReady callback.
	Configure(sourceLanguage, targetLanguage string)
}
