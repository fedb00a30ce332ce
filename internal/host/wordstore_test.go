package host

import (
	"testing"

	"github.com/1psychoQAQ/my-translator/internal/errs"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
)

func TestWordStoreSave(t *testing.T) {
	store := NewMemoryWordStore()

	err := store.Save(&protocol.SaveWordPayload{ID: "w1", Text: "apple", Translation: "苹果"})
	if err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", store.Len())
	}
}

func TestWordStoreDuplicateID(t *testing.T) {
	store := NewMemoryWordStore()
	if err := store.Save(&protocol.SaveWordPayload{ID: "w1", Text: "apple"}); err != nil {
		t.Fatal(err)
	}

	err := store.Save(&protocol.SaveWordPayload{ID: "w1", Text: "pear"})
	if errs.CodeOf(err) != errs.CodeDuplicateEntry {
		t.Errorf("Expected DuplicateEntry, got %v", err)
	}
}

func TestWordStoreDuplicateText(t *testing.T) {
	store := NewMemoryWordStore()
	if err := store.Save(&protocol.SaveWordPayload{ID: "w1", Text: "Apple"}); err != nil {
		t.Fatal(err)
	}

	// Same word, different id and casing.
	err := store.Save(&protocol.SaveWordPayload{ID: "w2", Text: "  apple "})
	if errs.CodeOf(err) != errs.CodeDuplicateEntry {
		t.Errorf("Expected DuplicateEntry, got %v", err)
	}
}

func TestWordStoreCopiesEntry(t *testing.T) {
	store := NewMemoryWordStore()
	entry := &protocol.SaveWordPayload{ID: "w1", Text: "apple", Translation: "苹果"}
	if err := store.Save(entry); err != nil {
		t.Fatal(err)
	}

	entry.Translation = "mutated"
	if got := store.byID["w1"].Translation; got != "苹果" {
		t.Errorf("Store should hold its own copy, got %q", got)
	}
}
