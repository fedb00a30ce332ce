// Package protocol implements the framed wire protocol between the
// extension-facing client and the privileged helper process: a uint32
// little-endian length prefix followed by a JSON message body, one
// frame per request and one per response.
package protocol
