package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxFrameBytes bounds the body size of a single frame. A peer
// announcing anything larger is treated as broken and disconnected.
const MaxFrameBytes = 1024 * 1024

// ErrProtocol marks framing violations. The connection must be torn
// down after it; the stream position is no longer trustworthy.
var ErrProtocol = errors.New("protocol error")

// WriteFrame writes one length-prefixed frame: a uint32 little-endian
// body length followed by the body itself.
func WriteFrame(w io.Writer, body []byte) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: empty frame body", ErrProtocol)
	}
	if len(body) > MaxFrameBytes {
		return fmt.Errorf("%w: frame too large: %d", ErrProtocol, len(body))
	}
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(body)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// ReadFrame reads one frame body. A peer that closes before delivering
// four header bytes reads as io.EOF, whether it sent none or some of
// them; a zero or oversized length is an ErrProtocol, as is a body cut
// short after a complete header.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return nil, err
	}
	n := binary.LittleEndian.Uint32(header[:])
	if n == 0 || n > MaxFrameBytes {
		return nil, fmt.Errorf("%w: invalid frame size: %d", ErrProtocol, n)
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: short frame body: %v", ErrProtocol, err)
	}
	return body, nil
}
