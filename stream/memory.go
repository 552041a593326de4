package stream

import (
	"fmt"
	"io"
)

// MemoryStream is a Stream over an in-memory byte slice. It is useful for
// tests and for resources that are already fully loaded, such as embedded
// data or decoded PDF stream contents.
type MemoryStream struct {
	data []byte
	pos  int64
}

// FromBytes wraps data in a stream. The stream reads the slice directly;
// the caller must not modify it while the stream is in use.
func FromBytes(data []byte) *MemoryStream {
	return &MemoryStream{data: data}
}

// Read fills buf from the current position.
func (s *MemoryStream) Read(buf []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(buf, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

// Skip advances the position by up to n bytes.
func (s *MemoryStream) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	remaining := int64(len(s.data)) - s.pos
	if n > remaining {
		n = remaining
	}
	s.pos += n
	return n, nil
}

// Seek moves to an absolute offset from the start.
func (s *MemoryStream) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(s.data)) {
		return fmt.Errorf("seek position %d out of range [0, %d]", pos, len(s.data))
	}
	s.pos = pos
	return nil
}

// Tell returns the current position.
func (s *MemoryStream) Tell() (int64, error) {
	return s.pos, nil
}

// Reset moves back to the start.
func (s *MemoryStream) Reset() error {
	s.pos = 0
	return nil
}

// Size returns the total length of the data in bytes.
func (s *MemoryStream) Size() int64 {
	return int64(len(s.data))
}

// Close is a no-op for in-memory streams.
func (s *MemoryStream) Close() error {
	return nil
}
