package stream

import (
	"fmt"
	"io"
	"os"
)

// Stream is a seekable read-only byte source. It is the contract font and
// resource readers consume; implementations propagate I/O failures as errors.
type Stream interface {
	// Read fills buf with up to len(buf) bytes and returns the number read.
	// Returns io.EOF at end of stream.
	Read(buf []byte) (int, error)

	// Skip advances the position by up to n bytes and returns the number
	// actually skipped (less than n only at end of stream).
	Skip(n int64) (int64, error)

	// Seek moves the position to an absolute offset from the start.
	Seek(pos int64) error

	// Tell returns the current position.
	Tell() (int64, error)

	// Reset moves the position back to the start (equivalent to Seek(0)).
	Reset() error

	// Close releases the underlying resource.
	Close() error
}

// FileStream is a Stream backed by a read-only file on disk.
type FileStream struct {
	file *os.File
	size int64
}

// OpenFile opens the named file as a read-only stream.
func OpenFile(path string) (*FileStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &FileStream{file: f, size: info.Size()}, nil
}

// Read fills buf from the current position.
func (s *FileStream) Read(buf []byte) (int, error) {
	return s.file.Read(buf)
}

// Skip advances the position by up to n bytes.
func (s *FileStream) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	pos, err := s.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	remaining := s.size - pos
	if n > remaining {
		n = remaining
	}
	if _, err := s.file.Seek(n, io.SeekCurrent); err != nil {
		return 0, err
	}
	return n, nil
}

// Seek moves to an absolute offset from the start of the file.
func (s *FileStream) Seek(pos int64) error {
	if pos < 0 {
		return fmt.Errorf("negative seek position %d", pos)
	}
	_, err := s.file.Seek(pos, io.SeekStart)
	return err
}

// Tell returns the current position.
func (s *FileStream) Tell() (int64, error) {
	return s.file.Seek(0, io.SeekCurrent)
}

// Reset moves back to the start of the file.
func (s *FileStream) Reset() error {
	return s.Seek(0)
}

// Unread steps the position back by one byte, so the byte just read is
// returned again by the next Read.
func (s *FileStream) Unread() error {
	pos, err := s.Tell()
	if err != nil {
		return err
	}
	if pos == 0 {
		return fmt.Errorf("unread at start of stream")
	}
	return s.Seek(pos - 1)
}

// Size returns the total length of the file in bytes.
func (s *FileStream) Size() int64 {
	return s.size
}

// Close closes the underlying file.
func (s *FileStream) Close() error {
	return s.file.Close()
}
