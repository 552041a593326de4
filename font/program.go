package font

import (
	"fmt"
	"io"

	"github.com/tsawler/glyphtext/stream"
)

// ReadProgram reads an embedded font program (or any other byte resource)
// from a seekable stream in full. The stream is rewound first so the caller
// does not need to track its position; it is not closed.
func ReadProgram(s stream.Stream) ([]byte, error) {
	if err := s.Reset(); err != nil {
		return nil, fmt.Errorf("rewinding font program: %w", err)
	}

	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := s.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading font program: %w", err)
		}
	}
}
