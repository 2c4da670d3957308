package transport

import "io"

// A Stream adapts any io.Writer to the Connection contract. It is used to
// dump the raw command stream to stdout or a file when no printer port is
// given, and by tests. Writes complete immediately, so nothing is ever
// pending.
type Stream struct {
	w io.Writer
}

// NewStream wraps w in a Connection.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Open is a no-op; the underlying writer is assumed ready.
func (s *Stream) Open() error {
	return nil
}

// Close closes the underlying writer if it is an io.Closer.
func (s *Stream) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Write sends data to the underlying writer.
func (s *Stream) Write(data []byte) (int, error) {
	return s.w.Write(data)
}

// Pending always returns zero.
func (s *Stream) Pending() (int, error) {
	return 0, nil
}
