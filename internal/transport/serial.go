package transport

import (
	"fmt"

	"github.com/tarm/serial"
)

// Serial is a Connection over a serial port.
type Serial struct {
	name string
	baud int
	port *serial.Port
}

// NewSerial creates a Connection for the named serial port. The port is not
// opened until Open is called.
func NewSerial(name string, baud int) *Serial {
	return &Serial{name: name, baud: baud}
}

// Open opens the serial port.
func (s *Serial) Open() error {
	if s.port != nil {
		return fmt.Errorf("serial port %v is already open", s.name)
	}
	port, err := serial.OpenPort(&serial.Config{Name: s.name, Baud: s.baud})
	if err != nil {
		return fmt.Errorf("error opening %v: %v", s.name, err)
	}
	s.port = port
	return nil
}

// Close closes the serial port.
func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	return err
}

// Write sends data to the port.
func (s *Serial) Write(data []byte) (int, error) {
	if s.port == nil {
		return 0, fmt.Errorf("serial port %v is not open", s.name)
	}
	return s.port.Write(data)
}

// Pending returns the number of undelivered bytes. Writes to the port block
// until the kernel accepts the data, so there is never anything pending on
// the host side.
func (s *Serial) Pending() (int, error) {
	if s.port == nil {
		return 0, fmt.Errorf("serial port %v is not open", s.name)
	}
	return 0, nil
}
