// Package transport provides the byte-stream connection abstraction the
// printer driver writes to. The driver consumes only this contract; port
// discovery and baud configuration belong to the concrete implementations.
package transport

// A Connection is a byte-oriented link to the printer.
type Connection interface {
	// Open opens the connection to the device.
	Open() error

	// Close closes the connection.
	Close() error

	// Write sends data to the device and returns the number of bytes
	// accepted.
	Write(data []byte) (int, error)

	// Pending returns the number of written bytes not yet delivered to the
	// device. Callers poll this to pace transmission against the device's
	// actual drain rate rather than the host send buffer.
	Pending() (int, error)
}
