package encoding

import "errors"

var (
	// ErrInvalidBufferSize is returned when a Reader is created with a read buffer smaller than one byte.
	ErrInvalidBufferSize = errors.New("encoding: invalid buffer size")
	// ErrNilSource is returned when a Reader is created without a source.
	ErrNilSource = errors.New("encoding: nil source reader")
	// ErrNilWriter is returned when a Writer is created without a destination.
	ErrNilWriter = errors.New("encoding: nil destination writer")
	// ErrClosed is returned by Writer.Write after Close.
	ErrClosed = errors.New("encoding: write to closed writer")
)

var errNegativeRead = errors.New("encoding: source returned invalid byte count")
