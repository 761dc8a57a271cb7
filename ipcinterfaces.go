package envprobe

// Decoder converts helper payloads into Go values.
type Decoder interface {
	Unmarshal(data []byte, v any) error
}

// FrameReader yields whole frames from a helper's stdout.
type FrameReader interface {
	// Receive blocks until a complete frame has been read.
	Receive() ([]byte, error)

	// Close releases the underlying reader. A blocked Receive returns an error.
	Close() error
}
