package envprobe

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// maxFrameSize bounds a single helper reply. sys.path listings are a few KiB.
const maxFrameSize = 16 << 20

// MsgpackDecoder decodes helper replies. Struct fields are matched by their
// msgpack tags; keys the struct does not know are skipped.
type MsgpackDecoder struct{}

func (MsgpackDecoder) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// MsgpackFrameReader reads frames of a 4-byte big-endian length followed by
// that many bytes of msgpack payload.
type MsgpackFrameReader struct {
	reader     io.ReadCloser
	bufferPool *BufferPool
}

// NewMsgpackFrameReader reads frames from reader, typically a helper's
// stdout pipe.
func NewMsgpackFrameReader(reader io.ReadCloser) *MsgpackFrameReader {
	return &MsgpackFrameReader{
		reader:     reader,
		bufferPool: NewBufferPool(4096, 4),
	}
}

// Receive reads the next frame. It returns io.EOF when the stream ends
// cleanly between frames and io.ErrUnexpectedEOF when it ends inside one.
func (fr *MsgpackFrameReader) Receive() ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(fr.reader, header[:]); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(header[:])
	if length > maxFrameSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds limit of %d", length, maxFrameSize)
	}

	if int(length) > fr.bufferPool.Size() {
		data := make([]byte, length)
		if _, err := io.ReadFull(fr.reader, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	buf := fr.bufferPool.Get()[:length]
	defer fr.bufferPool.Put(buf)
	if _, err := io.ReadFull(fr.reader, buf); err != nil {
		return nil, err
	}

	// the pooled buffer is reused, hand back a copy
	data := make([]byte, length)
	copy(data, buf)
	return data, nil
}

// Close closes the underlying reader.
func (fr *MsgpackFrameReader) Close() error {
	return fr.reader.Close()
}
