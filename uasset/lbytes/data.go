package lbytes

type (
	// Reader is a little-endian cursor over an in-memory stream.
	Reader struct {
		data []byte
		pos  int64
	}
	// Writer is a positioned writer over a growable buffer. Writes overwrite
	// existing bytes at the current position and extend the buffer when needed.
	Writer struct {
		data []byte
		pos  int64
	}
)
