// format.go - Container sniffing by magic number.
package codec

import (
	"encoding/binary"
	"io"
	"os"
)

// ImageType is the container format of an image file, derived from its content.
type ImageType int

const (
	Unknown ImageType = iota
	JPEG
	PNG
)

// headerSize is the number of leading bytes inspected by Classify.
const headerSize = 8

const (
	pngSignature = 0x89504E470D0A1A0A
	// Only the SOI marker is compared, so any file starting FF D8 passes.
	// Truncated or malformed JPEG-like files are caught later by the decoder.
	jpegSignature = 0xFFD8000000000000
)

func (t ImageType) String() string {
	switch t {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	default:
		return "unknown"
	}
}

// Classify reports the container format of the file at path. Unreadable files
// and files shorter than 8 bytes are Unknown.
func Classify(path string) ImageType {
	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return Unknown
	}
	return ClassifyBytes(header)
}

// ClassifyBytes applies the same signature rules as Classify to an in-memory
// header. Only the first 8 bytes are looked at.
func ClassifyBytes(header []byte) ImageType {
	if len(header) < headerSize {
		return Unknown
	}

	word := binary.BigEndian.Uint64(header[:headerSize])
	switch {
	case word == pngSignature:
		return PNG
	case word&jpegSignature == jpegSignature:
		return JPEG
	}
	return Unknown
}
