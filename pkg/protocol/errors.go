package protocol

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedVersion is returned when a get response version is
	// not in the known version table.
	ErrUnsupportedVersion = errors.New("protocol: unsupported get response version")

	// ErrMalformedWireData is returned when a decoded value is outside
	// its valid domain, which signals corruption or a version mismatch
	// on the peer side.
	ErrMalformedWireData = errors.New("protocol: malformed wire data")

	// ErrIncompleteData is returned when the stream ends before a field
	// is fully decoded. The transport may retry after more bytes arrive.
	ErrIncompleteData = errors.New("protocol: incomplete data")
)

// wireErr classifies a read failure: short reads become
// ErrIncompleteData, everything else keeps its own cause.
func wireErr(err error, msg string) error {
	switch errors.Cause(err) {
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.Wrapf(ErrIncompleteData, "%s: %v", msg, err)
	}
	return errors.Wrap(err, msg)
}
