package a52

import "github.com/llehouerou/go-a52/internal/bits"

// Error is an A/52 decoder error code. Codes compare with errors.Is, and the
// decoder wraps them with context via fmt.Errorf.
type Error int

// Error codes.
const (
	ErrNone            Error = 0
	ErrSyncRejected    Error = 1
	ErrMalformedFrame  Error = 2
	ErrDownmixRejected Error = 3
	ErrAllocation      Error = 4
	ErrInvalidConfig   Error = 5
	ErrNilDecoder      Error = 6
	ErrInvalidBlock    Error = 7
)

var errMessages = [8]string{
	"a52: no error",
	"a52: frame sync rejected",
	"a52: malformed frame header",
	"a52: requested output layout rejected",
	"a52: decoder has no sample buffer",
	"a52: invalid decoder configuration",
	"a52: nil decoder",
	"a52: invalid transform channel or output buffer",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "a52: unknown error"
}

// ErrOutOfBits is wrapped by ErrMalformedFrame when a header runs past the
// end of the supplied buffer.
var ErrOutOfBits = bits.ErrOutOfBits
