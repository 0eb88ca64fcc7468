package png

import (
	"errors"
	"strconv"
)

const resumableDefault = false

var (
	// ErrShortBytes is returned when the
	// slice being decoded is too short to
	// contain a complete chunk frame
	ErrShortBytes error = errShort{}

	// ErrBadSignature is returned when a buffer does not start with
	// the 8-byte PNG signature.
	ErrBadSignature error = errBadSignature{}

	// ErrLimitExceeded is returned when a declared chunk length exceeds
	// the configured or format limit.
	ErrLimitExceeded error = errors.New("png: chunk length limit exceeded")

	// ErrInvalidChunkType is returned when a chunk type contains a byte
	// outside A-Z / a-z.
	ErrInvalidChunkType error = errors.New("png: chunk type must be alphabetic")

	// ErrInvalidChunkTypeLength is returned when a chunk type string is not
	// exactly four bytes long.
	ErrInvalidChunkTypeLength error = errors.New("png: chunk type must be 4 bytes long")

	// ErrCRCMismatch is returned when the stored CRC of a chunk does not
	// match the checksum of its type and data.
	ErrCRCMismatch error = errors.New("png: chunk CRC mismatch")

	// ErrChunkNotFound is returned when no chunk of the requested type exists.
	ErrChunkNotFound error = errors.New("png: chunk not found")

	// ErrInvalidUTF8 is returned when chunk data is requested as text
	// but is not valid UTF-8.
	ErrInvalidUTF8 error = errors.New("png: chunk data is not valid UTF-8")
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether the file
	// the error came from is still intact.
	// Structural and integrity errors are
	// never resumable.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error leaves the underlying
// file usable.
func Resumable(e error) bool {
	var pe Error
	if errors.As(e, &pe) {
		return pe.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the chunk
// that caused the problem to be identified. Underlying errors
// can be retrieved using Cause() or errors.Is.
//
// The input error is not modified - a new error is returned.
func WrapError(err error, ctx ...any) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []any) string {
	out := ""
	for i, c := range ctx {
		if i > 0 {
			out += " "
		}
		switch v := c.(type) {
		case string:
			out += v
		case int:
			out += strconv.Itoa(v)
		case uint32:
			out += strconv.FormatUint(uint64(v), 10)
		case ChunkType:
			out += v.String()
		default:
			out += "?"
		}
	}
	return out
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	}
	return add
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errShort struct{}

func (e errShort) Error() string   { return "png: too few bytes left to read chunk" }
func (e errShort) Resumable() bool { return false }

type errBadSignature struct{}

func (e errBadSignature) Error() string   { return "png: invalid file signature" }
func (e errBadSignature) Resumable() bool { return false }

// InvalidTypeError is returned when a chunk
// type contains non-alphabetic bytes.
type InvalidTypeError struct {
	Bytes [4]byte
	ctx   string
}

// Error implements the error interface
func (e *InvalidTypeError) Error() string {
	out := ErrInvalidChunkType.Error() + ", got " + strconv.Quote(string(e.Bytes[:]))
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

// Unwrap returns ErrInvalidChunkType.
func (e *InvalidTypeError) Unwrap() error { return ErrInvalidChunkType }

// Resumable is always 'false' for InvalidTypeError
func (e *InvalidTypeError) Resumable() bool { return false }

func (e *InvalidTypeError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// InvalidLengthError is returned when a chunk
// type string is not four bytes long.
type InvalidLengthError struct {
	Got int
}

// Error implements the error interface
func (e *InvalidLengthError) Error() string {
	return ErrInvalidChunkTypeLength.Error() + ", got " + strconv.Itoa(e.Got)
}

// Unwrap returns ErrInvalidChunkTypeLength.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidChunkTypeLength }

// Resumable is always 'false' for InvalidLengthError
func (e *InvalidLengthError) Resumable() bool { return false }

// CRCMismatchError is returned when the
// checksum stored in a chunk frame differs
// from the one computed over its type and data.
type CRCMismatchError struct {
	Type ChunkType
	Want uint32 // computed
	Got  uint32 // stored in the frame
	ctx  string
}

// Error implements the error interface
func (e *CRCMismatchError) Error() string {
	out := ErrCRCMismatch.Error() + " for " + strconv.Quote(e.Type.String()) +
		": computed " + strconv.FormatUint(uint64(e.Want), 10) +
		", stored " + strconv.FormatUint(uint64(e.Got), 10)
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

// Unwrap returns ErrCRCMismatch.
func (e *CRCMismatchError) Unwrap() error { return ErrCRCMismatch }

// Resumable is always 'false' for CRCMismatchError
func (e *CRCMismatchError) Resumable() bool { return false }

func (e *CRCMismatchError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// LengthOverflowError is returned when the
// declared length of a chunk frame is above
// the active limit.
type LengthOverflowError struct {
	Length uint32
	Limit  uint32
	ctx    string
}

// Error implements the error interface
func (e *LengthOverflowError) Error() string {
	out := "png: chunk length " + strconv.FormatUint(uint64(e.Length), 10) +
		" exceeds limit " + strconv.FormatUint(uint64(e.Limit), 10)
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

// Unwrap returns ErrLimitExceeded.
func (e *LengthOverflowError) Unwrap() error { return ErrLimitExceeded }

// Resumable is always 'false' for LengthOverflowError
func (e *LengthOverflowError) Resumable() bool { return false }

func (e *LengthOverflowError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// ChunkNotFoundError is returned when a lookup
// or removal names a type the file does not
// contain. The file itself is well-formed.
type ChunkNotFoundError struct {
	Type string
}

// Error implements the error interface
func (e *ChunkNotFoundError) Error() string {
	return ErrChunkNotFound.Error() + ": " + strconv.Quote(e.Type)
}

// Unwrap returns ErrChunkNotFound.
func (e *ChunkNotFoundError) Unwrap() error { return ErrChunkNotFound }

// Resumable returns 'true' for ChunkNotFoundError
func (e *ChunkNotFoundError) Resumable() bool { return true }

type errInvalidText struct {
	Type ChunkType
}

func (e errInvalidText) Error() string {
	return ErrInvalidUTF8.Error() + " in " + strconv.Quote(e.Type.String())
}
func (e errInvalidText) Unwrap() error   { return ErrInvalidUTF8 }
func (e errInvalidText) Resumable() bool { return true }
