package wire

import "errors"

// ErrShortRead is returned whenever a read consumes more bytes than remain
// in the buffer, whether for a fixed-width field or a declared
// variable-length span (e.g. an RR's rdlength).
var ErrShortRead = errors.New("wire: short read")

// ErrFormatError is returned for structural violations that are not
// simply "not enough bytes": reserved compression-pointer bits, a
// forward or self pointer, an overwrite past the end of the buffer, and
// similar violations raised by callers built on top of Buffer.
var ErrFormatError = errors.New("wire: format error")
