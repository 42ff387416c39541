package extract

import "errors"

// ErrUnsupported is returned for documents whose format cannot be read as
// text.
var ErrUnsupported = errors.New("unsupported document format")
