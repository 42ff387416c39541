package options

import "errors"

// ErrInvalidOption is returned by Validate for out of range values.
var ErrInvalidOption = errors.New("invalid option")
