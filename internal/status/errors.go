package status

import "errors"

var ErrInvalidInput = errors.New("invalid input")
