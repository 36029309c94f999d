package drag

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
