package hamilton

import "errors"

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("hamilton: graph is nil")
