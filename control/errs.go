package control

import "github.com/zeebo/errs"

// Error is the class of all control block errors.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read as a kind it is not.
var ErrInvalidOperation = Error.New("invalid operation")
