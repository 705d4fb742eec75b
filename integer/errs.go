package integer

import "github.com/zeebo/errs"

// Error is the class of all integer field errors.
var Error = errs.Class("integer")
