package numeric

import "github.com/zeebo/errs"

// Error is the class of numeric errors.
var Error = errs.Class("numeric")
