package arith

import "vsis-dpcore/errs"

var (
	errNegativeSqrt   = errs.NewFailedMap("sqrt of negative rational")
	errNonPositiveLog = errs.NewFailedMap("log of non-positive rational")
)
