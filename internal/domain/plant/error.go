package plant

import "junebug/internal/domain/errs"

var ErrNotFound = errs.New(errs.ErrNotFound, "Could not find plant")
