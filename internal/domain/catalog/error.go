package catalog

import "junebug/internal/domain/errs"

var (
	ErrSeedNotFound = errs.New(errs.ErrNotFound, "Could not find seed")
	ErrNoTips       = errs.New(errs.ErrNotFound, "No tips found")
)
