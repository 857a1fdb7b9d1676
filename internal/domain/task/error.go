package task

import "junebug/internal/domain/errs"

var (
	ErrNotFound      = errs.New(errs.ErrNotFound, "Could not find task")
	ErrTextRequired  = errs.New(errs.ErrInvalidInput, "text is required")
	ErrTextLength    = errs.Invalid("text must be between %d and %d characters", MinTextLen, MaxTextLen)
	ErrNothingToEdit = errs.New(errs.ErrInvalidInput, "nothing to update")
)
