package note

import "junebug/internal/domain/errs"

var (
	ErrNotFound     = errs.New(errs.ErrNotFound, "Could not find note")
	ErrTextRequired = errs.New(errs.ErrInvalidInput, "text is required")
	ErrTextLength   = errs.Invalid("text must be between %d and %d characters", MinTextLen, MaxTextLen)
)
