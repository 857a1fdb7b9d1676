package user

import "junebug/internal/domain/errs"

var (
	ErrNotFound           = errs.New(errs.ErrNotFound, "user not found")
	ErrInvalidCredentials = errs.New(errs.ErrNotFound, "User or password does not match")
	ErrUsernameTaken      = errs.New(errs.ErrConflict, "username already exists")
	ErrTokenTaken         = errs.New(errs.ErrConflict, "access token collision")
	ErrPasswordTooShort   = errs.New(errs.ErrInvalidInput, "password must be at least 5 characters long")
	ErrNameTooShort       = errs.Invalid("name must be at least %d characters long", MinNameLen)
)
