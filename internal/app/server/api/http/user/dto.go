package user

import "junebug/internal/domain/user"

type signUpInput struct {
	Body user.SignUpRequest
}

type signInInput struct {
	Body user.SignInRequest
}

type meInput struct{}

type updateMeInput struct {
	Body user.ProfilePatch
}
