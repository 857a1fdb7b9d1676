package user

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLen = 5
	MinNameLen     = 2
	// bcrypt ignores everything past 72 bytes
	MaxPasswordLen = 72
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(req SignUpRequest) error
	ValidateProfile(patch ProfilePatch) error
}

type CredentialsValidator struct {
	minPasswordLen int
}

// NewCredentialsValidator создает новый валидатор
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		minPasswordLen: MinPasswordLen,
	}
}

// ValidateRegister валидирует данные для регистрации
func (v *CredentialsValidator) ValidateRegister(req SignUpRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username is required")
	}

	// минимум считается в символах, максимум в байтах
	if utf8.RuneCountInString(req.Password) < v.minPasswordLen {
		return ErrPasswordTooShort
	}

	if len(req.Password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes long", MaxPasswordLen)
	}

	return v.validateName(req.Name)
}

// ValidateProfile валидирует изменение профиля
func (v *CredentialsValidator) ValidateProfile(patch ProfilePatch) error {
	if patch.Name != nil {
		return v.validateName(*patch.Name)
	}
	return nil
}

// пустое имя допустимо, оно необязательное
func (v *CredentialsValidator) validateName(name string) error {
	name = strings.TrimSpace(name)
	if name != "" && len([]rune(name)) < MinNameLen {
		return ErrNameTooShort
	}
	return nil
}
