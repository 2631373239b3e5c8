package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidValue marks a value-object constructor failure. Services wrap it
// into their validation taxonomy.
var ErrInvalidValue = errors.New("invalid value")

// allowedEmailDomains is the business allow-list for account emails.
var allowedEmailDomains = []string{"hotmail.com", "gmail.com", "outlook.com"}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// passwordSpecialChars is the fixed set a password must draw at least one
// character from.
const passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Email is a validated account email. The zero value is not valid; construct
// via NewEmail.
type Email struct {
	value string
}

// NewEmail validates a raw email string into an Email. Rules are applied in
// order and the first failure determines the message: non-blank, general
// format, then domain allow-list.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, fmt.Errorf("%w: el email no puede estar vacio", ErrInvalidValue)
	}

	if !emailRegex.MatchString(raw) {
		return Email{}, fmt.Errorf("%w: el email no tiene un formato valido", ErrInvalidValue)
	}

	domain := raw[strings.LastIndex(raw, "@")+1:]
	for _, allowed := range allowedEmailDomains {
		if domain == allowed {
			return Email{value: raw}, nil
		}
	}
	return Email{}, fmt.Errorf("%w: solo se permiten correos de los siguientes dominios: %s",
		ErrInvalidValue, strings.Join(allowedEmailDomains, ", "))
}

// String returns the validated raw value.
func (e Email) String() string {
	return e.value
}

// Normalize returns a lowercased, trimmed Email, re-applying validation.
func (e Email) Normalize() (Email, error) {
	return NewEmail(strings.TrimSpace(strings.ToLower(e.value)))
}

// Password is a validated plaintext password awaiting hashing. Construct via
// NewPassword; it is never persisted.
type Password struct {
	value string
}

// NewPassword validates a raw password. Rules, in order: trimmed length 8-16,
// no embedded spaces, at least one uppercase letter, one digit and one
// special character from the fixed set.
func NewPassword(raw string) (Password, error) {
	password := strings.TrimSpace(raw)

	length := utf8.RuneCountInString(password)
	if length < 8 {
		return Password{}, fmt.Errorf("%w: la contrasena debe tener al menos 8 caracteres", ErrInvalidValue)
	}
	if length > 16 {
		return Password{}, fmt.Errorf("%w: la contrasena no puede tener mas de 16 caracteres", ErrInvalidValue)
	}
	if strings.Contains(password, " ") {
		return Password{}, fmt.Errorf("%w: la contrasena no puede contener espacios", ErrInvalidValue)
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return Password{}, fmt.Errorf("%w: la contrasena debe contener al menos una letra mayuscula", ErrInvalidValue)
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return Password{}, fmt.Errorf("%w: la contrasena debe contener al menos un numero", ErrInvalidValue)
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return Password{}, fmt.Errorf("%w: la contrasena debe contener al menos un caracter especial (%s)",
			ErrInvalidValue, passwordSpecialChars)
	}

	return Password{value: password}, nil
}

// String returns the validated raw value.
func (p Password) String() string {
	return p.value
}
