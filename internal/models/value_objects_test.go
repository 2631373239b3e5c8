package models

import (
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr string // substring, empty means success expected
	}{
		{"valid gmail", "ana.perez@gmail.com", ""},
		{"valid hotmail", "carlos+mascotas@hotmail.com", ""},
		{"valid outlook", "vet_99@outlook.com", ""},
		{"blank", "", "vacio"},
		{"whitespace only", "   ", "vacio"},
		{"missing at", "ana.perez.gmail.com", "formato"},
		{"missing tld", "ana@gmail", "formato"},
		{"one letter tld", "ana@gmail.c", "formato"},
		{"embedded space", "ana perez@gmail.com", "formato"},
		{"disallowed domain", "ana@yahoo.com", "dominios"},
		{"disallowed corporate domain", "ana@empresa.com.mx", "dominios"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := NewEmail(tc.input)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("NewEmail(%q) unexpected error: %v", tc.input, err)
				}
				if email.String() != tc.input {
					t.Fatalf("NewEmail(%q) stored %q", tc.input, email.String())
				}
				return
			}
			if err == nil {
				t.Fatalf("NewEmail(%q) expected error containing %q", tc.input, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("NewEmail(%q) error %q does not mention %q", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestEmailNormalize(t *testing.T) {
	// The domain allow-list is literal, so only the local part may carry
	// mixed case through construction.
	email, err := NewEmail("Ana.Perez@gmail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	normalized, err := email.Normalize()
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if normalized.String() != "ana.perez@gmail.com" {
		t.Fatalf("Normalize yielded %q", normalized.String())
	}
}

func TestNewEmailDomainCheckIsLiteral(t *testing.T) {
	if _, err := NewEmail("ana@Gmail.com"); err == nil {
		t.Fatal("mixed-case domain must fail the allow-list before normalization")
	}
}

func TestNewPassword(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "Valid1!ab", ""},
		{"valid at max length", "Abcdefg12345678!", ""},
		{"too short", "abc", "al menos 8"},
		{"too long", "ThisIsWayTooLong123!", "mas de 16"},
		{"embedded space", "Abc 1234!", "espacios"},
		{"no uppercase", "lowercase1!", "mayuscula"},
		{"no digit", "NoDigits!", "numero"},
		{"no special", "NoSpecial12", "caracter especial"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pw, err := NewPassword(tc.input)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("NewPassword(%q) unexpected error: %v", tc.input, err)
				}
				if pw.String() == "" {
					t.Fatal("valid password not retained")
				}
				return
			}
			if err == nil {
				t.Fatalf("NewPassword(%q) expected failure", tc.input)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("NewPassword(%q) error %q does not mention %q", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestNewPasswordFirstFailureWins(t *testing.T) {
	// "NoDigits!" has no digit; the digit rule fires before the special-char
	// rule is even reached. Rule order determines the message.
	_, err := NewPassword("NoDigits!")
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "numero") {
		t.Fatalf("expected digit-rule message, got %q", err)
	}
}

func TestNewPasswordLengthCountsRunes(t *testing.T) {
	// Multibyte characters count once each. "ÑÑÑÑÑÑÑÑÑÑÑÑÑ1!" is 15
	// characters but 28 bytes, so it must pass the 8..16 range.
	if _, err := NewPassword("ÑÑÑÑÑÑÑÑÑÑÑÑÑ1!"); err != nil {
		t.Fatalf("15-rune password should validate, got %v", err)
	}

	// "Ñña1!ññ" is 7 characters but more than 8 bytes. Byte counting
	// would accept it; rune counting rejects it as too short.
	_, err := NewPassword("Ñña1!ññ")
	if err == nil {
		t.Fatal("7-rune password should fail length rule")
	}
	if !strings.Contains(err.Error(), "al menos 8") {
		t.Fatalf("expected minimum-length message, got %q", err)
	}
}

func TestNewPasswordTrimsBeforeLength(t *testing.T) {
	// Leading/trailing whitespace is not counted toward length.
	if _, err := NewPassword("  Valid1!ab  "); err != nil {
		t.Fatalf("trimmed password should validate, got %v", err)
	}
	if _, err := NewPassword("  Abc1!  "); err == nil {
		t.Fatal("five-char trimmed password should fail length rule")
	}
}
