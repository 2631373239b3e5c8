package services

import (
	"errors"
	"strings"
	"testing"

	"gatoco_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeClientRepo, *fakeVeterinarianRepo) {
	users := newFakeUserRepo()
	clients := newFakeClientRepo()
	veterinarians := newFakeVeterinarianRepo()
	svc := NewAuthService(users, clients, veterinarians, passTx{})
	return svc, users, clients, veterinarians
}

func strPtr(s string) *string { return &s }

func TestRegisterCreatesClientAccount(t *testing.T) {
	svc, users, clients, _ := newAuthFixture()

	account, err := svc.Register(RegisterRequest{
		Email:    "Ana.Perez@gmail.com",
		Password: "Segura1!",
		FullName: "Ana Perez",
		Phone:    strPtr(" 5551234 "),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.User.Email != "ana.perez@gmail.com" {
		t.Errorf("expected normalized email, got %q", account.User.Email)
	}
	if account.User.IsVeterinarian {
		t.Error("expected a client account")
	}
	if account.Veterinarian != nil {
		t.Error("client registration must not create a veterinarian profile")
	}
	if account.Client == nil {
		t.Fatal("expected a client profile")
	}
	if account.Client.FullName != "Ana Perez" {
		t.Errorf("unexpected full name %q", account.Client.FullName)
	}
	if account.Client.Phone == nil || *account.Client.Phone != "5551234" {
		t.Errorf("expected trimmed phone, got %v", account.Client.Phone)
	}
	if account.User.PasswordHash != "" {
		t.Error("password hash must not leak out of the service")
	}
	if len(clients.byID) != 1 {
		t.Errorf("expected one stored client, got %d", len(clients.byID))
	}

	stored, err := users.FindByEmail("ana.perez@gmail.com")
	if err != nil {
		t.Fatalf("stored user lookup failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Segura1!")); err != nil {
		t.Error("stored hash does not match the original password")
	}
}

func TestRegisterCreatesVeterinarianAccount(t *testing.T) {
	svc, _, clients, veterinarians := newAuthFixture()

	account, err := svc.Register(RegisterRequest{
		Email:    "doc@gmail.com",
		Password: "Segura1!",
		FullName: "Dra. Lopez",
		Role:     strPtr("Veterinario"),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !account.User.IsVeterinarian {
		t.Error("expected a veterinarian account")
	}
	if account.Veterinarian == nil || account.Veterinarian.FullName != "Dra. Lopez" {
		t.Errorf("unexpected veterinarian profile: %+v", account.Veterinarian)
	}
	if account.Client != nil {
		t.Error("veterinarian registration must not create a client profile")
	}
	if len(clients.byID) != 0 || len(veterinarians.byID) != 1 {
		t.Errorf("profiles landed in the wrong table: clients=%d veterinarians=%d", len(clients.byID), len(veterinarians.byID))
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	req := RegisterRequest{Email: "dup@gmail.com", Password: "Segura1!", FullName: "Uno"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(req)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "ya esta registrado") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestRegisterValidationMessages(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	tests := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{"blank email", "  ", "Segura1!", "vacio"},
		{"bad format", "no-at-sign", "Segura1!", "formato valido"},
		{"bad domain", "a@yahoo.com", "Segura1!", "dominios"},
		{"short password", "a@gmail.com", "Ab1!", "al menos 8"},
		{"no special char", "a@gmail.com", "Abcdefg1", "caracter especial"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(RegisterRequest{Email: tc.email, Password: tc.password, FullName: "X"})
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestLoginReturnsMatchingProfile(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(RegisterRequest{Email: "ana@gmail.com", Password: "Segura1!", FullName: "Ana"}); err != nil {
		t.Fatalf("setup registration failed: %v", err)
	}

	account, err := svc.Login(LoginRequest{Email: "ana@gmail.com", Password: "Segura1!"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if account.Client == nil {
		t.Error("expected the client profile on login")
	}
	if account.User.PasswordHash != "" {
		t.Error("password hash must not leak out of the service")
	}
}

func TestLoginAcceptsCredentialsExactlyAsRegistered(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	// Registration normalizes the email and trims the password before
	// hashing. Logging in with the same raw strings must still succeed.
	if _, err := svc.Register(RegisterRequest{Email: "Ana.Perez@gmail.com", Password: "  Segura1!  ", FullName: "Ana"}); err != nil {
		t.Fatalf("setup registration failed: %v", err)
	}

	account, err := svc.Login(LoginRequest{Email: "Ana.Perez@gmail.com", Password: "  Segura1!  "})
	if err != nil {
		t.Fatalf("Login with the registered credentials failed: %v", err)
	}
	if account.User.Email != "ana.perez@gmail.com" {
		t.Errorf("expected normalized email %q, got %q", "ana.perez@gmail.com", account.User.Email)
	}

	// The trimmed forms resolve to the same account as well.
	if _, err := svc.Login(LoginRequest{Email: "ana.perez@gmail.com", Password: "Segura1!"}); err != nil {
		t.Errorf("Login with trimmed credentials failed: %v", err)
	}
}

func TestLoginDoesNotDistinguishUnknownUserFromBadPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(RegisterRequest{Email: "ana@gmail.com", Password: "Segura1!", FullName: "Ana"}); err != nil {
		t.Fatalf("setup registration failed: %v", err)
	}

	_, errUnknown := svc.Login(LoginRequest{Email: "nadie@gmail.com", Password: "Segura1!"})
	_, errBadPass := svc.Login(LoginRequest{Email: "ana@gmail.com", Password: "Incorrecta1!"})

	if !errors.Is(errUnknown, ErrUnauthorized) {
		t.Fatalf("unknown user: expected ErrUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errBadPass, ErrUnauthorized) {
		t.Fatalf("bad password: expected ErrUnauthorized, got %v", errBadPass)
	}
	if errUnknown.Error() != errBadPass.Error() {
		t.Errorf("error messages must be identical to avoid account enumeration: %q vs %q",
			errUnknown.Error(), errBadPass.Error())
	}
}

func TestLoginAcceptsAnyPasswordShapeForComparison(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(RegisterRequest{Email: "ana@gmail.com", Password: "Segura1!", FullName: "Ana"}); err != nil {
		t.Fatalf("setup registration failed: %v", err)
	}

	// A password that would fail registration policy is still just a
	// mismatch at login, never a validation error.
	_, err := svc.Login(LoginRequest{Email: "ana@gmail.com", Password: "short"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListVeterinarians(t *testing.T) {
	svc, _, _, veterinarians := newAuthFixture()

	veterinarians.byID[1] = models.Veterinarian{ID: 1, UserID: 10, FullName: "Dra. Lopez"}
	veterinarians.byID[2] = models.Veterinarian{ID: 2, UserID: 11, FullName: "Dr. Gato"}

	listed, err := svc.ListVeterinarians()
	if err != nil {
		t.Fatalf("ListVeterinarians returned error: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("expected 2 veterinarians, got %d", len(listed))
	}
}
