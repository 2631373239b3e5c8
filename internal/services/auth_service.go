package services

import (
	"errors"
	"fmt"
	"strings"

	"gatoco_backend/internal/database"
	"gatoco_backend/internal/models"
	"gatoco_backend/internal/repositories"
	"gatoco_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// RoleHintVeterinarian is the role string that registers a veterinarian
// account; anything else registers a client.
const RoleHintVeterinarian = "veterinario"

// RegisterRequest carries the raw registration fields; value objects do the
// validation.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"fullName" binding:"required"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"` // "cliente" o "veterinario"
}

// LoginRequest carries raw credentials. Only the email format is validated;
// the password is trimmed for comparison but never policy-checked.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService groups account registration, login and staff listing.
type AuthService interface {
	Register(req RegisterRequest) (*models.Account, error)
	Login(req LoginRequest) (*models.Account, error)
	ListVeterinarians() ([]models.Veterinarian, error)
}

type authService struct {
	userRepo         repositories.UserRepository
	clientRepo       repositories.ClientRepository
	veterinarianRepo repositories.VeterinarianRepository
	tx               database.TxManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	veterinarianRepo repositories.VeterinarianRepository,
	tx database.TxManager,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		clientRepo:       clientRepo,
		veterinarianRepo: veterinarianRepo,
		tx:               tx,
	}
}

// Register validates the email and password value objects, checks email
// uniqueness, hashes the password and persists the user together with its
// Client or Veterinarian profile in one transaction.
func (s *authService) Register(req RegisterRequest) (*models.Account, error) {
	email, err := models.NewEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, trimValueError(err))
	}
	email, err = email.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, trimValueError(err))
	}

	password, err := models.NewPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, trimValueError(err))
	}

	if _, err := s.userRepo.FindByEmail(email.String()); err == nil {
		return nil, fmt.Errorf("%w: el email ya esta registrado", ErrConflict)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		utils.LogError(err, "Register: email uniqueness check failed")
		return nil, fmt.Errorf("%w: no se pudo registrar el usuario", ErrStorage)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password.String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	isVeterinarian := req.Role != nil && strings.ToLower(*req.Role) == RoleHintVeterinarian

	user := models.User{
		IsVeterinarian: isVeterinarian,
		Email:          email.String(),
		PasswordHash:   string(hashedPasswordBytes),
	}
	account := &models.Account{}

	err = s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		userID, err := s.userRepo.CreateUser(executor, &user)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return fmt.Errorf("%w: el email ya esta registrado", ErrConflict)
			}
			utils.LogError(err, "Register: failed to create user")
			return fmt.Errorf("%w: no se pudo registrar el usuario", ErrStorage)
		}
		user.ID = userID
		account.User = user

		if isVeterinarian {
			veterinarian := models.Veterinarian{
				UserID:   userID,
				FullName: req.FullName,
				Phone:    utils.TrimmedOrNil(req.Phone),
			}
			veterinarianID, err := s.veterinarianRepo.Save(executor, &veterinarian)
			if err != nil {
				utils.LogError(err, "Register: failed to create veterinarian profile")
				return fmt.Errorf("%w: no se pudo registrar el usuario", ErrStorage)
			}
			veterinarian.ID = veterinarianID
			account.Veterinarian = &veterinarian
			return nil
		}

		client := models.Client{
			UserID:   userID,
			FullName: req.FullName,
			Phone:    utils.TrimmedOrNil(req.Phone),
		}
		clientID, err := s.clientRepo.Save(executor, &client)
		if err != nil {
			utils.LogError(err, "Register: failed to create client profile")
			return fmt.Errorf("%w: no se pudo registrar el usuario", ErrStorage)
		}
		client.ID = clientID
		account.Client = &client
		return nil
	})
	if err != nil {
		return nil, err
	}

	account.User.PasswordHash = ""
	return account, nil
}

// Login checks credentials and loads the profile matching the user's role.
// The email is normalized and the password trimmed exactly as Register did,
// so the strings a user registered with always match. Unknown user and bad
// password both come back as ErrUnauthorized; the distinction is logged
// only, to avoid account enumeration.
func (s *authService) Login(req LoginRequest) (*models.Account, error) {
	email, err := models.NewEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, trimValueError(err))
	}
	email, err = email.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, trimValueError(err))
	}

	user, err := s.userRepo.FindByEmail(email.String())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.LogWarn("Login rejected: user not found", map[string]interface{}{"email": email.String()})
			return nil, ErrUnauthorized
		}
		utils.LogError(err, "Login: user lookup failed")
		return nil, fmt.Errorf("%w: no se pudo iniciar sesion", ErrStorage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(req.Password))); err != nil {
		utils.LogWarn("Login rejected: password mismatch", map[string]interface{}{"user_id": user.ID})
		return nil, ErrUnauthorized
	}

	account := &models.Account{User: *user}

	if user.IsVeterinarian {
		veterinarian, err := s.veterinarianRepo.FindByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: no se encontro informacion del veterinario", ErrNotFound)
			}
			utils.LogError(err, "Login: veterinarian profile lookup failed")
			return nil, fmt.Errorf("%w: no se pudo iniciar sesion", ErrStorage)
		}
		account.Veterinarian = veterinarian
	} else {
		client, err := s.clientRepo.FindByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: no se encontro informacion del cliente", ErrNotFound)
			}
			utils.LogError(err, "Login: client profile lookup failed")
			return nil, fmt.Errorf("%w: no se pudo iniciar sesion", ErrStorage)
		}
		account.Client = client
	}

	account.User.PasswordHash = ""
	return account, nil
}

// ListVeterinarians returns all staff profiles for the booking UI.
func (s *authService) ListVeterinarians() ([]models.Veterinarian, error) {
	veterinarians, err := s.veterinarianRepo.FindAll()
	if err != nil {
		utils.LogError(err, "ListVeterinarians: listing failed")
		return nil, fmt.Errorf("%w: no se pudieron obtener los veterinarios", ErrStorage)
	}
	return veterinarians, nil
}

// trimValueError drops the models.ErrInvalidValue prefix so the message can
// be rewrapped under the service taxonomy.
func trimValueError(err error) string {
	return strings.TrimPrefix(err.Error(), models.ErrInvalidValue.Error()+": ")
}
