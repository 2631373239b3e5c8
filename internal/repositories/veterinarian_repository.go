package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gatoco_backend/internal/models"
)

// VeterinarianRepository defines the interface for veterinarian profile persistence.
type VeterinarianRepository interface {
	Save(executor SQLExecutor, veterinarian *models.Veterinarian) (int64, error)
	FindByID(veterinarianID int64) (*models.Veterinarian, error)
	FindByUserID(userID int64) (*models.Veterinarian, error)
	FindAll() ([]models.Veterinarian, error)
}

type veterinarianRepository struct {
	db *sql.DB
}

// NewVeterinarianRepository creates a new instance of VeterinarianRepository.
func NewVeterinarianRepository(db *sql.DB) VeterinarianRepository {
	return &veterinarianRepository{db: db}
}

func (r *veterinarianRepository) Save(executor SQLExecutor, veterinarian *models.Veterinarian) (int64, error) {
	query := `INSERT INTO veterinarians (user_id, fullname, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	currentTime := time.Now()

	var veterinarianID int64
	err := executor.QueryRow(
		query,
		veterinarian.UserID,
		veterinarian.FullName,
		veterinarian.Phone,
		currentTime,
		currentTime,
	).Scan(&veterinarianID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating veterinarian: %v", ErrDatabaseError, err)
	}
	return veterinarianID, nil
}

func (r *veterinarianRepository) FindByID(veterinarianID int64) (*models.Veterinarian, error) {
	return r.findOne(`SELECT id, user_id, fullname, phone, created_at, updated_at
	                  FROM veterinarians WHERE id = $1`, veterinarianID)
}

func (r *veterinarianRepository) FindByUserID(userID int64) (*models.Veterinarian, error) {
	return r.findOne(`SELECT id, user_id, fullname, phone, created_at, updated_at
	                  FROM veterinarians WHERE user_id = $1`, userID)
}

func (r *veterinarianRepository) FindAll() ([]models.Veterinarian, error) {
	query := `SELECT id, user_id, fullname, phone, created_at, updated_at
	          FROM veterinarians ORDER BY fullname`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing veterinarians: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	veterinarians := []models.Veterinarian{}
	for rows.Next() {
		var v models.Veterinarian
		if err := rows.Scan(&v.ID, &v.UserID, &v.FullName, &v.Phone, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning veterinarian: %v", ErrDatabaseError, err)
		}
		veterinarians = append(veterinarians, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating veterinarians: %v", ErrDatabaseError, err)
	}
	return veterinarians, nil
}

func (r *veterinarianRepository) findOne(query string, arg int64) (*models.Veterinarian, error) {
	veterinarian := &models.Veterinarian{}
	err := r.db.QueryRow(query, arg).Scan(
		&veterinarian.ID, &veterinarian.UserID, &veterinarian.FullName, &veterinarian.Phone,
		&veterinarian.CreatedAt, &veterinarian.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding veterinarian: %v", ErrDatabaseError, err)
	}
	return veterinarian, nil
}
