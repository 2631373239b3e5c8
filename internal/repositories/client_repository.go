package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gatoco_backend/internal/models"
)

// ClientRepository defines the interface for client profile persistence.
type ClientRepository interface {
	Save(executor SQLExecutor, client *models.Client) (int64, error)
	FindByID(clientID int64) (*models.Client, error)
	FindByUserID(userID int64) (*models.Client, error)
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Save(executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (user_id, fullname, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	currentTime := time.Now()

	var clientID int64
	err := executor.QueryRow(
		query,
		client.UserID,
		client.FullName,
		client.Phone,
		currentTime,
		currentTime,
	).Scan(&clientID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return clientID, nil
}

func (r *clientRepository) FindByID(clientID int64) (*models.Client, error) {
	return r.findOne(`SELECT id, user_id, fullname, phone, created_at, updated_at
	                  FROM clients WHERE id = $1`, clientID)
}

func (r *clientRepository) FindByUserID(userID int64) (*models.Client, error) {
	return r.findOne(`SELECT id, user_id, fullname, phone, created_at, updated_at
	                  FROM clients WHERE user_id = $1`, userID)
}

func (r *clientRepository) findOne(query string, arg int64) (*models.Client, error) {
	client := &models.Client{}
	err := r.db.QueryRow(query, arg).Scan(
		&client.ID, &client.UserID, &client.FullName, &client.Phone,
		&client.CreatedAt, &client.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding client: %v", ErrDatabaseError, err)
	}
	return client, nil
}
