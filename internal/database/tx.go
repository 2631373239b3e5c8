package database

import (
	"database/sql"
	"fmt"

	"gatoco_backend/internal/repositories"
)

// TxManager runs a function inside one database transaction. Services depend
// on this interface so tests can substitute a pass-through implementation.
type TxManager interface {
	InTransaction(fn func(executor repositories.SQLExecutor) error) error
}

type sqlTxManager struct {
	db *sql.DB
}

// NewTxManager creates a TxManager backed by the connection pool.
func NewTxManager(db *sql.DB) TxManager {
	return &sqlTxManager{db: db}
}

func (m *sqlTxManager) InTransaction(fn func(executor repositories.SQLExecutor) error) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
