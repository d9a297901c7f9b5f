package database

import (
	"gorm.io/gorm"
)

// UnitOfWork bounds all storage operations of one request in a single
// transaction. A unit of work is created by the middleware, handed to
// handlers explicitly, and closed unconditionally when the request ends.
type UnitOfWork struct {
	tx   *gorm.DB
	done bool
}

// Begin starts a new unit of work on the given database handle.
func Begin(db *gorm.DB) (*UnitOfWork, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &UnitOfWork{tx: tx}, nil
}

// DB returns the transactional handle for staging operations.
func (u *UnitOfWork) DB() *gorm.DB {
	return u.tx
}

// Commit atomically persists everything staged in this unit of work.
func (u *UnitOfWork) Commit() error {
	if u.done {
		return nil
	}
	u.done = true
	return u.tx.Commit().Error
}

// Close rolls back the transaction unless it was committed. Safe to call
// exactly once per unit of work; the middleware defers it.
func (u *UnitOfWork) Close() {
	if u.done {
		return
	}
	u.done = true
	u.tx.Rollback()
}
