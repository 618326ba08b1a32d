package store

import "github.com/MKhiriev/go-finance-advisor/internal/logger"

// Storages groups the repositories built on one database connection.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository
	Database       Database
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TodoRepository: NewTodoRepository(db, logger),
		Database:       db,
	}
}
