package postgres

import (
	"database/sql"

	"toolstore-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
	repository.RateProfileRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ToolRepository:        NewToolRepository(db),
		RateProfileRepository: NewRateProfileRepository(db),
	}
}
