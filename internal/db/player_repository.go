package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/gi2go/internal/model"
)

// PlayerRepository управляет игроками в БД.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создаёт новый PlayerRepository.
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// LoadByAccount загружает игрока аккаунта, nil если ещё не создан.
func (r *PlayerRepository) LoadByAccount(ctx context.Context, login string) (*model.Player, error) {
	var (
		uid  int64
		name string
	)
	err := r.db.QueryRow(ctx,
		`SELECT uid, name FROM players WHERE account_login = $1`, login,
	).Scan(&uid, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying player for account %q: %w", login, err)
	}
	return model.NewPlayer(uid, login, name), nil
}

// Create создаёт игрока и возвращает его UID.
func (r *PlayerRepository) Create(ctx context.Context, login, name string) (*model.Player, error) {
	var uid int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO players (account_login, name) VALUES ($1, $2) RETURNING uid`,
		login, name,
	).Scan(&uid)
	if err != nil {
		return nil, fmt.Errorf("creating player for account %q: %w", login, err)
	}
	return model.NewPlayer(uid, login, name), nil
}
