package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avolkovs/todolist/internal/server/migrations"
	"github.com/avolkovs/todolist/internal/server/users"
)

type PostgresStore struct {
	db    *sql.DB
	users users.Repository
}

func (s *PostgresStore) Users() users.Repository {
	return s.users
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, s.db, "postgres")
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := &PostgresStore{
		db:    db,
		users: users.NewPostgresRepository(db),
	}

	if err := s.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}
