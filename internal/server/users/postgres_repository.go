package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkovs/todolist/internal/common"
	"github.com/avolkovs/todolist/internal/dbx"
)

// pgUniqueViolation is the PostgreSQL error code for unique-constraint
// conflicts.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, user *User) (*User, error) {

	now := time.Now().UTC()

	if user.ID == 0 {
		query :=
			`INSERT INTO users (account, password, created_at, updated_at)
			 VALUES ($1, $2, $3, $3)
			 RETURNING id
			 `

		err := r.db.QueryRowContext(ctx, query,
			user.Account, user.Password, now).Scan(&user.ID)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return nil, common.ErrorAccountExists
			}
			return nil, fmt.Errorf("db error: %w", err)
		}

		user.CreatedAt = now
		user.UpdatedAt = now
		return user, nil
	}

	query :=
		`UPDATE users SET account = $1, password = $2, updated_at = $3
		 WHERE id = $4
		 `

	_, err := r.db.ExecContext(ctx, query, user.Account, user.Password, now, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAccountExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.UpdatedAt = now
	return user, nil
}

func (r *PostgresRepository) FindByAccount(ctx context.Context, account string) (*User, error) {
	query :=
		`SELECT id, account, password, created_at, updated_at FROM users
		 WHERE account = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, account).
		Scan(&user.ID, &user.Account, &user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT id, account, password, created_at, updated_at FROM users
		 WHERE id = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Account, &user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
