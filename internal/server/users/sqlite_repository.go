package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/avolkovs/todolist/internal/common"
	"github.com/avolkovs/todolist/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var serr *msqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

func (r *SQLiteRepository) Save(ctx context.Context, user *User) (*User, error) {

	now := time.Now().UTC()

	if user.ID == 0 {
		query :=
			`INSERT INTO users (account, password, created_at, updated_at)
			 VALUES (?, ?, ?, ?)
			 `

		res, err := r.db.ExecContext(ctx, query, user.Account, user.Password, now, now)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, common.ErrorAccountExists
			}
			return nil, fmt.Errorf("db error: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		user.ID = id
		user.CreatedAt = now
		user.UpdatedAt = now
		return user, nil
	}

	query :=
		`UPDATE users SET account = ?, password = ?, updated_at = ?
		 WHERE id = ?
		 `

	_, err := r.db.ExecContext(ctx, query, user.Account, user.Password, now, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAccountExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.UpdatedAt = now
	return user, nil
}

func (r *SQLiteRepository) FindByAccount(ctx context.Context, account string) (*User, error) {
	query :=
		`SELECT id, account, password, created_at, updated_at FROM users
		 WHERE account = ?
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

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT id, account, password, created_at, updated_at FROM users
		 WHERE id = ?
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
