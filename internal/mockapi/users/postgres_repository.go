package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/newsdesk/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

const userColumns = `id, name, email, mobile, profile, password_hash, role, status, created_at, updated_at`

// PostgresRepository stores users in PostgreSQL. Emails are unique
// case-insensitively through the lower(email) index.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	query :=
		`INSERT INTO users (name, email, mobile, profile, password_hash, role, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Mobile, user.Profile, user.PasswordHash, user.Role, user.Status)

	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE lower(email) = lower($1)`

	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// Update replaces name, email and mobile; an empty profile keeps the
// stored one.
func (r *PostgresRepository) Update(ctx context.Context, user *User) (*User, error) {
	query :=
		`UPDATE users
		 SET name = $2, email = $3, mobile = $4,
		     profile = COALESCE(NULLIF($5, ''), profile),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, user.ID, user.Name, user.Email, user.Mobile, user.Profile)

	u, err := scanUser(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case isUniqueViolation(err):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.Profile, &u.PasswordHash,
		&u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
