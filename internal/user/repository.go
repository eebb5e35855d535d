package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("user repository: user not found")
	ErrDuplicate = errors.New("user repository: email already registered")
)

// Repository is the persistence port for users.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type CreateParams struct {
	Name         string
	Email        string
	MobileNumber string
	PasswordHash string
}

func (p CreateParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("email", p.Email),
		slog.String("mobile_number", p.MobileNumber),
		slog.String("password_hash", "*"),
	)
}

// SQLRepository stores users in postgres. It joins the transaction in ctx when there is one.
type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(dbConn *sql.DB) *SQLRepository {
	return &SQLRepository{db: dbConn}
}

const queryUserCreate = `
INSERT INTO users (id, name, email, mobile_number, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, email, mobile_number, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (User, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryUserCreate,
		uuid.NewString(), params.Name, params.Email, params.MobileNumber, params.PasswordHash)

	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, fmt.Errorf("create user %s: %w", params.Email, ErrDuplicate)
		}
		return User{}, fmt.Errorf("create user %s: %w", params.Email, err)
	}

	u.PasswordHash = params.PasswordHash
	return u, nil
}

const queryUserFindByEmail = `
SELECT id, name, email, mobile_number, password_hash, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1
`

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryUserFindByEmail, email)
	return scanUser(row, "email "+email)
}

func scanUser(row *sql.Row, lookup string) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find user with %s: %w", lookup, ErrNotFound)
		}
		return nil, fmt.Errorf("find user with %s: %w", lookup, err)
	}
	return &u, nil
}
