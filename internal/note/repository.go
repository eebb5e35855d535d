package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/google/uuid"
)

// ListLimit caps the number of notes returned by List.
const ListLimit = 100

var ErrNotFound = errors.New("note repository: note not found")

// Repository is the persistence port for notes. Every lookup is scoped to the owner's e-mail.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Note, error)
	List(ctx context.Context, userEmail string) ([]Note, error)
	Find(ctx context.Context, noteID, userEmail string) (*Note, error)
	Update(ctx context.Context, params UpdateParams) (*Note, error)
	Delete(ctx context.Context, noteID, userEmail string) error
}

type CreateParams struct {
	Title     string
	Content   string
	UserEmail string
}

type UpdateParams struct {
	ID        string
	Title     string
	Content   string
	UserEmail string
}

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(dbConn *sql.DB) *SQLRepository {
	return &SQLRepository{db: dbConn}
}

const queryNoteCreate = `
INSERT INTO notes (id, title, content, user_email)
VALUES ($1, $2, $3, $4)
RETURNING id, title, content, user_email, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (Note, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryNoteCreate, uuid.NewString(), params.Title, params.Content, params.UserEmail)

	n, err := scanNote(row)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	return *n, nil
}

const queryNoteList = `
SELECT id, title, content, user_email, created_at, updated_at
FROM notes
WHERE user_email = $1
ORDER BY created_at DESC, id
LIMIT $2
`

func (r *SQLRepository) List(ctx context.Context, userEmail string) ([]Note, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, queryNoteList, userEmail, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.UserEmail, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

const queryNoteFind = `
SELECT id, title, content, user_email, created_at, updated_at
FROM notes
WHERE id = $1 AND user_email = $2
`

func (r *SQLRepository) Find(ctx context.Context, noteID, userEmail string) (*Note, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryNoteFind, noteID, userEmail)

	n, err := scanNote(row)
	if err != nil {
		return nil, fmt.Errorf("find note %s: %w", noteID, err)
	}
	return n, nil
}

const queryNoteUpdate = `
UPDATE notes
SET title = $1, content = $2, updated_at = NOW()
WHERE id = $3 AND user_email = $4
RETURNING id, title, content, user_email, created_at, updated_at
`

func (r *SQLRepository) Update(ctx context.Context, params UpdateParams) (*Note, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryNoteUpdate, params.Title, params.Content, params.ID, params.UserEmail)

	n, err := scanNote(row)
	if err != nil {
		return nil, fmt.Errorf("update note %s: %w", params.ID, err)
	}
	return n, nil
}

const queryNoteDelete = `DELETE FROM notes WHERE id = $1 AND user_email = $2`

func (r *SQLRepository) Delete(ctx context.Context, noteID, userEmail string) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, queryNoteDelete, noteID, userEmail)
	if err != nil {
		return fmt.Errorf("delete note %s: %w", noteID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note %s: rows affected: %w", noteID, err)
	}

	if n == 0 {
		return fmt.Errorf("delete note %s: %w", noteID, ErrNotFound)
	}

	return nil
}

func scanNote(row *sql.Row) (*Note, error) {
	var n Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.UserEmail, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}
