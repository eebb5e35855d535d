package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service interface {
	CreateNote(ctx context.Context, params CreateParams) (Note, error)
	ListNotes(ctx context.Context, userEmail string) ([]Note, error)
	FindNote(ctx context.Context, noteID, userEmail string) (*Note, error)
	UpdateNote(ctx context.Context, params UpdateParams) (*Note, error)
	DeleteNote(ctx context.Context, noteID, userEmail string) error
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateNote(ctx context.Context, params CreateParams) (Note, error) {
	params.Title = strings.TrimSpace(params.Title)

	n, err := s.repo.Create(ctx, params)
	if err != nil {
		return Note{}, fmt.Errorf("create note for %s: %w", params.UserEmail, err)
	}
	return n, nil
}

func (s *service) ListNotes(ctx context.Context, userEmail string) ([]Note, error) {
	notes, err := s.repo.List(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list notes of %s: %w", userEmail, err)
	}
	return notes, nil
}

func (s *service) FindNote(ctx context.Context, noteID, userEmail string) (*Note, error) {
	if err := checkID(noteID); err != nil {
		return nil, err
	}

	n, err := s.repo.Find(ctx, noteID, userEmail)
	if err != nil {
		return nil, fmt.Errorf("find note: %w", err)
	}
	return n, nil
}

func (s *service) UpdateNote(ctx context.Context, params UpdateParams) (*Note, error) {
	if err := checkID(params.ID); err != nil {
		return nil, err
	}

	params.Title = strings.TrimSpace(params.Title)

	n, err := s.repo.Update(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

func (s *service) DeleteNote(ctx context.Context, noteID, userEmail string) error {
	if err := checkID(noteID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, noteID, userEmail); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// checkID reports a malformed id as a missing note so it never reaches the database.
func checkID(noteID string) error {
	if _, err := uuid.Parse(noteID); err != nil {
		return fmt.Errorf("note id %q: %w", noteID, ErrNotFound)
	}
	return nil
}
