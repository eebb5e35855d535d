package note

import (
	"context"
	"errors"
)

type StubService struct {
	CreateNoteFunc func(ctx context.Context, params CreateParams) (Note, error)
	ListNotesFunc  func(ctx context.Context, userEmail string) ([]Note, error)
	FindNoteFunc   func(ctx context.Context, noteID, userEmail string) (*Note, error)
	UpdateNoteFunc func(ctx context.Context, params UpdateParams) (*Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID, userEmail string) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) CreateNote(ctx context.Context, params CreateParams) (Note, error) {
	if s.CreateNoteFunc == nil {
		return Note{}, errors.New("CreateNote() not implemented by stub")
	}
	return s.CreateNoteFunc(ctx, params)
}

func (s *StubService) ListNotes(ctx context.Context, userEmail string) ([]Note, error) {
	if s.ListNotesFunc == nil {
		return nil, errors.New("ListNotes() not implemented by stub")
	}
	return s.ListNotesFunc(ctx, userEmail)
}

func (s *StubService) FindNote(ctx context.Context, noteID, userEmail string) (*Note, error) {
	if s.FindNoteFunc == nil {
		return nil, errors.New("FindNote() not implemented by stub")
	}
	return s.FindNoteFunc(ctx, noteID, userEmail)
}

func (s *StubService) UpdateNote(ctx context.Context, params UpdateParams) (*Note, error) {
	if s.UpdateNoteFunc == nil {
		return nil, errors.New("UpdateNote() not implemented by stub")
	}
	return s.UpdateNoteFunc(ctx, params)
}

func (s *StubService) DeleteNote(ctx context.Context, noteID, userEmail string) error {
	if s.DeleteNoteFunc == nil {
		return errors.New("DeleteNote() not implemented by stub")
	}
	return s.DeleteNoteFunc(ctx, noteID, userEmail)
}

type StubRepo struct {
	CreateFunc func(ctx context.Context, params CreateParams) (Note, error)
	ListFunc   func(ctx context.Context, userEmail string) ([]Note, error)
	FindFunc   func(ctx context.Context, noteID, userEmail string) (*Note, error)
	UpdateFunc func(ctx context.Context, params UpdateParams) (*Note, error)
	DeleteFunc func(ctx context.Context, noteID, userEmail string) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Note, error) {
	if r.CreateFunc == nil {
		return Note{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context, userEmail string) ([]Note, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, userEmail)
}

func (r *StubRepo) Find(ctx context.Context, noteID, userEmail string) (*Note, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, noteID, userEmail)
}

func (r *StubRepo) Update(ctx context.Context, params UpdateParams) (*Note, error) {
	if r.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, params)
}

func (r *StubRepo) Delete(ctx context.Context, noteID, userEmail string) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, noteID, userEmail)
}
