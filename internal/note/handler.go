package note

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
	"github.com/ferdiebergado/notekit/internal/user"
)

const pathID = "id"

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// NoteRequest is the payload for both creating and updating a note.
type NoteRequest struct {
	Title   string `json:"title" validate:"notblank,max=255"`
	Content string `json:"content" validate:"required"`
}

func (r *NoteRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", r.Title),
		slog.Int("content_length", len(r.Content)),
	)
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNoteResponse(n *Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserEmail: n.UserEmail,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	email, ok := user.FromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, user.ErrNoUserInContext, message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[NoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateParams{
		Title:     req.Title,
		Content:   req.Content,
		UserEmail: email,
	}
	n, err := h.svc.CreateNote(r.Context(), params)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.NoteCreated
	data := NewNoteResponse(&n)
	web.RespondCreated(w, &msg, &data)
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	email, ok := user.FromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, user.ErrNoUserInContext, message.InvalidToken, nil)
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), email)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		data = append(data, NewNoteResponse(&notes[i]))
	}

	msg := message.NotesFetched
	web.RespondOK(w, &msg, &data)
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	email, ok := user.FromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, user.ErrNoUserInContext, message.InvalidToken, nil)
		return
	}

	n, err := h.svc.FindNote(r.Context(), r.PathValue(pathID), email)
	if err != nil {
		respondNoteError(w, err)
		return
	}

	data := NewNoteResponse(n)
	web.RespondOK(w, nil, &data)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	email, ok := user.FromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, user.ErrNoUserInContext, message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[NoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := UpdateParams{
		ID:        r.PathValue(pathID),
		Title:     req.Title,
		Content:   req.Content,
		UserEmail: email,
	}
	n, err := h.svc.UpdateNote(r.Context(), params)
	if err != nil {
		respondNoteError(w, err)
		return
	}

	msg := message.NoteUpdated
	data := NewNoteResponse(n)
	web.RespondOK(w, &msg, &data)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	email, ok := user.FromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, user.ErrNoUserInContext, message.InvalidToken, nil)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), r.PathValue(pathID), email); err != nil {
		respondNoteError(w, err)
		return
	}

	msg := message.NoteDeleted
	web.RespondOK(w, &msg, &struct{}{})
}

// respondNoteError hides notes owned by other users behind the same 404 as missing ones.
func respondNoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		web.RespondNotFound(w, err, message.NoteNotFound, nil)
		return
	}
	web.RespondInternalServerError(w, err)
}
