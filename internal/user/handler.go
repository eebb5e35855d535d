package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
)

var ErrNoUserInContext = errors.New("user: no authenticated user in context")

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewProfileResponse(u *User) *ProfileResponse {
	return &ProfileResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// Me responds with the profile of the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := FromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, ErrNoUserInContext, message.InvalidUser, nil)
		return
	}

	u, err := h.svc.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, NewProfileResponse(u))
}
