package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/security"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
)

const maskChar = "*"

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterUserRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	MobileNumber    string `json:"mobile_number,omitempty" validate:"omitempty,e164"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (r *RegisterUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("email", maskChar),
		slog.String("mobile_number", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

type RegisterUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := RegisterUserParams{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     req.Password,
	}
	u, err := h.svc.RegisterUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondConflict(w, err, message.UserExists, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.Registered
	data := &RegisterUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	web.RespondCreated(w, &msg, data)
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *UserLoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type UserLoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UserLoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := LoginUserParams(req)
	tokens, err := h.svc.LoginUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.LoggedIn
	data := &UserLoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    TokenTypeBearer,
	}
	web.RespondOK(w, &msg, data)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (r *RefreshTokenRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("refresh_token", maskChar))
}

type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RefreshToken exchanges a refresh token for a new access token. Every failure is a 401.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RefreshTokenRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	accessToken, err := h.svc.RefreshToken(req.RefreshToken)
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	msg := message.TokenRefreshed
	data := &RefreshTokenResponse{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
	}
	web.RespondOK(w, &msg, data)
}

type CheckTokenResponse struct {
	Status TokenStatus `json:"status"`
}

var statusMessages = map[TokenStatus]string{
	TokenValid:   "The token is still valid.",
	TokenExpired: "The token has expired.",
	TokenInvalid: "The token is invalid.",
}

// CheckToken reports the status of the bearer token with 200 whatever the outcome.
// Only a missing or malformed Authorization header is a 401.
func (h *Handler) CheckToken(w http.ResponseWriter, r *http.Request) {
	token, err := security.ExtractBearerToken(r)
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	status := h.svc.CheckToken(token)
	msg := statusMessages[status]
	web.RespondOK(w, &msg, &CheckTokenResponse{Status: status})
}

// LogoutUser is stateless: issued tokens stay valid until they expire.
func (h *Handler) LogoutUser(w http.ResponseWriter, _ *http.Request) {
	msg := message.LoggedOut
	web.RespondOK(w, &msg, &struct{}{})
}
