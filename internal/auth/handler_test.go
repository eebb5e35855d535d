package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/notekit/internal/auth"
	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
	"github.com/ferdiebergado/notekit/internal/platform/validation"
	"github.com/ferdiebergado/notekit/internal/user"
)

func TestHandler_RegisterUser(t *testing.T) {
	t.Parallel()

	req := auth.RegisterUserRequest{
		Name:            "Juan",
		Email:           testEmail,
		Password:        testPass,
		PasswordConfirm: testPass,
	}

	tests := []struct {
		name           string
		params         *auth.RegisterUserRequest
		registerFunc   func(context.Context, auth.RegisterUserParams) (user.User, error)
		wantStatusCode int
		wantMsg        string
	}{
		{
			name:   "Registered",
			params: &req,
			registerFunc: func(_ context.Context, params auth.RegisterUserParams) (user.User, error) {
				return user.User{ID: "1", Name: params.Name, Email: params.Email}, nil
			},
			wantStatusCode: http.StatusCreated,
			wantMsg:        message.Registered,
		},
		{
			name:   "User exists",
			params: &req,
			registerFunc: func(_ context.Context, _ auth.RegisterUserParams) (user.User, error) {
				return user.User{}, auth.ErrUserExists
			},
			wantStatusCode: http.StatusConflict,
			wantMsg:        message.UserExists,
		},
		{
			name:   "Service fails",
			params: &req,
			registerFunc: func(_ context.Context, _ auth.RegisterUserParams) (user.User, error) {
				return user.User{}, errors.New("db down")
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "Missing params",
			wantStatusCode: http.StatusBadRequest,
			wantMsg:        message.InvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(&auth.StubService{RegisterUserFunc: tt.registerFunc})

			ctx := context.Background()
			if tt.params != nil {
				ctx = web.NewContextWithParams(ctx, *tt.params)
			}
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/auth/register", http.NoBody)
			rec := httptest.NewRecorder()

			h.RegisterUser(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}

			web.AssertContentType(t, res)

			if tt.wantStatusCode != http.StatusCreated {
				body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
				if tt.wantMsg != "" && body.Message != tt.wantMsg {
					t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
				}
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[auth.RegisterUserResponse]](t, res)
			if body.Message != tt.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
			}
			if body.Data.ID != "1" || body.Data.Email != testEmail {
				t.Errorf("body.Data = %+v, want id 1 and email %q", body.Data, testEmail)
			}
		})
	}
}

func TestRegisterUserRequest_Validation(t *testing.T) {
	t.Parallel()

	longPass := strings.Repeat("p", 128)

	tests := []struct {
		name      string
		password  string
		confirm   string
		wantField string
	}{
		{"Long passphrase", longPass, longPass, ""},
		{"Eight characters", "12345678", "12345678", ""},
		{"Too short", "1234567", "1234567", "password"},
		{"Confirmation differs", longPass, longPass + "!", "password_confirm"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := auth.RegisterUserRequest{
				Name:            "Juan",
				Email:           testEmail,
				Password:        tc.password,
				PasswordConfirm: tc.confirm,
			}

			errs := validation.NewGoPlaygroundValidator().ValidateStruct(req)
			if tc.wantField == "" {
				if errs != nil {
					t.Errorf("ValidateStruct() = %v, want: nil", errs)
				}
				return
			}

			if _, ok := errs[tc.wantField]; !ok || len(errs) != 1 {
				t.Errorf("ValidateStruct() = %v, want a single error for %q", errs, tc.wantField)
			}
		})
	}
}

func TestHandler_LoginUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		loginFunc      func(context.Context, auth.LoginUserParams) (*auth.TokenPair, error)
		wantStatusCode int
		wantMsg        string
	}{
		{
			name: "Logged in",
			loginFunc: func(_ context.Context, _ auth.LoginUserParams) (*auth.TokenPair, error) {
				return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
			},
			wantStatusCode: http.StatusOK,
			wantMsg:        message.LoggedIn,
		},
		{
			name: "Invalid credentials",
			loginFunc: func(_ context.Context, _ auth.LoginUserParams) (*auth.TokenPair, error) {
				return nil, auth.ErrInvalidCredentials
			},
			wantStatusCode: http.StatusUnauthorized,
			wantMsg:        message.InvalidUser,
		},
		{
			name: "Token signing fails",
			loginFunc: func(_ context.Context, _ auth.LoginUserParams) (*auth.TokenPair, error) {
				return nil, errors.New("sign failed")
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(&auth.StubService{LoginUserFunc: tt.loginFunc})

			params := auth.UserLoginRequest{Email: testEmail, Password: testPass}
			ctx := web.NewContextWithParams(context.Background(), params)
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/auth/login", http.NoBody)
			rec := httptest.NewRecorder()

			h.LoginUser(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}

			if tt.wantStatusCode != http.StatusOK {
				body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
				if tt.wantMsg != "" && body.Message != tt.wantMsg {
					t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
				}
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[auth.UserLoginResponse]](t, res)
			want := auth.UserLoginResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: auth.TokenTypeBearer}
			if body.Data != want {
				t.Errorf("body.Data = %+v, want: %+v", body.Data, want)
			}
		})
	}
}

func TestHandler_RefreshToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		refreshFunc    func(string) (string, error)
		wantStatusCode int
	}{
		{"Refreshed", func(token string) (string, error) {
			return "new-access-for-" + token, nil
		}, http.StatusOK},
		{"Rejected", func(_ string) (string, error) {
			return "", errors.New("token expired")
		}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(&auth.StubService{RefreshTokenFunc: tt.refreshFunc})

			ctx := web.NewContextWithParams(context.Background(), auth.RefreshTokenRequest{RefreshToken: "r1"})
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/auth/refresh", http.NoBody)
			rec := httptest.NewRecorder()

			h.RefreshToken(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}

			if tt.wantStatusCode != http.StatusOK {
				if got := res.Header.Get("WWW-Authenticate"); got == "" {
					t.Error("WWW-Authenticate header is missing")
				}
				body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
				if body.Message != message.InvalidToken {
					t.Errorf("body.Message = %q, want: %q", body.Message, message.InvalidToken)
				}
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[auth.RefreshTokenResponse]](t, res)
			if body.Data.AccessToken != "new-access-for-r1" {
				t.Errorf("body.Data.AccessToken = %q, want: %q", body.Data.AccessToken, "new-access-for-r1")
			}
			if body.Data.TokenType != auth.TokenTypeBearer {
				t.Errorf("body.Data.TokenType = %q, want: %q", body.Data.TokenType, auth.TokenTypeBearer)
			}
		})
	}
}

func TestHandler_CheckToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		status         auth.TokenStatus
		wantStatusCode int
	}{
		{"Valid token", "Bearer good", auth.TokenValid, http.StatusOK},
		{"Expired token", "Bearer old", auth.TokenExpired, http.StatusOK},
		{"Invalid token", "Bearer bad", auth.TokenInvalid, http.StatusOK},
		{"Missing header", "", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic dXNlcjpwYXNz", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(&auth.StubService{
				CheckTokenFunc: func(_ string) auth.TokenStatus {
					return tt.status
				},
			})

			r := httptest.NewRequest(http.MethodGet, "/auth/check", http.NoBody)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			h.CheckToken(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}

			if tt.wantStatusCode != http.StatusOK {
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[auth.CheckTokenResponse]](t, res)
			if body.Data.Status != tt.status {
				t.Errorf("body.Data.Status = %q, want: %q", body.Data.Status, tt.status)
			}
		})
	}
}

func TestHandler_LogoutUser(t *testing.T) {
	t.Parallel()

	h := auth.NewHandler(&auth.StubService{})

	r := httptest.NewRequest(http.MethodPost, "/auth/logout", http.NoBody)
	rec := httptest.NewRecorder()

	h.LogoutUser(rec, r)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}

	body := web.DecodeJSONResponse[web.OKResponse[struct{}]](t, res)
	if body.Message != message.LoggedOut {
		t.Errorf("body.Message = %q, want: %q", body.Message, message.LoggedOut)
	}
}
