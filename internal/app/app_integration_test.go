//go:build integration

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/notekit/internal/app"
	"github.com/ferdiebergado/notekit/internal/auth"
	"github.com/ferdiebergado/notekit/internal/config"
	"github.com/ferdiebergado/notekit/internal/note"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/google/uuid"
)

func setupApp(t *testing.T) *app.App {
	t.Helper()

	if err := env.Load("../../.env.testing"); err != nil {
		t.Fatalf("load env: %v", err)
	}

	cfg, err := config.Load("../../config.json")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	conn, err := db.NewPostgresDB(t.Context(), cfg.DB)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	provider, err := app.NewProvider(cfg, conn)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	return app.New(cfg, provider, app.Middlewares(cfg))
}

type client struct {
	t       *testing.T
	baseURL string
	token   string
}

func (c *client) do(method, path string, payload any) *http.Response {
	c.t.Helper()

	var body io.Reader = http.NoBody
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			c.t.Fatal(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(c.t.Context(), method, c.baseURL+path, body)
	if err != nil {
		c.t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set(web.HeaderContentType, web.MimeJSON)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}

	c.t.Cleanup(func() {
		res.Body.Close()
	})

	return res
}

func expectStatus(t *testing.T, res *http.Response, want int) {
	t.Helper()

	if res.StatusCode != want {
		t.Fatalf("%s %s = %d, want: %d", res.Request.Method, res.Request.URL.Path, res.StatusCode, want)
	}
}

func TestIntegrationApp_NoteLifecycle(t *testing.T) {
	srv := httptest.NewServer(setupApp(t).Handler())
	defer srv.Close()

	c := &client{t: t, baseURL: srv.URL}
	email := fmt.Sprintf("user-%s@example.com", uuid.NewString())
	password := "correct horse battery"

	res := c.do(http.MethodPost, "/auth/register", auth.RegisterUserRequest{
		Name: "Juan", Email: email, Password: password, PasswordConfirm: password,
	})
	expectStatus(t, res, http.StatusCreated)

	res = c.do(http.MethodPost, "/auth/register", auth.RegisterUserRequest{
		Name: "Juan", Email: email, Password: password, PasswordConfirm: password,
	})
	expectStatus(t, res, http.StatusConflict)

	res = c.do(http.MethodPost, "/auth/login", auth.UserLoginRequest{Email: email, Password: "wrong password"})
	expectStatus(t, res, http.StatusUnauthorized)

	res = c.do(http.MethodPost, "/auth/login", auth.UserLoginRequest{Email: email, Password: password})
	expectStatus(t, res, http.StatusOK)
	login := web.DecodeJSONResponse[web.OKResponse[auth.UserLoginResponse]](t, res)

	c.token = login.Data.AccessToken

	res = c.do(http.MethodGet, "/users/me", nil)
	expectStatus(t, res, http.StatusOK)

	res = c.do(http.MethodPost, "/notes/", note.NoteRequest{Title: "Groceries", Content: "eggs"})
	expectStatus(t, res, http.StatusCreated)
	created := web.DecodeJSONResponse[web.OKResponse[note.NoteResponse]](t, res)

	notePath := "/notes/" + created.Data.ID

	res = c.do(http.MethodPut, notePath, note.NoteRequest{Title: "Groceries", Content: "eggs, milk"})
	expectStatus(t, res, http.StatusOK)

	res = c.do(http.MethodGet, "/notes/", nil)
	expectStatus(t, res, http.StatusOK)
	list := web.DecodeJSONResponse[web.OKResponse[[]note.NoteResponse]](t, res)
	if len(list.Data) != 1 || list.Data[0].Content != "eggs, milk" {
		t.Errorf("list.Data = %+v, want the updated note", list.Data)
	}

	intruder := &client{t: t, baseURL: srv.URL}
	other := fmt.Sprintf("intruder-%s@example.com", uuid.NewString())
	res = intruder.do(http.MethodPost, "/auth/register", auth.RegisterUserRequest{
		Name: "Pedro", Email: other, Password: password, PasswordConfirm: password,
	})
	expectStatus(t, res, http.StatusCreated)
	res = intruder.do(http.MethodPost, "/auth/login", auth.UserLoginRequest{Email: other, Password: password})
	expectStatus(t, res, http.StatusOK)
	intruder.token = web.DecodeJSONResponse[web.OKResponse[auth.UserLoginResponse]](t, res).Data.AccessToken

	res = intruder.do(http.MethodGet, notePath, nil)
	expectStatus(t, res, http.StatusNotFound)

	res = intruder.do(http.MethodDelete, notePath, nil)
	expectStatus(t, res, http.StatusNotFound)

	res = c.do(http.MethodDelete, notePath, nil)
	expectStatus(t, res, http.StatusOK)

	res = c.do(http.MethodGet, notePath, nil)
	expectStatus(t, res, http.StatusNotFound)

	c.token = ""
	res = c.do(http.MethodPost, "/auth/refresh", auth.RefreshTokenRequest{RefreshToken: login.Data.RefreshToken})
	expectStatus(t, res, http.StatusOK)
	refreshed := web.DecodeJSONResponse[web.OKResponse[auth.RefreshTokenResponse]](t, res)

	c.token = refreshed.Data.AccessToken
	res = c.do(http.MethodGet, "/auth/check", nil)
	expectStatus(t, res, http.StatusOK)
	check := web.DecodeJSONResponse[web.OKResponse[auth.CheckTokenResponse]](t, res)
	if check.Data.Status != auth.TokenValid {
		t.Errorf("check.Data.Status = %q, want: %q", check.Data.Status, auth.TokenValid)
	}
}

func TestIntegrationApp_StartAndShutdown(t *testing.T) {
	api := setupApp(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- api.Start(ctx)
	}()

	waitForPort(t, api.Addr())

	cancel()

	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.Errorf("api.Start() = %v, want: nil", err)
	}

	if err := api.Shutdown(); err != nil {
		t.Errorf("api.Shutdown() = %v, want: nil", err)
	}
}

func waitForPort(t *testing.T, addr string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", "127.0.0.1"+addr, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server did not listen on %s", addr)
}
