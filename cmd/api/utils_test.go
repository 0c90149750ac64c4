package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gather/internal/auth"
	"gather/internal/ratelimiter"
	"gather/internal/store"

	"go.uber.org/zap"
)

func newTestApplication(t *testing.T, st store.Storage) *application {
	t.Helper()

	return &application{
		config: config{
			addr: ":0",
			env:  "test",
			auth: authConfig{
				basic: basicConfig{user: "admin", pass: "admin"},
			},
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		store:         st,
		logger:        zap.NewNop().Sugar(),
		authenticator: auth.NewJWTAuthenticator("test-secret", "test-refresh-secret", "gather", "gather", time.Hour, time.Hour),
	}
}

func (app *application) bearerFor(t *testing.T, userID int64) string {
	t.Helper()

	accessToken, _, err := app.authenticator.GenerateTokens(userID)
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}
	return "Bearer " + accessToken
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, want, got int) {
	t.Helper()
	if want != got {
		t.Errorf("expected response code %d, got %d", want, got)
	}
}
