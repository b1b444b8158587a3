// internal/auth/service_test.go
package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/config"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
	"github.com/Thangttq233/FYP2025-FE/internal/session"
)

func newTestService(t *testing.T, handler http.Handler) (*Service, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.NewStore()

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := api.NewClient(config.APIConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5,
		RateLimit:      1000,
		RateBurst:      1000,
	}, sess, log)
	require.NoError(t, err)

	return NewService(client, sess, log), sess
}

func TestLoginInitializesSessionWithoutBearer(t *testing.T) {
	svc, sess := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		// The login call never carries a bearer header.
		assert.Empty(t, r.Header.Get("Authorization"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req.Email)

		json.NewEncoder(w).Encode(LoginResponse{
			Token: "fresh-token",
			User:  models.User{ID: "u1", Email: req.Email, Role: models.UserRoleCustomer},
		})
	}))

	user, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "fresh-token", sess.Token())
}

func TestLoginValidatesLocally(t *testing.T) {
	var calls atomic.Int32
	svc, sess := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := svc.Login(context.Background(), "not-an-email", "secret")
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), "user@example.com", "")
	assert.Error(t, err)

	assert.EqualValues(t, 0, calls.Load())
	assert.False(t, sess.Authenticated())
}

func TestLogoutClearsSession(t *testing.T) {
	svc, sess := newTestService(t, http.NotFoundHandler())
	sess.Init("token", models.User{ID: "u1"})

	svc.Logout()
	assert.False(t, sess.Authenticated())
}
