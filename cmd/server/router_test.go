package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"personnel/internal/jwttoken"
	"personnel/internal/personnel/handler/mocks"
	"personnel/internal/personnel/models"
	"personnel/internal/platform/metrics"
)

type staticRevocations map[string]bool

func (s staticRevocations) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	return s[jti], nil
}

func newTestRouter(t *testing.T, health func(context.Context) error, revoked staticRevocations) (http.Handler, *mocks.MockService, *jwttoken.JWTService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	tokens := jwttoken.NewJWTService("router-test-key", "personnel", "personnel-api")

	router := newRouter(routerDeps{
		service:        service,
		validator:      jwttoken.NewJWTServiceAdapter(tokens),
		revocations:    revoked,
		metrics:        metrics.New(prometheus.NewRegistry()),
		health:         health,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		requestTimeout: time.Second,
	})
	return router, service, tokens
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthzIsOpen(t *testing.T) {
	router, _, _ := newTestRouter(t, func(context.Context) error { return nil }, nil)
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestHealthzReportsUnavailable(t *testing.T) {
	router, _, _ := newTestRouter(t, func(context.Context) error { return errors.New("database unavailable") }, nil)
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestMetricsIsOpen(t *testing.T) {
	router, _, _ := newTestRouter(t, func(context.Context) error { return nil }, nil)
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPersonnelRoutesRequireBearerToken(t *testing.T) {
	router, _, _ := newTestRouter(t, func(context.Context) error { return nil }, nil)
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/units", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthorized")
}

func TestPersonnelRoutesWithValidToken(t *testing.T) {
	router, service, tokens := newTestRouter(t, func(context.Context) error { return nil }, staticRevocations{})
	token, _, err := tokens.GenerateAccessToken("clerk-1", time.Minute)
	require.NoError(t, err)

	service.EXPECT().
		ListUnits(gomock.Any(), gomock.Any()).
		Return(&models.PageResult[*models.Unit]{Data: []*models.Unit{}, Count: 0}, nil)

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := serve(router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"count":0}`, rr.Body.String())
}

func TestRevokedTokenIsRejected(t *testing.T) {
	revoked := staticRevocations{}
	router, _, tokens := newTestRouter(t, func(context.Context) error { return nil }, revoked)
	token, claims, err := tokens.GenerateAccessToken("clerk-1", time.Minute)
	require.NoError(t, err)
	revoked[claims.ID] = true

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := serve(router, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "revoked")
}
