package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimart/minimart/common/auth"
)

type stubCertify struct {
	upResp  *SignResponse
	upErr   error
	inResp  *SignResponse
	inErr   error
	lastReq SignRequest
}

func (s *stubCertify) SignUp(ctx context.Context, req SignRequest) (*SignResponse, error) {
	s.lastReq = req
	if s.upErr != nil {
		return nil, s.upErr
	}
	return s.upResp, nil
}

func (s *stubCertify) SignIn(ctx context.Context, req SignRequest) (*SignResponse, error) {
	s.lastReq = req
	if s.inErr != nil {
		return nil, s.inErr
	}
	return s.inResp, nil
}

func newTestMux(t *testing.T, svc CertifyService) (*http.ServeMux, *auth.TokenManager) {
	t.Helper()

	tokenManager := auth.NewTokenManager([]byte("test-secret"))
	mux := http.NewServeMux()
	NewHTTPHandler(svc, newTestLogger()).registerRoutes(mux, auth.Middleware(tokenManager))
	return mux, tokenManager
}

func TestHealthCheck(t *testing.T) {
	mux, _ := newTestMux(t, &stubCertify{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health_check", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Certify server health ok.")
}

func TestSignUpReturnsUIDAndToken(t *testing.T) {
	userID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	svc := &stubCertify{upResp: &SignResponse{
		UID:   userID,
		Token: TokenPayload{AccessToken: "signed-token", TokenType: "Bearer"},
	}}
	mux, _ := newTestMux(t, svc)

	body := `{"email":"jo@example.com","password":"hunter22"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sign_up", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"uid":"11111111-2222-3333-4444-555555555555","token":{"access_token":"signed-token","token_type":"Bearer"}}`,
		rec.Body.String())
	assert.Equal(t, "jo@example.com", svc.lastReq.Email)
}

func TestSignUpDuplicateEmailBody(t *testing.T) {
	mux, _ := newTestMux(t, &stubCertify{upErr: ErrDuplicateEmail})

	body := `{"email":"jo@example.com","password":"hunter22"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sign_up", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "DuplicateUserEmail", strings.TrimSpace(rec.Body.String()))
}

func TestSignUpRejectsBadRequests(t *testing.T) {
	mux, _ := newTestMux(t, &stubCertify{upErr: ErrValidation})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sign_up", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sign_up", strings.NewReader(`{"email":"bad","password":"x"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignInWrongCredentials(t *testing.T) {
	mux, _ := newTestMux(t, &stubCertify{inErr: ErrInvalidCredentials})

	body := `{"email":"jo@example.com","password":"wrong-pass"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sign_in", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignInReturnsToken(t *testing.T) {
	userID := uuid.New()
	svc := &stubCertify{inResp: &SignResponse{
		UID:   userID,
		Token: TokenPayload{AccessToken: "signed-token", TokenType: "Bearer"},
	}}
	mux, _ := newTestMux(t, svc)

	body := `{"email":"jo@example.com","password":"hunter22"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sign_in", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestVerifyRequiresToken(t *testing.T) {
	mux, tokenManager := newTestMux(t, &stubCertify{})

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(method, "/verify", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
	}

	token, err := tokenManager.Sign(uuid.New())
	require.NoError(t, err)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, "/verify", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, method)
		assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()), method)
	}
}
