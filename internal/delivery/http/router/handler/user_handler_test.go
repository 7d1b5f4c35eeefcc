package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"userhub/config"
	httpmiddleware "userhub/internal/delivery/http/middleware"
	httpvalidator "userhub/internal/delivery/http/validator"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/errors"
	"userhub/internal/infra/auth"
	mockUsecase "userhub/internal/mocks/usecase"
	"userhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase, *echo.Echo) {
	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewUserHandler(uc, logger)

	e := echo.New()
	errorMiddleware := httpmiddleware.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	e.Validator = httpvalidator.New()

	return h, uc, e
}

func TestUserHandler_CreateUser(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{Name: "Ann", Email: "ann@x.com", Password: "pw123"}).
		Return(&entity.User{ID: 1, Name: "Ann", Email: "ann@x.com", PasswordHash: "hashed"}, nil)

	body := `{"name":"Ann","email":"ann@x.com","password":"pw123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, map[string]any{"id": float64(1)}, envelope.Data)
	// The credential never appears in the payload.
	assert.NotContains(t, rec.Body.String(), "pw123")
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestUserHandler_CreateUser_ConflictStatus(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		CreateUser(mock.Anything, mock.AnythingOfType("*usecase.CreateUserInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	body := `{"name":"Ann","email":"ann@x.com","password":"pw123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateUser(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestUserHandler_ListUsers(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: 1, Name: "Ann", Email: "ann@x.com", PasswordHash: "hash-a"},
		{ID: 2, Name: "Bob", Email: "bob@x.com", PasswordHash: "hash-b"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann@x.com")
	assert.Contains(t, rec.Body.String(), "bob@x.com")
	assert.NotContains(t, rec.Body.String(), "hash-a")
}

func TestUserHandler_GetUser(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().GetUser(mock.Anything, uint(1)).
		Return(&entity.User{ID: 1, Name: "Ann", Email: "ann@x.com", PasswordHash: "hashed"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.GetUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ann"`)
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestUserHandler_GetUser_NotFoundStatus(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().GetUser(mock.Anything, uint(99)).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed"))

	req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.GetUser(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestUserHandler_UpdateUser(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		UpdateUser(mock.Anything, uint(1), &usecase.UpdateUserInput{Name: "Ann B.", Email: "ann.b@x.com", Password: "pw456"}).
		Return(&entity.User{ID: 1, Name: "Ann B.", Email: "ann.b@x.com", PasswordHash: "new_hash"}, nil)

	body := `{"name":"Ann B.","email":"ann.b@x.com","password":"pw456"}`
	req := httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann.b@x.com")
	assert.NotContains(t, rec.Body.String(), "new_hash")
	assert.NotContains(t, rec.Body.String(), "pw456")
}

func TestUserHandler_DeleteUser(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().DeleteUser(mock.Anything, uint(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeleteUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Login(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		Authenticate(mock.Anything, &usecase.AuthenticateInput{Email: "ann@x.com", Password: "pw123"}).
		Return(&usecase.AuthenticateOutput{
			User:        &entity.User{ID: 1, Name: "Ann", Email: "ann@x.com", PasswordHash: "hashed"},
			AccessToken: "signed-token",
		}, nil)

	body := `{"email":"ann@x.com","password":"pw123"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestUserHandler_Login_InvalidCredentialsStatus(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.AuthenticateInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed"))

	body := `{"email":"ann@x.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_StoreFailureHidesInternals(t *testing.T) {
	h, uc, e := newTestHandler(t)

	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "failed to list users")
	uc.EXPECT().ListUsers(mock.Anything).Return(nil, storeErr)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListUsers(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestUserHandler_CreateUser_MissingFieldRejectedAtBoundary(t *testing.T) {
	h, _, e := newTestHandler(t)

	// No expectation is set on the usecase: the request must die in validation.
	body := `{"name":"Ann","password":"pw123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_UpdateUser_MissingFieldRejectedAtBoundary(t *testing.T) {
	h, _, e := newTestHandler(t)

	body := `{"name":"Ann","email":"ann@x.com"}`
	req := httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Login_MissingFieldRejectedAtBoundary(t *testing.T) {
	h, _, e := newTestHandler(t)

	body := `{"email":"ann@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

// newMeTestServer wires the /users/me route through the real JWT service and
// the auth middleware so requests exercise the full bearer-token path.
func newMeTestServer(t *testing.T, accessTokenTTL time.Duration) (*echo.Echo, *mockUsecase.MockUserUsecase, func(userID uint) string) {
	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewUserHandler(uc, logger)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: accessTokenTTL}
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	e := echo.New()
	errorMiddleware := httpmiddleware.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	authMiddleware := httpmiddleware.NewAuthMiddleware(tokenSvc)
	e.GET("/users/me", h.Me, authMiddleware.Authenticate)

	issueToken := func(userID uint) string {
		token, err := tokenSvc.GenerateToken(userID)
		require.NoError(t, err)

		return token
	}

	return e, uc, issueToken
}

func TestUserHandler_Me(t *testing.T) {
	e, uc, issueToken := newMeTestServer(t, time.Minute)

	uc.EXPECT().GetUser(mock.Anything, uint(7)).
		Return(&entity.User{ID: 7, Name: "Ann", Email: "ann@x.com", PasswordHash: "hashed"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(7))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann@x.com")
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestUserHandler_Me_MissingToken(t *testing.T) {
	e, _, _ := newMeTestServer(t, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestUserHandler_Me_MalformedToken(t *testing.T) {
	e, _, issueToken := newMeTestServer(t, time.Minute)

	// A valid token without the Bearer prefix is still rejected.
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", issueToken(7))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestUserHandler_Me_ExpiredToken(t *testing.T) {
	e, _, issueToken := newMeTestServer(t, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(7))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
