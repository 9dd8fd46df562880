package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altanzam/internal/adapter/api"
	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
	"altanzam/internal/adapter/repository/memory"
	"altanzam/internal/domain/entity"
	"altanzam/internal/infrastructure/websocket"
	"altanzam/internal/usecase"
	"altanzam/pkg/response"
)

// staticVerifier treats the bearer token as the uid; "admin" gets the admin role.
type staticVerifier struct{}

func (staticVerifier) VerifyToken(ctx context.Context, idToken string) (entity.Session, error) {
	if idToken == "bad" {
		return entity.Session{}, fmt.Errorf("invalid token")
	}
	role := entity.RoleUser
	if idToken == "admin" {
		role = entity.RoleAdmin
	}
	return entity.Session{UID: idToken, Email: idToken + "@example.com", Role: role}, nil
}

type noIdentity struct{}

func (noIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "", fmt.Errorf("not available")
}

func (noIdentity) SignInWithEmailPassword(ctx context.Context, email, password string) (*usecase.AuthToken, error) {
	return nil, fmt.Errorf("not available")
}

func (noIdentity) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (noIdentity) UpdateUserProfile(ctx context.Context, uid string, displayName, photoURL *string) error {
	return nil
}

func newTestServer(t *testing.T, rate string) *echo.Echo {
	t.Helper()

	store := memory.NewStore()
	store.PutItem(&entity.Item{
		ID:           "translator-1",
		CategoryName: "translators",
		CreatedAt:    time.Now(),
		Data: map[string]interface{}{
			"name":        "Bold Translator",
			"city":        "Beijing",
			"phoneNumber": "+86 138 0000 0000",
			"wechatId":    "bold_wx",
		},
	})
	store.PutCity(&entity.City{ID: "beijing", Name: "Beijing", Order: 1})

	itemRepo := memory.NewItemRepository(store)
	userRepo := memory.NewUserRepository(store)
	savedRepo := memory.NewSavedItemRepository(store)
	hub := websocket.NewHub()
	notifier := usecase.NewNotifier(userRepo, hub, nil)

	catalog := usecase.NewCatalogUseCase(itemRepo)
	handler.Setup(
		usecase.NewAuthUseCase(userRepo, noIdentity{}),
		usecase.NewUserUseCase(userRepo, noIdentity{}, nil, 5*1024*1024),
		catalog,
		usecase.NewReviewUseCase(memory.NewReviewRepository(store)),
		usecase.NewOrderUseCase(memory.NewOrderRepository(store), itemRepo, userRepo, notifier),
		usecase.NewNotificationUseCase(memory.NewNotificationRepository(store), notifier),
		usecase.NewSavedItemUseCase(savedRepo, catalog, notifier),
		usecase.NewReferenceUseCase(memory.NewReferenceRepository(store), nil, time.Minute),
	)
	handler.SetupHealthHandler("memory")
	handler.SetupWebSocketHandler(hub, []string{"*"})

	limiter, err := middleware.NewRateLimiter(rate)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	Setup(e, middleware.NewAuthMiddleware(staticVerifier{}), middleware.NewAdminMiddleware(userRepo), limiter)
	return e
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")
}

func TestSubmitReviewRequiresSignIn(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodPost, "/v1/services/translators/translator-1/reviews", "", `{"rating":8}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "AUTH_REQUIRED", resp.Error.Code)
}

func TestSubmitReviewValidatesRating(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodPost, "/v1/services/translators/translator-1/reviews", "u1", `{"rating":11}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "Please select a rating from 1 to 10", resp.Error.Message)
}

func TestSubmitReviewUpdatesItem(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodPost, "/v1/services/translators/translator-1/reviews", "u1", `{"rating":8,"comment":"great"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/v1/services/translators/translator-1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			AverageRating *float64 `json:"average_rating"`
			ReviewCount   int      `json:"review_count"`
			Saved         bool     `json:"saved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data.AverageRating)
	assert.Equal(t, 8.0, *body.Data.AverageRating)
	assert.Equal(t, 1, body.Data.ReviewCount)
	assert.False(t, body.Data.Saved)

	rec = do(e, http.MethodGet, "/v1/services/translators/translator-1/reviews/me", "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/v1/services/hotels/translator-1/reviews/me", "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderRevealsContact(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodPost, "/v1/services/translators/translator-1/orders", "u1", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "bold_wx")

	rec = do(e, http.MethodGet, "/v1/orders", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec = do(e, http.MethodGet, "/v1/notifications", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unread_count":1`)

	rec = do(e, http.MethodGet, "/v1/users/me", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points":15`)
}

func TestWriteRateLimit(t *testing.T) {
	e := newTestServer(t, "1-M")

	rec := do(e, http.MethodPost, "/v1/services/translators/translator-1/reviews", "u1", `{"rating":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/v1/services/translators/translator-1/reviews", "u1", `{"rating":6}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = do(e, http.MethodPost, "/v1/services/translators/translator-1/reviews", "u2", `{"rating":6}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	e := newTestServer(t, "100-M")
	body := `{"title_key":"promo.title","description_key":"promo.description"}`

	rec := do(e, http.MethodPost, "/v1/admin/notifications", "u1", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPost, "/v1/admin/notifications", "admin", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/v1/notifications", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "promo.title")
}

func TestReferenceAndCatalog(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodGet, "/v1/cities", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Beijing")

	rec = do(e, http.MethodGet, "/v1/categories", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "translators")

	rec = do(e, http.MethodGet, "/v1/services/unknown", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/app-version", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSavedItems(t *testing.T) {
	e := newTestServer(t, "100-M")

	rec := do(e, http.MethodPost, "/v1/saved/translators/translator-1", "u1", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/v1/services/translators/translator-1", "u1", "")
	assert.Contains(t, rec.Body.String(), `"saved":true`)

	rec = do(e, http.MethodDelete, "/v1/saved/translators/translator-1", "u1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/v1/saved", "u1", "")
	assert.Contains(t, rec.Body.String(), `"total":0`)
}
