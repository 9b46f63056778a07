package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/handlers"
	"github.com/sbilibin2017/calorie-tracker/internal/jwt"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
	"github.com/sbilibin2017/calorie-tracker/internal/repositories"
	"github.com/sbilibin2017/calorie-tracker/internal/security"
	"github.com/sbilibin2017/calorie-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userStore is a map-backed stand-in for the Postgres repositories.
type userStore struct {
	mu    sync.Mutex
	users map[string]*models.UserDB
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *userStore) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *userStore) Create(ctx context.Context, username, passwordHash, nickname string) (*models.UserDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil, repositories.ErrDuplicateUsername
	}
	now := time.Now().UTC()
	u := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Nickname:     nickname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[username] = u
	cp := *u
	return &cp, nil
}

func (s *userStore) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *userStore) Delete(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, u := range s.users {
		if u.UserID == userID {
			delete(s.users, name)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fixedCompleter struct{ answer string }

func (c fixedCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.answer, nil
}

const mealAnswer = "```json\n" + `{"totalCalories": 100, "servingSize": "1 plate",
	"breakdown": [{"name": "rice", "quantity": "1 cup", "calories": 100}],
	"macros": {"protein": 2, "carbs": 22, "fat": 0.3, "fiber": 0.6},
	"confidence": "medium", "notes": "plain rice"}` + "\n```"

type apiClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	store := &userStore{users: make(map[string]*models.UserDB)}
	history := services.NewHistoryService(repositories.NewBreadcrumbMemoryRepository(100, time.Hour))
	analysis := services.NewAnalysisService(
		fixedCompleter{answer: mealAnswer},
		security.NewTextSanitizer(),
		history,
		nil,
		nil,
	)

	router := handlers.NewRouter(handlers.RouterDeps{
		AppName:  "Calorie Tracker",
		Sessions: middlewares.NewSessionManager(jwt.New("test-secret", time.Hour), repositories.NewSessionMemoryRepository(), false),
		Auth:     services.NewAuthService(store, store),
		History:  history,
		Analysis: analysis,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &apiClient{t: t, server: server, client: &http.Client{Jar: jar}}
}

func (c *apiClient) do(method, path string, body any) (*http.Response, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, data
}

func TestRouter_HealthTimestampsIncrease(t *testing.T) {
	api := newTestAPI(t)

	var prev time.Time
	for i := 0; i < 5; i++ {
		resp, body := api.do(http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health models.HealthResponse
		require.NoError(t, json.Unmarshal(body, &health))
		assert.Equal(t, "OK", health.Status)

		ts, err := time.Parse(time.RFC3339Nano, health.Timestamp)
		require.NoError(t, err)
		assert.True(t, ts.After(prev))
		prev = ts
	}
}

func TestRouter_UnmatchedRoutes(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/does-not-exist"},
		{http.MethodGet, "/api/does-not-exist"},
		{http.MethodPost, "/health"},
		{http.MethodPatch, "/api/breadcrumbs"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := api.do(tt.method, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, `{"error":"Route not found"}`, string(body))
			assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
		})
	}
}

func TestRouter_IndexPage(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Calorie Tracker")
}

func TestRouter_FreshSessionHasNoBreadcrumbs(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodGet, "/api/breadcrumbs", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))

	var sid *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == jwt.CookieName {
			sid = c
		}
	}
	require.NotNil(t, sid)
	assert.True(t, sid.HttpOnly)
}

func TestRouter_HistoryPagination(t *testing.T) {
	api := newTestAPI(t)

	for i := 1; i <= 25; i++ {
		resp, body := api.do(http.MethodPost, "/api/analyze", models.AnalyzeRequest{Description: fmt.Sprintf("meal %d", i)})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	}

	var crumbs struct {
		Data []models.Breadcrumb `json:"data"`
	}
	_, body := api.do(http.MethodGet, "/api/breadcrumbs", nil)
	require.NoError(t, json.Unmarshal(body, &crumbs))
	require.Len(t, crumbs.Data, 25)
	assert.Equal(t, "meal 1", crumbs.Data[0].Query)
	assert.Equal(t, "meal 25", crumbs.Data[24].Query)

	type historyResponse struct {
		Success bool           `json:"success"`
		Data    models.History `json:"data"`
	}

	var first historyResponse
	_, body = api.do(http.MethodGet, "/api/history?page=1&pageSize=10", nil)
	require.NoError(t, json.Unmarshal(body, &first))
	assert.True(t, first.Success)
	assert.Len(t, first.Data.Searches, 10)
	assert.Equal(t, "meal 25", first.Data.Searches[0].Query)
	assert.Equal(t, models.Pagination{Page: 1, PageSize: 10, TotalPages: 3, TotalItems: 25}, first.Data.Pagination)
	assert.Equal(t, 25, first.Data.Stats.Count)
	assert.InDelta(t, 2500, first.Data.Stats.TotalCalories, 0.001)
	assert.InDelta(t, 100, first.Data.Stats.AvgCalories, 0.001)

	var last historyResponse
	_, body = api.do(http.MethodGet, "/api/history?page=3&pageSize=10", nil)
	require.NoError(t, json.Unmarshal(body, &last))
	assert.Len(t, last.Data.Searches, 5)
	assert.Equal(t, "meal 1", last.Data.Searches[4].Query)
	assert.Equal(t, 25, last.Data.Stats.Count)

	var beyond historyResponse
	_, body = api.do(http.MethodGet, "/api/history?page=9&pageSize=10", nil)
	require.NoError(t, json.Unmarshal(body, &beyond))
	assert.Empty(t, beyond.Data.Searches)
	assert.Equal(t, 3, beyond.Data.Pagination.TotalPages)

	resp, _ := api.do(http.MethodGet, "/api/history?page=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Another client has its own session
	other := &apiClient{t: t, server: api.server, client: &http.Client{}}
	_, body = other.do(http.MethodGet, "/api/breadcrumbs", nil)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

// sessionCookie returns the session cookie the client currently holds.
func (c *apiClient) sessionCookie() *http.Cookie {
	c.t.Helper()

	u, err := url.Parse(c.server.URL)
	require.NoError(c.t, err)
	for _, cookie := range c.client.Jar.Cookies(u) {
		if cookie.Name == jwt.CookieName {
			return cookie
		}
	}
	c.t.Fatal("no session cookie")
	return nil
}

// replay sends a request carrying only the given session cookie.
func (c *apiClient) replay(method, path string, cookie *http.Cookie) (*http.Response, []byte) {
	c.t.Helper()

	req, err := http.NewRequest(method, c.server.URL+path, nil)
	require.NoError(c.t, err)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, data
}

func TestRouter_OldCookiesAreRevoked(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodPost, "/api/auth/register", models.RegisterRequest{Username: "jane", Password: "secret123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = api.do(http.MethodPost, "/api/analyze", models.AnalyzeRequest{Description: "rice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	anonymous := api.sessionCookie()

	resp, _ = api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "jane", Password: "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loggedIn := api.sessionCookie()
	assert.NotEqual(t, anonymous.Value, loggedIn.Value)

	// The pre-login cookie no longer reaches the user's session or history
	resp, body = api.replay(http.MethodGet, "/api/breadcrumbs", anonymous)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
	resp, _ = api.replay(http.MethodGet, "/api/auth/me", anonymous)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The logged-in session carries the history over
	var crumbs struct {
		Data []models.Breadcrumb `json:"data"`
	}
	_, body = api.do(http.MethodGet, "/api/breadcrumbs", nil)
	require.NoError(t, json.Unmarshal(body, &crumbs))
	require.Len(t, crumbs.Data, 1)
	assert.Equal(t, "rice", crumbs.Data[0].Query)

	resp, _ = api.replay(http.MethodGet, "/api/auth/me", loggedIn)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Replaying the pre-logout cookie gets a fresh anonymous session
	resp, _ = api.replay(http.MethodGet, "/api/auth/me", loggedIn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = api.replay(http.MethodGet, "/api/breadcrumbs", loggedIn)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

func TestRouter_AnalyzeValidation(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodPost, "/api/analyze", models.AnalyzeRequest{Description: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Description is required","field":"description"}`, string(body))

	// Failed analyses are not recorded
	_, body = api.do(http.MethodGet, "/api/breadcrumbs", nil)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

func TestRouter_AccountLifecycle(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, string(body))

	resp, body = api.do(http.MethodPost, "/api/auth/register", models.RegisterRequest{
		Username: "  John_Doe ",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "$2a$")

	var registered struct {
		Data models.UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &registered))
	assert.Equal(t, "john_doe", registered.Data.Username)
	assert.Equal(t, "john_doe", registered.Data.Nickname)

	resp, body = api.do(http.MethodPost, "/api/auth/register", models.RegisterRequest{
		Username: "JOHN_DOE",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Username already taken","field":"username"}`, string(body))

	// Unknown user and wrong password are indistinguishable
	wrongResp, wrongBody := api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "john_doe", Password: "nope123"})
	unknownResp, unknownBody := api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "ghost", Password: "nope123"})
	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, wrongResp.StatusCode, unknownResp.StatusCode)
	assert.Equal(t, string(wrongBody), string(unknownBody))

	// Searches made before login stay with the session
	resp, _ = api.do(http.MethodPost, "/api/analyze", models.AnalyzeRequest{Description: "rice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "John_Doe", Password: "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = api.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Data models.UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, registered.Data.ID, me.Data.ID)

	var crumbs struct {
		Data []models.Breadcrumb `json:"data"`
	}
	_, body = api.do(http.MethodGet, "/api/breadcrumbs", nil)
	require.NoError(t, json.Unmarshal(body, &crumbs))
	assert.Len(t, crumbs.Data, 1)

	resp, _ = api.do(http.MethodPut, "/api/users/me/password", models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "secret456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, body = api.do(http.MethodGet, "/api/breadcrumbs", nil)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))

	resp, _ = api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "john_doe", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "john_doe", Password: "secret456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(http.MethodDelete, "/api/users/me", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = api.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: "john_doe", Password: "secret456"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ForgedCookieStartsFreshSession(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(http.MethodPost, "/api/analyze", models.AnalyzeRequest{Description: "rice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, api.server.URL+"/api/breadcrumbs", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: "forged.token.value"})

	forged, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer forged.Body.Close()
	body, err := io.ReadAll(forged.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, forged.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}
