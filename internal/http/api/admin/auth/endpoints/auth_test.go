package endpoints

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/model"
)

const testSecret = "test-secret"

// memStore is an in-memory db.Store covering the user methods the auth
// endpoints touch.
type memStore struct {
	users  map[int]*model.User
	nextID int
}

func newMemStore() *memStore {
	return &memStore{users: map[int]*model.User{}, nextID: 1}
}

func (s *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	id := s.nextID
	s.nextID++
	s.users[id] = &model.User{ID: id, Email: email, HashedPassword: hashedPassword, Name: name}
	return id, nil
}

func (s *memStore) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) GetUserByID(id int) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (s *memStore) UpdateUserProfile(id int, email string, name *string) error {
	u, ok := s.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Email = email
	u.Name = name
	return nil
}

func (s *memStore) SavePlan(int, string, json.RawMessage) (*model.Plan, error) {
	panic("not used")
}
func (s *memStore) GetPlanByID(int) (*model.Plan, error)    { panic("not used") }
func (s *memStore) ListPlans(int) ([]model.Plan, error)     { panic("not used") }
func (s *memStore) DeletePlan(int) error                    { panic("not used") }
func (s *memStore) LogEmail(*int, string, string, string) error {
	return nil
}

// newAuthRouter mounts the public and session modules the way the server
// does, JWT middleware included.
func newAuthRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"},
		AuthPublicModule(testSecret, store))
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	}, AuthSessionModule(testSecret, store))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/admin/auth/signup", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSignupLoginAndProfile(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	token := signup(t, r, "owner@bar.com", "hunter2hunter2")

	// the issued token opens the session endpoints
	w := do(t, r, http.MethodGet, "/api/admin/auth/current_profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "owner@bar.com")

	// login with the same credentials works too
	w = do(t, r, http.MethodPost, "/api/admin/auth/login", "", map[string]any{
		"email":    "owner@bar.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	signup(t, r, "owner@bar.com", "hunter2hunter2")

	w := do(t, r, http.MethodPost, "/api/admin/auth/signup", "", map[string]any{
		"email":    "owner@bar.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	signup(t, r, "owner@bar.com", "hunter2hunter2")

	w := do(t, r, http.MethodPost, "/api/admin/auth/login", "", map[string]any{
		"email":    "owner@bar.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestSessionEndpointsRejectBadTokens(t *testing.T) {
	r := newAuthRouter(newMemStore())

	w := do(t, r, http.MethodGet, "/api/admin/auth/current_profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, "/api/admin/auth/current_profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	token := signup(t, r, "owner@bar.com", "hunter2hunter2")

	name := "Dana"
	w := do(t, r, http.MethodPut, "/api/admin/auth/current_profile", token, map[string]any{
		"email": "new@bar.com",
		"name":  name,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := store.GetUserByID(1)
	require.NoError(t, err)
	assert.Equal(t, "new@bar.com", stored.Email)
	require.NotNil(t, stored.Name)
	assert.Equal(t, "Dana", *stored.Name)
}
