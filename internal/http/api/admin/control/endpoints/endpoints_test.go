package endpoints

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside/internal/http/api"
	"github.com/courtside-labs/courtside/internal/model"
	"github.com/courtside-labs/courtside/internal/prefs"
)

// memStore is an in-memory db.Store for handler tests.
type memStore struct {
	users      map[int]*model.User
	nextUserID int
	plans      map[int]*model.Plan
	nextPlanID int
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int]*model.User{},
		nextUserID: 1,
		plans:      map[int]*model.Plan{},
		nextPlanID: 1,
	}
}

func (s *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	id := s.nextUserID
	s.nextUserID++
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

func (s *memStore) SavePlan(userID int, weekOf string, payload json.RawMessage) (*model.Plan, error) {
	p := &model.Plan{
		ID:        s.nextPlanID,
		WeekOf:    weekOf,
		Payload:   payload,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	s.nextPlanID++
	s.plans[p.ID] = p
	return p, nil
}

func (s *memStore) GetPlanByID(id int) (*model.Plan, error) {
	p, ok := s.plans[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (s *memStore) ListPlans(userID int) ([]model.Plan, error) {
	var out []model.Plan
	for _, p := range s.plans {
		if p.CreatedBy == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memStore) DeletePlan(id int) error {
	if _, ok := s.plans[id]; !ok {
		return errors.New("no such plan")
	}
	delete(s.plans, id)
	return nil
}

func (s *memStore) LogEmail(_ *int, _, _, _ string) error { return nil }

// asUser mounts modules behind a middleware that injects the given user,
// standing in for the JWT middleware.
func asUser(user *model.User, modules ...api.Module) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", user)
		}},
	}, modules...)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreferencesRoundTrip(t *testing.T) {
	user := &model.User{ID: 7, Email: "bar@example.com"}
	store := prefs.NewMemoryStore()
	r := asUser(user, PreferencesModule(store))

	// fresh user gets the defaults
	w := do(t, r, http.MethodGet, "/api/admin/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loaded model.Preferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, model.DefaultPreferences(), loaded)

	updated := model.Preferences{
		SportsInterests:    []string{"nba"},
		NumberOfTVs:        4,
		TVSetupDescription: "main bar wall plus two booths",
		FavoriteNBATeams:   []string{"LAL", "GSW"},
		ZipCode:            "94110",
	}
	w = do(t, r, http.MethodPut, "/api/admin/preferences", updated)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/admin/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, updated, loaded)
}

func TestPreferencesRejectZeroTVs(t *testing.T) {
	user := &model.User{ID: 7}
	r := asUser(user, PreferencesModule(prefs.NewMemoryStore()))

	w := do(t, r, http.MethodPut, "/api/admin/preferences", map[string]any{
		"numberOfTvs": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanLifecycle(t *testing.T) {
	user := &model.User{ID: 1, Email: "foo@example.com"}
	store := newMemStore()
	r := asUser(user, PlanModule(store))

	payload := json.RawMessage(`{"week_summary":"quiet week"}`)
	w := do(t, r, http.MethodPost, "/api/admin/plans", map[string]any{
		"week_of": "2026-01-05",
		"payload": payload,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var saved model.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "2026-01-05", saved.WeekOf)
	assert.Equal(t, 1, saved.CreatedBy)
	assert.JSONEq(t, string(payload), string(saved.Payload))

	w = do(t, r, http.MethodGet, "/api/admin/plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []model.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 1)

	w = do(t, r, http.MethodGet, "/api/admin/plans/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/api/admin/plans/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/admin/plans/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanOwnership(t *testing.T) {
	store := newMemStore()
	owner := &model.User{ID: 1}
	intruder := &model.User{ID: 2}

	_, err := store.SavePlan(owner.ID, "2026-01-05", json.RawMessage(`{}`))
	require.NoError(t, err)

	r := asUser(intruder, PlanModule(store))

	w := do(t, r, http.MethodGet, "/api/admin/plans/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodDelete, "/api/admin/plans/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// list only shows the caller's own plans
	w = do(t, r, http.MethodGet, "/api/admin/plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPlansRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// mounted without any user-injecting middleware
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"}, PlanModule(newMemStore()))

	w := do(t, r, http.MethodGet, "/api/admin/plans", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
