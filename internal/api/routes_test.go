package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/service"
)

const testSecret = "test-secret"

// stubServices backs the router with canned behavior: one known trainer,
// everything else not found.
type stubServices struct {
	trainerID primitive.ObjectID
	trainer   *domain.Trainer
	sessions  []domain.TrainingSession
	workouts  []domain.Workout
}

func (s *stubServices) CreateTrainer(_ context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if trainer.Name == "" {
		return nil, service.ErrTrainerInvalid
	}
	trainer.ID = primitive.NewObjectID()
	return trainer, nil
}

func (s *stubServices) GetTrainer(_ context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	if id != s.trainerID {
		return nil, service.ErrTrainerNotFound
	}
	return s.trainer, nil
}

func (s *stubServices) UpdateTrainer(_ context.Context, id primitive.ObjectID, trainer *domain.Trainer) error {
	if trainer.Name == "" {
		return service.ErrTrainerInvalid
	}
	if id != s.trainerID {
		return service.ErrTrainerNotFound
	}
	return nil
}

func (s *stubServices) AddWorkout(_ context.Context, trainerID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error) {
	if trainerID != s.trainerID {
		return nil, service.ErrTrainerNotFound
	}
	if !service.IsValidWorkout(&workout) {
		return nil, service.ErrWorkoutInvalid
	}
	s.workouts = append(s.workouts, workout)
	return &workout, nil
}

func (s *stubServices) GetWorkouts(_ context.Context, trainerID primitive.ObjectID) ([]domain.Workout, error) {
	if trainerID != s.trainerID {
		return nil, service.ErrTrainerNotFound
	}
	return s.workouts, nil
}

func (s *stubServices) DeleteWorkout(_ context.Context, trainerID primitive.ObjectID, index int) error {
	if trainerID != s.trainerID {
		return service.ErrTrainerNotFound
	}
	if index < 0 || index >= len(s.workouts) {
		return service.ErrWorkoutNotFound
	}
	s.workouts = append(s.workouts[:index], s.workouts[index+1:]...)
	return nil
}

func (s *stubServices) CreateSession(_ context.Context, trainerID primitive.ObjectID, session *domain.TrainingSession) (*domain.TrainingSession, error) {
	if trainerID != s.trainerID {
		return nil, service.ErrTrainerNotFound
	}
	if !service.IsValidSession(session) {
		return nil, service.ErrSessionInvalid
	}
	day := domain.DayOf(session.StartDate)
	for i := range s.sessions {
		if domain.DayOf(s.sessions[i].StartDate) == day {
			return nil, service.ErrSessionConflict
		}
	}
	session.ID = primitive.NewObjectID()
	session.TrainerID = trainerID
	s.sessions = append(s.sessions, *session)
	return session, nil
}

func (s *stubServices) GetSessionsByTrainer(_ context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	if trainerID != s.trainerID {
		return nil, service.ErrTrainerNotFound
	}
	return s.sessions, nil
}

func (s *stubServices) GetSessionsByDate(_ context.Context, trainerID primitive.ObjectID, date time.Time) ([]domain.TrainingSession, error) {
	if trainerID != s.trainerID {
		return nil, service.ErrTrainerNotFound
	}
	var out []domain.TrainingSession
	for i := range s.sessions {
		if domain.DayOf(s.sessions[i].StartDate) == domain.DayOf(date) {
			out = append(out, s.sessions[i])
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubServices{trainerID: primitive.NewObjectID()}
	stub.trainer = &domain.Trainer{ID: stub.trainerID, Name: "Ana Pop"}

	router := gin.New()
	SetupRoutes(router, testSecret, stub, stub, stub)
	return router, stub
}

func mintToken(t *testing.T, role domain.Role, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid":  primitive.NewObjectID().Hex(),
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionBody(start time.Time) gin.H {
	return gin.H{
		"title":     "Hill Sprints",
		"city":      "Brasov",
		"slots":     6,
		"startDate": start.Format(time.RFC3339),
	}
}

func futureStart(daysAhead int) time.Time {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Truncate(24 * time.Hour).Add(10 * time.Hour)
}

func TestAuthMissingToken(t *testing.T) {
	router, stub := newTestRouter(t)

	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex()), "", sessionBody(futureStart(3)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedToken(t *testing.T) {
	router, stub := newTestRouter(t)

	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex()), "not-a-jwt", sessionBody(futureStart(3)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthWrongSigningKey(t *testing.T) {
	router, stub := newTestRouter(t)

	token := mintToken(t, domain.RoleTrainer, "some-other-secret")
	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex()), token, sessionBody(futureStart(3)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthClientRoleForbidden(t *testing.T) {
	router, stub := newTestRouter(t)

	token := mintToken(t, domain.RoleClient, testSecret)
	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex()), token, sessionBody(futureStart(3)))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// The role gate runs before any lookup: a wrong-role caller addressing a
// nonexistent trainer still gets 403, never 404.
func TestRoleCheckedBeforeExistence(t *testing.T) {
	router, _ := newTestRouter(t)

	token := mintToken(t, domain.RoleClient, testSecret)
	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/trainers/%s/sessions", primitive.NewObjectID().Hex()), token, sessionBody(futureStart(3)))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateSessionEndpoint(t *testing.T) {
	router, stub := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)
	path := fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex())

	w := doRequest(router, http.MethodPost, path, token, sessionBody(futureStart(3)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Hill Sprints", created.Title)
	assert.Equal(t, stub.trainerID.Hex(), created.TrainerID)
}

func TestCreateSessionEndpointValidation(t *testing.T) {
	router, stub := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)
	path := fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex())

	body := sessionBody(futureStart(3))
	body["slots"] = 0
	w := doRequest(router, http.MethodPost, path, token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSessionEndpointConflict(t *testing.T) {
	router, stub := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)
	path := fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex())
	start := futureStart(5)

	w := doRequest(router, http.MethodPost, path, token, sessionBody(start))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, path, token, sessionBody(start.Add(6*time.Hour)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSessionEndpointUnknownTrainer(t *testing.T) {
	router, _ := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)

	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/trainers/%s/sessions", primitive.NewObjectID().Hex()), token, sessionBody(futureStart(3)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSessionsByDateEndpoint(t *testing.T) {
	router, stub := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)
	base := fmt.Sprintf("/api/v1/trainers/%s/sessions", stub.trainerID.Hex())
	start := futureStart(4)

	w := doRequest(router, http.MethodPost, base, token, sessionBody(start))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodGet, base+"/by-date?date="+start.Format("2006-01-02"), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sessions []SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 1)

	w = doRequest(router, http.MethodGet, base+"/by-date?date=yesterday", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkoutEndpoints(t *testing.T) {
	router, stub := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)
	base := fmt.Sprintf("/api/v1/trainers/%s/workouts", stub.trainerID.Hex())

	body := gin.H{
		"title":     "Push Pull Legs",
		"intensity": "moderate",
		"exercises": gin.H{
			"Monday": []gin.H{{"name": "Bench Press", "rpe": 8}},
		},
	}
	w := doRequest(router, http.MethodPost, base, token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var workouts []WorkoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workouts))
	require.Len(t, workouts, 1)
	assert.Equal(t, "Push Pull Legs", workouts[0].Title)

	w = doRequest(router, http.MethodDelete, base+"?index=0", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, base+"?index=5", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkoutEndpointRejectsBadIntensity(t *testing.T) {
	router, stub := newTestRouter(t)
	token := mintToken(t, domain.RoleTrainer, testSecret)
	base := fmt.Sprintf("/api/v1/trainers/%s/workouts", stub.trainerID.Hex())

	body := gin.H{"title": "Push Pull Legs", "intensity": "Medium"}
	w := doRequest(router, http.MethodPost, base, token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrainerEndpoints(t *testing.T) {
	router, stub := newTestRouter(t)

	// Registration and profile reads are public.
	w := doRequest(router, http.MethodPost, "/api/v1/trainers", "", gin.H{"name": "Radu Ionescu"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/v1/trainers/"+stub.trainerID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile TrainerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ana Pop", profile.Name)

	w = doRequest(router, http.MethodGet, "/api/v1/trainers/"+primitive.NewObjectID().Hex(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Profile updates require the trainer role.
	token := mintToken(t, domain.RoleTrainer, testSecret)
	w = doRequest(router, http.MethodPut, "/api/v1/trainers/"+stub.trainerID.Hex(), token, gin.H{"name": "Ana Pop", "motto": "No shortcuts"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router, stub := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/trainers/"+stub.trainerID.Hex(), "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/"+stub.trainerID.Hex(), nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
