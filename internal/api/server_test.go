package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

type fakeWelcome struct {
	mu       sync.Mutex
	profiles []model.SignupProfile
	done     chan struct{}
}

func newFakeWelcome() *fakeWelcome {
	return &fakeWelcome{done: make(chan struct{}, 1)}
}

func (f *fakeWelcome) Run(_ context.Context, profile model.SignupProfile) error {
	f.mu.Lock()
	f.profiles = append(f.profiles, profile)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

type fakeTrigger struct {
	triggered int
}

func (f *fakeTrigger) Trigger() { f.triggered++ }

func TestHealthz(t *testing.T) {
	srv := NewServer(newFakeWelcome(), &fakeTrigger{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserCreated_RunsWelcomePipeline(t *testing.T) {
	welcome := newFakeWelcome()
	srv := NewServer(welcome, &fakeTrigger{})

	body := `{"email":"new@example.com","name":"New User","country":"Japan"}`
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/events/user-created", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-welcome.done:
	case <-time.After(time.Second):
		t.Fatal("welcome pipeline was not invoked")
	}

	welcome.mu.Lock()
	defer welcome.mu.Unlock()
	require.Len(t, welcome.profiles, 1)
	assert.Equal(t, "new@example.com", welcome.profiles[0].Email)
	assert.Equal(t, "Japan", welcome.profiles[0].Country)
}

func TestUserCreated_RejectsInvalidPayload(t *testing.T) {
	for name, body := range map[string]string{
		"malformed json": `{"email":`,
		"missing email":  `{"name":"No Email"}`,
		"missing name":   `{"email":"a@example.com"}`,
	} {
		t.Run(name, func(t *testing.T) {
			welcome := newFakeWelcome()
			srv := NewServer(welcome, &fakeTrigger{})

			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, httptest.NewRequest(
				http.MethodPost, "/events/user-created", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, welcome.profiles)
		})
	}
}

func TestSendDailyNews_FiresTrigger(t *testing.T) {
	trigger := &fakeTrigger{}
	srv := NewServer(newFakeWelcome(), trigger)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/events/send-daily-news", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, trigger.triggered)
}
