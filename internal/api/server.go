// Package api exposes the HTTP trigger surface for the background jobs:
// a health probe, the user-created event that starts the welcome pipeline,
// and the ad-hoc signal that starts a digest run.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

type WelcomeRunner interface {
	Run(ctx context.Context, profile model.SignupProfile) error
}

type DigestTrigger interface {
	Trigger()
}

type Server struct {
	welcome WelcomeRunner
	digest  DigestTrigger
}

func NewServer(welcome WelcomeRunner, digest DigestTrigger) *Server {
	return &Server{welcome: welcome, digest: digest}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/events/user-created", s.handleUserCreated)
	r.Post("/events/send-daily-news", s.handleSendDailyNews)

	return r
}

func (s *Server) handleUserCreated(w http.ResponseWriter, r *http.Request) {
	var profile model.SignupProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}
	if profile.Email == "" || profile.Name == "" {
		http.Error(w, "email and name are required", http.StatusBadRequest)
		return
	}

	// Event semantics: acknowledge receipt, run the pipeline in the
	// background detached from the request lifetime.
	go func() {
		if err := s.welcome.Run(context.Background(), profile); err != nil {
			log.Printf("[ERROR] welcome pipeline failed for %s: %v", profile.Email, err)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleSendDailyNews(w http.ResponseWriter, r *http.Request) {
	s.digest.Trigger()
	w.WriteHeader(http.StatusAccepted)
}
