// Package welcome implements the one-shot pipeline behind the user-created
// event: generate a personalized intro with the AI backend, fall back to a
// static line when it yields nothing, and send the welcome email.
package welcome

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/DotHrishi/Stock-Sage/internal/model"
	"github.com/DotHrishi/Stock-Sage/internal/summary"
)

// fallbackIntro keeps the welcome email independent of AI availability.
const fallbackIntro = "Thanks for joining StockSage! We are excited to have you on board."

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

type Dispatcher interface {
	SendWelcome(ctx context.Context, to, name, intro string) error
}

type Pipeline struct {
	summarizer Summarizer
	dispatcher Dispatcher
}

func New(summarizer Summarizer, dispatcher Dispatcher) *Pipeline {
	return &Pipeline{summarizer: summarizer, dispatcher: dispatcher}
}

// Run sends the welcome email for one new signup. Inference failures are
// logged and absorbed by the static fallback; only the send itself can fail
// the pipeline.
func (p *Pipeline) Run(ctx context.Context, profile model.SignupProfile) error {
	intro := fallbackIntro

	text, err := p.summarizer.Summarize(ctx, summary.WelcomeIntroPrompt(profile))
	if err != nil {
		log.Printf("[ERROR] failed to generate welcome intro for %s: %v", profile.Email, err)
	} else if strings.TrimSpace(text) != "" {
		intro = text
	}

	if err := p.dispatcher.SendWelcome(ctx, profile.Email, profile.Name, intro); err != nil {
		return fmt.Errorf("send welcome email to %s: %w", profile.Email, err)
	}

	log.Printf("[INFO] welcome email sent to %s", profile.Email)
	return nil
}
