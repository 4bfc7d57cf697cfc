package welcome

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

type fakeSummarizer struct {
	text string
	err  error

	prompts []string
}

func (f *fakeSummarizer) Summarize(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type fakeDispatcher struct {
	err error

	to    string
	name  string
	intro string
	calls int
}

func (f *fakeDispatcher) SendWelcome(_ context.Context, to, name, intro string) error {
	f.calls++
	f.to, f.name, f.intro = to, name, intro
	return f.err
}

var profile = model.SignupProfile{
	Email:             "new@example.com",
	Name:              "New User",
	Country:           "Germany",
	InvestmentGoals:   "Long-term growth",
	RiskTolerance:     "Moderate",
	PreferredIndustry: "Semiconductors",
}

func TestRun_SendsGeneratedIntro(t *testing.T) {
	summ := &fakeSummarizer{text: "Welcome to your investing journey!"}
	disp := &fakeDispatcher{}

	err := New(summ, disp).Run(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", disp.to)
	assert.Equal(t, "New User", disp.name)
	assert.Equal(t, "Welcome to your investing journey!", disp.intro)

	require.Len(t, summ.prompts, 1)
	assert.Contains(t, summ.prompts[0], "Germany")
	assert.Contains(t, summ.prompts[0], "Semiconductors")
}

func TestRun_InferenceFailureFallsBackToStaticIntro(t *testing.T) {
	summ := &fakeSummarizer{err: errors.New("model unavailable")}
	disp := &fakeDispatcher{}

	err := New(summ, disp).Run(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, 1, disp.calls, "welcome email must never block on AI availability")
	assert.Equal(t, fallbackIntro, disp.intro)
}

func TestRun_EmptyInferenceTextFallsBackToStaticIntro(t *testing.T) {
	summ := &fakeSummarizer{text: "  \n "}
	disp := &fakeDispatcher{}

	err := New(summ, disp).Run(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, fallbackIntro, disp.intro)
}

func TestRun_DispatchFailurePropagates(t *testing.T) {
	summ := &fakeSummarizer{text: "intro"}
	disp := &fakeDispatcher{err: errors.New("smtp down")}

	err := New(summ, disp).Run(context.Background(), profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "new@example.com")
}
