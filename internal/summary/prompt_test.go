package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

func TestNewsSummaryPrompt_EmbedsArticlesAsJSON(t *testing.T) {
	articles := []model.Article{
		{
			Headline:    "Chipmaker beats estimates",
			Summary:     "Quarterly revenue rose.",
			Source:      "test",
			URL:         "https://example.com/1",
			PublishedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			Related:     []string{"NVDA"},
		},
	}

	prompt, err := NewsSummaryPrompt(articles)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Chipmaker beats estimates")
	assert.Contains(t, prompt, `"related"`)
	assert.NotContains(t, prompt, "{{newsData}}")
}

func TestNewsSummaryPrompt_EmptyListIsStillAValidPrompt(t *testing.T) {
	prompt, err := NewsSummaryPrompt(nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "[]")
	assert.NotContains(t, prompt, "{{newsData}}")
}

func TestWelcomeIntroPrompt_FillsProfileBlock(t *testing.T) {
	prompt := WelcomeIntroPrompt(model.SignupProfile{
		Email:             "new@example.com",
		Name:              "New User",
		Country:           "Japan",
		InvestmentGoals:   "Retirement",
		RiskTolerance:     "Low",
		PreferredIndustry: "Utilities",
	})

	assert.Contains(t, prompt, "- Country: Japan")
	assert.Contains(t, prompt, "- Risk Tolerance: Low")
	assert.NotContains(t, prompt, "{{userProfile}}")
}
