// Package summary generates natural-language text from a generative-AI
// endpoint. It holds the prompt templates for the daily news digest and the
// personalized welcome intro, plus OpenAI-compatible and Ollama backends.
package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

const newsSummaryPromptTemplate = `You are StockSage's market-news editor writing a daily email digest for one reader.

Below is a JSON list of market-news articles selected for this reader (based on their watchlist where possible):

{{newsData}}

Write the body of the digest as simple HTML fragments (h3 headings, short p paragraphs, ul lists) with no wrapper html/head/body tags:
1. Open with a two-sentence overview of the day.
2. Group the stories by theme and summarize each in plain language.
3. Keep a neutral tone: no hype words, no advice to buy or sell.
4. If the article list is empty, write a brief general note that there was no notable news for the reader's watchlist today.

Return only the HTML fragments, no markdown fences and no preamble.`

const welcomeIntroPromptTemplate = `You are StockSage's onboarding writer. A new user just signed up with this profile:

{{userProfile}}

Write a single warm paragraph (2-3 sentences) welcoming them to StockSage, referencing their goals and interests where natural. Plain text only, no greeting line and no sign-off.`

// NewsSummaryPrompt fills the digest template with the article list embedded
// verbatim as indented JSON. An empty list is still a valid prompt; the model
// is asked to produce a short general note in that case.
func NewsSummaryPrompt(articles []model.Article) (string, error) {
	if articles == nil {
		articles = []model.Article{}
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal articles: %w", err)
	}

	return strings.Replace(newsSummaryPromptTemplate, "{{newsData}}", string(data), 1), nil
}

// WelcomeIntroPrompt fills the welcome template with the signup profile
// rendered as a plain bullet block.
func WelcomeIntroPrompt(p model.SignupProfile) string {
	profile := fmt.Sprintf(
		"- Country: %s\n- Investment Goals: %s\n- Risk Tolerance: %s\n- Preferred Industry: %s",
		p.Country, p.InvestmentGoals, p.RiskTolerance, p.PreferredIndustry,
	)

	return strings.Replace(welcomeIntroPromptTemplate, "{{userProfile}}", profile, 1)
}
