// Package model defines the data structures used in the Stock-Sage background-job layer, including Subscriber, Article, and the transient pairings the digest pipeline passes between its stages.
package model

import "time"

// Subscriber is a user who opted in to the daily news-summary email.
type Subscriber struct {
	Email string
	Name  string
}

// SignupProfile carries the user-created event payload. The profile fields
// feed the personalized welcome-intro prompt.
type SignupProfile struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Country           string `json:"country"`
	InvestmentGoals   string `json:"investmentGoals"`
	RiskTolerance     string `json:"riskTolerance"`
	PreferredIndustry string `json:"preferredIndustry"`
}

// Article is a market-news item. It is embedded in the AI prompt verbatim
// and never mutated by the pipeline.
type Article struct {
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Related     []string  `json:"related,omitempty"`
}

// UserNewsBatch pairs a subscriber with the articles resolved for them.
// Subscribers whose fetch failed still appear, with an empty article list.
type UserNewsBatch struct {
	Subscriber Subscriber
	Articles   []Article
}

// UserSummaryResult pairs a subscriber with the generated digest text.
// A nil NewsContent means fetch or summarization failed for this run;
// such subscribers are skipped at dispatch.
type UserSummaryResult struct {
	Subscriber  Subscriber
	NewsContent *string
}

// DigestRunResult is the outcome of one digest pipeline invocation.
type DigestRunResult struct {
	TotalSubscribers int
	EmailsSent       int
}
