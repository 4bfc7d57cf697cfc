package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

type fakeReporter struct {
	messages []string
}

func (f *fakeReporter) Notify(_ context.Context, msg string) {
	f.messages = append(f.messages, msg)
}

func TestScheduler_StartRejectsBadCronExpression(t *testing.T) {
	s := NewScheduler(newTestPipeline(
		&fakeSubscribers{},
		&fakeWatchlists{},
		&fakeFetcher{},
		&fakeSummarizer{text: "digest"},
		&fakeDispatcher{},
	), &fakeReporter{})

	err := s.Start(context.Background(), "not a cron expression")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse cron expression")
}

func TestScheduler_RunFailureNotifiesReporter(t *testing.T) {
	rep := &fakeReporter{}
	s := NewScheduler(newTestPipeline(
		&fakeSubscribers{err: errors.New("db down")},
		&fakeWatchlists{},
		&fakeFetcher{},
		&fakeSummarizer{text: "digest"},
		&fakeDispatcher{},
	), rep)

	s.runOnce(context.Background())

	require.Len(t, rep.messages, 1)
	assert.Contains(t, rep.messages[0], "db down")
}

func TestScheduler_TriggerRunsPipeline(t *testing.T) {
	disp := &fakeDispatcher{}
	s := NewScheduler(newTestPipeline(
		&fakeSubscribers{subscribers: []model.Subscriber{{Email: "a@example.com", Name: "A"}}},
		&fakeWatchlists{symbols: map[string][]string{"a@example.com": {"AAPL"}}},
		&fakeFetcher{bySymbol: map[string][]model.Article{"AAPL": articles(1, "aapl")}},
		&fakeSummarizer{text: "digest"},
		disp,
	), &fakeReporter{})

	ctx, cancel := context.WithCancel(context.Background())

	s.Trigger()
	go func() {
		// Give the triggered run time to complete before stopping.
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err := s.Start(ctx, "0 12 * * *")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a@example.com"}, disp.sent)
}

func TestScheduler_TriggerCoalescesWhilePending(t *testing.T) {
	s := NewScheduler(nil, &fakeReporter{})

	s.Trigger()
	s.Trigger()
	s.Trigger()

	assert.Len(t, s.trigger, 1)
}
