package reporter

import (
	"context"
	"log/slog"
)

type AlertSender interface {
	SendAlert(ctx context.Context, to, subject, body string) error
}

// Reporter sends short failure notification emails to an admin address.
// It is nil-safe: if adminEmail is empty or the receiver is nil, Notify is
// a no-op.
type Reporter struct {
	sender     AlertSender
	adminEmail string
}

func New(sender AlertSender, adminEmail string) *Reporter {
	return &Reporter{sender: sender, adminEmail: adminEmail}
}

func (r *Reporter) Notify(ctx context.Context, msg string) {
	if r == nil || r.adminEmail == "" {
		return
	}
	if err := r.sender.SendAlert(ctx, r.adminEmail, "StockSage alert", msg); err != nil {
		slog.Error("failed to send error notification", "err", err)
	}
}
