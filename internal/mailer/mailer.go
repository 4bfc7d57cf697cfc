// Package mailer renders and sends the StockSage transactional emails over
// SMTP. Templates use {{placeholder}} markers substituted by plain string
// replacement.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

type Mailer struct {
	client *mail.Client
	from   string
}

func New(host string, port int, username, password, from string, timeout time.Duration) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{client: client, from: from}, nil
}

func (m *Mailer) SendWelcome(ctx context.Context, to, name, intro string) error {
	return m.send(ctx, to,
		"Welcome to StockSage! Your stock market companion is ready.",
		renderWelcome(name, intro),
		"Thanks for joining StockSage",
	)
}

func (m *Mailer) SendNewsSummary(ctx context.Context, to, date, newsContent string) error {
	return m.send(ctx, to,
		fmt.Sprintf("Market News Summary Today - %s", date),
		renderNewsSummary(date, newsContent),
		"Today market news summary from StockSage",
	)
}

// SendAlert sends a plain-text operational notice, used for admin reports.
func (m *Mailer) SendAlert(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *Mailer) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	return m.client.DialAndSendWithContext(ctx, msg)
}

func renderWelcome(name, intro string) string {
	return strings.NewReplacer(
		"{{name}}", name,
		"{{intro}}", intro,
	).Replace(welcomeTemplate)
}

func renderNewsSummary(date, newsContent string) string {
	return strings.NewReplacer(
		"{{date}}", date,
		"{{newsContent}}", newsContent,
	).Replace(newsSummaryTemplate)
}
