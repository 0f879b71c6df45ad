package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"remotesync/internal/lib"

	"github.com/mailgun/mailgun-go/v4"
)

// Mailer sends transactional mail through Mailgun.
type Mailer struct {
	mg          *mailgun.MailgunImpl
	sender      string
	replyDomain string
	joinBaseURL string
}

func New(domain, apiKey, sender, replyDomain, joinBaseURL string) *Mailer {
	return &Mailer{
		mg:          mailgun.NewMailgun(domain, apiKey),
		sender:      sender,
		replyDomain: replyDomain,
		joinBaseURL: strings.TrimRight(joinBaseURL, "/"),
	}
}

func (m *Mailer) SendInvite(ctx context.Context, email, teamName, token string) error {
	const op = "mailer.SendInvite"

	joinURL := fmt.Sprintf("%s/join?token=%s", m.joinBaseURL, token)
	msg := m.mg.NewMessage(
		m.sender,
		fmt.Sprintf("You've been invited to join %s on RemoteSync", teamName),
		fmt.Sprintf("Join the %s standup team: %s", teamName, joinURL),
		email,
	)
	msg.SetHtml(fmt.Sprintf(
		"<p>You've been invited to join <b>%s</b> on RemoteSync.</p><p><a href=%q>Accept the invite</a></p>",
		teamName, joinURL,
	))

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// SendReminder mails a standup nudge the member can answer by replying.
// The reply-to address encodes the user and team so the mailbox poller can
// attribute the answer.
func (m *Mailer) SendReminder(ctx context.Context, email, userID, teamID string) error {
	const op = "mailer.SendReminder"

	msg := m.mg.NewMessage(
		m.sender,
		"Time for your daily standup!",
		"Hey! Just reply to this email with your update for today.",
		email,
	)
	msg.SetHtml("<p>Hey! Just reply to this email with your update for today.</p>")
	if m.replyDomain != "" {
		msg.SetReplyTo(ReplyAddress(userID, teamID, m.replyDomain))
	}

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (m *Mailer) SendReport(ctx context.Context, recipients []string, teamName, body string) error {
	const op = "mailer.SendReport"

	msg := m.mg.NewMessage(
		m.sender,
		fmt.Sprintf("Standup Report for %s — %s", teamName, time.Now().UTC().Format("2006-01-02")),
		body,
		recipients...,
	)
	msg.SetHtml("<pre>" + strings.ReplaceAll(body, "\n", "<br>") + "</pre>")

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// ReplyAddress builds the update-{user}-{team}@domain inbound address.
func ReplyAddress(userID, teamID, domain string) string {
	return fmt.Sprintf("update-%s-%s@%s", userID, teamID, domain)
}

// ParseReplyAddress reverses ReplyAddress. Returns ok=false for addresses
// that do not follow the scheme.
func ParseReplyAddress(addr string) (userID, teamID string, ok bool) {
	local, _, found := strings.Cut(addr, "@")
	if !found {
		return "", "", false
	}

	rest, found := strings.CutPrefix(local, "update-")
	if !found {
		return "", "", false
	}

	// user ids may themselves contain dashes, team ids are hex tokens
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}

	return rest[:idx], rest[idx+1:], true
}
