package sweep

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"remotesync/internal/clients/identity"
	"remotesync/internal/clients/mailbox"
	"remotesync/internal/clients/mailer"
	"remotesync/internal/http/api"
	"remotesync/internal/lib/sl"
	"remotesync/internal/models"
)

const (
	dailyLookback  = 24 * time.Hour
	weeklyLookback = 7 * 24 * time.Hour
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamSweeper
type TeamSweeper interface {
	ListAll(ctx context.Context) ([]*models.Team, error)
	MarkReminded(ctx context.Context, teamID string, day time.Time) error
	MarkReported(ctx context.Context, teamID string, day time.Time) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberLister
type MemberLister interface {
	List(ctx context.Context, teamID string) ([]*models.TeamMember, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntryReader
type EntryReader interface {
	ListTeamSince(ctx context.Context, teamID string, since time.Time) ([]*models.StandupEntry, error)
	DistinctAuthorsSince(ctx context.Context, teamID string, since time.Time) ([]string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProfileDirectory
type ProfileDirectory interface {
	Users(ctx context.Context, userIDs []string) ([]*identity.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ReportSender
type ReportSender interface {
	SendReminder(ctx context.Context, email, userID, teamID string) error
	SendReport(ctx context.Context, recipients []string, teamName, body string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InboxDrainer
type InboxDrainer interface {
	FetchUnseen() ([]mailbox.Inbound, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntryCreator
type EntryCreator interface {
	Submit(ctx context.Context, user *identity.User, teamID, text string, audio []byte, contentType string) (*api.EntrySchema, error)
}

// SweepService is the periodic pass that ingests mailbox replies and sends
// reminder and digest emails. One run per tick; per-team failures are
// logged and never abort the rest of the pass.
type SweepService struct {
	log       *slog.Logger
	teams     TeamSweeper
	members   MemberLister
	entries   EntryReader
	directory ProfileDirectory
	sender    ReportSender
	inbox     InboxDrainer // nil when mailbox polling is disabled
	submitter EntryCreator
}

func NewSweepService(
	log *slog.Logger,
	teams TeamSweeper,
	members MemberLister,
	entries EntryReader,
	directory ProfileDirectory,
	sender ReportSender,
	inbox InboxDrainer,
	submitter EntryCreator,
) *SweepService {
	return &SweepService{
		log:       log,
		teams:     teams,
		members:   members,
		entries:   entries,
		directory: directory,
		sender:    sender,
		inbox:     inbox,
		submitter: submitter,
	}
}

// Run executes one sweep at the given wall-clock instant (UTC).
func (s *SweepService) Run(ctx context.Context, now time.Time) {
	const op = "sweep.Run"
	log := s.log.With(slog.String("op", op))

	if s.inbox != nil {
		s.drainInbox(ctx, log)
	}

	teams, err := s.teams.ListAll(ctx)
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		return
	}

	for _, team := range teams {
		if err := s.remind(ctx, team, now); err != nil {
			log.Error("reminder pass failed", slog.String("team_id", team.ID), sl.Err(err))
		}
		if err := s.report(ctx, team, now); err != nil {
			log.Error("report pass failed", slog.String("team_id", team.ID), sl.Err(err))
		}
	}
}

// drainInbox turns unread reply emails into standup entries. The reply-to
// address names the user and team; the sender address must match the
// user's profile email.
func (s *SweepService) drainInbox(ctx context.Context, log *slog.Logger) {
	messages, err := s.inbox.FetchUnseen()
	if err != nil {
		log.Error("failed to drain mailbox", sl.Err(err))
		return
	}

	for _, msg := range messages {
		userID, teamID, ok := mailer.ParseReplyAddress(msg.To)
		if !ok {
			log.Warn("inbound message with unrecognized recipient", slog.String("to", msg.To))
			continue
		}

		profiles, err := s.directory.Users(ctx, []string{userID})
		if err != nil || len(profiles) == 0 {
			log.Warn("could not resolve inbound sender", slog.String("user_id", userID))
			continue
		}

		user := profiles[0]
		if !strings.EqualFold(user.Email, msg.From) {
			log.Warn("inbound sender does not match profile email",
				slog.String("user_id", userID), slog.String("from", msg.From))
			continue
		}

		text := strings.TrimSpace(msg.Text)
		if text == "" {
			continue
		}

		if _, err := s.submitter.Submit(ctx, user, teamID, text, nil, ""); err != nil {
			log.Error("failed to ingest inbound entry",
				slog.String("user_id", userID), slog.String("team_id", teamID), sl.Err(err))
		}
	}
}

func (s *SweepService) remind(ctx context.Context, team *models.Team, now time.Time) error {
	if now.Hour() != team.Settings.ReminderHourOrDefault() {
		return nil
	}
	if sentToday(team.ReminderSentOn, now) {
		return nil
	}

	members, err := s.members.List(ctx, team.ID)
	if err != nil {
		return err
	}

	authors, err := s.entries.DistinctAuthorsSince(ctx, team.ID, midnight(now))
	if err != nil {
		return err
	}

	submitted := make(map[string]bool, len(authors))
	for _, id := range authors {
		submitted[id] = true
	}

	due := make([]string, 0, len(members))
	for _, m := range members {
		if !submitted[m.UserID] {
			due = append(due, m.UserID)
		}
	}

	if len(due) > 0 {
		profiles, err := s.directory.Users(ctx, due)
		if err != nil {
			return err
		}

		for _, p := range profiles {
			if err := s.sender.SendReminder(ctx, p.Email, p.ID, team.ID); err != nil {
				return err
			}
		}
	}

	return s.teams.MarkReminded(ctx, team.ID, midnight(now))
}

func (s *SweepService) report(ctx context.Context, team *models.Team, now time.Time) error {
	if now.Hour() != team.Settings.ReportHourOrDefault() {
		return nil
	}
	if sentToday(team.ReportSentOn, now) {
		return nil
	}
	if len(team.ReportRecipients) == 0 {
		return nil
	}

	lookback := dailyLookback
	if day := team.Settings.WeeklyReportDay; day != nil &&
		strings.EqualFold(*day, now.Weekday().String()) {
		lookback = weeklyLookback
	}

	entries, err := s.entries.ListTeamSince(ctx, team.ID, now.Add(-lookback))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	body, err := s.digest(ctx, entries)
	if err != nil {
		return err
	}

	if err := s.sender.SendReport(ctx, team.ReportRecipients, team.Name, body); err != nil {
		return err
	}

	return s.teams.MarkReported(ctx, team.ID, midnight(now))
}

// digest renders entries as "name:\nsummary" blocks, resolving author names
// with one batch profile lookup.
func (s *SweepService) digest(ctx context.Context, entries []*models.StandupEntry) (string, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !seen[e.UserID] {
			seen[e.UserID] = true
			ids = append(ids, e.UserID)
		}
	}

	names := make(map[string]string, len(ids))
	profiles, err := s.directory.Users(ctx, ids)
	if err != nil {
		return "", err
	}
	for _, p := range profiles {
		names[p.ID] = p.FullName()
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		name := names[e.UserID]
		if name == "" {
			name = e.UserID
		}
		b.WriteString(name)
		b.WriteString(":\n")
		b.WriteString(e.Summary)
	}

	return b.String(), nil
}

func midnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func sentToday(sentOn *time.Time, now time.Time) bool {
	if sentOn == nil {
		return false
	}
	y1, m1, d1 := sentOn.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
