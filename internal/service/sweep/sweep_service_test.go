package sweep_test

import (
	"context"
	"testing"
	"time"

	"remotesync/internal/clients/identity"
	"remotesync/internal/clients/mailbox"
	"remotesync/internal/http/api"
	"remotesync/internal/lib/sl"
	"remotesync/internal/models"
	"remotesync/internal/service/mocks"
	"remotesync/internal/service/sweep"

	"github.com/stretchr/testify/mock"
)

// 2025-06-06 is a Friday.
var friday = time.Date(2025, time.June, 6, 17, 0, 0, 0, time.UTC)

func newTeam() *models.Team {
	return &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
}

func TestSweepService_Remind_DueMembersOnly(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockMembers := mocks.NewMemberLister(t)
	mockEntries := mocks.NewEntryReader(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockSender := mocks.NewReportSender(t)

	// default reminder hour, 17:00 UTC
	team := newTeam()
	midnight := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{team}, nil)
	mockMembers.On("List", ctx, "t1").Return([]*models.TeamMember{
		{TeamID: "t1", UserID: "u1", Role: models.RoleOwner},
		{TeamID: "t1", UserID: "u2", Role: models.RoleMember},
		{TeamID: "t1", UserID: "u3", Role: models.RoleMember},
	}, nil)
	mockEntries.On("DistinctAuthorsSince", ctx, "t1", midnight).Return([]string{"u2"}, nil)
	mockDirectory.On("Users", ctx, []string{"u1", "u3"}).Return([]*identity.User{
		{ID: "u1", Email: "tony@x.com"},
		{ID: "u3", Email: "nat@x.com"},
	}, nil)
	mockSender.On("SendReminder", ctx, "tony@x.com", "u1", "t1").Return(nil)
	mockSender.On("SendReminder", ctx, "nat@x.com", "u3", "t1").Return(nil)
	mockTeams.On("MarkReminded", ctx, "t1", midnight).Return(nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, mockMembers, mockEntries, mockDirectory, mockSender, nil, nil)

	svc.Run(ctx, friday)
}

func TestSweepService_Remind_OffHour(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockMembers := mocks.NewMemberLister(t)
	mockSender := mocks.NewReportSender(t)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{newTeam()}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, mockMembers, nil, nil, mockSender, nil, nil)

	// 03:00 matches neither the reminder hour nor the report hour
	svc.Run(ctx, friday.Add(-14*time.Hour))

	mockMembers.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	mockSender.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepService_Remind_OncePerDay(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockSender := mocks.NewReportSender(t)

	sentAt := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	team := newTeam()
	team.ReminderSentOn = &sentAt

	mockTeams.On("ListAll", ctx).Return([]*models.Team{team}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, nil, nil, mockSender, nil, nil)

	svc.Run(ctx, friday)

	mockSender.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockTeams.AssertNotCalled(t, "MarkReminded", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepService_Remind_AllSubmitted(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockMembers := mocks.NewMemberLister(t)
	mockEntries := mocks.NewEntryReader(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockSender := mocks.NewReportSender(t)

	midnight := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{newTeam()}, nil)
	mockMembers.On("List", ctx, "t1").Return([]*models.TeamMember{
		{TeamID: "t1", UserID: "u1", Role: models.RoleOwner},
	}, nil)
	mockEntries.On("DistinctAuthorsSince", ctx, "t1", midnight).Return([]string{"u1"}, nil)
	mockTeams.On("MarkReminded", ctx, "t1", midnight).Return(nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, mockMembers, mockEntries, mockDirectory, mockSender, nil, nil)

	svc.Run(ctx, friday)

	mockSender.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockDirectory.AssertNotCalled(t, "Users", mock.Anything, mock.Anything)
}

func TestSweepService_Report_DailyDigest(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockMembers := mocks.NewMemberLister(t)
	mockEntries := mocks.NewEntryReader(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockSender := mocks.NewReportSender(t)

	eighteen := 18
	team := newTeam()
	team.Settings = models.TeamSettings{ReportHour: &eighteen}
	team.ReportRecipients = []string{"lead@x.com"}
	// reminder already sent today so only the report pass fires
	sentAt := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	team.ReminderSentOn = &sentAt

	now := time.Date(2025, time.June, 6, 18, 0, 0, 0, time.UTC)
	midnight := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{team}, nil)
	mockEntries.On("ListTeamSince", ctx, "t1", now.Add(-24*time.Hour)).
		Return([]*models.StandupEntry{
			{ID: 1, TeamID: "t1", UserID: "u2", Summary: "shipped login"},
			{ID: 2, TeamID: "t1", UserID: "u3", Summary: "fixed deploy"},
		}, nil)
	mockDirectory.On("Users", ctx, []string{"u2", "u3"}).Return([]*identity.User{
		{ID: "u2", FirstName: "Steve", LastName: "Rogers"},
		{ID: "u3", FirstName: "Natasha", LastName: "Romanoff"},
	}, nil)
	mockSender.On("SendReport", ctx, []string{"lead@x.com"}, "Eng",
		"Steve Rogers:\nshipped login\n\nNatasha Romanoff:\nfixed deploy").Return(nil)
	mockTeams.On("MarkReported", ctx, "t1", midnight).Return(nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, mockMembers, mockEntries, mockDirectory, mockSender, nil, nil)

	svc.Run(ctx, now)
}

func TestSweepService_Report_WeeklyLookback(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockEntries := mocks.NewEntryReader(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockSender := mocks.NewReportSender(t)

	eighteen := 18
	day := "friday"
	team := newTeam()
	team.Settings = models.TeamSettings{ReportHour: &eighteen, WeeklyReportDay: &day}
	team.ReportRecipients = []string{"lead@x.com"}
	sentAt := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	team.ReminderSentOn = &sentAt

	now := time.Date(2025, time.June, 6, 18, 0, 0, 0, time.UTC)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{team}, nil)
	mockEntries.On("ListTeamSince", ctx, "t1", now.Add(-7*24*time.Hour)).
		Return([]*models.StandupEntry{
			{ID: 1, TeamID: "t1", UserID: "u2", Summary: "week of work"},
		}, nil)
	mockDirectory.On("Users", ctx, []string{"u2"}).Return([]*identity.User{
		{ID: "u2", FirstName: "Steve", LastName: "Rogers"},
	}, nil)
	mockSender.On("SendReport", ctx, []string{"lead@x.com"}, "Eng",
		"Steve Rogers:\nweek of work").Return(nil)
	mockTeams.On("MarkReported", ctx, "t1", mock.AnythingOfType("time.Time")).Return(nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, mockEntries, mockDirectory, mockSender, nil, nil)

	svc.Run(ctx, now)
}

func TestSweepService_Report_NoEntries(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockEntries := mocks.NewEntryReader(t)
	mockSender := mocks.NewReportSender(t)

	eighteen := 18
	team := newTeam()
	team.Settings = models.TeamSettings{ReportHour: &eighteen}
	team.ReportRecipients = []string{"lead@x.com"}
	sentAt := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	team.ReminderSentOn = &sentAt

	now := time.Date(2025, time.June, 6, 18, 0, 0, 0, time.UTC)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{team}, nil)
	mockEntries.On("ListTeamSince", ctx, "t1", now.Add(-24*time.Hour)).
		Return([]*models.StandupEntry{}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, mockEntries, nil, mockSender, nil, nil)

	svc.Run(ctx, now)

	mockSender.AssertNotCalled(t, "SendReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockTeams.AssertNotCalled(t, "MarkReported", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepService_Report_NoRecipients(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockEntries := mocks.NewEntryReader(t)
	mockSender := mocks.NewReportSender(t)

	eighteen := 18
	team := newTeam()
	team.Settings = models.TeamSettings{ReportHour: &eighteen}
	sentAt := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	team.ReminderSentOn = &sentAt

	now := time.Date(2025, time.June, 6, 18, 0, 0, 0, time.UTC)

	mockTeams.On("ListAll", ctx).Return([]*models.Team{team}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, mockEntries, nil, mockSender, nil, nil)

	svc.Run(ctx, now)

	mockEntries.AssertNotCalled(t, "ListTeamSince", mock.Anything, mock.Anything, mock.Anything)
	mockSender.AssertNotCalled(t, "SendReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepService_DrainInbox_CreatesEntry(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockInbox := mocks.NewInboxDrainer(t)
	mockSubmitter := mocks.NewEntryCreator(t)

	user := &identity.User{ID: "u2", FirstName: "Steve", LastName: "Rogers", Email: "steve@x.com"}

	mockInbox.On("FetchUnseen").Return([]mailbox.Inbound{
		{From: "steve@x.com", To: "update-u2-t1@reply.remotesync.dev", Text: "did code review\n"},
	}, nil)
	mockDirectory.On("Users", ctx, []string{"u2"}).Return([]*identity.User{user}, nil)
	mockSubmitter.On("Submit", ctx, user, "t1", "did code review", []byte(nil), "").
		Return(&api.EntrySchema{ID: 1, TeamID: "t1", UserID: "u2"}, nil)
	mockTeams.On("ListAll", ctx).Return([]*models.Team{}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, nil, mockDirectory, nil, mockInbox, mockSubmitter)

	svc.Run(ctx, friday.Add(-14*time.Hour))
}

func TestSweepService_DrainInbox_SenderMismatch(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockInbox := mocks.NewInboxDrainer(t)
	mockSubmitter := mocks.NewEntryCreator(t)

	mockInbox.On("FetchUnseen").Return([]mailbox.Inbound{
		{From: "impostor@evil.com", To: "update-u2-t1@reply.remotesync.dev", Text: "fake update"},
	}, nil)
	mockDirectory.On("Users", ctx, []string{"u2"}).Return([]*identity.User{
		{ID: "u2", Email: "steve@x.com"},
	}, nil)
	mockTeams.On("ListAll", ctx).Return([]*models.Team{}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, nil, mockDirectory, nil, mockInbox, mockSubmitter)

	svc.Run(ctx, friday.Add(-14*time.Hour))

	mockSubmitter.AssertNotCalled(t, "Submit",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepService_DrainInbox_UnrecognizedRecipient(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamSweeper(t)
	mockDirectory := mocks.NewProfileDirectory(t)
	mockInbox := mocks.NewInboxDrainer(t)
	mockSubmitter := mocks.NewEntryCreator(t)

	mockInbox.On("FetchUnseen").Return([]mailbox.Inbound{
		{From: "steve@x.com", To: "support@remotesync.dev", Text: "hello"},
	}, nil)
	mockTeams.On("ListAll", ctx).Return([]*models.Team{}, nil)

	svc := sweep.NewSweepService(sl.NewLogger(), mockTeams, nil, nil, mockDirectory, nil, mockInbox, mockSubmitter)

	svc.Run(ctx, friday.Add(-14*time.Hour))

	mockDirectory.AssertNotCalled(t, "Users", mock.Anything, mock.Anything)
	mockSubmitter.AssertNotCalled(t, "Submit",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
