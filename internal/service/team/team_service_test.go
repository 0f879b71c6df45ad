package team_test

import (
	"context"
	"errors"
	"testing"

	"remotesync/internal/clients/identity"
	"remotesync/internal/models"
	repo "remotesync/internal/repository"
	"remotesync/internal/service"
	"remotesync/internal/service/mocks"
	"remotesync/internal/service/team"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func owner() *identity.User {
	return &identity.User{ID: "u1", FirstName: "Tony", LastName: "Stark", Email: "tony@x.com"}
}

func TestTeamService_Create_OwnerBecomesMember(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockTeamProvider.On("Create", ctx, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.Name == "Eng" && tm.OwnerID == "u1" && tm.ID != "" && tm.InviteToken != ""
	})).Return(nil)

	mockMemberProvider.On("Add", ctx, mock.MatchedBy(func(m *models.TeamMember) bool {
		return m.UserID == "u1" && m.Role == models.RoleOwner
	})).Return(true, nil)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	svc := team.NewTeamService(mockTRM, mockTeamProvider, mockMemberProvider, nil, nil, nil)

	resp, err := svc.Create(ctx, owner(), "Eng", models.TeamSettings{})

	assert.NoError(t, err)
	assert.Equal(t, "Eng", resp.Name)
	assert.Equal(t, "u1", resp.OwnerID)
	assert.NotEmpty(t, resp.InviteToken)
}

func TestTeamService_Create_InvalidSettings(t *testing.T) {
	ctx := context.Background()

	badHour := 25
	svc := team.NewTeamService(nil, nil, nil, nil, nil, nil)

	resp, err := svc.Create(ctx, owner(), "Eng", models.TeamSettings{ReminderHour: &badHour})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrInvalidSettings)
}

func TestTeamService_Invite_SendsPerEmail(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)
	mockInviteProvider := mocks.NewInviteProvider(t)
	mockSender := mocks.NewInviteSender(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1", InviteToken: "tok"}

	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)
	mockMemberProvider.On("Get", ctx, "t1", "u1").
		Return(&models.TeamMember{TeamID: "t1", UserID: "u1", Role: models.RoleOwner}, nil)

	for _, email := range []string{"a@x.com", "b@x.com"} {
		email := email
		mockInviteProvider.On("Create", ctx, mock.MatchedBy(func(inv *models.Invite) bool {
			return inv.TeamID == "t1" && inv.Email == email &&
				inv.Token == "tok" && inv.Status == models.InvitePending
		})).Return(nil)
		mockSender.On("SendInvite", ctx, email, "Eng", "tok").Return(nil)
	}

	svc := team.NewTeamService(nil, mockTeamProvider, mockMemberProvider, mockInviteProvider, nil, mockSender)

	err := svc.Invite(ctx, owner(), "t1", []string{"a@x.com", "b@x.com"})

	assert.NoError(t, err)
}

func TestTeamService_Invite_NotMember(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1", InviteToken: "tok"}

	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)
	mockMemberProvider.On("Get", ctx, "t1", "u9").Return(nil, repo.ErrNotFound)

	svc := team.NewTeamService(nil, mockTeamProvider, mockMemberProvider, nil, nil, nil)

	stranger := &identity.User{ID: "u9", Email: "x@y.com"}
	err := svc.Invite(ctx, stranger, "t1", []string{"a@x.com"})

	assert.ErrorIs(t, err, service.ErrNotMember)
}

func TestTeamService_Accept_Idempotent(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)
	mockInviteProvider := mocks.NewInviteProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1", InviteToken: "tok"}
	joiner := &identity.User{ID: "u2", Email: "a@x.com"}

	mockTeamProvider.On("GetByInviteToken", ctx, "tok").Return(tm, nil).Twice()

	// first call inserts, second hits ON CONFLICT DO NOTHING
	mockMemberProvider.On("Add", ctx, mock.MatchedBy(func(m *models.TeamMember) bool {
		return m.TeamID == "t1" && m.UserID == "u2" && m.Role == models.RoleMember
	})).Return(true, nil).Once()
	mockMemberProvider.On("Add", ctx, mock.Anything).Return(false, nil).Once()

	mockInviteProvider.On("MarkAccepted", ctx, "t1", "a@x.com").Return(nil).Twice()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Twice()

	svc := team.NewTeamService(mockTRM, mockTeamProvider, mockMemberProvider, mockInviteProvider, nil, nil)

	first, err := svc.Accept(ctx, joiner, "tok")
	assert.NoError(t, err)
	assert.Equal(t, "t1", first.ID)

	second, err := svc.Accept(ctx, joiner, "tok")
	assert.NoError(t, err)
	assert.Equal(t, "t1", second.ID)
}

func TestTeamService_Accept_InvalidToken(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockTeamProvider.On("GetByInviteToken", ctx, "nope").Return(nil, repo.ErrNotFound)

	svc := team.NewTeamService(nil, mockTeamProvider, nil, nil, nil, nil)

	resp, err := svc.Accept(ctx, owner(), "nope")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrInvalidInvite)
}

func TestTeamService_UpdateSettings_NotOwner(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)

	svc := team.NewTeamService(nil, mockTeamProvider, nil, nil, nil, nil)

	stranger := &identity.User{ID: "u2", Email: "a@x.com"}
	resp, err := svc.UpdateSettings(ctx, stranger, "t1", &models.TeamSettings{}, nil)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrNotOwner)
}

func TestTeamService_UpdateSettings_MergePatch(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	nine := 9
	seventeen := 17
	tm := &models.Team{
		ID:               "t1",
		Name:             "Eng",
		OwnerID:          "u1",
		Settings:         models.TeamSettings{ReminderHour: &seventeen},
		ReportRecipients: []string{"lead@x.com"},
	}

	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)
	mockTeamProvider.On("UpdateSettings", ctx, "t1", mock.MatchedBy(func(s models.TeamSettings) bool {
		// patched report hour, untouched reminder hour
		return s.ReportHour != nil && *s.ReportHour == 9 &&
			s.ReminderHour != nil && *s.ReminderHour == 17
	}), []string{"lead@x.com"}).Return(nil)

	svc := team.NewTeamService(nil, mockTeamProvider, nil, nil, nil, nil)

	resp, err := svc.UpdateSettings(ctx, owner(), "t1", &models.TeamSettings{ReportHour: &nine}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 9, *resp.Settings.ReportHour)
	assert.Equal(t, 17, *resp.Settings.ReminderHour)
}

func TestTeamService_RemoveMember_OwnerImmutable(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)

	svc := team.NewTeamService(nil, mockTeamProvider, nil, nil, nil, nil)

	err := svc.RemoveMember(ctx, owner(), "t1", "u1")

	assert.ErrorIs(t, err, service.ErrOwnerImmutable)
}

func TestTeamService_RemoveMember_NotOwnerCaller(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)

	svc := team.NewTeamService(nil, mockTeamProvider, nil, nil, nil, nil)

	stranger := &identity.User{ID: "u2", Email: "a@x.com"}
	err := svc.RemoveMember(ctx, stranger, "t1", "u3")

	assert.ErrorIs(t, err, service.ErrNotOwner)
}

func TestTeamService_RemoveMember_Success(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)
	mockMemberProvider.On("Remove", ctx, "t1", "u2").Return(nil)

	svc := team.NewTeamService(nil, mockTeamProvider, mockMemberProvider, nil, nil, nil)

	err := svc.RemoveMember(ctx, owner(), "t1", "u2")

	assert.NoError(t, err)
}

func TestTeamService_Members_BatchProfileLookup(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)
	mockDirectory := mocks.NewDirectory(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
	members := []*models.TeamMember{
		{TeamID: "t1", UserID: "u1", Role: models.RoleOwner},
		{TeamID: "t1", UserID: "u2", Role: models.RoleMember},
	}

	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)
	mockMemberProvider.On("Get", ctx, "t1", "u1").Return(members[0], nil)
	mockMemberProvider.On("List", ctx, "t1").Return(members, nil)

	// single multi-id lookup, never one call per member
	mockDirectory.On("Users", ctx, []string{"u1", "u2"}).Return([]*identity.User{
		{ID: "u1", FirstName: "Tony", LastName: "Stark", Email: "tony@x.com"},
		{ID: "u2", FirstName: "Steve", LastName: "Rogers", Email: "steve@x.com"},
	}, nil).Once()

	svc := team.NewTeamService(nil, mockTeamProvider, mockMemberProvider, nil, mockDirectory, nil)

	resp, err := svc.Members(ctx, owner(), "t1")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Tony Stark", resp[0].Name)
	assert.Equal(t, models.RoleOwner, resp[0].Role)
	assert.Equal(t, "steve@x.com", resp[1].Email)
}

func TestTeamService_Members_ListError(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockMemberProvider := mocks.NewMemberProvider(t)

	tm := &models.Team{ID: "t1", Name: "Eng", OwnerID: "u1"}
	listErr := errors.New("members fetch failed")

	mockTeamProvider.On("GetByID", ctx, "t1").Return(tm, nil)
	mockMemberProvider.On("Get", ctx, "t1", "u1").
		Return(&models.TeamMember{TeamID: "t1", UserID: "u1", Role: models.RoleOwner}, nil)
	mockMemberProvider.On("List", ctx, "t1").Return(nil, listErr)

	svc := team.NewTeamService(nil, mockTeamProvider, mockMemberProvider, nil, nil, nil)

	resp, err := svc.Members(ctx, owner(), "t1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, listErr)
}
