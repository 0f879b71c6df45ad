package team

import (
	"context"
	"errors"

	"remotesync/internal/clients/identity"
	"remotesync/internal/http/api"
	"remotesync/internal/lib"
	"remotesync/internal/models"
	repo "remotesync/internal/repository"
	"remotesync/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	GetByInviteToken(ctx context.Context, token string) (*models.Team, error)
	UpdateSettings(ctx context.Context, teamID string, settings models.TeamSettings, recipients []string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberProvider
type MemberProvider interface {
	Add(ctx context.Context, member *models.TeamMember) (bool, error)
	Get(ctx context.Context, teamID, userID string) (*models.TeamMember, error)
	List(ctx context.Context, teamID string) ([]*models.TeamMember, error)
	Remove(ctx context.Context, teamID, userID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InviteProvider
type InviteProvider interface {
	Create(ctx context.Context, invite *models.Invite) error
	MarkAccepted(ctx context.Context, teamID, email string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Directory
type Directory interface {
	Users(ctx context.Context, userIDs []string) ([]*identity.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InviteSender
type InviteSender interface {
	SendInvite(ctx context.Context, email, teamName, token string) error
}

type TeamService struct {
	trm            service.TransactionManager
	teamProvider   TeamProvider
	memberProvider MemberProvider
	inviteProvider InviteProvider
	directory      Directory
	sender         InviteSender
}

func NewTeamService(
	trm service.TransactionManager,
	teamProvider TeamProvider,
	memberProvider MemberProvider,
	inviteProvider InviteProvider,
	directory Directory,
	sender InviteSender,
) *TeamService {
	return &TeamService{
		trm:            trm,
		teamProvider:   teamProvider,
		memberProvider: memberProvider,
		inviteProvider: inviteProvider,
		directory:      directory,
		sender:         sender,
	}
}

// Create stores the team and its owner membership in one transaction.
func (s *TeamService) Create(ctx context.Context, owner *identity.User, name string, settings models.TeamSettings) (*api.TeamSchema, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	team := &models.Team{
		ID:               lib.NewToken(),
		Name:             name,
		OwnerID:          owner.ID,
		Settings:         settings,
		ReportRecipients: []string{},
		InviteToken:      lib.NewToken(),
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.teamProvider.Create(ctx, team); err != nil {
			return err
		}

		_, err := s.memberProvider.Add(ctx, &models.TeamMember{
			TeamID: team.ID,
			UserID: owner.ID,
			Role:   models.RoleOwner,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := api.TeamToSchema(team)
	return &resp, nil
}

// Invite records an invite row per address and mails each one a join link
// carrying the team's reusable invite token. Any member may invite.
func (s *TeamService) Invite(ctx context.Context, caller *identity.User, teamID string, emails []string) error {
	team, err := s.teamProvider.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	if _, err := s.memberProvider.Get(ctx, teamID, caller.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return service.ErrNotMember
		}
		return err
	}

	for _, email := range emails {
		invite := &models.Invite{
			ID:     lib.NewToken(),
			TeamID: team.ID,
			Email:  email,
			Token:  team.InviteToken,
			Status: models.InvitePending,
		}

		if err := s.inviteProvider.Create(ctx, invite); err != nil {
			return err
		}

		if err := s.sender.SendInvite(ctx, email, team.Name, team.InviteToken); err != nil {
			return err
		}
	}

	return nil
}

// Accept joins the token's team. Repeat acceptance by the same user is a
// no-op success.
func (s *TeamService) Accept(ctx context.Context, user *identity.User, token string) (*api.TeamSchema, error) {
	team, err := s.teamProvider.GetByInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrInvalidInvite
		}
		return nil, err
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		_, err := s.memberProvider.Add(ctx, &models.TeamMember{
			TeamID: team.ID,
			UserID: user.ID,
			Role:   models.RoleMember,
		})
		if err != nil {
			return err
		}

		return s.inviteProvider.MarkAccepted(ctx, team.ID, user.Email)
	})
	if err != nil {
		return nil, err
	}

	resp := api.TeamToSchema(team)
	return &resp, nil
}

// UpdateSettings merge-patches the schedule settings and replaces the
// recipient list when one is given. Owner-only.
func (s *TeamService) UpdateSettings(ctx context.Context, caller *identity.User, teamID string, patch *models.TeamSettings, recipients []string) (*api.TeamSchema, error) {
	team, err := s.teamProvider.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.OwnerID != caller.ID {
		return nil, service.ErrNotOwner
	}

	settings := team.Settings
	if patch != nil {
		settings = settings.Merge(*patch)
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}

	updated := team.ReportRecipients
	if recipients != nil {
		updated = recipients
	}

	if err := s.teamProvider.UpdateSettings(ctx, teamID, settings, updated); err != nil {
		return nil, err
	}

	team.Settings = settings
	team.ReportRecipients = updated

	resp := api.TeamToSchema(team)
	return &resp, nil
}

// RemoveMember drops a membership row. Owner-only, and the owner row
// itself can never be removed.
func (s *TeamService) RemoveMember(ctx context.Context, caller *identity.User, teamID, memberID string) error {
	team, err := s.teamProvider.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	if team.OwnerID != caller.ID {
		return service.ErrNotOwner
	}

	if memberID == team.OwnerID {
		return service.ErrOwnerImmutable
	}

	return s.memberProvider.Remove(ctx, teamID, memberID)
}

// Members joins membership rows with identity profiles fetched in a single
// batch query.
func (s *TeamService) Members(ctx context.Context, caller *identity.User, teamID string) ([]api.MemberSchema, error) {
	if _, err := s.teamProvider.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	if _, err := s.memberProvider.Get(ctx, teamID, caller.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrNotMember
		}
		return nil, err
	}

	members, err := s.memberProvider.List(ctx, teamID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}

	profiles, err := s.directory.Users(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*identity.User, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	resp := make([]api.MemberSchema, 0, len(members))
	for _, m := range members {
		schema := api.MemberSchema{
			UserID: m.UserID,
			Role:   m.Role,
		}
		if p, ok := byID[m.UserID]; ok {
			schema.Name = p.FullName()
			schema.Email = p.Email
			schema.AvatarURL = p.AvatarURL
		}
		resp = append(resp, schema)
	}

	return resp, nil
}
