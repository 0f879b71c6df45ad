package entry

import (
	"context"
	"errors"
	"time"

	"remotesync/internal/clients/identity"
	"remotesync/internal/http/api"
	"remotesync/internal/models"
	repo "remotesync/internal/repository"
	"remotesync/internal/service"
)

// SummaryPlaceholder is stored when summarization fails. Submissions never
// fail on a bad summary.
const SummaryPlaceholder = "(summary unavailable)"

// DashboardLookback bounds how far back dashboard entries reach.
const DashboardLookback = 7 * 24 * time.Hour

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntryStore
type EntryStore interface {
	Save(ctx context.Context, entry *models.StandupEntry) (int64, error)
	ListForTeamsSince(ctx context.Context, teamIDs []string, since time.Time) ([]*models.StandupEntry, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamReader
type TeamReader interface {
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Team, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MembershipReader
type MembershipReader interface {
	Get(ctx context.Context, teamID, userID string) (*models.TeamMember, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AudioUploader
type AudioUploader interface {
	UploadAudio(teamID, userID string, audio []byte, contentType string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Transcriber
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Summarizer
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type EntryService struct {
	entryStore  EntryStore
	teamReader  TeamReader
	memberships MembershipReader
	uploader    AudioUploader
	transcriber Transcriber
	summarizer  Summarizer
}

func NewEntryService(
	entryStore EntryStore,
	teamReader TeamReader,
	memberships MembershipReader,
	uploader AudioUploader,
	transcriber Transcriber,
	summarizer Summarizer,
) *EntryService {
	return &EntryService{
		entryStore:  entryStore,
		teamReader:  teamReader,
		memberships: memberships,
		uploader:    uploader,
		transcriber: transcriber,
		summarizer:  summarizer,
	}
}

// Submit runs the submission pipeline: upload and transcribe when audio is
// given, summarize, persist. A summarization failure degrades to the
// placeholder; every other adapter failure fails the submission.
func (s *EntryService) Submit(ctx context.Context, user *identity.User, teamID, text string, audio []byte, contentType string) (*api.EntrySchema, error) {
	if text == "" && len(audio) == 0 {
		return nil, service.ErrEmptySubmission
	}

	if _, err := s.teamReader.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	if _, err := s.memberships.Get(ctx, teamID, user.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrNotMember
		}
		return nil, err
	}

	entry := &models.StandupEntry{
		TeamID: teamID,
		UserID: user.ID,
	}

	if len(audio) > 0 {
		url, err := s.uploader.UploadAudio(teamID, user.ID, audio, contentType)
		if err != nil {
			return nil, err
		}
		entry.AudioURL = &url

		transcript, err := s.transcriber.Transcribe(ctx, audio)
		if err != nil {
			return nil, err
		}
		text = transcript
	}

	entry.Text = &text

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil || summary == "" {
		summary = SummaryPlaceholder
	}
	entry.Summary = summary

	if _, err := s.entryStore.Save(ctx, entry); err != nil {
		return nil, err
	}

	resp := api.EntryToSchema(entry)
	return &resp, nil
}

// Dashboard returns the caller's teams and their entries over the lookback
// window.
func (s *EntryService) Dashboard(ctx context.Context, userID string) (*api.DashboardResponse, error) {
	teams, err := s.teamReader.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &api.DashboardResponse{
		Teams:   make([]api.TeamSchema, 0, len(teams)),
		Entries: []api.EntrySchema{},
	}

	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
		resp.Teams = append(resp.Teams, api.TeamToSchema(t))
	}

	entries, err := s.entryStore.ListForTeamsSince(ctx, teamIDs, time.Now().UTC().Add(-DashboardLookback))
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		resp.Entries = append(resp.Entries, api.EntryToSchema(e))
	}

	return resp, nil
}
