package api

import (
	"time"

	"remotesync/internal/models"
)

type TeamSchema struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	OwnerID          string              `json:"owner_id"`
	Settings         models.TeamSettings `json:"settings"`
	ReportRecipients []string            `json:"report_recipients"`
	InviteToken      string              `json:"invite_token"`
}

type TeamResponse struct {
	Team TeamSchema `json:"team"`
}

type MemberSchema struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
}

type MembersResponse struct {
	Members []MemberSchema `json:"members"`
}

type EntrySchema struct {
	ID        int64     `json:"id"`
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text,omitempty"`
	Summary   string    `json:"summary"`
	AudioURL  string    `json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EntryResponse struct {
	Entry EntrySchema `json:"entry"`
}

type DashboardResponse struct {
	Teams   []TeamSchema  `json:"teams"`
	Entries []EntrySchema `json:"entries"`
}

func TeamToSchema(team *models.Team) TeamSchema {
	return TeamSchema{
		ID:               team.ID,
		Name:             team.Name,
		OwnerID:          team.OwnerID,
		Settings:         team.Settings,
		ReportRecipients: team.ReportRecipients,
		InviteToken:      team.InviteToken,
	}
}

func EntryToSchema(entry *models.StandupEntry) EntrySchema {
	schema := EntrySchema{
		ID:        entry.ID,
		TeamID:    entry.TeamID,
		UserID:    entry.UserID,
		Summary:   entry.Summary,
		CreatedAt: entry.CreatedAt,
	}
	if entry.Text != nil {
		schema.Text = *entry.Text
	}
	if entry.AudioURL != nil {
		schema.AudioURL = *entry.AudioURL
	}
	return schema
}
