package models

import (
	"time"

	"github.com/lib/pq"
)

type Team struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	OwnerID          string         `db:"owner_id"`
	Settings         TeamSettings   `db:"settings"`
	ReportRecipients pq.StringArray `db:"report_recipients"`
	InviteToken      string         `db:"invite_token"`
	ReminderSentOn   *time.Time     `db:"reminder_sent_on"`
	ReportSentOn     *time.Time     `db:"report_sent_on"`
	CreatedAt        *time.Time     `db:"created_at"`
}
