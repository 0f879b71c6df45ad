package models

import "time"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type TeamMember struct {
	TeamID    string     `db:"team_id"`
	UserID    string     `db:"user_id"`
	Role      string     `db:"role"`
	CreatedAt *time.Time `db:"created_at"`
}
