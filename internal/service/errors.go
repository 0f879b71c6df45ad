package service

import "errors"

var (
	// ErrNotOwner rejects owner-only actions attempted by other members.
	ErrNotOwner = errors.New("only the team owner may perform this action")

	// ErrOwnerImmutable rejects any attempt to remove the owner membership.
	ErrOwnerImmutable = errors.New("owner cannot be removed")

	ErrNotMember       = errors.New("user is not a member of this team")
	ErrInvalidInvite   = errors.New("invalid invite token")
	ErrEmptySubmission = errors.New("either text or audio is required")
)
