package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Announcement is authored by an authority, optionally on behalf of a
// department, and targeted at a subset of roles.
type Announcement struct {
	ID               uuid.UUID
	Title            string
	Description      string
	AnnounceForRoles []string
	Channels         []string
	Attachments      []string
	CitizenReactions string
	Comments         string
	AuthorityID      uuid.UUID
	DepartmentID     *uuid.UUID
	CreatedAt        time.Time
}

// Communication is a message from a department to an authority.
type Communication struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	ReceiverID  uuid.UUID
	Message     string
	Timestamp   time.Time
	Attachments []string
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) (*Announcement, error)
	Count(ctx context.Context) (int64, error)
}

type CommunicationRepository interface {
	Create(ctx context.Context, c *Communication) (*Communication, error)
	Count(ctx context.Context) (int64, error)
}
