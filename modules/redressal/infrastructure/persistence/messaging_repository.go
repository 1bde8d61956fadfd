package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/messaging"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

const (
	announcementInsertQuery = `
		INSERT INTO announcements (
			id, title, description, announce_for_roles, channels, attachments,
			citizen_reactions, comments, authority_id, department_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING created_at`

	announcementCountQuery = `SELECT COUNT(id) FROM announcements`

	communicationInsertQuery = `
		INSERT INTO communications (id, sender_id, receiver_id, message, timestamp, attachments)
		VALUES ($1, $2, $3, $4, $5, $6)`

	communicationCountQuery = `SELECT COUNT(id) FROM communications`
)

type PgAnnouncementRepository struct{}

func NewAnnouncementRepository() messaging.AnnouncementRepository {
	return &PgAnnouncementRepository{}
}

func (r *PgAnnouncementRepository) Create(ctx context.Context, a *messaging.Announcement) (*messaging.Announcement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *a
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if created.Channels == nil {
		created.Channels = []string{}
	}
	if created.Attachments == nil {
		created.Attachments = []string{}
	}
	if err := tx.QueryRow(ctx, announcementInsertQuery,
		created.ID, created.Title, created.Description,
		created.AnnounceForRoles, created.Channels, created.Attachments,
		created.CitizenReactions, created.Comments, created.AuthorityID, created.DepartmentID,
	).Scan(&created.CreatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to create announcement %q", a.Title)
	}
	return &created, nil
}

func (r *PgAnnouncementRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, announcementCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count announcements")
	}
	return count, nil
}

type PgCommunicationRepository struct{}

func NewCommunicationRepository() messaging.CommunicationRepository {
	return &PgCommunicationRepository{}
}

func (r *PgCommunicationRepository) Create(ctx context.Context, c *messaging.Communication) (*messaging.Communication, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *c
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if created.Attachments == nil {
		created.Attachments = []string{}
	}
	if _, err := tx.Exec(ctx, communicationInsertQuery,
		created.ID, created.SenderID, created.ReceiverID, created.Message, created.Timestamp, created.Attachments,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create communication")
	}
	return &created, nil
}

func (r *PgCommunicationRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, communicationCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count communications")
	}
	return count, nil
}
