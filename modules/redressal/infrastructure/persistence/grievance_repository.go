package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/grievance"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

var ErrGrievanceNotFound = errors.New("grievance not found")

const (
	grievanceSelectQuery = `
		SELECT
			g.id,
			g.title,
			g.complaint,
			g.complaint_type,
			g.category,
			g.subcategory,
			g.status,
			g.urgency_level,
			g.priority_level,
			g.is_anonymous,
			g.current_level,
			g.economic_impact,
			g.social_impact,
			g.environmental_impact,
			g.emotion,
			g.related_policies,
			g.resolution_days,
			g.department_id,
			g.user_id,
			g.location_id,
			g.submission_date,
			g.last_updated_date,
			g.created_at
		FROM grievances g`

	grievanceInsertQuery = `
		INSERT INTO grievances (
			id, title, complaint, complaint_type, category, subcategory,
			status, urgency_level, priority_level, is_anonymous, current_level,
			economic_impact, social_impact, environmental_impact, emotion, related_policies,
			resolution_days, department_id, user_id, location_id,
			submission_date, last_updated_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, now()
		)
		RETURNING created_at`

	grievanceCountQuery = `SELECT COUNT(id) FROM grievances`
)

type PgGrievanceRepository struct{}

func NewGrievanceRepository() grievance.Repository {
	return &PgGrievanceRepository{}
}

func (r *PgGrievanceRepository) Create(ctx context.Context, g *grievance.Grievance) (*grievance.Grievance, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *g
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if err := tx.QueryRow(ctx, grievanceInsertQuery,
		created.ID, created.Title, strOrNil(created.Complaint), created.ComplaintType,
		created.Category, created.Subcategory,
		string(created.Status), string(created.UrgencyLevel), string(created.PriorityLevel),
		created.IsAnonymous, created.CurrentLevel,
		strOrNil(created.EconomicImpact), strOrNil(created.SocialImpact),
		strOrNil(created.EnvironmentalImpact), strOrNil(created.Emotion), strOrNil(created.RelatedPolicies),
		created.ResolutionDays, created.DepartmentID, created.UserID, created.LocationID,
		created.SubmissionDate, created.LastUpdatedDate,
	).Scan(&created.CreatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to create grievance %q", g.Title)
	}
	return &created, nil
}

func (r *PgGrievanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*grievance.Grievance, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var m models.Grievance
	if err := tx.QueryRow(ctx, grievanceSelectQuery+` WHERE g.id = $1`, id).Scan(
		&m.ID, &m.Title, &m.Complaint, &m.ComplaintType, &m.Category, &m.Subcategory,
		&m.Status, &m.UrgencyLevel, &m.PriorityLevel, &m.IsAnonymous, &m.CurrentLevel,
		&m.EconomicImpact, &m.SocialImpact, &m.EnvironmentalImpact, &m.Emotion, &m.RelatedPolicies,
		&m.ResolutionDays, &m.DepartmentID, &m.UserID, &m.LocationID,
		&m.SubmissionDate, &m.LastUpdatedDate, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGrievanceNotFound
		}
		return nil, errors.Wrap(err, "failed to scan grievance")
	}
	return ToDomainGrievance(&m), nil
}

func (r *PgGrievanceRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, grievanceCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count grievances")
	}
	return count, nil
}
