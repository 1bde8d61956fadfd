package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

var ErrAuthorityNotFound = errors.New("authority not found")

const (
	authoritySelectQuery = `
		SELECT
			a.id,
			a.source_id,
			a.name,
			a.email,
			a.role,
			a.level,
			a.is_active,
			a.parent_id,
			a.department_id,
			a.assigned_region,
			a.jurisdiction,
			a.designation,
			a.contact_number,
			a.office_address,
			a.block_jurisdiction,
			a.panchayat_area,
			a.ward_number,
			a.specialization,
			a.field_area,
			a.gram_sabha_area,
			a.village_count,
			a.panchayat_details,
			a.panchayat_workers,
			a.panchayat_officers,
			a.created_at,
			a.updated_at
		FROM authorities a`

	// The upsert key is the derived email; relationship columns are managed
	// separately by the second linking pass and are not touched here.
	authorityUpsertQuery = `
		INSERT INTO authorities (
			id, source_id, name, email, role, level, is_active,
			assigned_region, jurisdiction, designation, contact_number, office_address,
			block_jurisdiction, panchayat_area, ward_number, specialization, field_area,
			gram_sabha_area, village_count, panchayat_details, panchayat_workers, panchayat_officers,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			now(), now()
		)
		ON CONFLICT (email) DO UPDATE SET
			source_id = EXCLUDED.source_id,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			level = EXCLUDED.level,
			is_active = EXCLUDED.is_active,
			assigned_region = EXCLUDED.assigned_region,
			jurisdiction = EXCLUDED.jurisdiction,
			designation = EXCLUDED.designation,
			contact_number = EXCLUDED.contact_number,
			office_address = EXCLUDED.office_address,
			block_jurisdiction = EXCLUDED.block_jurisdiction,
			panchayat_area = EXCLUDED.panchayat_area,
			ward_number = EXCLUDED.ward_number,
			specialization = EXCLUDED.specialization,
			field_area = EXCLUDED.field_area,
			gram_sabha_area = EXCLUDED.gram_sabha_area,
			village_count = EXCLUDED.village_count,
			panchayat_details = EXCLUDED.panchayat_details,
			panchayat_workers = EXCLUDED.panchayat_workers,
			panchayat_officers = EXCLUDED.panchayat_officers,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	authoritySetRelationsQuery = `
		UPDATE authorities
		SET parent_id = COALESCE($2, parent_id),
			department_id = COALESCE($3, department_id),
			updated_at = now()
		WHERE id = $1`

	authoritySetParentQuery = `
		UPDATE authorities SET parent_id = $2, updated_at = now() WHERE id = $1`

	authorityCountQuery = `SELECT COUNT(a.id) FROM authorities a`
)

type PgAuthorityRepository struct{}

func NewAuthorityRepository() authority.Repository {
	return &PgAuthorityRepository{}
}

func (r *PgAuthorityRepository) scanOne(row pgx.Row) (*authority.Authority, error) {
	var m models.Authority
	if err := row.Scan(
		&m.ID, &m.SourceID, &m.Name, &m.Email, &m.Role, &m.Level, &m.IsActive,
		&m.ParentID, &m.DepartmentID,
		&m.AssignedRegion, &m.Jurisdiction, &m.Designation, &m.ContactNumber, &m.OfficeAddress,
		&m.BlockJurisdiction, &m.PanchayatArea, &m.WardNumber, &m.Specialization, &m.FieldArea,
		&m.GramSabhaArea, &m.VillageCount, &m.PanchayatDetails, &m.PanchayatWorkers, &m.PanchayatOfficers,
		&m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthorityNotFound
		}
		return nil, errors.Wrap(err, "failed to scan authority")
	}
	return ToDomainAuthority(&m), nil
}

func (r *PgAuthorityRepository) GetByEmail(ctx context.Context, email string) (*authority.Authority, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	return r.scanOne(tx.QueryRow(ctx, authoritySelectQuery+` WHERE a.email = $1`, email))
}

func (r *PgAuthorityRepository) GetBySourceID(ctx context.Context, sourceID string) (*authority.Authority, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	return r.scanOne(tx.QueryRow(ctx, authoritySelectQuery+` WHERE a.source_id = $1`, sourceID))
}

func (r *PgAuthorityRepository) First(ctx context.Context) (*authority.Authority, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	return r.scanOne(tx.QueryRow(ctx, authoritySelectQuery+` ORDER BY a.created_at LIMIT 1`))
}

func (r *PgAuthorityRepository) FindByRole(ctx context.Context, role string) ([]*authority.Authority, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, authoritySelectQuery+` WHERE a.role = $1 ORDER BY a.created_at`, role)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find authorities by role %s", role)
	}
	defer rows.Close()

	var out []*authority.Authority
	for rows.Next() {
		var m models.Authority
		if err := rows.Scan(
			&m.ID, &m.SourceID, &m.Name, &m.Email, &m.Role, &m.Level, &m.IsActive,
			&m.ParentID, &m.DepartmentID,
			&m.AssignedRegion, &m.Jurisdiction, &m.Designation, &m.ContactNumber, &m.OfficeAddress,
			&m.BlockJurisdiction, &m.PanchayatArea, &m.WardNumber, &m.Specialization, &m.FieldArea,
			&m.GramSabhaArea, &m.VillageCount, &m.PanchayatDetails, &m.PanchayatWorkers, &m.PanchayatOfficers,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ToDomainAuthority(&m))
	}
	return out, rows.Err()
}

func (r *PgAuthorityRepository) Upsert(ctx context.Context, a *authority.Authority) (*authority.Authority, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	m := ToDBAuthority(a)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	upserted := *a
	if err := tx.QueryRow(ctx, authorityUpsertQuery,
		m.ID, m.SourceID, m.Name, m.Email, m.Role, m.Level, m.IsActive,
		m.AssignedRegion, m.Jurisdiction, m.Designation, m.ContactNumber, m.OfficeAddress,
		m.BlockJurisdiction, m.PanchayatArea, m.WardNumber, m.Specialization, m.FieldArea,
		m.GramSabhaArea, m.VillageCount, m.PanchayatDetails, m.PanchayatWorkers, m.PanchayatOfficers,
	).Scan(&upserted.ID, &upserted.CreatedAt, &upserted.UpdatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert authority %s", a.Email)
	}
	return &upserted, nil
}

func (r *PgAuthorityRepository) SetRelations(ctx context.Context, id uuid.UUID, parentID, departmentID *uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, authoritySetRelationsQuery, id, parentID, departmentID); err != nil {
		return errors.Wrapf(err, "failed to set relations for authority %s", id)
	}
	return nil
}

func (r *PgAuthorityRepository) SetParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, authoritySetParentQuery, id, parentID); err != nil {
		return errors.Wrapf(err, "failed to set parent for authority %s", id)
	}
	return nil
}

func (r *PgAuthorityRepository) IDs(ctx context.Context) ([]uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `SELECT a.id FROM authorities a ORDER BY a.created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authority ids")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgAuthorityRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, authorityCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count authorities")
	}
	return count, nil
}
