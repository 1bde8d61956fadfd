package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

var ErrDepartmentNotFound = errors.New("department not found")

const (
	departmentSelectQuery = `
		SELECT id, department_name, description, hierarchy_level, resource_id, authority_id, created_at
		FROM departments`

	departmentFindByNameQuery = departmentSelectQuery + ` WHERE department_name = $1`

	departmentFirstQuery = departmentSelectQuery + ` ORDER BY created_at LIMIT 1`

	departmentInsertQuery = `
		INSERT INTO departments (id, department_name, description, hierarchy_level, resource_id, authority_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING created_at`

	departmentIDsQuery = `SELECT id FROM departments ORDER BY created_at`

	departmentCountQuery = `SELECT COUNT(id) FROM departments`
)

type PgDepartmentRepository struct{}

func NewDepartmentRepository() department.Repository {
	return &PgDepartmentRepository{}
}

func (r *PgDepartmentRepository) scanOne(row pgx.Row) (*department.Department, error) {
	var m models.Department
	if err := row.Scan(
		&m.ID, &m.DepartmentName, &m.Description, &m.HierarchyLevel, &m.ResourceID, &m.AuthorityID, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, errors.Wrap(err, "failed to scan department")
	}
	return ToDomainDepartment(&m), nil
}

func (r *PgDepartmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	return r.scanOne(tx.QueryRow(ctx, departmentFindByNameQuery, name))
}

func (r *PgDepartmentRepository) First(ctx context.Context) (*department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	return r.scanOne(tx.QueryRow(ctx, departmentFirstQuery))
}

func (r *PgDepartmentRepository) Create(ctx context.Context, d *department.Department) (*department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *d
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if err := tx.QueryRow(ctx, departmentInsertQuery,
		created.ID, created.Name, created.Description, created.HierarchyLevel, created.ResourceID, created.AuthorityID,
	).Scan(&created.CreatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to create department %s", d.Name)
	}
	return &created, nil
}

func (r *PgDepartmentRepository) IDs(ctx context.Context) ([]uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, departmentIDsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list department ids")
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

func (r *PgDepartmentRepository) All(ctx context.Context) ([]*department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, departmentSelectQuery+` ORDER BY created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}
	defer rows.Close()

	var out []*department.Department
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(
			&m.ID, &m.DepartmentName, &m.Description, &m.HierarchyLevel, &m.ResourceID, &m.AuthorityID, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ToDomainDepartment(&m))
	}
	return out, rows.Err()
}

func (r *PgDepartmentRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, departmentCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count departments")
	}
	return count, nil
}
