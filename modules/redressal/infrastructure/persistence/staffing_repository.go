package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/staffing"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

const (
	workerInsertQuery = `
		INSERT INTO workers (
			id, name, email, age, gender, address, position, date_joined,
			contact_number, emergency_contact, blood_group, aadhar_number, department_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	workerCountQuery = `SELECT COUNT(id) FROM workers`

	officerInsertQuery = `
		INSERT INTO department_officers (
			id, name, email, age, gender, address, rank, date_assigned,
			contact_number, aadhar_number, qualification, specialization, department_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	officerCountQuery = `SELECT COUNT(id) FROM department_officers`
)

type PgWorkerRepository struct{}

func NewWorkerRepository() staffing.WorkerRepository {
	return &PgWorkerRepository{}
}

func (r *PgWorkerRepository) Create(ctx context.Context, w *staffing.Worker) (*staffing.Worker, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *w
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if _, err := tx.Exec(ctx, workerInsertQuery,
		created.ID, created.Name, created.Email, created.Age, created.Gender, created.Address,
		created.Position, created.DateJoined, created.ContactNumber,
		strOrNil(created.EmergencyContact), strOrNil(created.BloodGroup),
		created.AadharNumber, created.DepartmentID,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to create worker %s", w.Name)
	}
	return &created, nil
}

func (r *PgWorkerRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, workerCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count workers")
	}
	return count, nil
}

type PgOfficerRepository struct{}

func NewOfficerRepository() staffing.OfficerRepository {
	return &PgOfficerRepository{}
}

func (r *PgOfficerRepository) Create(ctx context.Context, o *staffing.Officer) (*staffing.Officer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *o
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if _, err := tx.Exec(ctx, officerInsertQuery,
		created.ID, created.Name, created.Email, created.Age, created.Gender, created.Address,
		created.Rank, created.DateAssigned, created.ContactNumber, created.AadharNumber,
		created.Qualification, created.Specialization, created.DepartmentID,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to create officer %s", o.Name)
	}
	return &created, nil
}

func (r *PgOfficerRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, officerCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count officers")
	}
	return count, nil
}
