package staffing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Worker is an auxiliary staffing record attached to a department. Records
// come partly from CSV and partly from the synthetic generator that fills
// demo volume.
type Worker struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Age              int
	Gender           string
	Address          string
	Position         string
	DateJoined       time.Time
	ContactNumber    string
	EmergencyContact string
	BloodGroup       string
	AadharNumber     string
	DepartmentID     uuid.UUID
}

// Officer is a ranked department officer.
type Officer struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Age            int
	Gender         string
	Address        string
	Rank           string
	DateAssigned   time.Time
	ContactNumber  string
	AadharNumber   string
	Qualification  string
	Specialization string
	DepartmentID   uuid.UUID
}

type WorkerRepository interface {
	Create(ctx context.Context, w *Worker) (*Worker, error)
	Count(ctx context.Context) (int64, error)
}

type OfficerRepository interface {
	Create(ctx context.Context, o *Officer) (*Officer, error)
	Count(ctx context.Context) (int64, error)
}
