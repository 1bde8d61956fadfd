package seed

import (
	"context"
	"io"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/grievance"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/location"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/messaging"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/staffing"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/user"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
)

var errInsertRejected = errors.New("insert rejected")

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// In-memory repositories backing pipeline tests. They honor the same
// sentinel errors as the Postgres implementations so error-path behavior is
// exercised faithfully.

type memUsers struct {
	mu    sync.Mutex
	items []*user.User
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, persistence.ErrUserNotFound
}

func (m *memUsers) Create(_ context.Context, u *user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *u
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memUsers) Names(context.Context) ([]string, error) {
	names := make([]string, 0, len(m.items))
	for _, u := range m.items {
		names = append(names, u.Name)
	}
	return names, nil
}

type memLocations struct {
	items []*location.Location
}

func (m *memLocations) GetByKey(_ context.Context, key location.Key) (*location.Location, error) {
	for _, l := range m.items {
		if l.Key() == key {
			return l, nil
		}
	}
	return nil, persistence.ErrLocationNotFound
}

func (m *memLocations) Create(_ context.Context, l *location.Location) (*location.Location, error) {
	created := *l
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memLocations) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memDepartments struct {
	items []*department.Department
}

func (m *memDepartments) GetByName(_ context.Context, name string) (*department.Department, error) {
	for _, d := range m.items {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, persistence.ErrDepartmentNotFound
}

func (m *memDepartments) Create(_ context.Context, d *department.Department) (*department.Department, error) {
	created := *d
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memDepartments) IDs(context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(m.items))
	for _, d := range m.items {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (m *memDepartments) All(context.Context) ([]*department.Department, error) {
	return m.items, nil
}

func (m *memDepartments) First(context.Context) (*department.Department, error) {
	if len(m.items) == 0 {
		return nil, persistence.ErrDepartmentNotFound
	}
	return m.items[0], nil
}

func (m *memDepartments) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memAuthorities struct {
	items []*authority.Authority
}

func (m *memAuthorities) GetByEmail(_ context.Context, email string) (*authority.Authority, error) {
	for _, a := range m.items {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, persistence.ErrAuthorityNotFound
}

func (m *memAuthorities) GetBySourceID(_ context.Context, sourceID string) (*authority.Authority, error) {
	for _, a := range m.items {
		if a.SourceID == sourceID {
			return a, nil
		}
	}
	return nil, persistence.ErrAuthorityNotFound
}

func (m *memAuthorities) FindByRole(_ context.Context, role string) ([]*authority.Authority, error) {
	var out []*authority.Authority
	for _, a := range m.items {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAuthorities) First(context.Context) (*authority.Authority, error) {
	if len(m.items) == 0 {
		return nil, persistence.ErrAuthorityNotFound
	}
	return m.items[0], nil
}

func (m *memAuthorities) IDs(context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(m.items))
	for _, a := range m.items {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (m *memAuthorities) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memAuthorities) Upsert(_ context.Context, a *authority.Authority) (*authority.Authority, error) {
	for _, existing := range m.items {
		if existing.Email == a.Email {
			id := existing.ID
			parentID, departmentID := existing.ParentID, existing.DepartmentID
			*existing = *a
			existing.ID = id
			existing.ParentID, existing.DepartmentID = parentID, departmentID
			return existing, nil
		}
	}
	created := *a
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memAuthorities) SetRelations(_ context.Context, id uuid.UUID, parentID, departmentID *uuid.UUID) error {
	for _, a := range m.items {
		if a.ID == id {
			if parentID != nil {
				a.ParentID = parentID
			}
			if departmentID != nil {
				a.DepartmentID = departmentID
			}
			return nil
		}
	}
	return persistence.ErrAuthorityNotFound
}

func (m *memAuthorities) SetParent(_ context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	for _, a := range m.items {
		if a.ID == id {
			a.ParentID = parentID
			return nil
		}
	}
	return persistence.ErrAuthorityNotFound
}

type memGrievances struct {
	items   []*grievance.Grievance
	failFor string // title that triggers an insert error
}

func (m *memGrievances) Create(_ context.Context, g *grievance.Grievance) (*grievance.Grievance, error) {
	if m.failFor != "" && g.Title == m.failFor {
		return nil, errInsertRejected
	}
	created := *g
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memGrievances) GetByID(_ context.Context, id uuid.UUID) (*grievance.Grievance, error) {
	for _, g := range m.items {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, persistence.ErrGrievanceNotFound
}

func (m *memGrievances) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memWorkers struct {
	items []*staffing.Worker
}

func (m *memWorkers) Create(_ context.Context, w *staffing.Worker) (*staffing.Worker, error) {
	created := *w
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memWorkers) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memOfficers struct {
	items []*staffing.Officer
}

func (m *memOfficers) Create(_ context.Context, o *staffing.Officer) (*staffing.Officer, error) {
	created := *o
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memOfficers) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memAnnouncements struct {
	items []*messaging.Announcement
}

func (m *memAnnouncements) Create(_ context.Context, a *messaging.Announcement) (*messaging.Announcement, error) {
	created := *a
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memAnnouncements) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memCommunications struct {
	items []*messaging.Communication
}

func (m *memCommunications) Create(_ context.Context, c *messaging.Communication) (*messaging.Communication, error) {
	created := *c
	created.ID = uuid.New()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memCommunications) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}
