package authority

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Level is the tier an authority occupies in the administrative hierarchy.
type Level string

const (
	LevelTop         Level = "TOP"
	LevelMid         Level = "MID"
	LevelOperational Level = "OPERATIONAL"
)

// Administrative roles. RoleAdministrator is the root of the hierarchy.
const (
	RoleAdministrator      = "ADMINISTRATOR"
	RoleCommissioner       = "COMMISSIONER"
	RoleDistrictMagistrate = "DISTRICT_MAGISTRATE"
	RoleDepartmentHead     = "DEPARTMENT_HEAD"
	RoleDepartmentOfficer  = "DEPARTMENT_OFFICER"
	RoleBlockOfficer       = "BLOCK_OFFICER"
	RoleNagarSevak         = "NAGAR_SEVAK"
	RolePanchayatOfficer   = "PANCHAYAT_OFFICER"
	RoleGramPanchayat      = "GRAM_PANCHAYAT"
	RoleFieldWorker        = "FIELD_WORKER"
	RoleCitizen            = "CITIZEN"
)

// RoleRelationship maps a role to the role its parent authority must hold.
// ParentRole is empty for the root role.
type RoleRelationship struct {
	Role       string
	ParentRole string
}

// RoleRelationships is the fixed role hierarchy. Every role except
// ADMINISTRATOR has exactly one designated parent role, so parent links
// resolved through this table cannot form cycles.
var RoleRelationships = []RoleRelationship{
	{Role: RoleAdministrator, ParentRole: ""},
	{Role: RoleBlockOfficer, ParentRole: RoleDistrictMagistrate},
	{Role: RoleCitizen, ParentRole: RolePanchayatOfficer},
	{Role: RoleCommissioner, ParentRole: RoleAdministrator},
	{Role: RoleDepartmentHead, ParentRole: RoleCommissioner},
	{Role: RoleDepartmentOfficer, ParentRole: RoleDepartmentHead},
	{Role: RoleDistrictMagistrate, ParentRole: RoleCommissioner},
	{Role: RoleFieldWorker, ParentRole: RoleBlockOfficer},
	{Role: RoleNagarSevak, ParentRole: RoleDistrictMagistrate},
	{Role: RolePanchayatOfficer, ParentRole: RoleBlockOfficer},
	{Role: RoleGramPanchayat, ParentRole: RolePanchayatOfficer},
}

const emailDomain = "up.gov.in"

// DeriveEmail builds the deterministic email address that serves as an
// authority's natural key: the cleaned lowercase name with whitespace runs
// collapsed to dots, followed by the level abbreviation and the first three
// letters of the role. Same (name, level, role) always yields the same
// address, so re-running a seed cannot create a duplicate authority.
func DeriveEmail(name string, level Level, role string) string {
	cleaned := make([]rune, 0, len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			cleaned = append(cleaned, r)
		}
	}
	local := strings.Join(strings.Fields(string(cleaned)), ".")

	var levelAbbr string
	switch level {
	case LevelTop:
		levelAbbr = "t"
	case LevelMid:
		levelAbbr = "m"
	case LevelOperational:
		levelAbbr = "o"
	default:
		levelAbbr = "x"
	}

	roleAbbr := strings.ToLower(role)
	if len(roleAbbr) > 3 {
		roleAbbr = roleAbbr[:3]
	}

	return local + "." + levelAbbr + roleAbbr + "@" + emailDomain
}

// Authority is an official in the redressal hierarchy. Email is the natural
// key; SourceID carries the id column of the originating CSV so relationship
// passes can resolve CSV-declared parent/department references.
type Authority struct {
	ID       uuid.UUID
	SourceID string
	Name     string
	Email    string
	Role     string
	Level    Level
	IsActive bool

	ParentID     *uuid.UUID
	DepartmentID *uuid.UUID

	AssignedRegion    string
	Jurisdiction      string
	Designation       string
	ContactNumber     string
	OfficeAddress     string
	BlockJurisdiction string
	PanchayatArea     string
	WardNumber        string
	Specialization    string
	FieldArea         string
	GramSabhaArea     string
	VillageCount      *int
	PanchayatDetails  string
	PanchayatWorkers  string
	PanchayatOfficers string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Authority, error)
	GetBySourceID(ctx context.Context, sourceID string) (*Authority, error)
	FindByRole(ctx context.Context, role string) ([]*Authority, error)
	First(ctx context.Context) (*Authority, error)
	IDs(ctx context.Context) ([]uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
	// Upsert creates the authority or, when a row with the same email
	// exists, overwrites its fields. Relationship columns are left alone;
	// use SetRelations/SetParent for those.
	Upsert(ctx context.Context, a *Authority) (*Authority, error)
	SetRelations(ctx context.Context, id uuid.UUID, parentID, departmentID *uuid.UUID) error
	SetParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error
}
