package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Location struct {
	ID        uuid.UUID
	Location  string
	District  string
	Tehsil    *string
	Ward      *string
	Pincode   string
	GPSLat    *float64
	GPSLng    *float64
	CreatedAt time.Time
}

type Department struct {
	ID             uuid.UUID
	DepartmentName string
	Description    string
	HierarchyLevel string
	ResourceID     string
	AuthorityID    *uuid.UUID
	CreatedAt      time.Time
}

type Authority struct {
	ID                uuid.UUID
	SourceID          *string
	Name              string
	Email             string
	Role              string
	Level             string
	IsActive          bool
	ParentID          *uuid.UUID
	DepartmentID      *uuid.UUID
	AssignedRegion    *string
	Jurisdiction      *string
	Designation       *string
	ContactNumber     *string
	OfficeAddress     *string
	BlockJurisdiction *string
	PanchayatArea     *string
	WardNumber        *string
	Specialization    *string
	FieldArea         *string
	GramSabhaArea     *string
	VillageCount      *int
	PanchayatDetails  *string
	PanchayatWorkers  *string
	PanchayatOfficers *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Grievance struct {
	ID                  uuid.UUID
	Title               string
	Complaint           *string
	ComplaintType       string
	Category            string
	Subcategory         string
	Status              string
	UrgencyLevel        string
	PriorityLevel       string
	IsAnonymous         bool
	CurrentLevel        string
	EconomicImpact      *string
	SocialImpact        *string
	EnvironmentalImpact *string
	Emotion             *string
	RelatedPolicies     *string
	ResolutionDays      *int
	DepartmentID        uuid.UUID
	UserID              uuid.UUID
	LocationID          uuid.UUID
	SubmissionDate      *time.Time
	LastUpdatedDate     *time.Time
	CreatedAt           time.Time
}

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
	EmergencyContact *string
	BloodGroup       *string
	AadharNumber     string
	DepartmentID     uuid.UUID
}

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

type Communication struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	ReceiverID  uuid.UUID
	Message     string
	Timestamp   time.Time
	Attachments []string
}
