package persistence

import (
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/grievance"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/location"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/user"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToDomainUser(m *models.User) *user.User {
	return &user.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToDomainLocation(m *models.Location) *location.Location {
	return &location.Location{
		ID:        m.ID,
		Name:      m.Location,
		District:  m.District,
		Tehsil:    strOrEmpty(m.Tehsil),
		Ward:      strOrEmpty(m.Ward),
		Pincode:   m.Pincode,
		GPSLat:    m.GPSLat,
		GPSLng:    m.GPSLng,
		CreatedAt: m.CreatedAt,
	}
}

func ToDomainDepartment(m *models.Department) *department.Department {
	return &department.Department{
		ID:             m.ID,
		Name:           m.DepartmentName,
		Description:    m.Description,
		HierarchyLevel: m.HierarchyLevel,
		ResourceID:     m.ResourceID,
		AuthorityID:    m.AuthorityID,
		CreatedAt:      m.CreatedAt,
	}
}

func ToDomainAuthority(m *models.Authority) *authority.Authority {
	return &authority.Authority{
		ID:                m.ID,
		SourceID:          strOrEmpty(m.SourceID),
		Name:              m.Name,
		Email:             m.Email,
		Role:              m.Role,
		Level:             authority.Level(m.Level),
		IsActive:          m.IsActive,
		ParentID:          m.ParentID,
		DepartmentID:      m.DepartmentID,
		AssignedRegion:    strOrEmpty(m.AssignedRegion),
		Jurisdiction:      strOrEmpty(m.Jurisdiction),
		Designation:       strOrEmpty(m.Designation),
		ContactNumber:     strOrEmpty(m.ContactNumber),
		OfficeAddress:     strOrEmpty(m.OfficeAddress),
		BlockJurisdiction: strOrEmpty(m.BlockJurisdiction),
		PanchayatArea:     strOrEmpty(m.PanchayatArea),
		WardNumber:        strOrEmpty(m.WardNumber),
		Specialization:    strOrEmpty(m.Specialization),
		FieldArea:         strOrEmpty(m.FieldArea),
		GramSabhaArea:     strOrEmpty(m.GramSabhaArea),
		VillageCount:      m.VillageCount,
		PanchayatDetails:  strOrEmpty(m.PanchayatDetails),
		PanchayatWorkers:  strOrEmpty(m.PanchayatWorkers),
		PanchayatOfficers: strOrEmpty(m.PanchayatOfficers),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToDBAuthority(a *authority.Authority) *models.Authority {
	return &models.Authority{
		ID:                a.ID,
		SourceID:          strOrNil(a.SourceID),
		Name:              a.Name,
		Email:             a.Email,
		Role:              a.Role,
		Level:             string(a.Level),
		IsActive:          a.IsActive,
		ParentID:          a.ParentID,
		DepartmentID:      a.DepartmentID,
		AssignedRegion:    strOrNil(a.AssignedRegion),
		Jurisdiction:      strOrNil(a.Jurisdiction),
		Designation:       strOrNil(a.Designation),
		ContactNumber:     strOrNil(a.ContactNumber),
		OfficeAddress:     strOrNil(a.OfficeAddress),
		BlockJurisdiction: strOrNil(a.BlockJurisdiction),
		PanchayatArea:     strOrNil(a.PanchayatArea),
		WardNumber:        strOrNil(a.WardNumber),
		Specialization:    strOrNil(a.Specialization),
		FieldArea:         strOrNil(a.FieldArea),
		GramSabhaArea:     strOrNil(a.GramSabhaArea),
		VillageCount:      a.VillageCount,
		PanchayatDetails:  strOrNil(a.PanchayatDetails),
		PanchayatWorkers:  strOrNil(a.PanchayatWorkers),
		PanchayatOfficers: strOrNil(a.PanchayatOfficers),
	}
}

func ToDomainGrievance(m *models.Grievance) *grievance.Grievance {
	return &grievance.Grievance{
		ID:                  m.ID,
		Title:               m.Title,
		Complaint:           strOrEmpty(m.Complaint),
		ComplaintType:       m.ComplaintType,
		Category:            m.Category,
		Subcategory:         m.Subcategory,
		Status:              grievance.Status(m.Status),
		UrgencyLevel:        grievance.UrgencyLevel(m.UrgencyLevel),
		PriorityLevel:       grievance.PriorityLevel(m.PriorityLevel),
		IsAnonymous:         m.IsAnonymous,
		CurrentLevel:        m.CurrentLevel,
		EconomicImpact:      strOrEmpty(m.EconomicImpact),
		SocialImpact:        strOrEmpty(m.SocialImpact),
		EnvironmentalImpact: strOrEmpty(m.EnvironmentalImpact),
		Emotion:             strOrEmpty(m.Emotion),
		RelatedPolicies:     strOrEmpty(m.RelatedPolicies),
		ResolutionDays:      m.ResolutionDays,
		DepartmentID:        m.DepartmentID,
		UserID:              m.UserID,
		LocationID:          m.LocationID,
		SubmissionDate:      m.SubmissionDate,
		LastUpdatedDate:     m.LastUpdatedDate,
		CreatedAt:           m.CreatedAt,
	}
}
