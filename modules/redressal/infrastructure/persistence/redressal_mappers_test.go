package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/grievance"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
)

func TestToDomainGrievance(t *testing.T) {
	complaint := "No water supply"
	days := 7
	submitted := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	m := &models.Grievance{
		ID:             uuid.New(),
		Title:          "Water Supply Issue in Hazratganj",
		Complaint:      &complaint,
		ComplaintType:  "Water Supply",
		Status:         "IN_PROGRESS",
		UrgencyLevel:   "HIGH",
		PriorityLevel:  "MEDIUM",
		IsAnonymous:    true,
		CurrentLevel:   "INITIAL",
		ResolutionDays: &days,
		DepartmentID:   uuid.New(),
		UserID:         uuid.New(),
		LocationID:     uuid.New(),
		SubmissionDate: &submitted,
	}

	g := ToDomainGrievance(m)
	assert.Equal(t, m.ID, g.ID)
	assert.Equal(t, "No water supply", g.Complaint)
	assert.Equal(t, grievance.StatusInProgress, g.Status)
	assert.Equal(t, grievance.UrgencyHigh, g.UrgencyLevel)
	assert.Equal(t, grievance.PriorityMedium, g.PriorityLevel)
	assert.True(t, g.IsAnonymous)
	require.NotNil(t, g.ResolutionDays)
	assert.Equal(t, 7, *g.ResolutionDays)
	require.NotNil(t, g.SubmissionDate)
	assert.True(t, submitted.Equal(*g.SubmissionDate))
	assert.Equal(t, m.DepartmentID, g.DepartmentID)
}

func TestToDomainGrievance_NullColumns(t *testing.T) {
	g := ToDomainGrievance(&models.Grievance{
		ID:     uuid.New(),
		Title:  "Garbage Issue in Aliganj",
		Status: "PENDING",
	})
	assert.Empty(t, g.Complaint)
	assert.Empty(t, g.EconomicImpact)
	assert.Empty(t, g.Emotion)
	assert.Nil(t, g.ResolutionDays)
	assert.Nil(t, g.SubmissionDate)
	assert.Nil(t, g.LastUpdatedDate)
}
