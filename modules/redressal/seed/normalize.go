package seed

import (
	"strconv"
	"strings"
	"time"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/grievance"
)

// Field coercion rules for the loosely structured source CSVs. Every mapper
// falls back to a documented default instead of failing: unrecognized input
// is a data-quality note, not a row error.

var statusMap = map[string]grievance.Status{
	"OPEN":        grievance.StatusPending,
	"PENDING":     grievance.StatusPending,
	"IN_PROGRESS": grievance.StatusInProgress,
	"IN PROGRESS": grievance.StatusInProgress,
	"INPROGRESS":  grievance.StatusInProgress,
	"RESOLVED":    grievance.StatusResolved,
	"CLOSED":      grievance.StatusClosed,
}

// MapStatus maps free-text status onto the closed enum; default PENDING.
func MapStatus(raw string) grievance.Status {
	if s, ok := statusMap[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return s
	}
	return grievance.StatusPending
}

var urgencyMap = map[string]grievance.UrgencyLevel{
	"LOW":      grievance.UrgencyLow,
	"MEDIUM":   grievance.UrgencyMedium,
	"MED":      grievance.UrgencyMedium,
	"HIGH":     grievance.UrgencyHigh,
	"CRITICAL": grievance.UrgencyCritical,
}

// MapUrgencyLevel maps free-text urgency onto the closed enum; default MEDIUM.
func MapUrgencyLevel(raw string) grievance.UrgencyLevel {
	if u, ok := urgencyMap[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return u
	}
	return grievance.UrgencyMedium
}

var priorityMap = map[string]grievance.PriorityLevel{
	"LOW":    grievance.PriorityLow,
	"MEDIUM": grievance.PriorityMedium,
	"HIGH":   grievance.PriorityHigh,
}

// MapPriorityLevel maps free-text priority onto the closed enum; default MEDIUM.
func MapPriorityLevel(raw string) grievance.PriorityLevel {
	if p, ok := priorityMap[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return p
	}
	return grievance.PriorityMedium
}

var authorityLevelMap = map[string]authority.Level{
	"TOP":               authority.LevelTop,
	"TOP_LEVEL":         authority.LevelTop,
	"DISTRICT_LEVEL":    authority.LevelTop,
	"MID":               authority.LevelMid,
	"MID_LEVEL":         authority.LevelMid,
	"OPERATIONAL":       authority.LevelOperational,
	"OPERATIONAL_LEVEL": authority.LevelOperational,
	"CITIZEN_LEVEL":     authority.LevelOperational,
}

// MapAuthorityLevel maps free-text level onto the closed enum; default OPERATIONAL.
func MapAuthorityLevel(raw string) authority.Level {
	if l, ok := authorityLevelMap[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return l
	}
	return authority.LevelOperational
}

// parseBool recognizes the source's "True"/"true"/"False"/"false" literals;
// anything else is false.
func parseBool(raw string) bool {
	switch raw {
	case "True", "true":
		return true
	default:
		return false
	}
}

// parseIntField returns nil on blank or unparseable input.
func parseIntField(raw string) *int {
	v := strings.TrimSpace(raw)
	if v == "" || v == "null" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// parseFloatField returns nil on blank or unparseable input.
func parseFloatField(raw string) *float64 {
	v := strings.TrimSpace(raw)
	if v == "" || v == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// parseDateField returns nil on blank or unparseable input.
func parseDateField(raw string) *time.Time {
	v := strings.TrimSpace(raw)
	if v == "" || v == "null" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}

// cleanNull normalizes the source's textual null markers to "".
func cleanNull(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "null" || v == "nan" || v == "None" {
		return ""
	}
	return v
}

// GenerateTitle builds a display title for a grievance row that carries no
// usable title of its own, preferring complaint type and place name, then a
// short prefix of the complaint text.
func GenerateTitle(rec Record) string {
	place := strings.TrimSpace(strings.SplitN(rec.Get("location"), ",", 2)[0])
	issueType := rec.Get("complaintType")
	if issueType == "" {
		issueType = rec.Get("category")
	}
	words := strings.Fields(rec.Get("complaint"))
	if len(words) > 4 {
		words = words[:4]
	}
	short := strings.Join(words, " ")

	switch {
	case issueType != "" && place != "":
		return issueType + " Issue in " + place
	case issueType != "" && short != "":
		return issueType + ": " + short
	case place != "" && short != "":
		return place + " - " + short
	case short != "":
		return short
	}
	return "Civic Issue #" + rec.Get("id")
}
