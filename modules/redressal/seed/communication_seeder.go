package seed

import (
	"context"
	"encoding/json"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/messaging"
)

const communicationsCSV = "communication.csv"

// CommunicationSeeder ingests communication.csv. The source rows carry no
// usable sender or receiver references, so each message is attached to a
// random department sender and a random authority receiver.
type CommunicationSeeder struct {
	communications messaging.CommunicationRepository
	departments    department.Repository
	authorities    authority.Repository
	rnd            *rand.Rand
	dataDir        string
	logger         logrus.FieldLogger
}

func NewCommunicationSeeder(
	communications messaging.CommunicationRepository,
	departments department.Repository,
	authorities authority.Repository,
	rnd *rand.Rand,
	dataDir string,
	logger logrus.FieldLogger,
) *CommunicationSeeder {
	return &CommunicationSeeder{
		communications: communications,
		departments:    departments,
		authorities:    authorities,
		rnd:            rnd,
		dataDir:        dataDir,
		logger:         logger,
	}
}

func (s *CommunicationSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	deptIDs, err := s.departments.IDs(ctx)
	if err != nil {
		return stats, err
	}
	if len(deptIDs) == 0 {
		return stats, ErrNoDepartments
	}
	authIDs, err := s.authorities.IDs(ctx)
	if err != nil {
		return stats, err
	}
	if len(authIDs) == 0 {
		return stats, ErrNoAuthority
	}

	records, err := ReadRecords(filepath.Join(s.dataDir, communicationsCSV))
	if err != nil {
		return stats, err
	}

	for _, rec := range records {
		ts := time.Now()
		if v := parseDateField(rec.Get("timestamp")); v != nil {
			ts = *v
		}

		c := &messaging.Communication{
			SenderID:    deptIDs[s.rnd.Intn(len(deptIDs))],
			ReceiverID:  authIDs[s.rnd.Intn(len(authIDs))],
			Message:     fallback(cleanNull(rec.Get("message")), "No message content"),
			Timestamp:   ts,
			Attachments: parseAttachments(rec.Get("attachments")),
		}

		if _, err := s.communications.Create(ctx, c); err != nil {
			s.logger.WithError(err).Errorf("Failed to insert communication (line %d)", rec.Line)
			stats.Failed++
			continue
		}
		stats.Created++
	}

	s.logger.Infof("Seeded %d communications (%d failed)", stats.Created, stats.Failed)
	return stats, nil
}

// parseAttachments reads a JSON array of attachment references; malformed or
// empty input yields no attachments rather than a row failure.
func parseAttachments(raw string) []string {
	raw = cleanNull(raw)
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}
