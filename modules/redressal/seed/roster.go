package seed

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

const (
	usersCSV     = "users.csv"
	addressesCSV = "addr.csv"
)

// roster is the name and address pool the synthetic staffing generators draw
// from. Both files live next to the entity CSVs in the data directory.
type roster struct {
	names     []string
	addresses []string
}

func loadRoster(dataDir string) (*roster, error) {
	userRecords, err := ReadRecords(filepath.Join(dataDir, usersCSV))
	if err != nil {
		return nil, err
	}
	addrRecords, err := ReadRecords(filepath.Join(dataDir, addressesCSV))
	if err != nil {
		return nil, err
	}

	r := &roster{}
	for _, rec := range userRecords {
		if name := strings.TrimSpace(rec.Get("Name")); name != "" {
			r.names = append(r.names, name)
		}
	}
	for _, rec := range addrRecords {
		parts := make([]string, 0, 7)
		for i := 1; i <= 7; i++ {
			parts = append(parts, rec.Get(fmt.Sprintf("_%d", i)))
		}
		r.addresses = append(r.addresses, strings.Join(parts, ", "))
	}
	if len(r.names) == 0 {
		return nil, fmt.Errorf("%s holds no usable names", usersCSV)
	}
	if len(r.addresses) == 0 {
		return nil, fmt.Errorf("%s holds no usable addresses", addressesCSV)
	}
	return r, nil
}

func (r *roster) randomName(rnd *rand.Rand) string {
	return r.names[rnd.Intn(len(r.names))]
}

func (r *roster) randomAddress(rnd *rand.Rand) string {
	return r.addresses[rnd.Intn(len(r.addresses))]
}

// syntheticEmail mirrors the staff address shape: first.last plus a numeric
// disambiguator, so generated staff never collide with citizen accounts.
func syntheticEmail(name string, rnd *rand.Rand) string {
	parts := strings.Fields(name)
	first := ""
	last := ""
	if len(parts) > 0 {
		first = strings.ToLower(parts[0])
	}
	if len(parts) > 1 {
		last = strings.ToLower(parts[1])
	}
	return fmt.Sprintf("%s.%s%d@gmail.com", first, last, rnd.Intn(999))
}

// syntheticContact yields a 10-digit mobile number starting with 9,
// right-padded with zeros when the random tail is short.
func syntheticContact(rnd *rand.Rand) string {
	s := "9" + fmt.Sprintf("%d", rnd.Intn(1000000000))
	for len(s) < 10 {
		s += "0"
	}
	return s
}

func syntheticAadhar(rnd *rand.Rand) string {
	return fmt.Sprintf("%d %d %d", rnd.Intn(10000), rnd.Intn(10000), rnd.Intn(10000))
}

func randomDate(rnd *rand.Rand, startYear, yearSpan int) time.Time {
	return time.Date(
		startYear+rnd.Intn(yearSpan),
		time.Month(1+rnd.Intn(12)),
		1+rnd.Intn(28),
		0, 0, 0, 0, time.UTC,
	)
}
