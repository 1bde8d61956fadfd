package seed

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
)

const rosterUsers = `Name,Email
Amit Patel,amit@example.com
Sunita Rao,sunita@example.com
Kiran Joshi,kiran@example.com
`

const rosterAddresses = `_1,_2,_3,_4,_5,_6,_7
12,MG Road,Hazratganj,Lucknow,Uttar Pradesh,India,226001
4,Station Road,Alambagh,Lucknow,Uttar Pradesh,India,226005
`

func staffingDataDir(t *testing.T, workers, officers string) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write(usersCSV, rosterUsers)
	write(addressesCSV, rosterAddresses)
	write(workersCSV, workers)
	write(officersCSV, officers)
	return dir
}

func seedDepartments(t *testing.T, departments *memDepartments, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := departments.Create(context.Background(), &department.Department{Name: name})
		require.NoError(t, err)
	}
}

func TestWorkerSeederFillsToTarget(t *testing.T) {
	ctx := context.Background()
	departments := &memDepartments{}
	seedDepartments(t, departments, "Jal Nigam", "Nagar Nigam")
	workers := &memWorkers{}

	workersContent := "name,email,age,gender,address,position,date_joined,contact_number\n" +
		"Ravi Singh,ravi@example.com,34,Male,Alambagh Lucknow,first,2021-06-01,9876543210\n"
	dir := staffingDataDir(t, workersContent, "name\n")

	s := NewWorkerSeeder(workers, departments, rand.New(rand.NewSource(1)), dir, 20, testLogger())
	stats, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Created)
	require.Len(t, workers.items, 20)

	// The CSV row survives as-is.
	assert.Equal(t, "Ravi Singh", workers.items[0].Name)
	assert.Equal(t, 34, workers.items[0].Age)
	assert.Equal(t, "first", workers.items[0].Position)

	deptIDs := map[uuid.UUID]bool{}
	for _, d := range departments.items {
		deptIDs[d.ID] = true
	}
	contactShape := regexp.MustCompile(`^9\d{9}$`)
	for _, w := range workers.items[1:] {
		assert.True(t, deptIDs[w.DepartmentID])
		assert.Contains(t, []string{"first", "second", "third"}, w.Position)
		assert.GreaterOrEqual(t, w.Age, 20)
		assert.Less(t, w.Age, 60)
		assert.Regexp(t, contactShape, w.ContactNumber)
		assert.Contains(t, w.Email, "@gmail.com")
	}
}

func TestWorkerSeederAlreadyAtTarget(t *testing.T) {
	ctx := context.Background()
	departments := &memDepartments{}
	seedDepartments(t, departments, "Jal Nigam")
	workers := &memWorkers{}

	workersContent := "name,age\nRavi Singh,34\nMeena Kumari,29\n"
	dir := staffingDataDir(t, workersContent, "name\n")

	s := NewWorkerSeeder(workers, departments, rand.New(rand.NewSource(1)), dir, 2, testLogger())
	stats, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Created)
	assert.Len(t, workers.items, 2)
}

func TestWorkerSeederRequiresDepartments(t *testing.T) {
	dir := staffingDataDir(t, "name\n", "name\n")
	s := NewWorkerSeeder(&memWorkers{}, &memDepartments{}, rand.New(rand.NewSource(1)), dir, 5, testLogger())
	_, err := s.Run(context.Background())
	require.ErrorIs(t, err, ErrNoDepartments)
}

func TestOfficerSeederCoversEveryDepartment(t *testing.T) {
	ctx := context.Background()
	departments := &memDepartments{}
	seedDepartments(t, departments, "Jal Nigam", "Nagar Nigam", "Power Department")
	officers := &memOfficers{}

	officersContent := "name,qualification,specialization\n" +
		"Existing Officer,MTech,Urban Planning\n"
	dir := staffingDataDir(t, "name\n", officersContent)

	s := NewOfficerSeeder(officers, departments, rand.New(rand.NewSource(3)), dir, 12, testLogger())
	stats, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Created)

	perDept := map[uuid.UUID]int{}
	for _, o := range officers.items {
		perDept[o.DepartmentID]++
		assert.Contains(t, officerRanks, o.Rank)
		assert.NotEmpty(t, o.Qualification)
		assert.NotEmpty(t, o.Specialization)
		assert.GreaterOrEqual(t, o.Age, 25)
	}
	for _, d := range departments.items {
		assert.GreaterOrEqual(t, perDept[d.ID], 2, "department %s", d.Name)
	}
}

func TestOfficerSeederSeniorRanksSkewOlder(t *testing.T) {
	ctx := context.Background()
	departments := &memDepartments{}
	seedDepartments(t, departments, "Jal Nigam")
	officers := &memOfficers{}
	dir := staffingDataDir(t, "name\n", "name\n")

	s := NewOfficerSeeder(officers, departments, rand.New(rand.NewSource(9)), dir, 10, testLogger())
	_, err := s.Run(ctx)
	require.NoError(t, err)

	for _, o := range officers.items {
		if o.Rank == "Senior Officer" || o.Rank == "Chief Officer" {
			assert.GreaterOrEqual(t, o.Age, 35, "rank %s", o.Rank)
		}
	}
}

func TestOfficerSeederRequiresDepartments(t *testing.T) {
	dir := staffingDataDir(t, "name\n", "name\n")
	s := NewOfficerSeeder(&memOfficers{}, &memDepartments{}, rand.New(rand.NewSource(1)), dir, 5, testLogger())
	_, err := s.Run(context.Background())
	require.ErrorIs(t, err, ErrNoDepartments)
}
