package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

func TestAddStudentKeepsOriginalName(t *testing.T) {
	repo := NewAttendanceRepository()

	first := repo.AddStudent("s1", "Ana")
	assert.Equal(t, "Ana", first.Name)
	assert.Empty(t, first.Records)

	second := repo.AddStudent("s1", "Other")
	assert.Equal(t, "Ana", second.Name)
}

func TestAddRecordUnknownStudentFails(t *testing.T) {
	repo := NewAttendanceRepository()
	err := repo.AddRecord("missing", "2026-02-01", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.List())
}

func TestListReturnsSnapshot(t *testing.T) {
	repo := NewAttendanceRepository()
	repo.AddStudent("s1", "Ana")
	require.NoError(t, repo.AddRecord("s1", "2026-02-01", true))

	snapshot := repo.List()
	snapshot["s1"].Name = "mutated"
	snapshot["s1"].Records = append(snapshot["s1"].Records, snapshot["s1"].Records[0])

	fresh := repo.List()
	assert.Equal(t, "Ana", fresh["s1"].Name)
	assert.Len(t, fresh["s1"].Records, 1)
}
