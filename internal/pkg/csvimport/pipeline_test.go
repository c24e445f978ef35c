package csvimport

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

type memoryStudents struct {
	rolls map[string]bool
	saved []*models.Student
}

func newMemoryStudents() *memoryStudents {
	return &memoryStudents{rolls: map[string]bool{}}
}

func (m *memoryStudents) persist(_ context.Context, s *models.Student) error {
	if m.rolls[s.RollNumber] {
		return apperrors.ErrRollNumberExists
	}
	m.rolls[s.RollNumber] = true
	m.saved = append(m.saved, s)
	return nil
}

func TestRunPartialSuccess(t *testing.T) {
	store := newMemoryStudents()
	res, err := Run(context.Background(), "name,rollNumber\nAda,R1\n,R2\nBob,R3", "students", DecodeStudent, store.persist)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, []string{"Row 3: name is required"}, res.Errors)
	assert.Equal(t, "Imported 2 students successfully, with 1 errors", res.Message)
	assert.Len(t, store.saved, 2)
}

func TestRunAllInvalid(t *testing.T) {
	text := "name,rollNumber\n,R1\n,R2\nAda,\n"
	for i := 0; i < 2; i++ {
		store := newMemoryStudents()
		res, err := Run(context.Background(), text, "students", DecodeStudent, store.persist)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Zero(t, res.Imported)
		assert.Len(t, res.Errors, 3)
	}
}

func TestRunSingleBadRow(t *testing.T) {
	const n = 6
	for k := 1; k <= n; k++ {
		lines := []string{"name,rollNumber"}
		for i := 1; i <= n; i++ {
			name := fmt.Sprintf("Student %d", i)
			if i == k {
				name = ""
			}
			lines = append(lines, fmt.Sprintf("%s,R%d", name, i))
		}

		res, err := Run(context.Background(), strings.Join(lines, "\n"), "students", DecodeStudent, newMemoryStudents().persist)
		require.NoError(t, err)
		assert.Equal(t, n-1, res.Imported)
		assert.Equal(t, []string{fmt.Sprintf("Row %d: name is required", k+1)}, res.Errors)
	}
}

func TestRunConflictContinues(t *testing.T) {
	store := newMemoryStudents()
	res, err := Run(context.Background(), "name,rollNumber\r\nAda,R1\r\nAda again,R1\r\nBob,R2\r\n", "students", DecodeStudent, store.persist)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, []string{"Row 3: Roll number already exists"}, res.Errors)
}

func TestRunBlankLinesKeepPhysicalNumbers(t *testing.T) {
	res, err := Run(context.Background(), "name,rollNumber\n\nAda,R1\n   \n,R2", "students", DecodeStudent, newMemoryStudents().persist)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, []string{"Row 5: name is required"}, res.Errors)
	assert.Equal(t, "Imported 1 students successfully, with 1 errors", res.Message)
}

func TestRunMissingTrailingFields(t *testing.T) {
	store := newMemoryStudents()
	res, err := Run(context.Background(), "rollNumber,name,branch\nR1,Ada", "students", DecodeStudent, store.persist)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "Imported 1 students successfully", res.Message)
	assert.Nil(t, store.saved[0].Branch)
}

func TestRunNotEnoughRows(t *testing.T) {
	for _, text := range []string{"", "\n\n", "name,rollNumber", "name,rollNumber\n  \n"} {
		called := false
		persist := func(context.Context, *models.Student) error {
			called = true
			return nil
		}
		res, err := Run(context.Background(), text, "students", DecodeStudent, persist)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrNotEnoughRows)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.False(t, called)
	}
}

func TestRunObserver(t *testing.T) {
	counts := map[string]int{}
	store := newMemoryStudents()
	_, err := Run(context.Background(), "name,rollNumber\nAda,R1\n,R2\nAda,R1", "students", DecodeStudent, store.persist,
		func(outcome string) { counts[outcome]++ })
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"imported": 1, "invalid": 1, "failed": 1}, counts)
}
