package services

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

func str(s string) *string { return &s }
func num(n int) *int        { return &n }

func TestCreateStudent_ConcurrentDuplicateRollNumber(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store, &fakeStorage{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", RollNumber: "R1"}, StudentFiles{})
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.Is(err, apperrors.ErrConflict):
			conflicts++
			assert.Equal(t, "Roll number already exists", apperrors.Message(err))
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
}

func TestCreateStudent_StoresUploads(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewStudentService(&fakeStudentStore{}, storage)

	s, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", RollNumber: "R1"}, StudentFiles{
		Photo: &multipart.FileHeader{Filename: "ada.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/photos/ada.png", models.StringValue(s.PhotoURL))
	assert.Nil(t, s.OfferLetterURL)
}

func TestCreateStudent_ConflictRemovesUploads(t *testing.T) {
	storage := &fakeStorage{}
	store := &fakeStudentStore{}
	svc := NewStudentService(store, storage)

	_, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", RollNumber: "R1"}, StudentFiles{})
	require.NoError(t, err)

	_, err = svc.CreateStudent(context.Background(), &models.Student{Name: "Bob", RollNumber: "R1"}, StudentFiles{
		OfferLetter: &multipart.FileHeader{Filename: "offer.pdf"},
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, []string{"/uploads/offer-letters/offer.pdf"}, storage.deleted)
}

func TestUpdateStudent_ReplacesPhotoAndKeepsOmittedFields(t *testing.T) {
	storage := &fakeStorage{}
	store := &fakeStudentStore{}
	svc := NewStudentService(store, storage)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &models.Student{Name: "Ada", RollNumber: "R1", Branch: str("CSE"), PhotoURL: str("/uploads/photos/old.png")}, StudentFiles{})
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(ctx, created.ID, models.StudentPatch{Name: str("Ada L.")}, StudentFiles{
		Photo: &multipart.FileHeader{Filename: "new.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "CSE", models.StringValue(updated.Branch))
	assert.Equal(t, "/uploads/photos/new.png", models.StringValue(updated.PhotoURL))
	assert.Equal(t, []string{"/uploads/photos/old.png"}, storage.deleted)
}

func TestDeleteStudent(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewStudentService(&fakeStudentStore{}, storage)
	ctx := context.Background()

	s, err := svc.CreateStudent(ctx, &models.Student{Name: "Ada", RollNumber: "R1", PhotoURL: str("/uploads/photos/a.png")}, StudentFiles{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, s.ID))
	assert.Equal(t, []string{"/uploads/photos/a.png"}, storage.deleted)

	err = svc.DeleteStudent(ctx, s.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListStudents_Filter(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store, &fakeStorage{})
	ctx := context.Background()

	for _, s := range []*models.Student{
		{Name: "A", RollNumber: "1", Branch: str("CSE"), Year: num(3)},
		{Name: "B", RollNumber: "2", Branch: str("ECE"), Year: num(3)},
		{Name: "C", RollNumber: "3", Branch: str("CSE"), Year: num(4)},
	} {
		_, err := svc.CreateStudent(ctx, s, StudentFiles{})
		require.NoError(t, err)
	}

	got, err := svc.ListStudents(ctx, dto.StudentFilter{Branch: "CSE", Year: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ListStudents(ctx, dto.StudentFilter{Branch: "CSE", Year: "3"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)

	_, err = svc.ListStudents(ctx, dto.StudentFilter{Year: "third"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGroupedStudents(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store, &fakeStorage{})
	ctx := context.Background()

	for _, s := range []*models.Student{
		{Name: "A", RollNumber: "1", Branch: str("CSE"), Batch: str("2020-2024"), Year: num(4)},
		{Name: "B", RollNumber: "2", Branch: str("CSE"), Batch: str("2021-2025"), Year: num(3)},
		{Name: "C", RollNumber: "3", Branch: nil},
	} {
		_, err := svc.CreateStudent(ctx, s, StudentFiles{})
		require.NoError(t, err)
	}

	groups, err := svc.GroupedStudents(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "CSE", groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)
	require.Len(t, groups[0].Groups, 2)
	assert.Equal(t, "Batch 2021-2025", groups[0].Groups[0].Key, "newest batch first")
	assert.Equal(t, "Year 3", groups[0].Groups[0].Groups[0].Key)

	assert.Equal(t, "Unknown", groups[1].Key)
	assert.Equal(t, "Unknown Batch", groups[1].Groups[0].Key)
	assert.Equal(t, "Unknown", groups[1].Groups[0].Groups[0].Key)
}
