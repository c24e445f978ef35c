package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/app/repositories"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/filestorage"
	"github.com/yigit/tpoportal/internal/pkg/grouping"
	"github.com/yigit/tpoportal/internal/pkg/logger"
	"github.com/yigit/tpoportal/internal/pkg/spreadsheet"
)

// Upload directories under the storage root
const (
	PhotoDir       = "photos"
	OfferLetterDir = "offer-letters"
)

// StudentFiles are the optional uploads accompanying a student form
type StudentFiles struct {
	Photo       *multipart.FileHeader
	OfferLetter *multipart.FileHeader
}

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student, files StudentFiles) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error)
	GroupedStudents(ctx context.Context) ([]grouping.Bucket[*models.Student], error)
	UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch, files StudentFiles) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store   StudentStore
	storage filestorage.FileStorage
}

// NewStudentService creates a new student service
func NewStudentService(store StudentStore, storage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{store: store, storage: storage}
}

// saveFiles stores the uploads and returns their URLs. On failure every file
// saved so far is removed again.
func (s *studentServiceImpl) saveFiles(files StudentFiles) (photo, offer *string, err error) {
	if files.Photo != nil {
		url, err := s.storage.SaveFile(files.Photo, PhotoDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to save photo: %w", err)
		}
		photo = &url
	}
	if files.OfferLetter != nil {
		url, err := s.storage.SaveFile(files.OfferLetter, OfferLetterDir)
		if err != nil {
			s.discard(photo)
			return nil, nil, fmt.Errorf("failed to save offer letter: %w", err)
		}
		offer = &url
	}
	return photo, offer, nil
}

// discard deletes stored files, logging failures
func (s *studentServiceImpl) discard(urls ...*string) {
	for _, u := range urls {
		if u == nil || *u == "" {
			continue
		}
		if err := s.storage.DeleteFile(*u); err != nil {
			logger.Warn().Err(err).Str("url", *u).Msg("Failed to delete stored file")
		}
	}
}

// CreateStudent stores uploads first so the record carries their URLs
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student, files StudentFiles) (*models.Student, error) {
	photo, offer, err := s.saveFiles(files)
	if err != nil {
		return nil, err
	}
	if photo != nil {
		student.PhotoURL = photo
	}
	if offer != nil {
		student.OfferLetterURL = offer
	}

	if err := s.store.Create(ctx, student); err != nil {
		s.discard(photo, offer)
		return nil, err
	}
	logger.Info().Int64("studentID", student.ID).Str("rollNumber", student.RollNumber).Msg("Student created")
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.store.GetByID(ctx, id)
}

// ToStudentFilter converts query values into a store filter. "all" and
// empty values are ignored; a non-numeric year is rejected.
func ToStudentFilter(f dto.StudentFilter) (repositories.StudentFilter, error) {
	var filter repositories.StudentFilter
	if v := activeValue(f.Branch); v != "" {
		filter.Branch = &v
	}
	if v := activeValue(f.Batch); v != "" {
		filter.Batch = &v
	}
	if v := activeValue(f.Year); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperrors.NewValidationError("year must be a whole number", "year")
		}
		filter.Year = &year
	}
	return filter, nil
}

func activeValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, spreadsheet.AllValues) {
		return ""
	}
	return v
}

// ListStudents lists students matching filter
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error) {
	f, err := ToStudentFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, f)
}

// Student grouping keys: branch, then batch, then year
var studentKeys = []grouping.KeyFunc[*models.Student]{
	func(st *models.Student) string { return grouping.Or(st.Branch, grouping.Unknown) },
	func(st *models.Student) string {
		if st.Batch == nil || strings.TrimSpace(*st.Batch) == "" {
			return grouping.UnknownBatch
		}
		return "Batch " + strings.TrimSpace(*st.Batch)
	},
	func(st *models.Student) string {
		if st.Year == nil {
			return grouping.Unknown
		}
		return "Year " + strconv.Itoa(*st.Year)
	},
}

// GroupedStudents nests all students by branch, batch and year. Batches
// are shown newest first.
func (s *studentServiceImpl) GroupedStudents(ctx context.Context) ([]grouping.Bucket[*models.Student], error) {
	students, err := s.store.List(ctx, repositories.StudentFilter{})
	if err != nil {
		return nil, err
	}
	buckets := grouping.Nest(students, studentKeys...)
	for i := range buckets {
		grouping.SortByKeyDesc(buckets[i].Groups)
	}
	return buckets, nil
}

// UpdateStudent applies patch. Newly uploaded files replace the stored ones,
// which are deleted once the update succeeded.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch, files StudentFiles) (*models.Student, error) {
	var previous *models.Student
	if files.Photo != nil || files.OfferLetter != nil {
		current, err := s.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		previous = current
	}

	photo, offer, err := s.saveFiles(files)
	if err != nil {
		return nil, err
	}
	if photo != nil {
		patch.PhotoURL = photo
	}
	if offer != nil {
		patch.OfferLetterURL = offer
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.discard(photo, offer)
		return nil, err
	}

	if previous != nil {
		if photo != nil {
			s.discard(previous.PhotoURL)
		}
		if offer != nil {
			s.discard(previous.OfferLetterURL)
		}
	}
	return updated, nil
}

// DeleteStudent removes the student and its stored files
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.discard(student.PhotoURL, student.OfferLetterURL)
	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
