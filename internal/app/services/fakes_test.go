package services

import (
	"context"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/repositories"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeStudentStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []*models.Student
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.RollNumber == s.RollNumber {
			return apperrors.ErrRollNumberExists
		}
	}
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt, s.UpdatedAt = fixedNow, fixedNow
	cp := *s
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) List(_ context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Student{}
	for _, r := range f.rows {
		if filter.Branch != nil && models.StringValue(r.Branch) != *filter.Branch {
			continue
		}
		if filter.Batch != nil && models.StringValue(r.Batch) != *filter.Batch {
			continue
		}
		if filter.Year != nil && (r.Year == nil || *r.Year != *filter.Year) {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			patch.Apply(r)
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) PlacementTotals(_ context.Context) (*repositories.PlacementTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &repositories.PlacementTotals{}
	companies := map[string]bool{}
	sum, withPackage := 0, 0
	for _, r := range f.rows {
		if !r.Selected {
			continue
		}
		t.Placed++
		if c := models.StringValue(r.CompanyName); c != "" {
			companies[c] = true
		}
		if r.Package != nil {
			sum += *r.Package
			withPackage++
			if *r.Package > t.Highest {
				t.Highest = *r.Package
			}
		}
	}
	t.Companies = len(companies)
	if withPackage > 0 {
		t.Average = float64(sum) / float64(withPackage)
	}
	return t, nil
}

func (f *fakeStudentStore) RecentPlacements(_ context.Context, limit int) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Student{}
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].Selected {
			cp := *f.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeEventStore struct {
	nextID int64
	rows   []*models.Event
}

func (f *fakeEventStore) Create(_ context.Context, e *models.Event) error {
	f.nextID++
	e.ID = f.nextID
	cp := *e
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	for _, r := range f.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repositories.ErrEventNotFound
}

func (f *fakeEventStore) List(_ context.Context) ([]*models.Event, error) {
	out := make([]*models.Event, 0, len(f.rows))
	for _, r := range f.rows {
		cp := *r
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (f *fakeEventStore) Update(_ context.Context, id int64, patch models.EventPatch) (*models.Event, error) {
	for _, r := range f.rows {
		if r.ID == id {
			patch.Apply(r)
			cp := *r
			return &cp, nil
		}
	}
	return nil, repositories.ErrEventNotFound
}

func (f *fakeEventStore) Delete(_ context.Context, id int64) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrEventNotFound
}

type fakeAlumniStore struct {
	nextID int64
	rows   []*models.Alumni
}

func (f *fakeAlumniStore) Create(_ context.Context, a *models.Alumni) error {
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeAlumniStore) GetByID(_ context.Context, id int64) (*models.Alumni, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, repositories.ErrAlumniNotFound
}

func (f *fakeAlumniStore) List(_ context.Context) ([]*models.Alumni, error) {
	return append([]*models.Alumni{}, f.rows...), nil
}

func (f *fakeAlumniStore) Update(ctx context.Context, id int64, _ models.AlumniPatch) (*models.Alumni, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAlumniStore) Delete(_ context.Context, id int64) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrAlumniNotFound
}

type fakeAttendanceStore struct {
	nextID int64
	rows   []*models.Attendance
}

func (f *fakeAttendanceStore) Create(_ context.Context, a *models.Attendance) error {
	f.nextID++
	a.ID = f.nextID
	a.MarkedAt = fixedNow
	cp := *a
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeAttendanceStore) List(_ context.Context, eventID *int64) ([]*models.Attendance, error) {
	out := []*models.Attendance{}
	for _, r := range f.rows {
		if eventID != nil && (r.EventID == nil || *r.EventID != *eventID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceStore) Delete(_ context.Context, id int64) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrAttendanceNotFound
}

type fakeNotificationStore struct {
	nextID int64
	rows   []*models.Notification
}

func (f *fakeNotificationStore) Create(_ context.Context, n *models.Notification) error {
	f.nextID++
	n.ID = f.nextID
	cp := *n
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeNotificationStore) List(_ context.Context, category models.NotificationCategory) ([]*models.Notification, error) {
	out := []*models.Notification{}
	for _, r := range f.rows {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) Update(_ context.Context, category models.NotificationCategory, id int64, patch models.NotificationPatch) (*models.Notification, error) {
	for _, r := range f.rows {
		if r.ID == id && r.Category == category {
			if patch.Title != nil {
				r.Title = *patch.Title
			}
			return r, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationStore) Delete(_ context.Context, category models.NotificationCategory, id int64) error {
	for i, r := range f.rows {
		if r.ID == id && r.Category == category {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return repositories.ErrUsernameExists
		}
	}
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeDenylist struct {
	revoked map[string]time.Time
}

func (f *fakeDenylist) Revoke(_ context.Context, id string, exp time.Time) error {
	if f.revoked == nil {
		f.revoked = map[string]time.Time{}
	}
	f.revoked[id] = exp
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := f.revoked[id]
	return ok, nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(fh *multipart.FileHeader, dir string) (string, error) {
	url := "/uploads/" + dir + "/" + fh.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}
