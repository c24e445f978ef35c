package repositories

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	EventRepository        *EventRepository
	AlumniRepository       *AlumniRepository
	AttendanceRepository   *AttendanceRepository
	NewsRepository         *NewsRepository
	NotificationRepository *NotificationRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return &Repositories{
		UserRepository:         NewUserRepository(db, sb),
		StudentRepository:      NewStudentRepository(db, sb),
		EventRepository:        NewEventRepository(db, sb),
		AlumniRepository:       NewAlumniRepository(db, sb),
		AttendanceRepository:   NewAttendanceRepository(db, sb),
		NewsRepository:         NewNewsRepository(db, sb),
		NotificationRepository: NewNotificationRepository(db, sb),
		TokenRepository:        NewTokenRepository(db, sb),
	}
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
