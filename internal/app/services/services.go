package services

import (
	"github.com/yigit/tpoportal/internal/app/repositories"
	"github.com/yigit/tpoportal/internal/pkg/auth"
	"github.com/yigit/tpoportal/internal/pkg/eventstatus"
	"github.com/yigit/tpoportal/internal/pkg/filestorage"
)

// Services holds every service of the portal
type Services struct {
	AuthService         AuthService
	StudentService      StudentService
	EventService        EventService
	AlumniService       AlumniService
	AttendanceService   AttendanceService
	NewsService         NewsService
	NotificationService NotificationService
	PlacementService    PlacementService
	ImportService       ImportService
	ExportService       ExportService
}

// Dependencies are the collaborators shared by the services
type Dependencies struct {
	Repos      *repositories.Repositories
	JWTService *auth.JWTService
	Denylist   TokenDenylist
	Storage    filestorage.FileStorage
	Clock      eventstatus.Clock
}

// NewServices wires all services onto the repositories
func NewServices(deps Dependencies) *Services {
	r := deps.Repos
	return &Services{
		AuthService:         NewAuthService(r.UserRepository, deps.Denylist, deps.JWTService),
		StudentService:      NewStudentService(r.StudentRepository, deps.Storage),
		EventService:        NewEventService(r.EventRepository, deps.Clock),
		AlumniService:       NewAlumniService(r.AlumniRepository),
		AttendanceService:   NewAttendanceService(r.AttendanceRepository, r.EventRepository),
		NewsService:         NewNewsService(r.NewsRepository),
		NotificationService: NewNotificationService(r.NotificationRepository),
		PlacementService:    NewPlacementService(r.StudentRepository),
		ImportService:       NewImportService(r.StudentRepository, r.EventRepository, r.AlumniRepository, r.AttendanceRepository),
		ExportService:       NewExportService(r.StudentRepository, r.AlumniRepository, r.AttendanceRepository),
	}
}
