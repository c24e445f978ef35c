package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/controllers"
	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/middleware"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Event        *controllers.EventController
	Alumni       *controllers.AlumniController
	Attendance   *controllers.AttendanceController
	News         *controllers.NewsController
	Notification *controllers.NotificationController
	Placement    *controllers.PlacementController
	Transfer     *controllers.TransferController
}

// SetupRouter configures all application routes. publicWrite guards the
// unauthenticated write endpoints (rate limiting).
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	publicWrite gin.HandlerFunc,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/login", publicWrite, c.Auth.Login)

	api.GET("/events", c.Event.ListEvents)
	api.GET("/events/grouped", c.Event.GroupedEvents)
	api.GET("/events/:id", c.Event.GetEvent)

	api.GET("/news", c.News.ListNews)

	api.GET("/important-notifications", c.Notification.ListImportant)
	api.GET("/hero-notifications", c.Notification.ListHero)

	api.GET("/placements/stats", c.Placement.Stats)
	api.GET("/placements/recent", c.Placement.Recent)

	api.POST("/alumni", publicWrite, c.Alumni.RegisterAlumni)
	api.POST("/attendance", publicWrite, c.Attendance.MarkAttendance)

	// --- Authenticated routes (TPO admin) ---
	admin := api.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleTPO)))
	{
		admin.GET("/user", c.Auth.GetUser)
		admin.POST("/logout", c.Auth.Logout)

		students := admin.Group("/students")
		{
			students.GET("", c.Student.ListStudents)
			students.GET("/grouped", c.Student.GroupedStudents)
			students.GET("/:id", c.Student.GetStudent)
			students.POST("", c.Student.CreateStudent)
			students.PUT("/:id", c.Student.UpdateStudent)
			students.DELETE("/:id", c.Student.DeleteStudent)
		}

		alumni := admin.Group("/alumni")
		{
			alumni.GET("", c.Alumni.ListAlumni)
			alumni.GET("/grouped", c.Alumni.GroupedAlumni)
			alumni.GET("/:id", c.Alumni.GetAlumni)
			alumni.PUT("/:id", c.Alumni.UpdateAlumni)
			alumni.DELETE("/:id", c.Alumni.DeleteAlumni)
		}

		attendance := admin.Group("/attendance")
		{
			attendance.GET("", c.Attendance.ListAttendance)
			attendance.DELETE("/:id", c.Attendance.DeleteAttendance)
		}

		events := admin.Group("/events")
		{
			events.POST("", c.Event.CreateEvent)
			events.PUT("/:id", c.Event.UpdateEvent)
			events.DELETE("/:id", c.Event.DeleteEvent)
			events.GET("/:id/attendance", c.Event.EventAttendance)
		}

		news := admin.Group("/news")
		{
			news.POST("", c.News.CreateNews)
			news.PUT("/:id", c.News.UpdateNews)
			news.DELETE("/:id", c.News.DeleteNews)
		}

		important := admin.Group("/important-notifications")
		{
			important.GET("/manage", c.Notification.ManageImportant)
			important.POST("", c.Notification.Create(models.NotificationImportant))
			important.PUT("/:id", c.Notification.Update(models.NotificationImportant))
			important.DELETE("/:id", c.Notification.Delete(models.NotificationImportant))
		}

		hero := admin.Group("/hero-notifications")
		{
			hero.POST("", c.Notification.Create(models.NotificationHero))
			hero.PUT("/:id", c.Notification.Update(models.NotificationHero))
			hero.DELETE("/:id", c.Notification.Delete(models.NotificationHero))
		}

		admin.POST("/import/:kind", c.Transfer.Import)
		admin.GET("/export/:kind", c.Transfer.Export)
	}
}
