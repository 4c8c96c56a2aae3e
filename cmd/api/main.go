package main

import (
	"fmt"
	"net/http"

	"github.com/tyro-hq/tyro-backend-go/internal/config"
	appHTTP "github.com/tyro-hq/tyro-backend-go/internal/handler/http"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/jwt"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
	announcementService "github.com/tyro-hq/tyro-backend-go/internal/service/announcement"
	attendanceService "github.com/tyro-hq/tyro-backend-go/internal/service/attendance"
	authService "github.com/tyro-hq/tyro-backend-go/internal/service/auth"
	dashboardService "github.com/tyro-hq/tyro-backend-go/internal/service/dashboard"
	employeeService "github.com/tyro-hq/tyro-backend-go/internal/service/employee"
	permissionService "github.com/tyro-hq/tyro-backend-go/internal/service/permission"
	weekOffService "github.com/tyro-hq/tyro-backend-go/internal/service/weekoff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	weekOffRepo := postgresql.NewWeekOffRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	auth := authService.NewAuthService(userRepo, jwtService)
	attendance := attendanceService.NewAttendanceService(attendanceRepo, permissionRepo, userRepo, cfg.Office)
	permissions := permissionService.NewPermissionService(db, permissionRepo, announcementRepo)
	weekOffs := weekOffService.NewWeekOffService(db, weekOffRepo, announcementRepo, userRepo)
	announcements := announcementService.NewAnnouncementService(announcementRepo, userRepo)
	dashboards := dashboardService.NewDashboardService(dashboardRepo)
	employees := employeeService.NewEmployeeService(db, userRepo, attendanceRepo, permissionRepo, weekOffRepo, announcementRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(auth, jwtService),
		appHTTP.NewAttendanceHandler(attendance),
		appHTTP.NewPermissionHandler(permissions),
		appHTTP.NewWeekOffHandler(weekOffs),
		appHTTP.NewAnnouncementHandler(announcements),
		appHTTP.NewAdminHandler(dashboards, employees),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
