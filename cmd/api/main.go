package main

import (
	"fmt"
	"net/http"

	"github.com/nilehr/attendance-backend-go/internal/config"
	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/nilehr/attendance-backend-go/internal/handler/http"
	"github.com/nilehr/attendance-backend-go/internal/pkg/cron"
	"github.com/nilehr/attendance-backend-go/internal/pkg/database"
	"github.com/nilehr/attendance-backend-go/internal/pkg/jwt"
	"github.com/nilehr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nilehr/attendance-backend-go/internal/service/attendance"
	authService "github.com/nilehr/attendance-backend-go/internal/service/auth"
	"github.com/nilehr/attendance-backend-go/internal/service/calendar"
	holidayService "github.com/nilehr/attendance-backend-go/internal/service/holiday"
	reportService "github.com/nilehr/attendance-backend-go/internal/service/report"
	summaryService "github.com/nilehr/attendance-backend-go/internal/service/summary"
	userService "github.com/nilehr/attendance-backend-go/internal/service/user"
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
	summaryRepo := postgresql.NewSummaryRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	policy := attendance.Policy{
		StandardWorkMinutes: cfg.Workday.StandardWorkMinutes,
		WorkStartMinute:     cfg.Workday.StartMinute(),
		LateGraceMinutes:    cfg.Workday.LateGraceMinutes,
	}
	rules := calendar.NewRules(cfg.Workday.WeeklyRestDay)

	authSvc := authService.NewService(userRepo, jwtService)
	summarySvc := summaryService.NewService(db, summaryRepo, attendanceRepo, userRepo, policy)
	attendanceSvc := attendanceService.NewService(attendanceRepo, summarySvc, policy)
	reportSvc := reportService.NewService(attendanceRepo, summarySvc, summaryRepo, userRepo, holidayRepo, rules)
	holidaySvc := holidayService.NewService(holidayRepo)
	userSvc := userService.NewService(userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		summaryHandler,
		reportHandler,
		holidayHandler,
		userHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewSummaryJobs(summarySvc, userRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
