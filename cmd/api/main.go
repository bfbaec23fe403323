package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hexahash/attendance-portal-go/internal/config"
	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	appHTTP "github.com/hexahash/attendance-portal-go/internal/handler/http"
	"github.com/hexahash/attendance-portal-go/internal/pkg/cron"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
	"github.com/hexahash/attendance-portal-go/internal/pkg/jwt"
	"github.com/hexahash/attendance-portal-go/internal/pkg/storage"
	"github.com/hexahash/attendance-portal-go/internal/repository/postgresql"
	attendanceService "github.com/hexahash/attendance-portal-go/internal/service/attendance"
	authService "github.com/hexahash/attendance-portal-go/internal/service/auth"
	dashboardService "github.com/hexahash/attendance-portal-go/internal/service/dashboard"
	employeeService "github.com/hexahash/attendance-portal-go/internal/service/employee"
	"github.com/hexahash/attendance-portal-go/internal/service/file"
	leaveService "github.com/hexahash/attendance-portal-go/internal/service/leave"
	masterService "github.com/hexahash/attendance-portal-go/internal/service/master"
	payrollService "github.com/hexahash/attendance-portal-go/internal/service/payroll"
	settingsService "github.com/hexahash/attendance-portal-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	runRepo := postgresql.NewRunRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, designationRepo, shiftRepo, fileSvc)
	masterSvc := masterService.NewMasterService(departmentRepo, designationRepo, shiftRepo, deviceRepo, holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		punchRepo,
		summaryRepo,
		employeeRepo,
		shiftRepo,
		deviceRepo,
		holidayRepo,
		settingsRepo,
		applicationRepo,
		fileSvc,
	)
	payrollSvc := payrollService.NewPayrollService(db, componentRepo, salaryRepo, periodRepo, runRepo, payslipRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, applicationRepo, employeeRepo, holidayRepo, settingsRepo, summaryRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, fileSvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.AddDailyJob("derive-daily-summaries", 1, 30, func(ctx context.Context) error {
		yesterday := yesterdayDate()
		_, err := attendanceSvc.DeriveSummaries(ctx, attendance.DeriveSummariesRequest{
			DateFrom: yesterday,
			DateTo:   yesterday,
		})
		return err
	})
	scheduler.AddJob("prune-revoked-tokens", time.Hour, func(ctx context.Context) error {
		jwtService.PruneRevoked()
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func yesterdayDate() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}
