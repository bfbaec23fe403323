package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hexahash/attendance-portal-go/internal/handler/http/middleware"
	"github.com/hexahash/attendance-portal-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Master     MasterHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Leave      LeaveHandler
	Settings   SettingsHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-portal"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Punch ingest is open to kiosk devices; the employee code plus the
		// registered device name identify the event.
		r.Post("/punches", h.Attendance.RecordPunch)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)
				r.With(middleware.AdminOnly).Post("/register", h.Auth.Register)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Post("/{id}/deactivate", h.Employee.DeactivateEmployee)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/departments", h.Master.ListDepartments)
				r.Get("/departments/{id}", h.Master.GetDepartment)
				r.Get("/designations", h.Master.ListDesignations)
				r.Get("/designations/{id}", h.Master.GetDesignation)
				r.Get("/shifts", h.Master.ListShifts)
				r.Get("/shifts/{id}", h.Master.GetShift)
				r.Get("/devices", h.Master.ListDevices)
				r.Get("/devices/{id}", h.Master.GetDevice)
				r.Get("/holidays", h.Master.ListHolidays)
				r.Get("/holidays/{id}", h.Master.GetHoliday)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/departments", h.Master.CreateDepartment)
					r.Put("/departments/{id}", h.Master.UpdateDepartment)
					r.Delete("/departments/{id}", h.Master.DeleteDepartment)
					r.Post("/designations", h.Master.CreateDesignation)
					r.Put("/designations/{id}", h.Master.UpdateDesignation)
					r.Delete("/designations/{id}", h.Master.DeleteDesignation)
					r.Post("/shifts", h.Master.CreateShift)
					r.Put("/shifts/{id}", h.Master.UpdateShift)
					r.Delete("/shifts/{id}", h.Master.DeleteShift)
					r.Post("/devices", h.Master.CreateDevice)
					r.Put("/devices/{id}", h.Master.UpdateDevice)
					r.Delete("/devices/{id}", h.Master.DeleteDevice)
					r.Post("/holidays", h.Master.CreateHoliday)
					r.Put("/holidays/{id}", h.Master.UpdateHoliday)
					r.Delete("/holidays/{id}", h.Master.DeleteHoliday)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/punches", h.Attendance.ListPunches)
				r.Get("/punches/{id}", h.Attendance.GetPunch)
				r.Get("/summaries", h.Attendance.ListSummaries)
				r.Get("/summaries/{employeeID}/{date}", h.Attendance.GetSummary)
				r.Get("/stats", h.Attendance.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/punches/{id}/approve", h.Attendance.ApprovePunch)
					r.Post("/punches/{id}/reject", h.Attendance.RejectPunch)
					r.Post("/summaries/derive", h.Attendance.DeriveSummaries)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", h.Leave.ListLeaveTypes)
				r.Post("/applications", h.Leave.Apply)
				r.Get("/applications", h.Leave.ListApplications)
				r.Get("/applications/{id}", h.Leave.GetApplication)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/applications/{id}/approve", h.Leave.Approve)
					r.Post("/applications/{id}/reject", h.Leave.Reject)
				})

				r.With(middleware.AdminOnly).Post("/types", h.Leave.CreateLeaveType)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/components", h.Payroll.CreateComponent)
				r.Put("/components/{id}", h.Payroll.UpdateComponent)
				r.Get("/components", h.Payroll.ListComponents)

				r.Post("/salaries", h.Payroll.AssignSalary)
				r.Get("/salaries/{employeeID}", h.Payroll.GetEmployeeSalary)

				r.Post("/periods", h.Payroll.CreatePeriod)
				r.Get("/periods", h.Payroll.ListPeriods)
				r.Post("/periods/{id}/close", h.Payroll.ClosePeriod)

				r.Post("/runs", h.Payroll.CreateRun)
				r.Get("/runs", h.Payroll.ListRuns)
				r.Get("/runs/{id}", h.Payroll.GetRun)
				r.Post("/runs/{id}/process", h.Payroll.ProcessRun)
				r.Post("/runs/{id}/cancel", h.Payroll.CancelRun)
				r.Get("/runs/{id}/payslips", h.Payroll.ListRunPayslips)

				r.Get("/payslips/{id}", h.Payroll.GetPayslip)
				r.Get("/employees/{employeeID}/payslips", h.Payroll.ListEmployeePayslips)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/profile", h.Settings.GetProfile)
				r.Get("/attendance-rule", h.Settings.GetRule)
				r.Get("/work-week", h.Settings.GetWorkWeek)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/profile", h.Settings.UpdateProfile)
					r.Put("/attendance-rule", h.Settings.UpdateRule)
					r.Put("/work-week", h.Settings.UpdateWorkWeek)
				})
			})

			r.Get("/dashboard/overview", h.Dashboard.GetOverview)
		})
	})
	return r
}
