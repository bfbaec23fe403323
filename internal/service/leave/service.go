package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/domain/leave"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
	"github.com/hexahash/attendance-portal-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db           *database.DB
	typeRepo     leave.LeaveTypeRepository
	appRepo      leave.ApplicationRepository
	employeeRepo employee.EmployeeRepository
	holidayRepo  holiday.HolidayRepository
	settingsRepo settings.SettingsRepository
	summaryRepo  attendance.SummaryRepository
}

func NewLeaveService(
	db *database.DB,
	typeRepo leave.LeaveTypeRepository,
	appRepo leave.ApplicationRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	settingsRepo settings.SettingsRepository,
	summaryRepo attendance.SummaryRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:           db,
		typeRepo:     typeRepo,
		appRepo:      appRepo,
		employeeRepo: employeeRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		summaryRepo:  summaryRepo,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req *leave.CreateLeaveTypeRequest) (*leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := leave.LeaveType{
		Name:       req.Name,
		MaxPerYear: req.MaxPerYear,
		IsPaid:     req.IsPaid,
		IsActive:   true,
	}
	if err := s.typeRepo.Create(ctx, &t); err != nil {
		return nil, err
	}

	return toLeaveTypeResponse(&t), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	types, err := s.typeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]leave.LeaveTypeResponse, 0, len(types))
	for i := range types {
		resp = append(resp, *toLeaveTypeResponse(&types[i]))
	}
	return resp, nil
}

// Apply implements leave.LeaveService. The day count excludes non-working
// weekdays and holidays, so a Friday-to-Monday application costs two days
// under a Monday-to-Friday work week.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req *leave.ApplyLeaveRequest) (*leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp.Status != employee.StatusActive {
		return nil, employee.ErrEmployeeInactive
	}

	leaveType, err := s.typeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlaps, err := s.appRepo.HasOverlap(ctx, req.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, leave.ErrLeaveOverlaps
	}

	totalDays, err := s.countWorkingDays(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if totalDays == 0 {
		return nil, validator.ValidationErrors{{
			Field:   "start_date",
			Message: "range contains no working days",
		}}
	}

	taken, err := s.appRepo.DaysTakenInYear(ctx, req.EmployeeID, req.LeaveTypeID, start.Year())
	if err != nil {
		return nil, err
	}
	if taken+totalDays > leaveType.MaxPerYear {
		return nil, leave.ErrLeaveBalanceExceeded
	}

	app := leave.LeaveApplication{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	}
	if err := s.appRepo.Create(ctx, &app); err != nil {
		return nil, err
	}

	return toApplicationResponse(&app), nil
}

// GetApplication implements leave.LeaveService.
func (s *LeaveServiceImpl) GetApplication(ctx context.Context, id string) (*leave.ApplicationResponse, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// ListApplications implements leave.LeaveService.
func (s *LeaveServiceImpl) ListApplications(ctx context.Context, filter *leave.ApplicationFilter) (*leave.ListApplicationResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	apps, total, err := s.appRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]leave.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, *toApplicationResponse(&apps[i]))
	}

	return &leave.ListApplicationResponse{
		Applications: resp,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}, nil
}

// Approve implements leave.LeaveService. The status flip and the summary
// rewrite commit together or not at all.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id, decidedBy string) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		now := time.Now()
		if err := s.appRepo.UpdateStatus(txCtx, id, leave.StatusApproved, decidedBy, now); err != nil {
			return fmt.Errorf("failed to approve application: %w", err)
		}

		if err := s.summaryRepo.SetStatusForRange(txCtx, app.EmployeeID, app.StartDate, app.EndDate, attendance.StatusLeave); err != nil {
			return fmt.Errorf("failed to mark summaries as leave: %w", err)
		}

		return nil
	})
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id, decidedBy string) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	return s.appRepo.UpdateStatus(ctx, id, leave.StatusRejected, decidedBy, time.Now())
}

func (s *LeaveServiceImpl) countWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	workWeek, err := s.settingsRepo.GetWorkWeek(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load work week: %w", err)
	}
	working := make(map[time.Weekday]bool, len(workWeek))
	for _, d := range workWeek {
		working[d.Weekday] = d.IsWorking
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to load holidays: %w", err)
	}

	return workingDays(start, end, working, holidays), nil
}

// workingDays counts the days in [start, end] that fall on a working
// weekday and are not holidays.
func workingDays(start, end time.Time, working map[time.Weekday]bool, holidays []holiday.Holiday) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !working[d.Weekday()] {
			continue
		}
		isHoliday := false
		for i := range holidays {
			if holidays[i].Occurs(d) {
				isHoliday = true
				break
			}
		}
		if !isHoliday {
			count++
		}
	}
	return count
}

func toLeaveTypeResponse(t *leave.LeaveType) *leave.LeaveTypeResponse {
	return &leave.LeaveTypeResponse{
		ID:         t.ID,
		Name:       t.Name,
		MaxPerYear: t.MaxPerYear,
		IsPaid:     t.IsPaid,
		IsActive:   t.IsActive,
	}
}

func toApplicationResponse(app *leave.LeaveApplication) *leave.ApplicationResponse {
	resp := &leave.ApplicationResponse{
		ID:            app.ID,
		EmployeeID:    app.EmployeeID,
		EmployeeCode:  app.EmployeeCode,
		EmployeeName:  app.EmployeeName,
		LeaveTypeID:   app.LeaveTypeID,
		LeaveTypeName: app.LeaveTypeName,
		StartDate:     app.StartDate.Format("2006-01-02"),
		EndDate:       app.EndDate.Format("2006-01-02"),
		TotalDays:     app.TotalDays,
		Reason:        app.Reason,
		Status:        string(app.Status),
		DecidedBy:     app.DecidedBy,
	}
	if app.DecidedAt != nil {
		decidedAt := app.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
