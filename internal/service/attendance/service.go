package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/domain/leave"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/device"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
	"github.com/hexahash/attendance-portal-go/internal/repository/postgresql"
	"github.com/hexahash/attendance-portal-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	db           *database.DB
	punchRepo    attendance.PunchRepository
	summaryRepo  attendance.SummaryRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	deviceRepo   device.DeviceRepository
	holidayRepo  holiday.HolidayRepository
	settingsRepo settings.SettingsRepository
	leaveRepo    leave.ApplicationRepository
	fileService  file.FileService
}

func NewAttendanceService(
	db *database.DB,
	punchRepo attendance.PunchRepository,
	summaryRepo attendance.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	deviceRepo device.DeviceRepository,
	holidayRepo holiday.HolidayRepository,
	settingsRepo settings.SettingsRepository,
	leaveRepo leave.ApplicationRepository,
	fileService file.FileService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:           db,
		punchRepo:    punchRepo,
		summaryRepo:  summaryRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		deviceRepo:   deviceRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		leaveRepo:    leaveRepo,
		fileService:  fileService,
	}
}

// RecordPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.RecordPunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return attendance.PunchResponse{}, employee.ErrEmployeeInactive
	}

	punchTime := time.Now()
	if req.PunchTime != "" {
		t, ok := validator.IsValidDateTime(req.PunchTime)
		if !ok {
			return attendance.PunchResponse{}, validator.ValidationErrors{{
				Field: "punch_time", Message: "punch_time must be an ISO8601 timestamp",
			}}
		}
		punchTime = t
	}

	punch := attendance.PunchEvent{
		EmployeeID: emp.ID,
		Direction:  attendance.PunchDirection(req.Direction),
		PunchTime:  punchTime,
		GeoLat:     req.GeoLat,
		GeoLong:    req.GeoLong,
		Status:     attendance.PunchApproved,
	}

	if req.DeviceName != nil && *req.DeviceName != "" {
		dev, err := s.deviceRepo.GetByName(ctx, *req.DeviceName)
		if err != nil {
			return attendance.PunchResponse{}, err
		}
		punch.DeviceID = &dev.ID
		if !dev.IsActive {
			// Punches from deregistered terminals wait for manual approval.
			punch.Status = attendance.PunchPending
		}
		if err := s.deviceRepo.TouchLastSeen(ctx, dev.ID); err != nil {
			return attendance.PunchResponse{}, err
		}
	}

	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadSelfie(ctx, emp.ID, punchTime, req.File, req.FileHeader.Filename)
		if err != nil {
			return attendance.PunchResponse{}, err
		}
		punch.SelfieURL = &path
	}

	var created attendance.PunchEvent
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.punchRepo.Create(txCtx, punch)
		if err != nil {
			return err
		}

		if created.Status == attendance.PunchApproved {
			if err := s.rederiveDay(txCtx, emp.ID, punchTime); err != nil {
				return fmt.Errorf("failed to update daily summary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	created.EmployeeCode = &emp.Code
	name := emp.FullName()
	created.EmployeeName = &name

	return toPunchResponse(created), nil
}

// rederiveDay recomputes the summary for one employee-day from its approved
// punches. Must run with the caller's transaction in ctx when atomicity
// with a punch write is required.
func (s *AttendanceServiceImpl) rederiveDay(ctx context.Context, employeeID string, date time.Time) error {
	punches, err := s.punchRepo.GetByEmployeeAndDate(ctx, employeeID, date, true)
	if err != nil {
		return err
	}

	sh, err := s.shiftRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil && !errors.Is(err, shift.ErrShiftNotFound) {
		return err
	}

	rule, err := s.settingsRepo.GetRule(ctx)
	if err != nil {
		return err
	}

	summary := buildSummary(employeeID, date, punches, sh, *rule)

	covering, err := s.leaveRepo.ApprovedCovering(ctx, employeeID, date)
	if err != nil {
		return err
	}
	if covering != nil {
		summary.Status = attendance.StatusLeave
	}

	_, err = s.summaryRepo.Upsert(ctx, summary)
	return err
}

// GetPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetPunch(ctx context.Context, id string) (attendance.PunchResponse, error) {
	punch, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	return toPunchResponse(punch), nil
}

// ListPunches implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListPunches(ctx context.Context, filter attendance.PunchFilter) (attendance.ListPunchResponse, error) {
	punches, total, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListPunchResponse{}, err
	}

	resp := attendance.ListPunchResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Punches:    make([]attendance.PunchResponse, 0, len(punches)),
	}
	for _, p := range punches {
		resp.Punches = append(resp.Punches, toPunchResponse(p))
	}

	return resp, nil
}

// ApprovePunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApprovePunch(ctx context.Context, id string) (attendance.PunchResponse, error) {
	return s.decidePunch(ctx, id, attendance.PunchApproved)
}

// RejectPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RejectPunch(ctx context.Context, id string) (attendance.PunchResponse, error) {
	return s.decidePunch(ctx, id, attendance.PunchRejected)
}

func (s *AttendanceServiceImpl) decidePunch(ctx context.Context, id string, status attendance.PunchStatus) (attendance.PunchResponse, error) {
	punch, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if punch.Status != attendance.PunchPending {
		return attendance.PunchResponse{}, attendance.ErrPunchAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.punchRepo.UpdateStatus(txCtx, id, status); err != nil {
			return err
		}

		// Approval changes the set of approved punches, so the day's
		// summary must follow.
		if status == attendance.PunchApproved {
			if err := s.rederiveDay(txCtx, punch.EmployeeID, punch.PunchTime); err != nil {
				return fmt.Errorf("failed to update daily summary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	punch.Status = status
	return toPunchResponse(punch), nil
}

// GetSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, employeeID string, date string) (attendance.SummaryResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.SummaryResponse{}, validator.ValidationErrors{{
			Field: "date", Message: "date must be a YYYY-MM-DD date",
		}}
	}

	summary, err := s.summaryRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return toSummaryResponse(summary), nil
}

// ListSummaries implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListSummaries(ctx context.Context, filter attendance.SummaryFilter) (attendance.ListSummaryResponse, error) {
	summaries, total, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListSummaryResponse{}, err
	}

	resp := attendance.ListSummaryResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Summaries:  make([]attendance.SummaryResponse, 0, len(summaries)),
	}
	for _, sm := range summaries {
		resp.Summaries = append(resp.Summaries, toSummaryResponse(sm))
	}

	return resp, nil
}

// DeriveSummaries implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeriveSummaries(ctx context.Context, req attendance.DeriveSummariesRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	from, _ := validator.IsValidDate(req.DateFrom)
	to, _ := validator.IsValidDate(req.DateTo)

	rule, err := s.settingsRepo.GetRule(ctx)
	if err != nil {
		return 0, err
	}

	workWeek, err := s.settingsRepo.GetWorkWeek(ctx)
	if err != nil {
		return 0, err
	}
	working := make(map[time.Weekday]bool, len(workWeek))
	for _, d := range workWeek {
		working[d.Weekday] = d.IsWorking
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				return 0, err
			}
			employees = append(employees, *emp)
		}
	} else {
		employees, err = s.employeeRepo.ListActiveOn(ctx, to)
		if err != nil {
			return 0, err
		}
	}

	count := 0
	for i := range employees {
		emp := &employees[i]

		sh, err := s.shiftRepo.GetByEmployeeID(ctx, emp.ID)
		if err != nil && !errors.Is(err, shift.ErrShiftNotFound) {
			return 0, err
		}

		for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
			if !emp.ActiveOn(date) {
				continue
			}
			if !working[date.Weekday()] {
				continue
			}
			if isHoliday(holidays, date) {
				continue
			}

			punches, err := s.punchRepo.GetByEmployeeAndDate(ctx, emp.ID, date, true)
			if err != nil {
				return 0, err
			}

			summary := buildSummary(emp.ID, date, punches, sh, *rule)

			covering, err := s.leaveRepo.ApprovedCovering(ctx, emp.ID, date)
			if err != nil {
				return 0, err
			}
			if covering != nil {
				summary.Status = attendance.StatusLeave
			}

			if _, err := s.summaryRepo.Upsert(ctx, summary); err != nil {
				return 0, err
			}
			count++
		}
	}

	return count, nil
}

func isHoliday(holidays []holiday.Holiday, date time.Time) bool {
	for _, h := range holidays {
		if h.Occurs(date) {
			return true
		}
	}
	return false
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, dateFrom, dateTo string, employeeIDs []string) ([]attendance.StatsResponse, error) {
	from, ok := validator.IsValidDate(dateFrom)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field: "date_from", Message: "date_from must be a YYYY-MM-DD date",
		}}
	}
	to, ok := validator.IsValidDate(dateTo)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field: "date_to", Message: "date_to must be a YYYY-MM-DD date",
		}}
	}
	if to.Before(from) {
		return nil, validator.ValidationErrors{{
			Field: "date_to", Message: "date_to must not be before date_from",
		}}
	}

	stats, err := s.summaryRepo.Stats(ctx, from, to, employeeIDs)
	if err != nil {
		return nil, err
	}

	resp := make([]attendance.StatsResponse, 0, len(stats))
	for _, st := range stats {
		resp = append(resp, attendance.StatsResponse{
			EmployeeID:       st.EmployeeID,
			EmployeeCode:     st.EmployeeCode,
			EmployeeName:     st.EmployeeName,
			PresentDays:      st.PresentDays,
			AbsentDays:       st.AbsentDays,
			HalfDays:         st.HalfDays,
			LeaveDays:        st.LeaveDays,
			LateDays:         st.LateDays,
			TotalLateMinutes: st.TotalLateMinutes,
			TotalHours:       st.TotalHours.StringFixed(2),
		})
	}

	return resp, nil
}

func toPunchResponse(p attendance.PunchEvent) attendance.PunchResponse {
	resp := attendance.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Direction:  string(p.Direction),
		PunchTime:  p.PunchTime.Format(time.RFC3339),
		DeviceName: p.DeviceName,
		GeoLat:     p.GeoLat,
		GeoLong:    p.GeoLong,
		SelfieURL:  p.SelfieURL,
		Status:     string(p.Status),
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	return resp
}

func toSummaryResponse(sm attendance.DailySummary) attendance.SummaryResponse {
	resp := attendance.SummaryResponse{
		ID:         sm.ID,
		EmployeeID: sm.EmployeeID,
		Date:       sm.Date.Format("2006-01-02"),
		LateBy:     sm.LateBy,
		EarlyOut:   sm.EarlyOut,
		Status:     string(sm.Status),
	}
	if sm.EmployeeCode != nil {
		resp.EmployeeCode = *sm.EmployeeCode
	}
	if sm.EmployeeName != nil {
		resp.EmployeeName = *sm.EmployeeName
	}
	if sm.InTime != nil {
		t := sm.InTime.Format(time.RFC3339)
		resp.InTime = &t
	}
	if sm.OutTime != nil {
		t := sm.OutTime.Format(time.RFC3339)
		resp.OutTime = &t
	}
	if sm.WorkedHours != nil {
		h := sm.WorkedHours.StringFixed(2)
		resp.WorkedHours = &h
	}
	return resp
}
