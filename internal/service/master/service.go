package master

import (
	"context"
	"time"

	"github.com/hexahash/attendance-portal-go/internal/domain/master"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/department"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/designation"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/device"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

type MasterServiceImpl struct {
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
	shiftRepo       shift.ShiftRepository
	deviceRepo      device.DeviceRepository
	holidayRepo     holiday.HolidayRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
	shiftRepo shift.ShiftRepository,
	deviceRepo device.DeviceRepository,
	holidayRepo holiday.HolidayRepository,
) master.MasterService {
	return &MasterServiceImpl{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		shiftRepo:       shiftRepo,
		deviceRepo:      deviceRepo,
		holidayRepo:     holidayRepo,
	}
}

// ---------- departments ----------

func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req *department.CreateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByName(ctx, req.Name); err == nil {
		return nil, department.ErrDepartmentNameExists
	}

	d := department.Department{Name: req.Name, IsActive: true}
	if err := s.departmentRepo.Create(ctx, &d); err != nil {
		return nil, err
	}

	return toDepartmentResponse(&d), nil
}

func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req *department.UpdateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != d.Name {
		if _, err := s.departmentRepo.GetByName(ctx, *req.Name); err == nil {
			return nil, department.ErrDepartmentNameExists
		}
		d.Name = *req.Name
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := s.departmentRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	return toDepartmentResponse(d), nil
}

func (s *MasterServiceImpl) GetDepartment(ctx context.Context, id string) (*department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(d), nil
}

func (s *MasterServiceImpl) ListDepartments(ctx context.Context, activeOnly bool) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]department.DepartmentResponse, 0, len(departments))
	for i := range departments {
		resp = append(resp, *toDepartmentResponse(&departments[i]))
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ---------- designations ----------

func (s *MasterServiceImpl) CreateDesignation(ctx context.Context, req *designation.CreateDesignationRequest) (*designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.designationRepo.GetByName(ctx, req.Name); err == nil {
		return nil, designation.ErrDesignationNameExists
	}

	d := designation.Designation{Name: req.Name, Description: req.Description, IsActive: true}
	if err := s.designationRepo.Create(ctx, &d); err != nil {
		return nil, err
	}

	return toDesignationResponse(&d), nil
}

func (s *MasterServiceImpl) UpdateDesignation(ctx context.Context, req *designation.UpdateDesignationRequest) (*designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.designationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != d.Name {
		if _, err := s.designationRepo.GetByName(ctx, *req.Name); err == nil {
			return nil, designation.ErrDesignationNameExists
		}
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = req.Description
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := s.designationRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	return toDesignationResponse(d), nil
}

func (s *MasterServiceImpl) GetDesignation(ctx context.Context, id string) (*designation.DesignationResponse, error) {
	d, err := s.designationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDesignationResponse(d), nil
}

func (s *MasterServiceImpl) ListDesignations(ctx context.Context, activeOnly bool) ([]designation.DesignationResponse, error) {
	designations, err := s.designationRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]designation.DesignationResponse, 0, len(designations))
	for i := range designations {
		resp = append(resp, *toDesignationResponse(&designations[i]))
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	return s.designationRepo.Delete(ctx, id)
}

// ---------- shifts ----------

func (s *MasterServiceImpl) CreateShift(ctx context.Context, req *shift.CreateShiftRequest) (*shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.shiftRepo.GetByName(ctx, req.Name); err == nil {
		return nil, shift.ErrShiftNameExists
	}

	startTime, _ := validator.IsValidTimeOfDay(req.StartTime)
	endTime, _ := validator.IsValidTimeOfDay(req.EndTime)

	sh := shift.Shift{
		Name:      req.Name,
		StartTime: startTime,
		EndTime:   endTime,
		GraceIn:   req.GraceIn,
		GraceOut:  req.GraceOut,
		IsActive:  true,
	}
	if err := s.shiftRepo.Create(ctx, &sh); err != nil {
		return nil, err
	}

	return toShiftResponse(&sh), nil
}

func (s *MasterServiceImpl) UpdateShift(ctx context.Context, req *shift.UpdateShiftRequest) (*shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != sh.Name {
		if _, err := s.shiftRepo.GetByName(ctx, *req.Name); err == nil {
			return nil, shift.ErrShiftNameExists
		}
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime, _ = validator.IsValidTimeOfDay(*req.StartTime)
	}
	if req.EndTime != nil {
		sh.EndTime, _ = validator.IsValidTimeOfDay(*req.EndTime)
	}
	if req.GraceIn != nil {
		sh.GraceIn = *req.GraceIn
	}
	if req.GraceOut != nil {
		sh.GraceOut = *req.GraceOut
	}
	if req.IsActive != nil {
		sh.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return nil, err
	}

	return toShiftResponse(sh), nil
}

func (s *MasterServiceImpl) GetShift(ctx context.Context, id string) (*shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toShiftResponse(sh), nil
}

func (s *MasterServiceImpl) ListShifts(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]shift.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		resp = append(resp, *toShiftResponse(&shifts[i]))
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// ---------- devices ----------

func (s *MasterServiceImpl) CreateDevice(ctx context.Context, req *device.CreateDeviceRequest) (*device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.deviceRepo.GetByName(ctx, req.Name); err == nil {
		return nil, device.ErrDeviceNameExists
	}

	d := device.Device{
		Name:     req.Name,
		Location: req.Location,
		SerialNo: req.SerialNo,
		IsActive: true,
	}
	if err := s.deviceRepo.Create(ctx, &d); err != nil {
		return nil, err
	}

	return toDeviceResponse(&d), nil
}

func (s *MasterServiceImpl) UpdateDevice(ctx context.Context, req *device.UpdateDeviceRequest) (*device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.deviceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != d.Name {
		if _, err := s.deviceRepo.GetByName(ctx, *req.Name); err == nil {
			return nil, device.ErrDeviceNameExists
		}
		d.Name = *req.Name
	}
	if req.Location != nil {
		d.Location = *req.Location
	}
	if req.SerialNo != nil {
		d.SerialNo = req.SerialNo
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := s.deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	return toDeviceResponse(d), nil
}

func (s *MasterServiceImpl) GetDevice(ctx context.Context, id string) (*device.DeviceResponse, error) {
	d, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDeviceResponse(d), nil
}

func (s *MasterServiceImpl) ListDevices(ctx context.Context, activeOnly bool) ([]device.DeviceResponse, error) {
	devices, err := s.deviceRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]device.DeviceResponse, 0, len(devices))
	for i := range devices {
		resp = append(resp, *toDeviceResponse(&devices[i]))
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeleteDevice(ctx context.Context, id string) error {
	return s.deviceRepo.Delete(ctx, id)
}

// ---------- holidays ----------

func (s *MasterServiceImpl) CreateHoliday(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := validator.IsValidDate(req.HolidayDate)

	existing, err := s.holidayRepo.ListBetween(ctx, date, date)
	if err != nil {
		return nil, err
	}
	for _, h := range existing {
		if h.Occurs(date) {
			return nil, holiday.ErrHolidayExists
		}
	}

	h := holiday.Holiday{
		Name:        req.Name,
		HolidayDate: date,
		IsRecurring: req.IsRecurring,
	}
	if err := s.holidayRepo.Create(ctx, &h); err != nil {
		return nil, err
	}

	return toHolidayResponse(&h), nil
}

func (s *MasterServiceImpl) UpdateHoliday(ctx context.Context, req *holiday.UpdateHolidayRequest) (*holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.HolidayDate != nil {
		h.HolidayDate, _ = validator.IsValidDate(*req.HolidayDate)
	}
	if req.IsRecurring != nil {
		h.IsRecurring = *req.IsRecurring
	}

	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return nil, err
	}

	return toHolidayResponse(h), nil
}

func (s *MasterServiceImpl) GetHoliday(ctx context.Context, id string) (*holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHolidayResponse(h), nil
}

func (s *MasterServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	holidays, err := s.holidayRepo.List(ctx, year)
	if err != nil {
		return nil, err
	}

	resp := make([]holiday.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		resp = append(resp, *toHolidayResponse(&holidays[i]))
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func toDepartmentResponse(d *department.Department) *department.DepartmentResponse {
	return &department.DepartmentResponse{ID: d.ID, Name: d.Name, IsActive: d.IsActive}
}

func toDesignationResponse(d *designation.Designation) *designation.DesignationResponse {
	return &designation.DesignationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
	}
}

func toShiftResponse(sh *shift.Shift) *shift.ShiftResponse {
	return &shift.ShiftResponse{
		ID:        sh.ID,
		Name:      sh.Name,
		StartTime: sh.StartTime.Format("15:04"),
		EndTime:   sh.EndTime.Format("15:04"),
		GraceIn:   sh.GraceIn,
		GraceOut:  sh.GraceOut,
		IsActive:  sh.IsActive,
	}
}

func toDeviceResponse(d *device.Device) *device.DeviceResponse {
	resp := &device.DeviceResponse{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location,
		SerialNo: d.SerialNo,
		IsActive: d.IsActive,
	}
	if d.LastSeenAt != nil {
		t := d.LastSeenAt.Format(time.RFC3339)
		resp.LastSeenAt = &t
	}
	return resp
}

func toHolidayResponse(h *holiday.Holiday) *holiday.HolidayResponse {
	return &holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		HolidayDate: h.HolidayDate.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
	}
}
