package master

import (
	"context"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/department"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/designation"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/device"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
)

// MasterService manages the reference data the attendance and payroll
// pipelines resolve against: departments, designations, shifts, devices
// and holidays.
type MasterService interface {
	CreateDepartment(ctx context.Context, req *department.CreateDepartmentRequest) (*department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req *department.UpdateDepartmentRequest) (*department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (*department.DepartmentResponse, error)
	ListDepartments(ctx context.Context, activeOnly bool) ([]department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateDesignation(ctx context.Context, req *designation.CreateDesignationRequest) (*designation.DesignationResponse, error)
	UpdateDesignation(ctx context.Context, req *designation.UpdateDesignationRequest) (*designation.DesignationResponse, error)
	GetDesignation(ctx context.Context, id string) (*designation.DesignationResponse, error)
	ListDesignations(ctx context.Context, activeOnly bool) ([]designation.DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error

	CreateShift(ctx context.Context, req *shift.CreateShiftRequest) (*shift.ShiftResponse, error)
	UpdateShift(ctx context.Context, req *shift.UpdateShiftRequest) (*shift.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (*shift.ShiftResponse, error)
	ListShifts(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	CreateDevice(ctx context.Context, req *device.CreateDeviceRequest) (*device.DeviceResponse, error)
	UpdateDevice(ctx context.Context, req *device.UpdateDeviceRequest) (*device.DeviceResponse, error)
	GetDevice(ctx context.Context, id string) (*device.DeviceResponse, error)
	ListDevices(ctx context.Context, activeOnly bool) ([]device.DeviceResponse, error)
	DeleteDevice(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req *holiday.UpdateHolidayRequest) (*holiday.HolidayResponse, error)
	GetHoliday(ctx context.Context, id string) (*holiday.HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
