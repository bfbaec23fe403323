package employee

import (
	"context"

	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/department"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/designation"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
	"github.com/hexahash/attendance-portal-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
	shiftRepo       shift.ShiftRepository
	fileService     file.FileService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
	shiftRepo shift.ShiftRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		shiftRepo:       shiftRepo,
		fileService:     fileService,
	}
}

// checkRefs validates that referenced master rows exist.
func (s *EmployeeServiceImpl) checkRefs(ctx context.Context, departmentID, designationID, shiftID, managerID *string) error {
	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			return err
		}
	}
	if designationID != nil {
		if _, err := s.designationRepo.GetByID(ctx, *designationID); err != nil {
			return err
		}
	}
	if shiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *shiftID); err != nil {
			return err
		}
	}
	if managerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *managerID); err != nil {
			return err
		}
	}
	return nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByCode(ctx, req.Code); err == nil {
		return nil, employee.ErrCodeExists
	}
	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, employee.ErrEmailExists
	}

	if err := s.checkRefs(ctx, req.DepartmentID, req.DesignationID, req.ShiftID, req.ManagerID); err != nil {
		return nil, err
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)

	emp := employee.Employee{
		Code:          req.Code,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Mobile:        req.Mobile,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
		ShiftID:       req.ShiftID,
		ManagerID:     req.ManagerID,
		JoinDate:      joinDate,
		Status:        employee.StatusActive,
	}

	if err := s.employeeRepo.Create(ctx, &emp); err != nil {
		return nil, err
	}

	if req.PhotoFile != nil && req.PhotoHeader != nil {
		path, err := s.fileService.UploadPhoto(ctx, emp.ID, req.PhotoFile, req.PhotoHeader.Filename)
		if err != nil {
			return nil, err
		}
		emp.PhotoURL = &path
		if err := s.employeeRepo.Update(ctx, &emp); err != nil {
			return nil, err
		}
	}

	return toEmployeeResponse(&emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != emp.Email {
		if _, err := s.employeeRepo.GetByEmail(ctx, *req.Email); err == nil {
			return nil, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}

	if err := s.checkRefs(ctx, req.DepartmentID, req.DesignationID, req.ShiftID, req.ManagerID); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Mobile != nil {
		emp.Mobile = req.Mobile
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.DesignationID != nil {
		emp.DesignationID = req.DesignationID
	}
	if req.ShiftID != nil {
		emp.ShiftID = req.ShiftID
	}
	if req.ManagerID != nil {
		emp.ManagerID = req.ManagerID
	}
	if req.LeaveDate != nil {
		leaveDate, _ := validator.IsValidDate(*req.LeaveDate)
		emp.LeaveDate = &leaveDate
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}

	if req.PhotoFile != nil && req.PhotoHeader != nil {
		path, err := s.fileService.UploadPhoto(ctx, emp.ID, req.PhotoFile, req.PhotoHeader.Filename)
		if err != nil {
			return nil, err
		}
		emp.PhotoURL = &path
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetEmployeeByCode implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByCode(ctx context.Context, code string) (*employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter *employee.EmployeeFilter) (*employee.ListEmployeeResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &employee.ListEmployeeResponse{
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, *toEmployeeResponse(&employees[i]))
	}

	return resp, nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id, leaveDate string) error {
	day, ok := validator.IsValidDate(leaveDate)
	if !ok {
		return validator.ValidationErrors{{
			Field: "leave_date", Message: "leave_date must be a YYYY-MM-DD date",
		}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Status = employee.StatusInactive
	emp.LeaveDate = &day

	return s.employeeRepo.Update(ctx, emp)
}

func toEmployeeResponse(e *employee.Employee) *employee.EmployeeResponse {
	resp := &employee.EmployeeResponse{
		ID:              e.ID,
		Code:            e.Code,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		FullName:        e.FullName(),
		Email:           e.Email,
		Mobile:          e.Mobile,
		DepartmentID:    e.DepartmentID,
		DepartmentName:  e.DepartmentName,
		DesignationID:   e.DesignationID,
		DesignationName: e.DesignationName,
		ShiftID:         e.ShiftID,
		ShiftName:       e.ShiftName,
		ManagerID:       e.ManagerID,
		ManagerName:     e.ManagerName,
		JoinDate:        e.JoinDate.Format("2006-01-02"),
		Status:          string(e.Status),
		PhotoURL:        e.PhotoURL,
	}
	if e.LeaveDate != nil {
		d := e.LeaveDate.Format("2006-01-02")
		resp.LeaveDate = &d
	}
	return resp
}
