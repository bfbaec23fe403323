package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeResponse, error)
	GetEmployeeByCode(ctx context.Context, code string) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter *EmployeeFilter) (*ListEmployeeResponse, error)
	DeactivateEmployee(ctx context.Context, id, leaveDate string) error
}
