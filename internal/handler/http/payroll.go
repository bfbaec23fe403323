package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateComponent(w http.ResponseWriter, r *http.Request)
	UpdateComponent(w http.ResponseWriter, r *http.Request)
	ListComponents(w http.ResponseWriter, r *http.Request)

	AssignSalary(w http.ResponseWriter, r *http.Request)
	GetEmployeeSalary(w http.ResponseWriter, r *http.Request)

	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	ClosePeriod(w http.ResponseWriter, r *http.Request)

	CreateRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	ProcessRun(w http.ResponseWriter, r *http.Request)
	CancelRun(w http.ResponseWriter, r *http.Request)

	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListRunPayslips(w http.ResponseWriter, r *http.Request)
	ListEmployeePayslips(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// CreateComponent implements PayrollHandler.
func (h *payrollHandlerImpl) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateComponent(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Component created successfully", result)
}

// UpdateComponent implements PayrollHandler.
func (h *payrollHandlerImpl) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdateComponent(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListComponents implements PayrollHandler.
func (h *payrollHandlerImpl) ListComponents(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.payrollService.ListComponents(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignSalary implements PayrollHandler.
func (h *payrollHandlerImpl) AssignSalary(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.AssignSalary(r.Context(), &req)
	if err != nil {
		slog.Error("AssignSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary assigned successfully", result)
}

// GetEmployeeSalary implements PayrollHandler.
func (h *payrollHandlerImpl) GetEmployeeSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.payrollService.GetEmployeeSalary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreatePeriod implements PayrollHandler.
func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreatePeriod(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created successfully", result)
}

// ListPeriods implements PayrollHandler.
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ClosePeriod implements PayrollHandler.
func (h *payrollHandlerImpl) ClosePeriod(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.ClosePeriod(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period closed successfully", nil)
}

// CreateRun implements PayrollHandler.
func (h *payrollHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if userID, ok := userIDFromContext(r); ok {
		req.CreatedBy = &userID
	}

	result, err := h.payrollService.CreateRun(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run created successfully", result)
}

// GetRun implements PayrollHandler.
func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRuns implements PayrollHandler.
func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RunFilter{
		PeriodID: r.URL.Query().Get("period_id"),
		Status:   r.URL.Query().Get("status"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.payrollService.ListRuns(r.Context(), &filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Runs, response.NewMeta(result.Page, result.Limit, result.Total))
}

// ProcessRun implements PayrollHandler.
func (h *payrollHandlerImpl) ProcessRun(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ProcessRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ProcessRun service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run processed successfully", result)
}

// CancelRun implements PayrollHandler.
func (h *payrollHandlerImpl) CancelRun(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.CancelRun(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run cancelled", nil)
}

// GetPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRunPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListRunPayslips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListRunPayslips(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployeePayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListEmployeePayslips(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		limit, _ = strconv.Atoi(l)
	}

	result, err := h.payrollService.ListEmployeePayslips(r.Context(), chi.URLParam(r, "employeeID"), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
