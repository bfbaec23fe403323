package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	DeactivateEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}

		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			req.PhotoFile = file
			req.PhotoHeader = fileHeader
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON != "" {
			if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
				response.BadRequest(w, "Invalid request format", nil)
				return
			}
		}

		file, fileHeader, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			req.PhotoFile = file
			req.PhotoHeader = fileHeader
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Search:       r.URL.Query().Get("search"),
		DepartmentID: r.URL.Query().Get("department_id"),
		Status:       r.URL.Query().Get("status"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.employeeService.ListEmployees(r.Context(), &filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, response.NewMeta(result.Page, result.Limit, result.Total))
}

// DeactivateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		LeaveDate string `json:"leave_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.DeactivateEmployee(r.Context(), id, body.LeaveDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}
