package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/auth"
	"github.com/hexahash/attendance-portal-go/internal/domain/leave"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)

	Apply(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// CreateLeaveType implements LeaveHandler.
func (h *leaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateLeaveType(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", result)
}

// ListLeaveTypes implements LeaveHandler.
func (h *leaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.leaveService.ListLeaveTypes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), &req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", result)
}

// GetApplication implements LeaveHandler.
func (h *leaveHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListApplications implements LeaveHandler.
func (h *leaveHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := leave.ApplicationFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.leaveService.ListApplications(r.Context(), &filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Applications, response.NewMeta(result.Page, result.Limit, result.Total))
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.leaveService.Approve(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application approved", nil)
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.leaveService.Reject(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application rejected", nil)
}
