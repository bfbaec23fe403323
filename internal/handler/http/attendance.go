package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	GetPunch(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
	ApprovePunch(w http.ResponseWriter, r *http.Request)
	RejectPunch(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	ListSummaries(w http.ResponseWriter, r *http.Request)
	DeriveSummaries(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordPunch implements AttendanceHandler. Kiosk devices post
// multipart/form-data with a selfie; plain JSON works without one.
func (h *attendanceHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordPunchRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(5 << 20); err != nil {
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
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("selfie")
		if err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = fileHeader
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

	result, err := h.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		slog.Error("RecordPunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", result)
}

// GetPunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetPunch(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetPunch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListPunches implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter := attendance.PunchFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		DateFrom:   r.URL.Query().Get("date_from"),
		DateTo:     r.URL.Query().Get("date_to"),
		Status:     r.URL.Query().Get("status"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.attendanceService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Punches, response.NewMeta(result.Page, result.Limit, int(result.TotalCount)))
}

// ApprovePunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApprovePunch(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ApprovePunch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch approved", result)
}

// RejectPunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) RejectPunch(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.RejectPunch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch rejected", result)
}

// GetSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetSummary(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListSummaries implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	filter := attendance.SummaryFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		DateFrom:   r.URL.Query().Get("date_from"),
		DateTo:     r.URL.Query().Get("date_to"),
		Status:     r.URL.Query().Get("status"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.attendanceService.ListSummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Summaries, response.NewMeta(result.Page, result.Limit, int(result.TotalCount)))
}

// DeriveSummaries implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeriveSummaries(w http.ResponseWriter, r *http.Request) {
	var req attendance.DeriveSummariesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	count, err := h.attendanceService.DeriveSummaries(r.Context(), req)
	if err != nil {
		slog.Error("DeriveSummaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summaries derived", map[string]int{"derived": count})
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	dateFrom := r.URL.Query().Get("date_from")
	dateTo := r.URL.Query().Get("date_to")

	var employeeIDs []string
	if ids := r.URL.Query().Get("employee_ids"); ids != "" {
		employeeIDs = strings.Split(ids, ",")
	}

	result, err := h.attendanceService.Stats(r.Context(), dateFrom, dateTo, employeeIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
