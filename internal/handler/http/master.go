package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/master"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/department"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/designation"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/device"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateDesignation(w http.ResponseWriter, r *http.Request)
	UpdateDesignation(w http.ResponseWriter, r *http.Request)
	GetDesignation(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
	DeleteDesignation(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateDevice(w http.ResponseWriter, r *http.Request)
	UpdateDevice(w http.ResponseWriter, r *http.Request)
	GetDevice(w http.ResponseWriter, r *http.Request)
	ListDevices(w http.ResponseWriter, r *http.Request)
	DeleteDevice(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	GetHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

func activeOnlyQuery(r *http.Request) bool {
	return r.URL.Query().Get("active_only") == "true"
}

// ---------- departments ----------

func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDepartment(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateDepartment(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDepartments(r.Context(), activeOnlyQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ---------- designations ----------

func (h *masterHandlerImpl) CreateDesignation(w http.ResponseWriter, r *http.Request) {
	var req designation.CreateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDesignation(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Designation created successfully", result)
}

func (h *masterHandlerImpl) UpdateDesignation(w http.ResponseWriter, r *http.Request) {
	var req designation.UpdateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateDesignation(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetDesignation(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetDesignation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDesignations(r.Context(), activeOnlyQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteDesignation(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteDesignation(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Designation deleted successfully", nil)
}

// ---------- shifts ----------

func (h *masterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateShift(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", result)
}

func (h *masterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateShift(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListShifts(r.Context(), activeOnlyQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// ---------- devices ----------

func (h *masterHandlerImpl) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req device.CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDevice(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device created successfully", result)
}

func (h *masterHandlerImpl) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	var req device.UpdateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateDevice(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetDevice(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetDevice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListDevices(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDevices(r.Context(), activeOnlyQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteDevice(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Device deleted successfully", nil)
}

// ---------- holidays ----------

func (h *masterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateHoliday(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", result)
}

func (h *masterHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateHoliday(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetHoliday(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetHoliday(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := 0
	if y := r.URL.Query().Get("year"); y != "" {
		year, _ = strconv.Atoi(y)
	}

	result, err := h.masterService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
