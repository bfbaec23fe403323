package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetRule(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	GetWorkWeek(w http.ResponseWriter, r *http.Request)
	UpdateWorkWeek(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// GetProfile implements SettingsHandler.
func (h *settingsHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateProfile implements SettingsHandler. A multipart request may carry a
// company logo alongside the JSON fields.
func (h *settingsHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateProfileRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(5 << 20); err != nil {
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		if dataJSON := r.FormValue("data"); dataJSON != "" {
			if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
				response.BadRequest(w, "Invalid request format", nil)
				return
			}
		}

		file, fileHeader, err := r.FormFile("logo")
		if err == nil {
			defer file.Close()
			req.LogoFile = file
			req.LogoHeader = fileHeader
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateProfile(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetRule implements SettingsHandler.
func (h *settingsHandlerImpl) GetRule(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetRule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateRule implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateRule(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateRule(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetWorkWeek implements SettingsHandler.
func (h *settingsHandlerImpl) GetWorkWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetWorkWeek(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateWorkWeek implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateWorkWeek(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWorkWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateWorkWeek(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
