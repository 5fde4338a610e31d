package handler

import (
	"net/http"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"
	"github.com/Shubham1613/FastAPI-Mongo/internal/service"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/response"

	"github.com/go-chi/chi/v5"
)

// ClockInHandler handles clock-in-related HTTP requests.
type ClockInHandler struct {
	clockInService *service.ClockInService
}

// NewClockInHandler creates a new clock-in handler.
func NewClockInHandler(clockInService *service.ClockInService) *ClockInHandler {
	return &ClockInHandler{clockInService: clockInService}
}

// Create handles POST /clock-in
func (h *ClockInHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateClockIn
	if err := decodeAndValidate(r, &payload); err != nil {
		response.Error(w, err)
		return
	}

	record, err := h.clockInService.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, record)
}

// Filter handles GET /clock-in/filter
func (h *ClockInHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	records, err := h.clockInService.Filter(
		r.Context(),
		q.Get("email"),
		q.Get("location"),
		q.Get("insert_datetime_after"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, records)
}

// Get handles GET /clock-in/{id}
func (h *ClockInHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.clockInService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, record)
}

// Update handles PUT /clock-in/{id}
func (h *ClockInHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.UpdateClockIn
	if err := decodeAndValidate(r, &payload); err != nil {
		response.Error(w, err)
		return
	}

	record, err := h.clockInService.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, record)
}

// Delete handles DELETE /clock-in/{id}
func (h *ClockInHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clockInService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, map[string]string{"message": "Clock-in record deleted"})
}
