package handler

import (
	"net/http"
	"strconv"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"
	"github.com/Shubham1613/FastAPI-Mongo/internal/service"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/apierror"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/response"

	"github.com/go-chi/chi/v5"
)

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateItem
	if err := decodeAndValidate(r, &payload); err != nil {
		response.Error(w, err)
		return
	}

	item, err := h.itemService.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, item)
}

// Filter handles GET /items/filter
func (h *ItemHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var quantityGTE *int
	if raw := q.Get("quantity_gte"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, apierror.ValidationError("quantity_gte must be an integer"))
			return
		}
		quantityGTE = &n
	}

	items, err := h.itemService.Filter(
		r.Context(),
		q.Get("email"),
		q.Get("expiry_date_after"),
		q.Get("insert_date_after"),
		quantityGTE,
	)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, items)
}

// Aggregate handles GET /items/aggregate
func (h *ItemHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	counts, err := h.itemService.CountByEmail(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, counts)
}

// Get handles GET /items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.itemService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, item)
}

// Update handles PUT /items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.UpdateItem
	if err := decodeAndValidate(r, &payload); err != nil {
		response.Error(w, err)
		return
	}

	item, err := h.itemService.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, item)
}

// Delete handles DELETE /items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.itemService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, map[string]string{"message": "Item deleted"})
}
