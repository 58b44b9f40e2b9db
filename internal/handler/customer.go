package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/steelerp/erpclient/internal/grpcclient"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	customers *grpcclient.CustomerClient
	errs      rpcErrors
	logger    *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers *grpcclient.CustomerClient, loginPath string, logger *slog.Logger) *CustomerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerHandler{
		customers: customers,
		errs:      newRPCErrors(loginPath, logger),
		logger:    logger,
	}
}

// Routes mounts the customer endpoints.
func (h *CustomerHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/search", h.Search)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Create handles POST /api/v1/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in grpcclient.CreateCustomerInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "INVALID_NAME", "name is required")
		return
	}

	c, err := h.customers.Create(r.Context(), in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "customer_created", "customer_id", c.ID)
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/v1/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.customers.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// List handles GET /api/v1/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := grpcclient.ListCustomersParams{
		Status:       optionalString(q, "status"),
		CustomerType: optionalString(q, "customer_type"),
	}
	params.Page, params.Limit = pageParams(q)

	page, err := h.customers.List(r.Context(), params)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Search handles GET /api/v1/customers/search?q=.
func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, ok := searchQuery(w, q)
	if !ok {
		return
	}
	page, limit := pageParams(q)

	result, err := h.customers.Search(r.Context(), query, page, limit)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Update handles PATCH /api/v1/customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in grpcclient.UpdateCustomerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	c, err := h.customers.Update(r.Context(), id, in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "customer_updated", "customer_id", c.ID)
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/v1/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "customer_deleted", "customer_id", id)
	w.WriteHeader(http.StatusNoContent)
}
