package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/steelerp/erpclient/internal/grpcclient"
)

// ProductHandler handles HTTP requests for product and stock operations.
type ProductHandler struct {
	products *grpcclient.ProductClient
	errs     rpcErrors
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *grpcclient.ProductClient, loginPath string, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products: products,
		errs:     newRPCErrors(loginPath, logger),
		logger:   logger,
	}
}

// Routes mounts the product endpoints.
func (h *ProductHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/search", h.Search)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/inventory", h.UpdateInventory)
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in grpcclient.CreateProductInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "INVALID_NAME", "name is required")
		return
	}

	p, err := h.products.Create(r.Context(), in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "product_created", "product_id", p.ID, "sku", p.SKU)
	writeJSON(w, http.StatusCreated, p)
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := grpcclient.ListProductsParams{
		Category:  optionalString(q, "category"),
		Commodity: optionalString(q, "commodity"),
		Grade:     optionalString(q, "grade"),
		Status:    optionalString(q, "status"),
	}
	params.Page, params.Limit = pageParams(q)

	page, err := h.products.List(r.Context(), params)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Search handles GET /api/v1/products/search?q=.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, ok := searchQuery(w, q)
	if !ok {
		return
	}
	page, limit := pageParams(q)

	result, err := h.products.Search(r.Context(), query, page, limit)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Update handles PATCH /api/v1/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in grpcclient.UpdateProductInput
	if !decodeJSON(w, r, &in) {
		return
	}

	p, err := h.products.Update(r.Context(), id, in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "product_updated", "product_id", p.ID)
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/v1/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "product_deleted", "product_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateInventory handles POST /api/v1/products/{id}/inventory.
func (h *ProductHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in grpcclient.UpdateInventoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if !in.MovementType.IsValid() {
		writeError(w, http.StatusBadRequest, "INVALID_MOVEMENT", "movement_type must be IN, OUT or ADJUSTMENT")
		return
	}
	in.ProductID = id

	p, err := h.products.UpdateInventory(r.Context(), in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "inventory_updated",
		"product_id", id,
		"movement_type", string(in.MovementType),
		"current_stock", p.CurrentStock,
	)
	writeJSON(w, http.StatusOK, p)
}
