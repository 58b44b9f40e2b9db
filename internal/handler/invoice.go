package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steelerp/erpclient/internal/grpcclient"
	"github.com/steelerp/erpclient/internal/handler/dto"
)

// InvoiceHandler handles HTTP requests for invoice operations.
type InvoiceHandler struct {
	invoices *grpcclient.InvoiceClient
	errs     rpcErrors
	logger   *slog.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler. loginPath is sent as the
// Location of 401 responses.
func NewInvoiceHandler(invoices *grpcclient.InvoiceClient, loginPath string, logger *slog.Logger) *InvoiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceHandler{
		invoices: invoices,
		errs:     newRPCErrors(loginPath, logger),
		logger:   logger,
	}
}

// Routes mounts the invoice endpoints.
func (h *InvoiceHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/search", h.Search)
	r.Get("/analytics", h.Analytics)
	r.Get("/next-number", h.NextNumber)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Put("/{id}/status", h.UpdateStatus)
	r.Get("/{id}/payments", h.Payments)
	r.Post("/{id}/payments", h.RecordPayment)
	r.Post("/{id}/payments/{paymentID}/void", h.VoidPayment)
}

// Create handles POST /api/v1/invoices.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in grpcclient.CreateInvoiceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.CustomerID <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_CUSTOMER", "customer_id is required")
		return
	}
	if in.InvoiceDate.IsZero() {
		writeError(w, http.StatusBadRequest, "MISSING_DATE", "invoice_date is required")
		return
	}

	inv, err := h.invoices.Create(r.Context(), in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "invoice_created",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"items", len(inv.Items),
	)
	writeJSON(w, http.StatusCreated, inv)
}

// Get handles GET /api/v1/invoices/{id}.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	inv, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// List handles GET /api/v1/invoices.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := grpcclient.ListInvoicesParams{Status: optionalString(q, "status")}
	params.Page, params.Limit = pageParams(q)

	customerID, ok := optionalInt64(q, "customer_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_CUSTOMER", "customer_id must be an integer")
		return
	}
	params.CustomerID = customerID

	page, err := h.invoices.List(r.Context(), params)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Search handles GET /api/v1/invoices/search?q=.
func (h *InvoiceHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, ok := searchQuery(w, q)
	if !ok {
		return
	}
	page, limit := pageParams(q)

	result, err := h.invoices.Search(r.Context(), query, page, limit)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Update handles PATCH /api/v1/invoices/{id}.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in grpcclient.UpdateInvoiceInput
	if !decodeJSON(w, r, &in) {
		return
	}

	inv, err := h.invoices.Update(r.Context(), id, in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "invoice_updated", "invoice_id", inv.ID)
	writeJSON(w, http.StatusOK, inv)
}

// Delete handles DELETE /api/v1/invoices/{id}.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.invoices.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "invoice_deleted", "invoice_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus handles PUT /api/v1/invoices/{id}/status.
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown invoice status")
		return
	}

	inv, err := h.invoices.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "invoice_status_changed",
		"invoice_id", id,
		"status", string(inv.Status),
	)
	writeJSON(w, http.StatusOK, inv)
}

// Payments handles GET /api/v1/invoices/{id}/payments.
func (h *InvoiceHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	payments, err := h.invoices.PaymentHistory(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PaymentListResponse{Payments: payments})
}

// RecordPayment handles POST /api/v1/invoices/{id}/payments. The invoice ID
// in the path wins over one in the body.
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in grpcclient.RecordPaymentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_AMOUNT", "amount must be positive")
		return
	}
	if in.PaymentDate.IsZero() {
		writeError(w, http.StatusBadRequest, "MISSING_DATE", "payment_date is required")
		return
	}
	in.InvoiceID = id

	inv, err := h.invoices.RecordPayment(r.Context(), in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "payment_recorded",
		"invoice_id", id,
		"method", in.Method,
	)
	writeJSON(w, http.StatusCreated, inv)
}

// VoidPayment handles POST /api/v1/invoices/{id}/payments/{paymentID}/void.
func (h *InvoiceHandler) VoidPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	paymentID, ok := pathID(w, r, "paymentID")
	if !ok {
		return
	}
	var req dto.VoidPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inv, err := h.invoices.VoidPayment(r.Context(), id, paymentID, req.Reason)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "payment_voided",
		"invoice_id", id,
		"payment_id", paymentID,
	)
	writeJSON(w, http.StatusOK, inv)
}

// NextNumber handles GET /api/v1/invoices/next-number?status=.
func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.invoices.GenerateNumber(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NextNumberResponse{InvoiceNumber: number})
}

// Analytics handles GET /api/v1/invoices/analytics.
func (h *InvoiceHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, okStart := optionalDate(q, "start_date")
	end, okEnd := optionalDate(q, "end_date")
	if !okStart || !okEnd {
		writeError(w, http.StatusBadRequest, "INVALID_DATE", "Dates must be YYYY-MM-DD or RFC 3339")
		return
	}

	result, err := h.invoices.Analytics(r.Context(), grpcclient.AnalyticsParams{StartDate: start, EndDate: end})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
