package grpcclient

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
)

// InvoiceItemInput is one invoice line. Pointer fields are optional and only
// sent when non-nil. ID is honored by updates only.
type InvoiceItemInput struct {
	ID        *int64   `json:"id,omitempty"`
	ProductID *int64   `json:"product_id,omitempty"`
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Rate      float64  `json:"rate"`
	Amount    float64  `json:"amount"`
	VATRate   *float64 `json:"vat_rate,omitempty"`
	VATAmount *float64 `json:"vat_amount,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
}

// CreateInvoiceInput defines input for creating an invoice.
type CreateInvoiceInput struct {
	CustomerID  int64              `json:"customer_id"`
	InvoiceDate time.Time          `json:"invoice_date"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Items       []InvoiceItemInput `json:"items"`
	Notes       *string            `json:"notes,omitempty"`
	Terms       *string            `json:"terms,omitempty"`
}

// UpdateInvoiceInput defines the changed fields of an invoice. A nil Items
// leaves the lines untouched.
type UpdateInvoiceInput struct {
	CustomerID  *int64             `json:"customer_id,omitempty"`
	InvoiceDate *time.Time         `json:"invoice_date,omitempty"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Items       []InvoiceItemInput `json:"items,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Terms       *string            `json:"terms,omitempty"`
}

// ListInvoicesParams filters and pages an invoice listing.
type ListInvoicesParams struct {
	Page       int
	Limit      int
	Status     *string
	CustomerID *int64
}

// RecordPaymentInput defines a payment against an invoice.
type RecordPaymentInput struct {
	InvoiceID   int64     `json:"invoice_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Method      string    `json:"method"`
	ReferenceNo *string   `json:"reference_no,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// AnalyticsParams bounds invoice analytics. The range is only applied when
// both ends are given.
type AnalyticsParams struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// InvoiceClient is the invoice facade.
type InvoiceClient struct {
	c    *Client
	stub erpv1.InvoiceServiceClient
}

// NewInvoiceClient creates an invoice facade over stub.
func NewInvoiceClient(c *Client, stub erpv1.InvoiceServiceClient) *InvoiceClient {
	return &InvoiceClient{c: c, stub: stub}
}

// Create creates an invoice. Items keep their input order.
func (f *InvoiceClient) Create(ctx context.Context, in CreateInvoiceInput) (*model.Invoice, error) {
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_CreateInvoice_FullMethodName,
		buildCreateInvoice(in), f.stub.CreateInvoice, invoiceFromProto)
}

// Get fetches one invoice.
func (f *InvoiceClient) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_GetInvoice_FullMethodName,
		&erpv1.IdRequest{Id: id}, f.stub.GetInvoice, invoiceFromProto)
}

// List returns one page of invoices.
func (f *InvoiceClient) List(ctx context.Context, params ListInvoicesParams) (*model.InvoicePage, error) {
	req := &erpv1.ListInvoicesRequest{
		Page:       pageRequest(params.Page, params.Limit),
		Status:     optional(params.Status),
		CustomerId: optional(params.CustomerID),
	}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_ListInvoices_FullMethodName,
		req, f.stub.ListInvoices, invoicePageFromProto)
}

// Update applies the changed fields of in to invoice id.
func (f *InvoiceClient) Update(ctx context.Context, id int64, in UpdateInvoiceInput) (*model.Invoice, error) {
	req := &erpv1.UpdateInvoiceRequest{Id: id, Invoice: buildInvoiceChanges(in)}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_UpdateInvoice_FullMethodName,
		req, f.stub.UpdateInvoice, invoiceFromProto)
}

// Delete deletes invoice id. Whether the backend archives or purges is its
// own policy.
func (f *InvoiceClient) Delete(ctx context.Context, id int64) error {
	_, err := unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_DeleteInvoice_FullMethodName,
		&erpv1.IdRequest{Id: id}, f.stub.DeleteInvoice, discard[*emptypb.Empty])
	return err
}

// UpdateStatus moves invoice id to status.
func (f *InvoiceClient) UpdateStatus(ctx context.Context, id int64, status model.InvoiceStatus) (*model.Invoice, error) {
	req := &erpv1.UpdateInvoiceStatusRequest{Id: id, Status: string(status)}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_UpdateInvoiceStatus_FullMethodName,
		req, f.stub.UpdateInvoiceStatus, invoiceFromProto)
}

// RecordPayment records a payment and returns the updated invoice.
func (f *InvoiceClient) RecordPayment(ctx context.Context, in RecordPaymentInput) (*model.Invoice, error) {
	req := &erpv1.RecordPaymentRequest{
		InvoiceId:   in.InvoiceID,
		Amount:      in.Amount,
		PaymentDate: timestampOf(in.PaymentDate),
		Method:      in.Method,
		ReferenceNo: optional(in.ReferenceNo),
		Notes:       optional(in.Notes),
	}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_RecordPayment_FullMethodName,
		req, f.stub.RecordPayment, invoiceFromProto)
}

// VoidPayment voids a payment. An empty reason is not sent.
func (f *InvoiceClient) VoidPayment(ctx context.Context, invoiceID, paymentID int64, reason string) (*model.Invoice, error) {
	req := &erpv1.VoidPaymentRequest{
		InvoiceId: invoiceID,
		PaymentId: paymentID,
		Reason:    optionalString(reason),
	}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_VoidPayment_FullMethodName,
		req, f.stub.VoidPayment, invoiceFromProto)
}

// PaymentHistory lists the payments of an invoice. The result is never nil.
func (f *InvoiceClient) PaymentHistory(ctx context.Context, invoiceID int64) ([]model.Payment, error) {
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_GetPaymentHistory_FullMethodName,
		&erpv1.IdRequest{Id: invoiceID}, f.stub.GetPaymentHistory,
		func(resp *erpv1.PaymentHistoryResponse) []model.Payment {
			return paymentsFromProto(resp.GetPayments())
		})
}

// GenerateNumber reserves the next invoice number. An empty status is not
// sent.
func (f *InvoiceClient) GenerateNumber(ctx context.Context, status string) (string, error) {
	req := &erpv1.GenerateInvoiceNumberRequest{Status: optionalString(status)}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_GenerateInvoiceNumber_FullMethodName,
		req, f.stub.GenerateInvoiceNumber,
		func(resp *erpv1.GenerateInvoiceNumberResponse) string {
			return resp.GetInvoiceNumber()
		})
}

// Analytics summarizes invoicing, optionally within a date range.
func (f *InvoiceClient) Analytics(ctx context.Context, params AnalyticsParams) (*model.InvoiceAnalytics, error) {
	req := &erpv1.GetInvoiceAnalyticsRequest{}
	if params.StartDate != nil && params.EndDate != nil {
		req.DateRange = &erpv1.DateRange{
			StartDate: timestampOf(*params.StartDate),
			EndDate:   timestampOf(*params.EndDate),
		}
	}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_GetInvoiceAnalytics_FullMethodName,
		req, f.stub.GetInvoiceAnalytics, analyticsFromProto)
}

// Search runs a free-text search. Zero page or limit select the defaults.
func (f *InvoiceClient) Search(ctx context.Context, query string, page, limit int) (*model.InvoicePage, error) {
	req := &erpv1.SearchInvoicesRequest{
		Query: query,
		Page:  pageRequest(page, limit),
	}
	return unary(ctx, f.c, ResourceInvoice, erpv1.InvoiceService_SearchInvoices_FullMethodName,
		req, f.stub.SearchInvoices, invoicePageFromProto)
}

func buildCreateInvoice(in CreateInvoiceInput) *erpv1.CreateInvoiceRequest {
	req := &erpv1.CreateInvoiceRequest{
		CustomerId:  in.CustomerID,
		InvoiceDate: timestampOf(in.InvoiceDate),
		DueDate:     timestamp(in.DueDate),
		Notes:       optional(in.Notes),
		Terms:       optional(in.Terms),
	}
	for _, item := range in.Items {
		req.Items = append(req.Items, buildInvoiceItem(item, false))
	}
	return req
}

func buildInvoiceChanges(in UpdateInvoiceInput) *erpv1.CreateInvoiceRequest {
	req := &erpv1.CreateInvoiceRequest{
		InvoiceDate: timestamp(in.InvoiceDate),
		DueDate:     timestamp(in.DueDate),
		Notes:       optional(in.Notes),
		Terms:       optional(in.Terms),
	}
	if in.CustomerID != nil {
		req.CustomerId = *in.CustomerID
	}
	for _, item := range in.Items {
		req.Items = append(req.Items, buildInvoiceItem(item, true))
	}
	return req
}

func buildInvoiceItem(in InvoiceItemInput, withID bool) *erpv1.InvoiceItem {
	item := &erpv1.InvoiceItem{
		ProductId: optional(in.ProductID),
		Name:      in.Name,
		Quantity:  in.Quantity,
		Rate:      in.Rate,
		Amount:    in.Amount,
		VatRate:   optional(in.VATRate),
		VatAmount: optional(in.VATAmount),
		Unit:      optional(in.Unit),
	}
	if withID {
		item.Id = optional(in.ID)
	}
	return item
}

func invoiceFromProto(x *erpv1.Invoice) *model.Invoice {
	inv := &model.Invoice{
		ID:            x.GetId(),
		InvoiceNumber: x.GetInvoiceNumber(),
		CustomerID:    x.GetCustomerId(),
		CustomerName:  x.GetCustomerName(),
		InvoiceDate:   timeFrom(x.GetInvoiceDate()),
		DueDate:       timeFrom(x.GetDueDate()),
		Status:        model.InvoiceStatus(x.GetStatus()),
		PaymentStatus: x.GetPaymentStatus(),
		Items:         make([]model.InvoiceItem, 0, len(x.GetItems())),
		Subtotal:      x.GetSubtotal(),
		VATAmount:     x.GetVatAmount(),
		Total:         x.GetTotal(),
		AmountPaid:    x.GetAmountPaid(),
		BalanceDue:    x.GetBalanceDue(),
		Notes:         x.GetNotes(),
		Terms:         x.GetTerms(),
		CreatedAt:     timeFrom(x.GetCreatedAt()),
		UpdatedAt:     timeFrom(x.GetUpdatedAt()),
	}
	for _, item := range x.GetItems() {
		inv.Items = append(inv.Items, model.InvoiceItem{
			ID:        item.GetId(),
			ProductID: item.GetProductId(),
			Name:      item.GetName(),
			Quantity:  item.GetQuantity(),
			Rate:      item.GetRate(),
			Amount:    item.GetAmount(),
			VATRate:   item.GetVatRate(),
			VATAmount: item.GetVatAmount(),
			Unit:      item.GetUnit(),
		})
	}
	if len(x.GetPayments()) > 0 {
		inv.Payments = paymentsFromProto(x.GetPayments())
	}
	return inv
}

func paymentsFromProto(xs []*erpv1.Payment) []model.Payment {
	payments := make([]model.Payment, 0, len(xs))
	for _, p := range xs {
		payments = append(payments, model.Payment{
			ID:          p.GetId(),
			InvoiceID:   p.GetInvoiceId(),
			Amount:      p.GetAmount(),
			PaymentDate: timeFrom(p.GetPaymentDate()),
			Method:      p.GetMethod(),
			ReferenceNo: p.GetReferenceNo(),
			Notes:       p.GetNotes(),
			Voided:      p.GetVoided(),
			VoidReason:  p.GetVoidReason(),
			VoidedAt:    timeFrom(p.GetVoidedAt()),
			CreatedAt:   timeFrom(p.GetCreatedAt()),
		})
	}
	return payments
}

func invoicePageFromProto(x *erpv1.ListInvoicesResponse) *model.InvoicePage {
	page := &model.InvoicePage{
		Invoices: make([]model.Invoice, 0, len(x.GetInvoices())),
		PageInfo: pageInfoFrom(x.GetPageInfo()),
	}
	for _, inv := range x.GetInvoices() {
		page.Invoices = append(page.Invoices, *invoiceFromProto(inv))
	}
	return page
}

func analyticsFromProto(x *erpv1.InvoiceAnalytics) *model.InvoiceAnalytics {
	out := &model.InvoiceAnalytics{
		TotalInvoices:       x.GetTotalInvoices(),
		TotalAmount:         x.GetTotalAmount(),
		TotalPaid:           x.GetTotalPaid(),
		TotalOutstanding:    x.GetTotalOutstanding(),
		OverdueCount:        x.GetOverdueCount(),
		OverdueAmount:       x.GetOverdueAmount(),
		AverageInvoiceValue: x.GetAverageInvoiceValue(),
		StatusBreakdown:     make([]model.StatusCount, 0, len(x.GetStatusBreakdown())),
	}
	for _, sc := range x.GetStatusBreakdown() {
		out.StatusBreakdown = append(out.StatusBreakdown, model.StatusCount{
			Status: sc.GetStatus(),
			Count:  sc.GetCount(),
			Amount: sc.GetAmount(),
		})
	}
	return out
}
