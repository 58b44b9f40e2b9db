// Package model defines the plain ERP entities handed to callers of the RPC
// facades. Values here carry no transport behavior and serialize directly to
// JSON.
package model

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether s is a status the invoice service accepts.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusSent,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ID        int64   `json:"id,omitempty"`
	ProductID int64   `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
	VATRate   float64 `json:"vat_rate"`
	VATAmount float64 `json:"vat_amount"`
	Unit      string  `json:"unit,omitempty"`
}

// Payment is a payment recorded against an invoice.
type Payment struct {
	ID          int64      `json:"id"`
	InvoiceID   int64      `json:"invoice_id"`
	Amount      float64    `json:"amount"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	Method      string     `json:"method"`
	ReferenceNo string     `json:"reference_no,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Voided      bool       `json:"voided"`
	VoidReason  string     `json:"void_reason,omitempty"`
	VoidedAt    *time.Time `json:"voided_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Invoice is a customer invoice with its line items and payments.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CustomerID    int64         `json:"customer_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	InvoiceDate   *time.Time    `json:"invoice_date,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Status        InvoiceStatus `json:"status"`
	PaymentStatus string        `json:"payment_status,omitempty"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	VATAmount     float64       `json:"vat_amount"`
	Total         float64       `json:"total"`
	AmountPaid    float64       `json:"amount_paid"`
	BalanceDue    float64       `json:"balance_due"`
	Notes         string        `json:"notes,omitempty"`
	Terms         string        `json:"terms,omitempty"`
	Payments      []Payment     `json:"payments,omitempty"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

// IsOverdue reports whether the invoice still has a balance after its due
// date. Paid and cancelled invoices are never overdue.
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusCancelled {
		return false
	}
	if i.DueDate == nil || i.BalanceDue <= 0 {
		return false
	}
	return now.After(*i.DueDate)
}

// InvoicePage is one page of invoices from a list or search call.
type InvoicePage struct {
	Invoices []Invoice `json:"invoices"`
	PageInfo PageInfo  `json:"page_info"`
}

// StatusCount aggregates invoices sharing a status.
type StatusCount struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// InvoiceAnalytics summarizes invoicing over a period.
type InvoiceAnalytics struct {
	TotalInvoices       int64         `json:"total_invoices"`
	TotalAmount         float64       `json:"total_amount"`
	TotalPaid           float64       `json:"total_paid"`
	TotalOutstanding    float64       `json:"total_outstanding"`
	OverdueCount        int64         `json:"overdue_count"`
	OverdueAmount       float64       `json:"overdue_amount"`
	AverageInvoiceValue float64       `json:"average_invoice_value"`
	StatusBreakdown     []StatusCount `json:"status_breakdown"`
}
