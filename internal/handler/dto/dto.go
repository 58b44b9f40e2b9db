// Package dto provides Data Transfer Objects for gateway requests and responses.
package dto

import "github.com/steelerp/erpclient/internal/model"

// ErrorResponse represents an API error. CallID is set when the failure came
// from an ERP call and matches the call_id of its log line.
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	CallID string `json:"call_id,omitempty"`
}

// LoginRequest represents the request body for POST /session.
type LoginRequest struct {
	Token string `json:"token"`
}

// StatusRequest represents the request body for PUT /invoices/{id}/status.
type StatusRequest struct {
	Status model.InvoiceStatus `json:"status"`
}

// VoidPaymentRequest represents the request body for voiding a payment.
type VoidPaymentRequest struct {
	Reason string `json:"reason"`
}

// NextNumberResponse carries a generated invoice number.
type NextNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}

// PaymentListResponse represents the payment history of an invoice.
type PaymentListResponse struct {
	Payments []model.Payment `json:"payments"`
}
