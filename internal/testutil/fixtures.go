package testutil

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/steelerp/erpclient/internal/erpv1"
)

// ============================================================================
// Test Data Factories
// ============================================================================

var fixtureTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestInvoice creates an invoice message with one line and sensible
// defaults.
func NewTestInvoice(id int64) *erpv1.Invoice {
	ts := timestamppb.New(fixtureTime)
	due := timestamppb.New(fixtureTime.AddDate(0, 0, 30))
	return &erpv1.Invoice{
		Id:            id,
		InvoiceNumber: "INV-0042",
		CustomerId:    5,
		CustomerName:  "Gulf Fabrication",
		InvoiceDate:   ts,
		DueDate:       due,
		Status:        "draft",
		PaymentStatus: "unpaid",
		Items: []*erpv1.InvoiceItem{
			{Name: "Steel Sheet", Quantity: 10, Rate: 100, Amount: 1000},
		},
		Subtotal:   1000,
		VatAmount:  50,
		Total:      1050,
		BalanceDue: 1050,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

// NewTestCustomer creates a customer message with sensible defaults.
func NewTestCustomer(id int64) *erpv1.Customer {
	city := "Dubai"
	return &erpv1.Customer{
		Id:           id,
		Name:         "Gulf Fabrication",
		Email:        "ap@gulf.example",
		Address:      &erpv1.Address{City: &city},
		PaymentTerms: 30,
		CreditLimit:  50000,
		CustomerType: "business",
		Status:       "active",
		CreatedAt:    timestamppb.New(fixtureTime),
	}
}

// NewTestProduct creates a product message with sensible defaults.
func NewTestProduct(id int64) *erpv1.Product {
	return &erpv1.Product{
		Id:           id,
		Name:         "HR Coil 3mm",
		Sku:          "HRC-3",
		Category:     "coil",
		Unit:         "ton",
		SellingPrice: 2800,
		CurrentStock: 40,
		Status:       "active",
		CreatedAt:    timestamppb.New(fixtureTime),
	}
}
