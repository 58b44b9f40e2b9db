package model

import "time"

// Address is a postal address.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Customer is a trading customer.
type Customer struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Address        *Address   `json:"address,omitempty"`
	TRN            string     `json:"trn,omitempty"`
	PaymentTerms   int        `json:"payment_terms"`
	CreditLimit    float64    `json:"credit_limit"`
	CurrentBalance float64    `json:"current_balance"`
	CustomerType   string     `json:"customer_type,omitempty"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// AvailableCredit returns the unused part of the credit limit. A customer
// without a limit has no available credit.
func (c *Customer) AvailableCredit() float64 {
	if c.CreditLimit <= 0 {
		return 0
	}
	available := c.CreditLimit - c.CurrentBalance
	if available < 0 {
		return 0
	}
	return available
}

// CustomerPage is one page of customers from a list or search call.
type CustomerPage struct {
	Customers []Customer `json:"customers"`
	PageInfo  PageInfo   `json:"page_info"`
}
