package grpcclient

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
)

// AddressInput is a postal address; every field is optional.
type AddressInput struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// CreateCustomerInput defines input for creating a customer.
type CreateCustomerInput struct {
	Name         string        `json:"name"`
	Email        *string       `json:"email,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Address      *AddressInput `json:"address,omitempty"`
	TRN          *string       `json:"trn,omitempty"`
	PaymentTerms *int          `json:"payment_terms,omitempty"`
	CreditLimit  *float64      `json:"credit_limit,omitempty"`
	CustomerType *string       `json:"customer_type,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
}

// UpdateCustomerInput defines the changed fields of a customer.
type UpdateCustomerInput struct {
	Name         *string       `json:"name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Address      *AddressInput `json:"address,omitempty"`
	TRN          *string       `json:"trn,omitempty"`
	PaymentTerms *int          `json:"payment_terms,omitempty"`
	CreditLimit  *float64      `json:"credit_limit,omitempty"`
	CustomerType *string       `json:"customer_type,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
}

// ListCustomersParams filters and pages a customer listing.
type ListCustomersParams struct {
	Page         int
	Limit        int
	Status       *string
	CustomerType *string
}

// CustomerClient is the customer facade.
type CustomerClient struct {
	c    *Client
	stub erpv1.CustomerServiceClient
}

// NewCustomerClient creates a customer facade over stub.
func NewCustomerClient(c *Client, stub erpv1.CustomerServiceClient) *CustomerClient {
	return &CustomerClient{c: c, stub: stub}
}

// Create creates a customer.
func (f *CustomerClient) Create(ctx context.Context, in CreateCustomerInput) (*model.Customer, error) {
	req := buildCustomerChanges(UpdateCustomerInput{
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		TRN:          in.TRN,
		PaymentTerms: in.PaymentTerms,
		CreditLimit:  in.CreditLimit,
		CustomerType: in.CustomerType,
		Notes:        in.Notes,
	})
	req.Name = in.Name
	return unary(ctx, f.c, ResourceCustomer, erpv1.CustomerService_CreateCustomer_FullMethodName,
		req, f.stub.CreateCustomer, customerFromProto)
}

// Get fetches one customer.
func (f *CustomerClient) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return unary(ctx, f.c, ResourceCustomer, erpv1.CustomerService_GetCustomer_FullMethodName,
		&erpv1.IdRequest{Id: id}, f.stub.GetCustomer, customerFromProto)
}

// List returns one page of customers.
func (f *CustomerClient) List(ctx context.Context, params ListCustomersParams) (*model.CustomerPage, error) {
	req := &erpv1.ListCustomersRequest{
		Page:         pageRequest(params.Page, params.Limit),
		Status:       optional(params.Status),
		CustomerType: optional(params.CustomerType),
	}
	return unary(ctx, f.c, ResourceCustomer, erpv1.CustomerService_ListCustomers_FullMethodName,
		req, f.stub.ListCustomers, customerPageFromProto)
}

// Update applies the changed fields of in to customer id.
func (f *CustomerClient) Update(ctx context.Context, id int64, in UpdateCustomerInput) (*model.Customer, error) {
	req := &erpv1.UpdateCustomerRequest{Id: id, Customer: buildCustomerChanges(in)}
	return unary(ctx, f.c, ResourceCustomer, erpv1.CustomerService_UpdateCustomer_FullMethodName,
		req, f.stub.UpdateCustomer, customerFromProto)
}

// Delete deletes customer id.
func (f *CustomerClient) Delete(ctx context.Context, id int64) error {
	_, err := unary(ctx, f.c, ResourceCustomer, erpv1.CustomerService_DeleteCustomer_FullMethodName,
		&erpv1.IdRequest{Id: id}, f.stub.DeleteCustomer, discard[*emptypb.Empty])
	return err
}

// Search runs a free-text search. Zero page or limit select the defaults.
func (f *CustomerClient) Search(ctx context.Context, query string, page, limit int) (*model.CustomerPage, error) {
	req := &erpv1.SearchCustomersRequest{
		Query: query,
		Page:  pageRequest(page, limit),
	}
	return unary(ctx, f.c, ResourceCustomer, erpv1.CustomerService_SearchCustomers_FullMethodName,
		req, f.stub.SearchCustomers, customerPageFromProto)
}

func buildCustomerChanges(in UpdateCustomerInput) *erpv1.CreateCustomerRequest {
	req := &erpv1.CreateCustomerRequest{
		Email:        optional(in.Email),
		Phone:        optional(in.Phone),
		Address:      buildAddress(in.Address),
		Trn:          optional(in.TRN),
		PaymentTerms: optionalInt32(in.PaymentTerms),
		CreditLimit:  optional(in.CreditLimit),
		CustomerType: optional(in.CustomerType),
		Notes:        optional(in.Notes),
	}
	if in.Name != nil {
		req.Name = *in.Name
	}
	return req
}

func buildAddress(in *AddressInput) *erpv1.Address {
	if in == nil {
		return nil
	}
	return &erpv1.Address{
		Street:     optional(in.Street),
		City:       optional(in.City),
		State:      optional(in.State),
		PostalCode: optional(in.PostalCode),
		Country:    optional(in.Country),
	}
}

func customerFromProto(x *erpv1.Customer) *model.Customer {
	c := &model.Customer{
		ID:             x.GetId(),
		Name:           x.GetName(),
		Email:          x.GetEmail(),
		Phone:          x.GetPhone(),
		TRN:            x.GetTrn(),
		PaymentTerms:   int(x.GetPaymentTerms()),
		CreditLimit:    x.GetCreditLimit(),
		CurrentBalance: x.GetCurrentBalance(),
		CustomerType:   x.GetCustomerType(),
		Status:         x.GetStatus(),
		Notes:          x.GetNotes(),
		CreatedAt:      timeFrom(x.GetCreatedAt()),
		UpdatedAt:      timeFrom(x.GetUpdatedAt()),
	}
	if addr := x.GetAddress(); addr != nil {
		c.Address = &model.Address{
			Street:     addr.GetStreet(),
			City:       addr.GetCity(),
			State:      addr.GetState(),
			PostalCode: addr.GetPostalCode(),
			Country:    addr.GetCountry(),
		}
	}
	return c
}

func customerPageFromProto(x *erpv1.ListCustomersResponse) *model.CustomerPage {
	page := &model.CustomerPage{
		Customers: make([]model.Customer, 0, len(x.GetCustomers())),
		PageInfo:  pageInfoFrom(x.GetPageInfo()),
	}
	for _, c := range x.GetCustomers() {
		page.Customers = append(page.Customers, *customerFromProto(c))
	}
	return page
}
