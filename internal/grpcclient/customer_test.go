package grpcclient

import (
	"context"
	"testing"
	"time"

	"github.com/steelerp/erpclient/internal/erpv1"
)

func TestCustomerClient_ListWithFilters(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeCustomerStub{list: &erpv1.ListCustomersResponse{
		Customers: []*erpv1.Customer{
			{Id: 1, Name: "Gulf Fabrication", Status: "active"},
			{Id: 2, Name: "Desert Steel", Status: "active"},
		},
		PageInfo: &erpv1.PageInfo{Page: 2, Limit: 10, Total: 12, TotalPages: 2, HasPrevious: true},
	}}
	customers := NewCustomerClient(h.client, stub)

	page, err := customers.List(context.Background(), ListCustomersParams{
		Page:   2,
		Limit:  10,
		Status: ptr("active"),
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Customers) != 2 {
		t.Fatalf("len(Customers) = %d, want 2", len(page.Customers))
	}
	if page.Customers[0].Name != "Gulf Fabrication" {
		t.Errorf("Customers[0].Name = %q", page.Customers[0].Name)
	}
	if !page.PageInfo.HasPrevious || page.PageInfo.HasNext {
		t.Errorf("PageInfo = %+v", page.PageInfo)
	}

	req := stub.last(t).req.(*erpv1.ListCustomersRequest)
	if req.GetPage().GetPage() != 2 || req.GetPage().GetLimit() != 10 {
		t.Errorf("page = %+v, want 2/10", req.GetPage())
	}
	if req.GetStatus() != "active" {
		t.Errorf("Status = %q, want active", req.GetStatus())
	}
	if req.CustomerType != nil {
		t.Errorf("CustomerType = %q, want unset", req.GetCustomerType())
	}
}

func TestCustomerClient_ListDefaults(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeCustomerStub{list: &erpv1.ListCustomersResponse{}}
	customers := NewCustomerClient(h.client, stub)

	if _, err := customers.List(context.Background(), ListCustomersParams{}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	req := stub.last(t).req.(*erpv1.ListCustomersRequest)
	if req.GetPage().GetPage() != DefaultPage || req.GetPage().GetLimit() != DefaultLimit {
		t.Errorf("page = %+v, want defaults", req.GetPage())
	}
}

func TestCustomerClient_CreateRoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC)
	h := newHarness(t, "tok")
	stub := &fakeCustomerStub{customer: &erpv1.Customer{
		Id:             11,
		Name:           "Gulf Fabrication",
		Email:          "ap@gulf.example",
		Address:        &erpv1.Address{City: ptr("Dubai"), Country: ptr("AE")},
		Trn:            "100200300400003",
		PaymentTerms:   30,
		CreditLimit:    50000,
		CurrentBalance: 12000,
		CustomerType:   "business",
		Status:         "active",
		CreatedAt:      timestampOf(created),
	}}
	customers := NewCustomerClient(h.client, stub)

	got, err := customers.Create(context.Background(), CreateCustomerInput{
		Name:         "Gulf Fabrication",
		Email:        ptr("ap@gulf.example"),
		Address:      &AddressInput{City: ptr("Dubai"), Country: ptr("AE")},
		TRN:          ptr("100200300400003"),
		PaymentTerms: ptr(30),
		CreditLimit:  ptr(50000.0),
		CustomerType: ptr("business"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got.ID != 11 || got.Name != "Gulf Fabrication" || got.Email != "ap@gulf.example" {
		t.Errorf("customer = %+v", got)
	}
	if got.Address == nil || got.Address.City != "Dubai" || got.Address.Street != "" {
		t.Errorf("Address = %+v", got.Address)
	}
	if got.AvailableCredit() != 38000 {
		t.Errorf("AvailableCredit() = %v, want 38000", got.AvailableCredit())
	}
	if got.CreatedAt == nil || !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.UpdatedAt != nil {
		t.Errorf("UpdatedAt = %v, want nil", got.UpdatedAt)
	}

	req := stub.last(t).req.(*erpv1.CreateCustomerRequest)
	if req.Name != "Gulf Fabrication" || req.GetPaymentTerms() != 30 || req.GetCreditLimit() != 50000 {
		t.Errorf("request = %+v", req)
	}
	if req.GetAddress().Street != nil || req.GetAddress().GetCity() != "Dubai" {
		t.Errorf("Address = %+v", req.GetAddress())
	}
	if req.Phone != nil || req.Notes != nil {
		t.Error("omitted fields should stay unset")
	}
}

func TestCustomerClient_CreateExplicitZeroCreditLimit(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeCustomerStub{customer: &erpv1.Customer{Id: 1}}
	customers := NewCustomerClient(h.client, stub)

	_, err := customers.Create(context.Background(), CreateCustomerInput{
		Name:         "Cash Buyer",
		CreditLimit:  ptr(0.0),
		PaymentTerms: ptr(0),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.CreateCustomerRequest)
	if req.CreditLimit == nil || *req.CreditLimit != 0 {
		t.Errorf("CreditLimit = %v, want explicit 0", req.CreditLimit)
	}
	if req.PaymentTerms == nil || *req.PaymentTerms != 0 {
		t.Errorf("PaymentTerms = %v, want explicit 0", req.PaymentTerms)
	}
	if req.Address != nil {
		t.Errorf("Address = %+v, want unset", req.Address)
	}
}

func TestCustomerClient_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeCustomerStub{customer: &erpv1.Customer{Id: 3, Name: "Renamed"}}
	customers := NewCustomerClient(h.client, stub)
	ctx := context.Background()

	got, err := customers.Update(ctx, 3, UpdateCustomerInput{Name: ptr("Renamed")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Name = %q", got.Name)
	}
	req := stub.last(t).req.(*erpv1.UpdateCustomerRequest)
	if req.Id != 3 || req.GetCustomer().GetName() != "Renamed" {
		t.Errorf("request = %+v", req)
	}
	if req.GetCustomer().Email != nil {
		t.Error("Email should stay unset")
	}

	if err := customers.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if del := stub.last(t).req.(*erpv1.IdRequest); del.Id != 3 {
		t.Errorf("delete Id = %d, want 3", del.Id)
	}
}

func TestCustomerClient_Search(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeCustomerStub{list: &erpv1.ListCustomersResponse{
		Customers: []*erpv1.Customer{{Id: 5, Name: "Gulf Fabrication"}},
	}}
	customers := NewCustomerClient(h.client, stub)

	page, err := customers.Search(context.Background(), "gulf", 1, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(page.Customers) != 1 {
		t.Fatalf("len(Customers) = %d", len(page.Customers))
	}
	req := stub.last(t).req.(*erpv1.SearchCustomersRequest)
	if req.Query != "gulf" || req.GetPage().GetLimit() != 5 {
		t.Errorf("request = %+v", req)
	}
}
