package handler

import (
	"net/http"
	"testing"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
	"github.com/steelerp/erpclient/internal/testutil"
)

const (
	createCustomer  = erpv1.CustomerService_CreateCustomer_FullMethodName
	getCustomer     = erpv1.CustomerService_GetCustomer_FullMethodName
	listCustomers   = erpv1.CustomerService_ListCustomers_FullMethodName
	updateCustomer  = erpv1.CustomerService_UpdateCustomer_FullMethodName
	deleteCustomer  = erpv1.CustomerService_DeleteCustomer_FullMethodName
	searchCustomers = erpv1.CustomerService_SearchCustomers_FullMethodName
)

func TestCustomerHandler_Create(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	g.backend.Reply(createCustomer, testutil.NewTestCustomer(11))

	rec := g.do(t, http.MethodPost, "/api/v1/customers", `{
		"name": "Gulf Fabrication",
		"email": "ap@gulf.example",
		"address": {"city": "Dubai"},
		"credit_limit": 0
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var c model.Customer
	decodeBody(t, rec, &c)
	if c.ID != 11 || c.Address == nil || c.Address.City != "Dubai" {
		t.Errorf("customer = %+v", c)
	}

	var req erpv1.CreateCustomerRequest
	g.backend.LastCall(t, createCustomer).Decode(t, &req)
	if req.Name != "Gulf Fabrication" || req.GetEmail() != "ap@gulf.example" {
		t.Errorf("request = %v", &req)
	}
	if req.CreditLimit == nil || *req.CreditLimit != 0 {
		t.Errorf("CreditLimit = %v, want explicit 0", req.CreditLimit)
	}
	if req.PaymentTerms != nil || req.GetAddress().Street != nil {
		t.Error("absent fields should not be sent")
	}
}

func TestCustomerHandler_CreateRequiresName(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	rec := g.do(t, http.MethodPost, "/api/v1/customers", `{"name":"  "}`)
	if rec.Code != http.StatusBadRequest || decodeError(t, rec).Code != "INVALID_NAME" {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(g.backend.Calls()) != 0 {
		t.Error("backend must not be called")
	}
}

func TestCustomerHandler_ListAndSearch(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	g.backend.Reply(listCustomers, &erpv1.ListCustomersResponse{
		Customers: []*erpv1.Customer{testutil.NewTestCustomer(1), testutil.NewTestCustomer(2)},
		PageInfo:  &erpv1.PageInfo{Page: 1, Limit: 10, Total: 2, TotalPages: 1},
	})
	g.backend.Reply(searchCustomers, &erpv1.ListCustomersResponse{})

	rec := g.do(t, http.MethodGet, "/api/v1/customers?limit=10&status=active&customer_type=business", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var page model.CustomerPage
	decodeBody(t, rec, &page)
	if len(page.Customers) != 2 || page.PageInfo.Limit != 10 {
		t.Errorf("page = %+v", page)
	}

	var req erpv1.ListCustomersRequest
	g.backend.LastCall(t, listCustomers).Decode(t, &req)
	if req.GetPage().GetPage() != 1 || req.GetPage().GetLimit() != 10 {
		t.Errorf("page = %+v", req.GetPage())
	}
	if req.GetStatus() != "active" || req.GetCustomerType() != "business" {
		t.Errorf("filters = %v", &req)
	}

	rec = g.do(t, http.MethodGet, "/api/v1/customers/search?q=gulf&page=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d", rec.Code)
	}
	var search erpv1.SearchCustomersRequest
	g.backend.LastCall(t, searchCustomers).Decode(t, &search)
	if search.Query != "gulf" || search.GetPage().GetPage() != 3 || search.GetPage().GetLimit() != 50 {
		t.Errorf("request = %v", &search)
	}
}

func TestCustomerHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	renamed := testutil.NewTestCustomer(3)
	renamed.Name = "Gulf Fabrication LLC"
	g.backend.Reply(updateCustomer, renamed)
	g.backend.Reply(deleteCustomer, &emptypb.Empty{})

	rec := g.do(t, http.MethodPatch, "/api/v1/customers/3", `{"name":"Gulf Fabrication LLC","payment_terms":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var c model.Customer
	decodeBody(t, rec, &c)
	if c.Name != "Gulf Fabrication LLC" {
		t.Errorf("Name = %q", c.Name)
	}

	var req erpv1.UpdateCustomerRequest
	g.backend.LastCall(t, updateCustomer).Decode(t, &req)
	changes := req.GetCustomer()
	if req.Id != 3 || changes.GetName() != "Gulf Fabrication LLC" {
		t.Errorf("request = %v", &req)
	}
	if changes.PaymentTerms == nil || *changes.PaymentTerms != 0 {
		t.Errorf("PaymentTerms = %v, want explicit 0", changes.PaymentTerms)
	}
	if changes.Email != nil {
		t.Error("Email should stay unset")
	}

	rec = g.do(t, http.MethodDelete, "/api/v1/customers/3", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d", rec.Code)
	}
	var del erpv1.IdRequest
	g.backend.LastCall(t, deleteCustomer).Decode(t, &del)
	if del.Id != 3 {
		t.Errorf("Id = %d", del.Id)
	}
}
