package grpcclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/session"
	"github.com/steelerp/erpclient/internal/testutil"
)

func newWireFacades(t *testing.T, token string) (*Facades, *testutil.Backend, *harness) {
	t.Helper()
	h := newHarness(t, token)
	backend := testutil.NewBackend(t)
	return h.client.Facades(backend.Dial(t)), backend, h
}

func TestWire_CreateInvoice(t *testing.T) {
	t.Parallel()

	f, backend, _ := newWireFacades(t, "wire-token")
	backend.Reply(erpv1.InvoiceService_CreateInvoice_FullMethodName, testutil.NewTestInvoice(42))

	got, err := f.Invoices.Create(context.Background(), CreateInvoiceInput{
		CustomerID:  5,
		InvoiceDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Items: []InvoiceItemInput{
			{Name: "Steel Sheet", Quantity: 10, Rate: 100, Amount: 1000},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 42 || got.CustomerName != "Gulf Fabrication" {
		t.Errorf("invoice = %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Steel Sheet" {
		t.Errorf("Items = %+v", got.Items)
	}
	if got.DueDate == nil || !got.DueDate.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DueDate = %v", got.DueDate)
	}

	call := backend.LastCall(t, erpv1.InvoiceService_CreateInvoice_FullMethodName)
	if got := call.MD.Get(AuthorizationKey); len(got) != 1 || got[0] != "Bearer wire-token" {
		t.Errorf("authorization = %v", got)
	}
	if got := call.MD.Get("content-type"); len(got) != 1 || got[0] != "application/grpc" {
		t.Errorf("content-type = %v, want application/grpc", got)
	}
	if _, ok := call.Request.(*erpv1.CreateInvoiceRequest); !ok {
		t.Errorf("server decoded %T, want *erpv1.CreateInvoiceRequest", call.Request)
	}

	var req erpv1.CreateInvoiceRequest
	call.Decode(t, &req)
	if req.CustomerId != 5 || req.GetInvoiceDate().GetSeconds() != 1735689600 {
		t.Errorf("request = %v", &req)
	}
	if req.DueDate != nil || req.Notes != nil {
		t.Error("omitted fields went over the wire")
	}
}

func TestWire_ListCustomers(t *testing.T) {
	t.Parallel()

	f, backend, _ := newWireFacades(t, "tok")
	backend.Reply(erpv1.CustomerService_ListCustomers_FullMethodName, &erpv1.ListCustomersResponse{
		Customers: []*erpv1.Customer{testutil.NewTestCustomer(1), testutil.NewTestCustomer(2)},
		PageInfo:  &erpv1.PageInfo{Page: 2, Limit: 10, Total: 12, TotalPages: 2, HasPrevious: true},
	})

	page, err := f.Customers.List(context.Background(), ListCustomersParams{Page: 2, Limit: 10, Status: ptr("active")})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Customers) != 2 || page.PageInfo.Total != 12 {
		t.Errorf("page = %+v", page)
	}

	var req erpv1.ListCustomersRequest
	backend.LastCall(t, erpv1.CustomerService_ListCustomers_FullMethodName).Decode(t, &req)
	if req.GetPage().GetPage() != 2 || req.GetPage().GetLimit() != 10 || req.GetStatus() != "active" {
		t.Errorf("request = %v", &req)
	}
}

func TestWire_DeleteProductEmptyResponse(t *testing.T) {
	t.Parallel()

	f, backend, _ := newWireFacades(t, "tok")
	backend.Reply(erpv1.ProductService_DeleteProduct_FullMethodName, &emptypb.Empty{})

	if err := f.Products.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	var req erpv1.IdRequest
	backend.LastCall(t, erpv1.ProductService_DeleteProduct_FullMethodName).Decode(t, &req)
	if req.Id != 9 {
		t.Errorf("Id = %d, want 9", req.Id)
	}
}

func TestWire_UnauthenticatedClearsSession(t *testing.T) {
	t.Parallel()

	f, backend, h := newWireFacades(t, "expired")
	backend.Fail(erpv1.ProductService_GetProduct_FullMethodName, codes.Unauthenticated, "token expired")

	_, err := f.Products.Get(context.Background(), 1)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired", err)
	}
	if _, tokErr := h.store.Token(context.Background()); !errors.Is(tokErr, session.ErrNoToken) {
		t.Errorf("token kept: %v", tokErr)
	}
	if got := h.redirects.all(); len(got) != 1 || got[0] != "/login" {
		t.Errorf("redirects = %v", got)
	}
}

func TestWire_FailedPreconditionMessage(t *testing.T) {
	t.Parallel()

	f, backend, _ := newWireFacades(t, "tok")
	backend.Fail(erpv1.InvoiceService_DeleteInvoice_FullMethodName, codes.FailedPrecondition, "Cannot delete a paid invoice")

	err := f.Invoices.Delete(context.Background(), 3)
	if !errors.Is(err, ErrFailedPrecondition) || err.Error() != "Cannot delete a paid invoice" {
		t.Fatalf("error = %v", err)
	}
}

func TestWire_UnimplementedIsRemote(t *testing.T) {
	t.Parallel()

	f, _, _ := newWireFacades(t, "tok")

	_, err := f.Invoices.Analytics(context.Background(), AnalyticsParams{})
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if e.Code != codes.Unimplemented || !errors.Is(err, ErrRemote) {
		t.Errorf("Code/Kind = %v/%v", e.Code, e.Kind)
	}
}

func TestWire_DeadlineExceeded(t *testing.T) {
	t.Parallel()

	f, backend, _ := newWireFacades(t, "tok")
	backend.Handle(erpv1.InvoiceService_GetInvoice_FullMethodName, func(ctx context.Context, _ testutil.Call) (proto.Message, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Invoices.Get(ctx, 1)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if e.Code != codes.DeadlineExceeded {
		t.Errorf("Code = %v, want DeadlineExceeded", e.Code)
	}
}

func TestWire_BackendDown(t *testing.T) {
	t.Parallel()

	f, backend, h := newWireFacades(t, "tok")
	backend.Stop()

	_, err := f.Customers.Get(context.Background(), 1)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
	if h.store.Clears() != 0 {
		t.Error("network failure must not clear the session")
	}
}
