package grpcclient

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/metrics"
	"github.com/steelerp/erpclient/internal/session"
)

// recordedCall is what a fake stub saw for one invocation.
type recordedCall struct {
	method      string
	req         any
	md          metadata.MD
	hasDeadline bool
	deadline    time.Time
}

// recorder is embedded by the fake stubs.
type recorder struct {
	mu    sync.Mutex
	calls []recordedCall
	err   error
}

func (r *recorder) record(ctx context.Context, method string, req any) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	deadline, ok := ctx.Deadline()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{
		method:      method,
		req:         req,
		md:          md,
		hasDeadline: ok,
		deadline:    deadline,
	})
	return r.err
}

func (r *recorder) last(t *testing.T) recordedCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatal("stub was not called")
	}
	return r.calls[len(r.calls)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type fakeInvoiceStub struct {
	recorder
	invoice   *erpv1.Invoice
	list      *erpv1.ListInvoicesResponse
	history   *erpv1.PaymentHistoryResponse
	number    *erpv1.GenerateInvoiceNumberResponse
	analytics *erpv1.InvoiceAnalytics
}

func (f *fakeInvoiceStub) CreateInvoice(ctx context.Context, in *erpv1.CreateInvoiceRequest, _ ...grpc.CallOption) (*erpv1.Invoice, error) {
	if err := f.record(ctx, "CreateInvoice", in); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStub) GetInvoice(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*erpv1.Invoice, error) {
	if err := f.record(ctx, "GetInvoice", in); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStub) ListInvoices(ctx context.Context, in *erpv1.ListInvoicesRequest, _ ...grpc.CallOption) (*erpv1.ListInvoicesResponse, error) {
	if err := f.record(ctx, "ListInvoices", in); err != nil {
		return nil, err
	}
	return f.list, nil
}

func (f *fakeInvoiceStub) UpdateInvoice(ctx context.Context, in *erpv1.UpdateInvoiceRequest, _ ...grpc.CallOption) (*erpv1.Invoice, error) {
	if err := f.record(ctx, "UpdateInvoice", in); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStub) DeleteInvoice(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	if err := f.record(ctx, "DeleteInvoice", in); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeInvoiceStub) UpdateInvoiceStatus(ctx context.Context, in *erpv1.UpdateInvoiceStatusRequest, _ ...grpc.CallOption) (*erpv1.Invoice, error) {
	if err := f.record(ctx, "UpdateInvoiceStatus", in); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStub) RecordPayment(ctx context.Context, in *erpv1.RecordPaymentRequest, _ ...grpc.CallOption) (*erpv1.Invoice, error) {
	if err := f.record(ctx, "RecordPayment", in); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStub) VoidPayment(ctx context.Context, in *erpv1.VoidPaymentRequest, _ ...grpc.CallOption) (*erpv1.Invoice, error) {
	if err := f.record(ctx, "VoidPayment", in); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStub) GetPaymentHistory(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*erpv1.PaymentHistoryResponse, error) {
	if err := f.record(ctx, "GetPaymentHistory", in); err != nil {
		return nil, err
	}
	return f.history, nil
}

func (f *fakeInvoiceStub) GenerateInvoiceNumber(ctx context.Context, in *erpv1.GenerateInvoiceNumberRequest, _ ...grpc.CallOption) (*erpv1.GenerateInvoiceNumberResponse, error) {
	if err := f.record(ctx, "GenerateInvoiceNumber", in); err != nil {
		return nil, err
	}
	return f.number, nil
}

func (f *fakeInvoiceStub) GetInvoiceAnalytics(ctx context.Context, in *erpv1.GetInvoiceAnalyticsRequest, _ ...grpc.CallOption) (*erpv1.InvoiceAnalytics, error) {
	if err := f.record(ctx, "GetInvoiceAnalytics", in); err != nil {
		return nil, err
	}
	return f.analytics, nil
}

func (f *fakeInvoiceStub) SearchInvoices(ctx context.Context, in *erpv1.SearchInvoicesRequest, _ ...grpc.CallOption) (*erpv1.ListInvoicesResponse, error) {
	if err := f.record(ctx, "SearchInvoices", in); err != nil {
		return nil, err
	}
	return f.list, nil
}

type fakeCustomerStub struct {
	recorder
	customer *erpv1.Customer
	list     *erpv1.ListCustomersResponse
}

func (f *fakeCustomerStub) CreateCustomer(ctx context.Context, in *erpv1.CreateCustomerRequest, _ ...grpc.CallOption) (*erpv1.Customer, error) {
	if err := f.record(ctx, "CreateCustomer", in); err != nil {
		return nil, err
	}
	return f.customer, nil
}

func (f *fakeCustomerStub) GetCustomer(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*erpv1.Customer, error) {
	if err := f.record(ctx, "GetCustomer", in); err != nil {
		return nil, err
	}
	return f.customer, nil
}

func (f *fakeCustomerStub) ListCustomers(ctx context.Context, in *erpv1.ListCustomersRequest, _ ...grpc.CallOption) (*erpv1.ListCustomersResponse, error) {
	if err := f.record(ctx, "ListCustomers", in); err != nil {
		return nil, err
	}
	return f.list, nil
}

func (f *fakeCustomerStub) UpdateCustomer(ctx context.Context, in *erpv1.UpdateCustomerRequest, _ ...grpc.CallOption) (*erpv1.Customer, error) {
	if err := f.record(ctx, "UpdateCustomer", in); err != nil {
		return nil, err
	}
	return f.customer, nil
}

func (f *fakeCustomerStub) DeleteCustomer(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	if err := f.record(ctx, "DeleteCustomer", in); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeCustomerStub) SearchCustomers(ctx context.Context, in *erpv1.SearchCustomersRequest, _ ...grpc.CallOption) (*erpv1.ListCustomersResponse, error) {
	if err := f.record(ctx, "SearchCustomers", in); err != nil {
		return nil, err
	}
	return f.list, nil
}

type fakeProductStub struct {
	recorder
	product *erpv1.Product
	list    *erpv1.ListProductsResponse
}

func (f *fakeProductStub) CreateProduct(ctx context.Context, in *erpv1.CreateProductRequest, _ ...grpc.CallOption) (*erpv1.Product, error) {
	if err := f.record(ctx, "CreateProduct", in); err != nil {
		return nil, err
	}
	return f.product, nil
}

func (f *fakeProductStub) GetProduct(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*erpv1.Product, error) {
	if err := f.record(ctx, "GetProduct", in); err != nil {
		return nil, err
	}
	return f.product, nil
}

func (f *fakeProductStub) ListProducts(ctx context.Context, in *erpv1.ListProductsRequest, _ ...grpc.CallOption) (*erpv1.ListProductsResponse, error) {
	if err := f.record(ctx, "ListProducts", in); err != nil {
		return nil, err
	}
	return f.list, nil
}

func (f *fakeProductStub) UpdateProduct(ctx context.Context, in *erpv1.UpdateProductRequest, _ ...grpc.CallOption) (*erpv1.Product, error) {
	if err := f.record(ctx, "UpdateProduct", in); err != nil {
		return nil, err
	}
	return f.product, nil
}

func (f *fakeProductStub) DeleteProduct(ctx context.Context, in *erpv1.IdRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	if err := f.record(ctx, "DeleteProduct", in); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeProductStub) SearchProducts(ctx context.Context, in *erpv1.SearchProductsRequest, _ ...grpc.CallOption) (*erpv1.ListProductsResponse, error) {
	if err := f.record(ctx, "SearchProducts", in); err != nil {
		return nil, err
	}
	return f.list, nil
}

func (f *fakeProductStub) UpdateInventory(ctx context.Context, in *erpv1.UpdateInventoryRequest, _ ...grpc.CallOption) (*erpv1.Product, error) {
	if err := f.record(ctx, "UpdateInventory", in); err != nil {
		return nil, err
	}
	return f.product, nil
}

// harness wires a Client to an in-memory session and recording collaborators.
type harness struct {
	client    *Client
	store     *session.MemoryStore
	redirects *redirectLog
	metrics   *metrics.InMemoryRecorder
}

type redirectLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *redirectLog) Navigate(_ context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
}

func (l *redirectLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHarness(t *testing.T, token string) *harness {
	t.Helper()

	store := session.NewMemoryStore(token)
	redirects := &redirectLog{}
	logger := discardLogger()
	mgr := session.NewManager(store, redirects, "", logger)
	rec := metrics.NewInMemory()

	client := New(Options{
		Tokens:  mgr,
		Session: mgr,
		Logger:  logger,
		Metrics: rec,
	})

	return &harness{
		client:    client,
		store:     store,
		redirects: redirects,
		metrics:   rec,
	}
}

func ptr[T any](v T) *T {
	return &v
}
