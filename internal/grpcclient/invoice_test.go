package grpcclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
)

func TestInvoiceClient_Create(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok-1")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{
		Id:            42,
		InvoiceNumber: "INV-0042",
		CustomerId:    5,
		Status:        "draft",
		Items: []*erpv1.InvoiceItem{
			{Id: ptr(int64(1)), Name: "Steel Sheet", Quantity: 10, Rate: 100, Amount: 1000},
		},
	}}
	invoices := NewInvoiceClient(h.client, stub)

	invoiceDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := invoices.Create(context.Background(), CreateInvoiceInput{
		CustomerID:  5,
		InvoiceDate: invoiceDate,
		Items: []InvoiceItemInput{
			{Name: "Steel Sheet", Quantity: 10, Rate: 100, Amount: 1000},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 42 {
		t.Errorf("ID = %d, want 42", got.ID)
	}
	if got.Status != model.InvoiceStatusDraft {
		t.Errorf("Status = %q, want draft", got.Status)
	}

	call := stub.last(t)
	if call.method != "CreateInvoice" {
		t.Fatalf("method = %q, want CreateInvoice", call.method)
	}
	req := call.req.(*erpv1.CreateInvoiceRequest)
	if req.CustomerId != 5 {
		t.Errorf("CustomerId = %d, want 5", req.CustomerId)
	}
	if req.GetInvoiceDate().GetSeconds() != 1735689600 {
		t.Errorf("InvoiceDate.Seconds = %d, want 1735689600", req.GetInvoiceDate().GetSeconds())
	}
	if req.GetInvoiceDate().GetNanos() != 0 {
		t.Errorf("InvoiceDate.Nanos = %d, want 0", req.GetInvoiceDate().GetNanos())
	}
	if len(req.Items) != 1 || req.Items[0].Name != "Steel Sheet" {
		t.Fatalf("Items = %+v, want one Steel Sheet line", req.Items)
	}
	if req.Items[0].Quantity != 10 || req.Items[0].Rate != 100 || req.Items[0].Amount != 1000 {
		t.Errorf("item numbers = %+v", req.Items[0])
	}
	if got := call.md.Get(AuthorizationKey); len(got) != 1 || got[0] != "Bearer tok-1" {
		t.Errorf("authorization = %v, want [Bearer tok-1]", got)
	}
}

func TestInvoiceClient_CreateOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{Id: 1}}
	invoices := NewInvoiceClient(h.client, stub)

	_, err := invoices.Create(context.Background(), CreateInvoiceInput{
		CustomerID:  5,
		InvoiceDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Items: []InvoiceItemInput{
			{ID: ptr(int64(9)), Name: "Bar", Quantity: 1, Rate: 2, Amount: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.CreateInvoiceRequest)
	if req.DueDate != nil {
		t.Errorf("DueDate = %v, want unset", req.DueDate)
	}
	if req.Notes != nil || req.GetNotes() != "" {
		t.Errorf("Notes = %v, want unset", req.Notes)
	}
	if req.Terms != nil {
		t.Errorf("Terms = %v, want unset", req.Terms)
	}
	item := req.Items[0]
	if item.Id != nil {
		t.Errorf("item Id = %d, want unset on create", item.GetId())
	}
	if item.ProductId != nil || item.VatRate != nil || item.VatAmount != nil || item.Unit != nil {
		t.Errorf("item optionals = %+v, want unset", item)
	}
	if item.GetVatRate() != 0 || item.GetUnit() != "" {
		t.Error("unset getters should return zero values")
	}
}

func TestInvoiceClient_CreateSendsExplicitZeros(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{Id: 1}}
	invoices := NewInvoiceClient(h.client, stub)

	_, err := invoices.Create(context.Background(), CreateInvoiceInput{
		CustomerID:  5,
		InvoiceDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Notes:       ptr(""),
		Items: []InvoiceItemInput{
			{Name: "Exempt", Quantity: 1, Rate: 5, Amount: 5, VATRate: ptr(0.0), VATAmount: ptr(0.0)},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.CreateInvoiceRequest)
	if req.Notes == nil {
		t.Error("Notes should be sent when explicitly empty")
	}
	item := req.Items[0]
	if item.VatRate == nil || *item.VatRate != 0 {
		t.Errorf("VatRate = %v, want explicit 0", item.VatRate)
	}
	if item.VatAmount == nil || *item.VatAmount != 0 {
		t.Errorf("VatAmount = %v, want explicit 0", item.VatAmount)
	}
}

func TestInvoiceClient_CreatePreservesItemOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{Id: 1}}
	invoices := NewInvoiceClient(h.client, stub)

	names := []string{"Coil", "Angle", "Beam", "Channel"}
	in := CreateInvoiceInput{CustomerID: 1, InvoiceDate: time.Now()}
	for _, n := range names {
		in.Items = append(in.Items, InvoiceItemInput{Name: n, Quantity: 1})
	}
	if _, err := invoices.Create(context.Background(), in); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.CreateInvoiceRequest)
	if len(req.Items) != len(names) {
		t.Fatalf("len(Items) = %d, want %d", len(req.Items), len(names))
	}
	for i, n := range names {
		if req.Items[i].Name != n {
			t.Errorf("Items[%d].Name = %q, want %q", i, req.Items[i].Name, n)
		}
	}
}

func TestInvoiceClient_UpdateKeepsItemIDs(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{Id: 7}}
	invoices := NewInvoiceClient(h.client, stub)

	_, err := invoices.Update(context.Background(), 7, UpdateInvoiceInput{
		Terms: ptr("Net 30"),
		Items: []InvoiceItemInput{
			{ID: ptr(int64(3)), Name: "Sheet", Quantity: 2},
			{Name: "New line", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.UpdateInvoiceRequest)
	if req.Id != 7 {
		t.Errorf("Id = %d, want 7", req.Id)
	}
	changes := req.GetInvoice()
	if changes.GetTerms() != "Net 30" {
		t.Errorf("Terms = %q, want Net 30", changes.GetTerms())
	}
	if changes.InvoiceDate != nil || changes.Notes != nil {
		t.Error("unchanged fields should stay unset")
	}
	if got := changes.Items[0].Id; got == nil || *got != 3 {
		t.Errorf("Items[0].Id = %v, want 3", got)
	}
	if changes.Items[1].Id != nil {
		t.Errorf("Items[1].Id = %d, want unset", changes.Items[1].GetId())
	}
}

func TestInvoiceClient_UpdateWithoutItems(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{Id: 7}}
	invoices := NewInvoiceClient(h.client, stub)

	if _, err := invoices.Update(context.Background(), 7, UpdateInvoiceInput{Notes: ptr("x")}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	req := stub.last(t).req.(*erpv1.UpdateInvoiceRequest)
	if req.GetInvoice().Items != nil {
		t.Errorf("Items = %v, want nil", req.GetInvoice().Items)
	}
}

func TestInvoiceClient_ListDefaults(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{list: &erpv1.ListInvoicesResponse{
		Invoices: []*erpv1.Invoice{{Id: 1}, {Id: 2}},
		PageInfo: &erpv1.PageInfo{Page: 1, Limit: 50, Total: 2, TotalPages: 1},
	}}
	invoices := NewInvoiceClient(h.client, stub)

	page, err := invoices.List(context.Background(), ListInvoicesParams{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Invoices) != 2 {
		t.Errorf("len(Invoices) = %d, want 2", len(page.Invoices))
	}
	if page.PageInfo.Total != 2 || page.PageInfo.TotalPages != 1 {
		t.Errorf("PageInfo = %+v", page.PageInfo)
	}

	req := stub.last(t).req.(*erpv1.ListInvoicesRequest)
	if req.GetPage().GetPage() != 1 || req.GetPage().GetLimit() != 50 {
		t.Errorf("page = %+v, want 1/50", req.GetPage())
	}
	if req.Status != nil || req.CustomerId != nil {
		t.Error("filters should be unset")
	}
}

func TestInvoiceClient_ListFilters(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{list: &erpv1.ListInvoicesResponse{}}
	invoices := NewInvoiceClient(h.client, stub)

	_, err := invoices.List(context.Background(), ListInvoicesParams{
		Page:       3,
		Limit:      20,
		Status:     ptr("overdue"),
		CustomerID: ptr(int64(5)),
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.ListInvoicesRequest)
	if req.GetPage().GetPage() != 3 || req.GetPage().GetLimit() != 20 {
		t.Errorf("page = %+v, want 3/20", req.GetPage())
	}
	if req.GetStatus() != "overdue" || req.GetCustomerId() != 5 {
		t.Errorf("filters = %q/%d", req.GetStatus(), req.GetCustomerId())
	}
}

func TestInvoiceClient_EmptyListIsNotNil(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{list: &erpv1.ListInvoicesResponse{}}
	invoices := NewInvoiceClient(h.client, stub)

	page, err := invoices.Search(context.Background(), "nothing", 0, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if page.Invoices == nil {
		t.Error("Invoices should be an empty slice")
	}

	req := stub.last(t).req.(*erpv1.SearchInvoicesRequest)
	if req.Query != "nothing" {
		t.Errorf("Query = %q", req.Query)
	}
	if req.GetPage().GetPage() != 1 || req.GetPage().GetLimit() != 50 {
		t.Errorf("page = %+v, want 1/50", req.GetPage())
	}
}

func TestInvoiceClient_UpdateStatus(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{invoice: &erpv1.Invoice{Id: 8, Status: "sent"}}
	invoices := NewInvoiceClient(h.client, stub)

	got, err := invoices.UpdateStatus(context.Background(), 8, model.InvoiceStatusSent)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got.Status != model.InvoiceStatusSent {
		t.Errorf("Status = %q", got.Status)
	}
	req := stub.last(t).req.(*erpv1.UpdateInvoiceStatusRequest)
	if req.Id != 8 || req.Status != "sent" {
		t.Errorf("request = %+v", req)
	}
}

func TestInvoiceClient_Payments(t *testing.T) {
	t.Parallel()

	paid := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{
		invoice: &erpv1.Invoice{
			Id:         42,
			AmountPaid: 250,
			BalanceDue: 750,
			Payments: []*erpv1.Payment{
				{Id: 1, InvoiceId: 42, Amount: 250, PaymentDate: timestampOf(paid), Method: "bank_transfer"},
			},
		},
		history: &erpv1.PaymentHistoryResponse{},
	}
	invoices := NewInvoiceClient(h.client, stub)
	ctx := context.Background()

	inv, err := invoices.RecordPayment(ctx, RecordPaymentInput{
		InvoiceID:   42,
		Amount:      250,
		PaymentDate: paid,
		Method:      "bank_transfer",
		ReferenceNo: ptr("TRX-1"),
	})
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if inv.BalanceDue != 750 || len(inv.Payments) != 1 {
		t.Errorf("invoice = %+v", inv)
	}
	if !inv.Payments[0].PaymentDate.Equal(paid) {
		t.Errorf("PaymentDate = %v, want %v", inv.Payments[0].PaymentDate, paid)
	}

	req := stub.last(t).req.(*erpv1.RecordPaymentRequest)
	if req.InvoiceId != 42 || req.Amount != 250 || req.Method != "bank_transfer" {
		t.Errorf("request = %+v", req)
	}
	if req.GetReferenceNo() != "TRX-1" || req.Notes != nil {
		t.Errorf("optionals = %v/%v", req.ReferenceNo, req.Notes)
	}
	if req.GetPaymentDate().GetSeconds() != paid.Unix() {
		t.Errorf("PaymentDate.Seconds = %d", req.GetPaymentDate().GetSeconds())
	}

	if _, err := invoices.VoidPayment(ctx, 42, 1, ""); err != nil {
		t.Fatalf("VoidPayment() error = %v", err)
	}
	void := stub.last(t).req.(*erpv1.VoidPaymentRequest)
	if void.InvoiceId != 42 || void.PaymentId != 1 || void.Reason != nil {
		t.Errorf("void request = %+v", void)
	}

	history, err := invoices.PaymentHistory(ctx, 42)
	if err != nil {
		t.Fatalf("PaymentHistory() error = %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Errorf("history = %v, want empty non-nil", history)
	}
}

func TestInvoiceClient_GenerateNumber(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{number: &erpv1.GenerateInvoiceNumberResponse{InvoiceNumber: "INV-2025-0001"}}
	invoices := NewInvoiceClient(h.client, stub)

	got, err := invoices.GenerateNumber(context.Background(), "")
	if err != nil {
		t.Fatalf("GenerateNumber() error = %v", err)
	}
	if got != "INV-2025-0001" {
		t.Errorf("number = %q", got)
	}
	if req := stub.last(t).req.(*erpv1.GenerateInvoiceNumberRequest); req.Status != nil {
		t.Errorf("Status = %q, want unset", req.GetStatus())
	}

	if _, err := invoices.GenerateNumber(context.Background(), "draft"); err != nil {
		t.Fatalf("GenerateNumber() error = %v", err)
	}
	if req := stub.last(t).req.(*erpv1.GenerateInvoiceNumberRequest); req.GetStatus() != "draft" {
		t.Errorf("Status = %q, want draft", req.GetStatus())
	}
}

func TestInvoiceClient_Analytics(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		params    AnalyticsParams
		wantRange bool
	}{
		{"no range", AnalyticsParams{}, false},
		{"start only", AnalyticsParams{StartDate: &start}, false},
		{"end only", AnalyticsParams{EndDate: &end}, false},
		{"both ends", AnalyticsParams{StartDate: &start, EndDate: &end}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "tok")
			stub := &fakeInvoiceStub{analytics: &erpv1.InvoiceAnalytics{
				TotalInvoices: 3,
				TotalAmount:   900,
				StatusBreakdown: []*erpv1.StatusCount{
					{Status: "paid", Count: 2, Amount: 600},
					{Status: "overdue", Count: 1, Amount: 300},
				},
			}}
			invoices := NewInvoiceClient(h.client, stub)

			got, err := invoices.Analytics(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("Analytics() error = %v", err)
			}
			if got.TotalInvoices != 3 || len(got.StatusBreakdown) != 2 {
				t.Errorf("analytics = %+v", got)
			}
			if got.StatusBreakdown[1].Status != "overdue" {
				t.Errorf("breakdown order changed: %+v", got.StatusBreakdown)
			}

			req := stub.last(t).req.(*erpv1.GetInvoiceAnalyticsRequest)
			if (req.DateRange != nil) != tt.wantRange {
				t.Fatalf("DateRange = %v, want set=%v", req.DateRange, tt.wantRange)
			}
			if tt.wantRange && req.GetDateRange().GetEndDate().GetSeconds() != end.Unix() {
				t.Errorf("EndDate = %d", req.GetDateRange().GetEndDate().GetSeconds())
			}
		})
	}
}

func TestInvoiceClient_NotFound(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{}
	stub.err = statusErr(5, "invoice 99 missing")
	invoices := NewInvoiceClient(h.client, stub)

	_, err := invoices.Get(context.Background(), 99)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if e.Message != "Invoice not found." {
		t.Errorf("Message = %q", e.Message)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("error should match ErrNotFound")
	}
	if h.store.Clears() != 0 || len(h.redirects.all()) != 0 {
		t.Error("not found must not touch the session")
	}
}

func TestInvoiceClient_DeleteTwice(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeInvoiceStub{}
	invoices := NewInvoiceClient(h.client, stub)
	ctx := context.Background()

	if err := invoices.Delete(ctx, 4); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}

	stub.err = statusErr(5, "")
	first := invoices.Delete(ctx, 4)
	second := invoices.Delete(ctx, 4)
	if !errors.Is(first, ErrNotFound) || !errors.Is(second, ErrNotFound) {
		t.Errorf("repeated deletes = %v / %v, want not found both times", first, second)
	}
	if stub.count() != 3 {
		t.Errorf("stub calls = %d, want 3", stub.count())
	}
}
