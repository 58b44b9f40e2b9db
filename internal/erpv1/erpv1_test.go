package erpv1

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServicesRegistered(t *testing.T) {
	cases := map[string]int{
		"erp.v1.InvoiceService":  12,
		"erp.v1.CustomerService": 6,
		"erp.v1.ProductService":  7,
	}
	for name, methods := range cases {
		d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(name))
		if err != nil {
			t.Fatalf("FindDescriptorByName(%s) error = %v", name, err)
		}
		svc, ok := d.(protoreflect.ServiceDescriptor)
		if !ok {
			t.Fatalf("%s is %T, want a service", name, d)
		}
		if got := svc.Methods().Len(); got != methods {
			t.Errorf("%s has %d methods, want %d", name, got, methods)
		}
	}

	m := (&InvoiceService_ServiceDesc).Methods
	if len(m) != 12 || InvoiceService_DeleteInvoice_FullMethodName != "/erp.v1.InvoiceService/DeleteInvoice" {
		t.Errorf("unexpected invoice service descriptor: %d methods", len(m))
	}
}

func TestMarshal_OmitsUnsetOptionals(t *testing.T) {
	t.Parallel()

	req := &CreateInvoiceRequest{
		CustomerId:  5,
		InvoiceDate: timestamppb.New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Items:       []*InvoiceItem{{Name: "Steel Sheet", Quantity: 10}},
	}

	b, err := proto.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back CreateInvoiceRequest
	if err := proto.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !proto.Equal(req, &back) {
		t.Errorf("round trip = %v, want %v", &back, req)
	}
	if back.DueDate != nil || back.Notes != nil || back.Terms != nil {
		t.Errorf("unset fields came back set: %v", &back)
	}
	if back.Items[0].VatRate != nil {
		t.Error("VatRate should stay unset")
	}
	if got := back.GetInvoiceDate().AsTime(); !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("InvoiceDate = %v", got)
	}
}

func TestMarshal_KeepsExplicitZero(t *testing.T) {
	t.Parallel()

	zero := 0.0
	b, err := proto.Marshal(&InvoiceItem{Name: "Exempt", VatRate: &zero})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back InvoiceItem
	if err := proto.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.VatRate == nil || *back.VatRate != 0 {
		t.Errorf("VatRate = %v, want explicit 0", back.VatRate)
	}

	var plain InvoiceItem
	b, _ = proto.Marshal(&InvoiceItem{Name: "Exempt"})
	if err := proto.Unmarshal(b, &plain); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if plain.VatRate != nil {
		t.Errorf("VatRate = %v, want unset", *plain.VatRate)
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	t.Parallel()

	b, err := proto.Marshal(&Invoice{Id: 42, InvoiceNumber: "INV-0042"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out Invoice
	if err := proto.Unmarshal(b[:len(b)-3], &out); err == nil {
		t.Error("Unmarshal of truncated message should fail")
	}
}

func TestNilGetters(t *testing.T) {
	t.Parallel()

	var inv *Invoice
	if inv.GetId() != 0 || inv.GetItems() != nil || inv.GetDueDate() != nil {
		t.Error("nil Invoice getters should return zero values")
	}

	var req *ListCustomersRequest
	if req.GetPage().GetLimit() != 0 || req.GetStatus() != "" {
		t.Error("nil ListCustomersRequest getters should return zero values")
	}

	var item *InvoiceItem
	if item.GetVatRate() != 0 || item.GetUnit() != "" {
		t.Error("nil InvoiceItem getters should return zero values")
	}
}
