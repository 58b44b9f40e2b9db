package grpcclient

import (
	"context"
	"errors"
	"testing"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
)

func TestProductClient_Create(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeProductStub{product: &erpv1.Product{
		Id:           21,
		Name:         "HR Coil 3mm",
		Sku:          "HRC-3",
		Category:     "coil",
		Grade:        "S275",
		SellingPrice: 2800,
		ReorderLevel: 10,
		CurrentStock: 4,
	}}
	products := NewProductClient(h.client, stub)

	got, err := products.Create(context.Background(), CreateProductInput{
		Name:         "HR Coil 3mm",
		SKU:          ptr("HRC-3"),
		Category:     "coil",
		Grade:        ptr("S275"),
		SellingPrice: ptr(2800.0),
		ReorderLevel: ptr(10.0),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 21 || got.SKU != "HRC-3" || got.Grade != "S275" {
		t.Errorf("product = %+v", got)
	}
	if !got.NeedsReorder() {
		t.Error("NeedsReorder() = false, want true")
	}

	req := stub.last(t).req.(*erpv1.CreateProductRequest)
	if req.Name != "HR Coil 3mm" || req.Category != "coil" {
		t.Errorf("request = %+v", req)
	}
	if req.Commodity != nil || req.CostPrice != nil || req.Unit != nil {
		t.Error("omitted fields should stay unset")
	}
}

func TestProductClient_UpdateOnlyChangedFields(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeProductStub{product: &erpv1.Product{Id: 21}}
	products := NewProductClient(h.client, stub)

	if _, err := products.Update(context.Background(), 21, UpdateProductInput{CostPrice: ptr(0.0)}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	req := stub.last(t).req.(*erpv1.UpdateProductRequest)
	changes := req.GetProduct()
	if req.Id != 21 {
		t.Errorf("Id = %d", req.Id)
	}
	if changes.CostPrice == nil || *changes.CostPrice != 0 {
		t.Errorf("CostPrice = %v, want explicit 0", changes.CostPrice)
	}
	if changes.Name != "" || changes.Category != "" || changes.SellingPrice != nil {
		t.Errorf("changes = %+v, want only CostPrice", changes)
	}
}

func TestProductClient_ListAndSearch(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeProductStub{list: &erpv1.ListProductsResponse{
		Products: []*erpv1.Product{{Id: 1}, {Id: 2}, {Id: 3}},
		PageInfo: &erpv1.PageInfo{Page: 1, Limit: 50, Total: 3, TotalPages: 1},
	}}
	products := NewProductClient(h.client, stub)
	ctx := context.Background()

	page, err := products.List(ctx, ListProductsParams{Commodity: ptr("steel"), Grade: ptr("SS304")})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Products) != 3 || page.Products[2].ID != 3 {
		t.Errorf("products = %+v", page.Products)
	}
	req := stub.last(t).req.(*erpv1.ListProductsRequest)
	if req.GetPage().GetPage() != 1 || req.GetPage().GetLimit() != 50 {
		t.Errorf("page = %+v, want 1/50", req.GetPage())
	}
	if req.GetCommodity() != "steel" || req.GetGrade() != "SS304" || req.Category != nil || req.Status != nil {
		t.Errorf("filters = %+v", req)
	}

	if _, err := products.Search(ctx, "304", 2, 0); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	search := stub.last(t).req.(*erpv1.SearchProductsRequest)
	if search.GetPage().GetPage() != 2 || search.GetPage().GetLimit() != 50 {
		t.Errorf("page = %+v, want 2/50", search.GetPage())
	}
}

func TestProductClient_UpdateInventory(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeProductStub{product: &erpv1.Product{Id: 21, CurrentStock: 14}}
	products := NewProductClient(h.client, stub)

	got, err := products.UpdateInventory(context.Background(), UpdateInventoryInput{
		ProductID:    21,
		Quantity:     10,
		MovementType: model.MovementIn,
		WarehouseID:  ptr(int64(2)),
		ReferenceNo:  ptr("GRN-88"),
	})
	if err != nil {
		t.Fatalf("UpdateInventory() error = %v", err)
	}
	if got.CurrentStock != 14 {
		t.Errorf("CurrentStock = %v, want 14", got.CurrentStock)
	}

	req := stub.last(t).req.(*erpv1.UpdateInventoryRequest)
	if req.ProductId != 21 || req.Quantity != 10 || req.MovementType != "IN" {
		t.Errorf("request = %+v", req)
	}
	if req.GetWarehouseId() != 2 || req.GetReferenceNo() != "GRN-88" || req.Reason != nil {
		t.Errorf("optionals = %+v", req)
	}
}

func TestProductClient_NotFoundMessage(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "tok")
	stub := &fakeProductStub{}
	stub.err = statusErr(5, "")
	products := NewProductClient(h.client, stub)

	_, err := products.Get(context.Background(), 404)
	if err == nil || err.Error() != "Product not found." {
		t.Fatalf("error = %v, want Product not found.", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("error should match ErrNotFound")
	}
}
