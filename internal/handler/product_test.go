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
	createProduct   = erpv1.ProductService_CreateProduct_FullMethodName
	getProduct      = erpv1.ProductService_GetProduct_FullMethodName
	listProducts    = erpv1.ProductService_ListProducts_FullMethodName
	updateProduct   = erpv1.ProductService_UpdateProduct_FullMethodName
	deleteProduct   = erpv1.ProductService_DeleteProduct_FullMethodName
	searchProducts  = erpv1.ProductService_SearchProducts_FullMethodName
	updateInventory = erpv1.ProductService_UpdateInventory_FullMethodName
)

func TestProductHandler_CreateAndGet(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	g.backend.Reply(createProduct, testutil.NewTestProduct(21))
	g.backend.Reply(getProduct, testutil.NewTestProduct(21))

	rec := g.do(t, http.MethodPost, "/api/v1/products", `{"name":"HR Coil 3mm","sku":"HRC-3","category":"coil","selling_price":2800}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var req erpv1.CreateProductRequest
	g.backend.LastCall(t, createProduct).Decode(t, &req)
	if req.Name != "HR Coil 3mm" || req.GetSku() != "HRC-3" || req.GetSellingPrice() != 2800 {
		t.Errorf("request = %v", &req)
	}
	if req.CostPrice != nil || req.ReorderLevel != nil {
		t.Error("absent prices should not be sent")
	}

	rec = g.do(t, http.MethodGet, "/api/v1/products/21", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var p model.Product
	decodeBody(t, rec, &p)
	if p.ID != 21 || p.SKU != "HRC-3" || p.CurrentStock != 40 {
		t.Errorf("product = %+v", p)
	}
}

func TestProductHandler_ListFilters(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	g.backend.Reply(listProducts, &erpv1.ListProductsResponse{
		Products: []*erpv1.Product{testutil.NewTestProduct(1)},
	})
	g.backend.Reply(searchProducts, &erpv1.ListProductsResponse{})

	rec := g.do(t, http.MethodGet, "/api/v1/products?commodity=steel&grade=SS304&page=x", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var req erpv1.ListProductsRequest
	g.backend.LastCall(t, listProducts).Decode(t, &req)
	if req.GetPage().GetPage() != 1 {
		t.Errorf("invalid page should fall back to 1, got %d", req.GetPage().GetPage())
	}
	if req.GetCommodity() != "steel" || req.GetGrade() != "SS304" || req.Category != nil || req.Status != nil {
		t.Errorf("filters = %v", &req)
	}

	rec = g.do(t, http.MethodGet, "/api/v1/products/search?q=304", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d", rec.Code)
	}
	var search erpv1.SearchProductsRequest
	g.backend.LastCall(t, searchProducts).Decode(t, &search)
	if search.Query != "304" {
		t.Errorf("Query = %q", search.Query)
	}
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	g.backend.Reply(updateProduct, testutil.NewTestProduct(21))
	g.backend.Reply(deleteProduct, &emptypb.Empty{})

	rec := g.do(t, http.MethodPatch, "/api/v1/products/21", `{"reorder_level":12.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var req erpv1.UpdateProductRequest
	g.backend.LastCall(t, updateProduct).Decode(t, &req)
	if req.Id != 21 || req.GetProduct().GetReorderLevel() != 12.5 || req.GetProduct().Name != "" {
		t.Errorf("request = %v", &req)
	}

	rec = g.do(t, http.MethodDelete, "/api/v1/products/21", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d", rec.Code)
	}
}

func TestProductHandler_UpdateInventory(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	restocked := testutil.NewTestProduct(21)
	restocked.CurrentStock = 50
	g.backend.Reply(updateInventory, restocked)

	rec := g.do(t, http.MethodPost, "/api/v1/products/21/inventory", `{"quantity":10,"movement_type":"SCRAP"}`)
	if rec.Code != http.StatusBadRequest || decodeError(t, rec).Code != "INVALID_MOVEMENT" {
		t.Fatalf("bad movement = %d", rec.Code)
	}

	rec = g.do(t, http.MethodPost, "/api/v1/products/21/inventory", `{
		"product_id": 1,
		"quantity": 10,
		"movement_type": "IN",
		"warehouse_id": 2,
		"reference_no": "GRN-88"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var p model.Product
	decodeBody(t, rec, &p)
	if p.CurrentStock != 50 {
		t.Errorf("CurrentStock = %v", p.CurrentStock)
	}

	var req erpv1.UpdateInventoryRequest
	g.backend.LastCall(t, updateInventory).Decode(t, &req)
	if req.ProductId != 21 || req.Quantity != 10 || req.MovementType != "IN" {
		t.Errorf("request = %v", &req)
	}
	if req.GetWarehouseId() != 2 || req.GetReferenceNo() != "GRN-88" || req.Reason != nil {
		t.Errorf("optionals = %v", &req)
	}
}
