package grpcclient

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
)

// CreateProductInput defines input for creating a product.
type CreateProductInput struct {
	Name         string   `json:"name"`
	SKU          *string  `json:"sku,omitempty"`
	Category     string   `json:"category"`
	Commodity    *string  `json:"commodity,omitempty"`
	Grade        *string  `json:"grade,omitempty"`
	Finish       *string  `json:"finish,omitempty"`
	Size         *string  `json:"size,omitempty"`
	Thickness    *string  `json:"thickness,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	CostPrice    *float64 `json:"cost_price,omitempty"`
	SellingPrice *float64 `json:"selling_price,omitempty"`
	ReorderLevel *float64 `json:"reorder_level,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// UpdateProductInput defines the changed fields of a product.
type UpdateProductInput struct {
	Name         *string  `json:"name,omitempty"`
	SKU          *string  `json:"sku,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Commodity    *string  `json:"commodity,omitempty"`
	Grade        *string  `json:"grade,omitempty"`
	Finish       *string  `json:"finish,omitempty"`
	Size         *string  `json:"size,omitempty"`
	Thickness    *string  `json:"thickness,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	CostPrice    *float64 `json:"cost_price,omitempty"`
	SellingPrice *float64 `json:"selling_price,omitempty"`
	ReorderLevel *float64 `json:"reorder_level,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// ListProductsParams filters and pages a product listing.
type ListProductsParams struct {
	Page      int
	Limit     int
	Category  *string
	Commodity *string
	Grade     *string
	Status    *string
}

// UpdateInventoryInput posts a stock movement.
type UpdateInventoryInput struct {
	ProductID    int64              `json:"product_id"`
	Quantity     float64            `json:"quantity"`
	MovementType model.MovementType `json:"movement_type"`
	WarehouseID  *int64             `json:"warehouse_id,omitempty"`
	Reason       *string            `json:"reason,omitempty"`
	ReferenceNo  *string            `json:"reference_no,omitempty"`
}

// ProductClient is the product facade.
type ProductClient struct {
	c    *Client
	stub erpv1.ProductServiceClient
}

// NewProductClient creates a product facade over stub.
func NewProductClient(c *Client, stub erpv1.ProductServiceClient) *ProductClient {
	return &ProductClient{c: c, stub: stub}
}

// Create creates a product.
func (f *ProductClient) Create(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	req := buildProductChanges(UpdateProductInput{
		SKU:          in.SKU,
		Commodity:    in.Commodity,
		Grade:        in.Grade,
		Finish:       in.Finish,
		Size:         in.Size,
		Thickness:    in.Thickness,
		Unit:         in.Unit,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		ReorderLevel: in.ReorderLevel,
		Notes:        in.Notes,
	})
	req.Name = in.Name
	req.Category = in.Category
	return unary(ctx, f.c, ResourceProduct, erpv1.ProductService_CreateProduct_FullMethodName,
		req, f.stub.CreateProduct, productFromProto)
}

// Get fetches one product.
func (f *ProductClient) Get(ctx context.Context, id int64) (*model.Product, error) {
	return unary(ctx, f.c, ResourceProduct, erpv1.ProductService_GetProduct_FullMethodName,
		&erpv1.IdRequest{Id: id}, f.stub.GetProduct, productFromProto)
}

// List returns one page of products.
func (f *ProductClient) List(ctx context.Context, params ListProductsParams) (*model.ProductPage, error) {
	req := &erpv1.ListProductsRequest{
		Page:      pageRequest(params.Page, params.Limit),
		Category:  optional(params.Category),
		Commodity: optional(params.Commodity),
		Grade:     optional(params.Grade),
		Status:    optional(params.Status),
	}
	return unary(ctx, f.c, ResourceProduct, erpv1.ProductService_ListProducts_FullMethodName,
		req, f.stub.ListProducts, productPageFromProto)
}

// Update applies the changed fields of in to product id.
func (f *ProductClient) Update(ctx context.Context, id int64, in UpdateProductInput) (*model.Product, error) {
	req := &erpv1.UpdateProductRequest{Id: id, Product: buildProductChanges(in)}
	return unary(ctx, f.c, ResourceProduct, erpv1.ProductService_UpdateProduct_FullMethodName,
		req, f.stub.UpdateProduct, productFromProto)
}

// Delete deletes product id.
func (f *ProductClient) Delete(ctx context.Context, id int64) error {
	_, err := unary(ctx, f.c, ResourceProduct, erpv1.ProductService_DeleteProduct_FullMethodName,
		&erpv1.IdRequest{Id: id}, f.stub.DeleteProduct, discard[*emptypb.Empty])
	return err
}

// Search runs a free-text search. Zero page or limit select the defaults.
func (f *ProductClient) Search(ctx context.Context, query string, page, limit int) (*model.ProductPage, error) {
	req := &erpv1.SearchProductsRequest{
		Query: query,
		Page:  pageRequest(page, limit),
	}
	return unary(ctx, f.c, ResourceProduct, erpv1.ProductService_SearchProducts_FullMethodName,
		req, f.stub.SearchProducts, productPageFromProto)
}

// UpdateInventory posts a stock movement and returns the updated product.
func (f *ProductClient) UpdateInventory(ctx context.Context, in UpdateInventoryInput) (*model.Product, error) {
	req := &erpv1.UpdateInventoryRequest{
		ProductId:    in.ProductID,
		Quantity:     in.Quantity,
		MovementType: string(in.MovementType),
		WarehouseId:  optional(in.WarehouseID),
		Reason:       optional(in.Reason),
		ReferenceNo:  optional(in.ReferenceNo),
	}
	return unary(ctx, f.c, ResourceProduct, erpv1.ProductService_UpdateInventory_FullMethodName,
		req, f.stub.UpdateInventory, productFromProto)
}

func buildProductChanges(in UpdateProductInput) *erpv1.CreateProductRequest {
	req := &erpv1.CreateProductRequest{
		Sku:          optional(in.SKU),
		Commodity:    optional(in.Commodity),
		Grade:        optional(in.Grade),
		Finish:       optional(in.Finish),
		Size:         optional(in.Size),
		Thickness:    optional(in.Thickness),
		Unit:         optional(in.Unit),
		CostPrice:    optional(in.CostPrice),
		SellingPrice: optional(in.SellingPrice),
		ReorderLevel: optional(in.ReorderLevel),
		Notes:        optional(in.Notes),
	}
	if in.Name != nil {
		req.Name = *in.Name
	}
	if in.Category != nil {
		req.Category = *in.Category
	}
	return req
}

func productFromProto(x *erpv1.Product) *model.Product {
	return &model.Product{
		ID:           x.GetId(),
		Name:         x.GetName(),
		SKU:          x.GetSku(),
		Category:     x.GetCategory(),
		Commodity:    x.GetCommodity(),
		Grade:        x.GetGrade(),
		Finish:       x.GetFinish(),
		Size:         x.GetSize(),
		Thickness:    x.GetThickness(),
		Unit:         x.GetUnit(),
		CostPrice:    x.GetCostPrice(),
		SellingPrice: x.GetSellingPrice(),
		ReorderLevel: x.GetReorderLevel(),
		CurrentStock: x.GetCurrentStock(),
		Status:       x.GetStatus(),
		Notes:        x.GetNotes(),
		CreatedAt:    timeFrom(x.GetCreatedAt()),
		UpdatedAt:    timeFrom(x.GetUpdatedAt()),
	}
}

func productPageFromProto(x *erpv1.ListProductsResponse) *model.ProductPage {
	page := &model.ProductPage{
		Products: make([]model.Product, 0, len(x.GetProducts())),
		PageInfo: pageInfoFrom(x.GetPageInfo()),
	}
	for _, p := range x.GetProducts() {
		page.Products = append(page.Products, *productFromProto(p))
	}
	return page
}
