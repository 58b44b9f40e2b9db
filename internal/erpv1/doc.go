// Package erpv1 holds the generated messages and gRPC clients for the ERP
// invoice, customer and product services. Sources live in proto/erp/v1.
package erpv1

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/steelerp/erpclient --go-grpc_out=../.. --go-grpc_opt=module=github.com/steelerp/erpclient erp/v1/common.proto erp/v1/invoice.proto erp/v1/customer.proto erp/v1/product.proto
