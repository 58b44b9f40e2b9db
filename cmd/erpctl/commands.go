package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/steelerp/erpclient/internal/grpcclient"
	"github.com/steelerp/erpclient/internal/model"
	"github.com/steelerp/erpclient/internal/session"
)

// app executes one command against the facades and renders the result.
type app struct {
	facades  *grpcclient.Facades
	sessions *session.Manager
	stdin    io.Reader
	out      io.Writer
	format   string
}

func (a *app) exec(ctx context.Context, args []string) error {
	switch args[0] {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("%w: login <token>", errUsage)
		}
		if err := a.sessions.Login(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged in.")
		return nil
	case "logout":
		if err := a.sessions.ClearSession(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: %s <verb>", errUsage, args[0])
	}

	var (
		result any
		err    error
	)
	switch args[0] {
	case "invoice", "invoices":
		result, err = a.invoice(ctx, args[1], args[2:])
	case "customer", "customers":
		result, err = a.customer(ctx, args[1], args[2:])
	case "product", "products":
		result, err = a.product(ctx, args[1], args[2:])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	if err != nil {
		return describe(err)
	}
	if result == nil {
		return nil
	}
	return render(a.out, a.format, result)
}

// describe adds the call ID to facade errors so users can quote it.
func describe(err error) error {
	var rpcErr *grpcclient.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w (call %s)", err, rpcErr.CallID)
	}
	return err
}

// deleted is rendered after a successful delete.
type deleted struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
	Deleted  bool   `json:"deleted"`
}

// verbArgs parses the flags of one verb and checks the positional count.
type verbArgs struct {
	flags *pflag.FlagSet
	file  string
	page  int
	limit int
}

func newVerbArgs(name string, withFile, withPage bool) *verbArgs {
	v := &verbArgs{flags: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	v.flags.SetOutput(io.Discard)
	if withFile {
		v.flags.StringVarP(&v.file, "file", "f", "", `JSON input file ("-" for stdin)`)
	}
	if withPage {
		v.flags.IntVar(&v.page, "page", 0, "page number")
		v.flags.IntVar(&v.limit, "limit", 0, "page size")
	}
	return v
}

func (v *verbArgs) parse(args []string, positional int) ([]string, error) {
	if err := v.flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errUsage, v.flags.Name(), err)
	}
	rest := v.flags.Args()
	if len(rest) != positional {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", errUsage, v.flags.Name(), positional, len(rest))
	}
	return rest, nil
}

// decodeFile reads the -f input into dst.
func (a *app) decodeFile(path string, dst any) error {
	if path == "" {
		return fmt.Errorf("%w: -f file.json is required", errUsage)
	}

	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, raw)
	}
	return id, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (a *app) invoice(ctx context.Context, verb string, args []string) (any, error) {
	invoices := a.facades.Invoices

	switch verb {
	case "get":
		rest, err := newVerbArgs("invoice get", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		return invoices.Get(ctx, id)

	case "list":
		v := newVerbArgs("invoice list", false, true)
		status := v.flags.String("status", "", "filter by status")
		customerID := v.flags.Int64("customer-id", 0, "filter by customer")
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		params := grpcclient.ListInvoicesParams{Page: v.page, Limit: v.limit, Status: optional(*status)}
		if *customerID > 0 {
			params.CustomerID = customerID
		}
		return invoices.List(ctx, params)

	case "search":
		v := newVerbArgs("invoice search", false, true)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		return invoices.Search(ctx, rest[0], v.page, v.limit)

	case "create":
		v := newVerbArgs("invoice create", true, false)
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		var in grpcclient.CreateInvoiceInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		if in.InvoiceDate.IsZero() {
			return nil, fmt.Errorf("%w: invoice_date is required", errUsage)
		}
		return invoices.Create(ctx, in)

	case "update":
		v := newVerbArgs("invoice update", true, false)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		var in grpcclient.UpdateInvoiceInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		return invoices.Update(ctx, id, in)

	case "delete":
		rest, err := newVerbArgs("invoice delete", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		if err := invoices.Delete(ctx, id); err != nil {
			return nil, err
		}
		return deleted{Resource: "invoice", ID: id, Deleted: true}, nil

	case "status":
		rest, err := newVerbArgs("invoice status", false, false).parse(args, 2)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		status := model.InvoiceStatus(rest[1])
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown invoice status %q", errUsage, rest[1])
		}
		return invoices.UpdateStatus(ctx, id, status)

	case "number":
		v := newVerbArgs("invoice number", false, false)
		if err := v.flags.Parse(args); err != nil || v.flags.NArg() > 1 {
			return nil, fmt.Errorf("%w: invoice number [status]", errUsage)
		}
		number, err := invoices.GenerateNumber(ctx, v.flags.Arg(0))
		if err != nil {
			return nil, err
		}
		return invoiceNumber{InvoiceNumber: number}, nil

	case "payments":
		rest, err := newVerbArgs("invoice payments", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		return invoices.PaymentHistory(ctx, id)

	case "pay":
		v := newVerbArgs("invoice pay", true, false)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		var in grpcclient.RecordPaymentInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		if in.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", errUsage)
		}
		if in.PaymentDate.IsZero() {
			return nil, fmt.Errorf("%w: payment_date is required", errUsage)
		}
		in.InvoiceID = id
		return invoices.RecordPayment(ctx, in)

	case "analytics":
		v := newVerbArgs("invoice analytics", false, false)
		from := v.flags.String("from", "", "start date (YYYY-MM-DD)")
		to := v.flags.String("to", "", "end date (YYYY-MM-DD)")
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		var params grpcclient.AnalyticsParams
		var err error
		if params.StartDate, err = parseDate(*from); err != nil {
			return nil, err
		}
		if params.EndDate, err = parseDate(*to); err != nil {
			return nil, err
		}
		return invoices.Analytics(ctx, params)
	}
	return nil, fmt.Errorf("%w: unknown invoice verb %q", errUsage, verb)
}

type invoiceNumber struct {
	InvoiceNumber string `json:"invoice_number"`
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", errUsage, raw)
	}
	return &t, nil
}

func (a *app) customer(ctx context.Context, verb string, args []string) (any, error) {
	customers := a.facades.Customers

	switch verb {
	case "get":
		rest, err := newVerbArgs("customer get", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		return customers.Get(ctx, id)

	case "list":
		v := newVerbArgs("customer list", false, true)
		status := v.flags.String("status", "", "filter by status")
		customerType := v.flags.String("type", "", "filter by customer type")
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		return customers.List(ctx, grpcclient.ListCustomersParams{
			Page:         v.page,
			Limit:        v.limit,
			Status:       optional(*status),
			CustomerType: optional(*customerType),
		})

	case "search":
		v := newVerbArgs("customer search", false, true)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		return customers.Search(ctx, rest[0], v.page, v.limit)

	case "create":
		v := newVerbArgs("customer create", true, false)
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		var in grpcclient.CreateCustomerInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		return customers.Create(ctx, in)

	case "update":
		v := newVerbArgs("customer update", true, false)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		var in grpcclient.UpdateCustomerInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		return customers.Update(ctx, id, in)

	case "delete":
		rest, err := newVerbArgs("customer delete", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		if err := customers.Delete(ctx, id); err != nil {
			return nil, err
		}
		return deleted{Resource: "customer", ID: id, Deleted: true}, nil
	}
	return nil, fmt.Errorf("%w: unknown customer verb %q", errUsage, verb)
}

func (a *app) product(ctx context.Context, verb string, args []string) (any, error) {
	products := a.facades.Products

	switch verb {
	case "get":
		rest, err := newVerbArgs("product get", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		return products.Get(ctx, id)

	case "list":
		v := newVerbArgs("product list", false, true)
		category := v.flags.String("category", "", "filter by category")
		commodity := v.flags.String("commodity", "", "filter by commodity")
		grade := v.flags.String("grade", "", "filter by grade")
		status := v.flags.String("status", "", "filter by status")
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		return products.List(ctx, grpcclient.ListProductsParams{
			Page:      v.page,
			Limit:     v.limit,
			Category:  optional(*category),
			Commodity: optional(*commodity),
			Grade:     optional(*grade),
			Status:    optional(*status),
		})

	case "search":
		v := newVerbArgs("product search", false, true)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		return products.Search(ctx, rest[0], v.page, v.limit)

	case "create":
		v := newVerbArgs("product create", true, false)
		if _, err := v.parse(args, 0); err != nil {
			return nil, err
		}
		var in grpcclient.CreateProductInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		return products.Create(ctx, in)

	case "update":
		v := newVerbArgs("product update", true, false)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		var in grpcclient.UpdateProductInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		return products.Update(ctx, id, in)

	case "delete":
		rest, err := newVerbArgs("product delete", false, false).parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		if err := products.Delete(ctx, id); err != nil {
			return nil, err
		}
		return deleted{Resource: "product", ID: id, Deleted: true}, nil

	case "inventory":
		v := newVerbArgs("product inventory", true, false)
		rest, err := v.parse(args, 1)
		if err != nil {
			return nil, err
		}
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		var in grpcclient.UpdateInventoryInput
		if err := a.decodeFile(v.file, &in); err != nil {
			return nil, err
		}
		if !in.MovementType.IsValid() {
			return nil, fmt.Errorf("%w: movement_type must be IN, OUT or ADJUSTMENT", errUsage)
		}
		in.ProductID = id
		return products.UpdateInventory(ctx, in)
	}
	return nil, fmt.Errorf("%w: unknown product verb %q", errUsage, verb)
}
