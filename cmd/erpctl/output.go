package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/steelerp/erpclient/internal/model"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

func validFormat(f string) bool {
	return f == formatJSON || f == formatYAML || f == formatTable
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return renderYAML(w, v)
	default:
		return renderTable(w, v)
	}
}

// renderYAML goes through JSON so YAML keys match the json tags and keep
// their order.
func renderYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles the JSON input carried.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func date(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func ago(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t)
}

func renderTable(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch x := v.(type) {
	case *model.Invoice:
		invoiceDetail(tw, x)
	case *model.InvoicePage:
		fmt.Fprintln(tw, "ID\tNUMBER\tCUSTOMER\tSTATUS\tTOTAL\tBALANCE\tDUE")
		now := time.Now()
		for _, inv := range x.Invoices {
			due := date(inv.DueDate)
			if inv.IsOverdue(now) {
				due += " (overdue)"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.Status,
				money(inv.Total), money(inv.BalanceDue), due)
		}
		pageFooter(tw, x.PageInfo)
	case []model.Payment:
		fmt.Fprintln(tw, "ID\tDATE\tMETHOD\tAMOUNT\tREFERENCE\tVOIDED")
		for _, p := range x {
			voided := ""
			if p.Voided {
				voided = "yes: " + p.VoidReason
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, date(p.PaymentDate), p.Method, money(p.Amount), p.ReferenceNo, voided)
		}
	case *model.InvoiceAnalytics:
		fmt.Fprintf(tw, "Invoices:\t%s\n", humanize.Comma(x.TotalInvoices))
		fmt.Fprintf(tw, "Total:\t%s\n", money(x.TotalAmount))
		fmt.Fprintf(tw, "Paid:\t%s\n", money(x.TotalPaid))
		fmt.Fprintf(tw, "Outstanding:\t%s\n", money(x.TotalOutstanding))
		fmt.Fprintf(tw, "Overdue:\t%s (%s invoices)\n", money(x.OverdueAmount), humanize.Comma(x.OverdueCount))
		fmt.Fprintf(tw, "Average:\t%s\n", money(x.AverageInvoiceValue))
		for _, s := range x.StatusBreakdown {
			fmt.Fprintf(tw, "  %s:\t%d\t%s\n", s.Status, s.Count, money(s.Amount))
		}
	case *model.Customer:
		fmt.Fprintf(tw, "ID:\t%d\n", x.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", x.Name)
		fmt.Fprintf(tw, "Email:\t%s\n", x.Email)
		fmt.Fprintf(tw, "Phone:\t%s\n", x.Phone)
		fmt.Fprintf(tw, "TRN:\t%s\n", x.TRN)
		fmt.Fprintf(tw, "Status:\t%s\n", x.Status)
		fmt.Fprintf(tw, "Terms:\t%d days\n", x.PaymentTerms)
		fmt.Fprintf(tw, "Credit limit:\t%s\n", money(x.CreditLimit))
		fmt.Fprintf(tw, "Balance:\t%s\n", money(x.CurrentBalance))
		fmt.Fprintf(tw, "Available:\t%s\n", money(x.AvailableCredit()))
		fmt.Fprintf(tw, "Created:\t%s\n", ago(x.CreatedAt))
	case *model.CustomerPage:
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSTATUS\tBALANCE\tCREDIT LIMIT")
		for _, c := range x.Customers {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.Name, c.CustomerType, c.Status, money(c.CurrentBalance), money(c.CreditLimit))
		}
		pageFooter(tw, x.PageInfo)
	case *model.Product:
		fmt.Fprintf(tw, "ID:\t%d\n", x.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", x.Name)
		fmt.Fprintf(tw, "SKU:\t%s\n", x.SKU)
		fmt.Fprintf(tw, "Category:\t%s\n", x.Category)
		fmt.Fprintf(tw, "Grade:\t%s\n", x.Grade)
		fmt.Fprintf(tw, "Price:\t%s\n", money(x.SellingPrice))
		fmt.Fprintf(tw, "Stock:\t%s %s\n", humanize.Ftoa(x.CurrentStock), x.Unit)
		if x.NeedsReorder() {
			fmt.Fprintf(tw, "Reorder:\tbelow level %s\n", humanize.Ftoa(x.ReorderLevel))
		}
		fmt.Fprintf(tw, "Updated:\t%s\n", ago(x.UpdatedAt))
	case *model.ProductPage:
		fmt.Fprintln(tw, "ID\tSKU\tNAME\tCATEGORY\tSTOCK\tPRICE")
		for _, p := range x.Products {
			stock := humanize.Ftoa(p.CurrentStock)
			if p.NeedsReorder() {
				stock += " (reorder)"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.SKU, p.Name, p.Category, stock, money(p.SellingPrice))
		}
		pageFooter(tw, x.PageInfo)
	case invoiceNumber:
		fmt.Fprintln(tw, x.InvoiceNumber)
	case deleted:
		fmt.Fprintf(tw, "Deleted %s %d.\n", x.Resource, x.ID)
	default:
		return render(w, formatJSON, v)
	}

	return tw.Flush()
}

func invoiceDetail(w io.Writer, inv *model.Invoice) {
	fmt.Fprintf(w, "Invoice:\t%s (#%d)\n", inv.InvoiceNumber, inv.ID)
	fmt.Fprintf(w, "Customer:\t%s (#%d)\n", inv.CustomerName, inv.CustomerID)
	fmt.Fprintf(w, "Status:\t%s / %s\n", inv.Status, inv.PaymentStatus)
	fmt.Fprintf(w, "Dates:\t%s, due %s\n", date(inv.InvoiceDate), date(inv.DueDate))
	fmt.Fprintln(w, "\t")
	fmt.Fprintln(w, "ITEM\tQTY\tRATE\tVAT\tAMOUNT")
	for _, it := range inv.Items {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			it.Name, humanize.Ftoa(it.Quantity), it.Unit, money(it.Rate), money(it.VATAmount), money(it.Amount))
	}
	fmt.Fprintln(w, "\t")
	fmt.Fprintf(w, "Subtotal:\t%s\n", money(inv.Subtotal))
	fmt.Fprintf(w, "VAT:\t%s\n", money(inv.VATAmount))
	fmt.Fprintf(w, "Total:\t%s\n", money(inv.Total))
	fmt.Fprintf(w, "Paid:\t%s\n", money(inv.AmountPaid))
	fmt.Fprintf(w, "Balance:\t%s\n", money(inv.BalanceDue))
}

func pageFooter(w io.Writer, p model.PageInfo) {
	fmt.Fprintf(w, "\nPage %d of %d (%s total)\n", p.Page, max(p.TotalPages, 1), humanize.Comma(p.Total))
}
