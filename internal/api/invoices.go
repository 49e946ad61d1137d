package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	invoicepdf "github.com/alnah/go-invoicepdf"
)

// ListOptions are passed through to the server verbatim. The client does no
// local filtering or pagination.
type ListOptions struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// InvoiceList is one page of invoices as returned by the server.
type InvoiceList struct {
	Invoices []invoicepdf.Invoice `json:"invoices"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	Pages    int                  `json:"pages"`
}

// ListInvoices fetches a page of invoices.
func (c *Client) ListInvoices(ctx context.Context, opts ListOptions) (*InvoiceList, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var list InvoiceList
	if err := c.do(ctx, http.MethodGet, "/invoices", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetInvoice fetches a single invoice by id.
func (c *Client) GetInvoice(ctx context.Context, id string) (*invoicepdf.Invoice, error) {
	var inv invoicepdf.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvoiceStatus sets the invoice status and returns the updated record.
func (c *Client) UpdateInvoiceStatus(ctx context.Context, id, status string) (*invoicepdf.Invoice, error) {
	body := map[string]string{"status": status}
	var inv invoicepdf.Invoice
	if err := c.do(ctx, http.MethodPatch, "/invoices/"+url.PathEscape(id)+"/status", nil, body, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// SendInvoice asks the server to email the invoice to its client.
func (c *Client) SendInvoice(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/invoices/"+url.PathEscape(id)+"/send", nil, nil, nil)
}

// DeleteInvoice deletes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/invoices/"+url.PathEscape(id), nil, nil, nil)
}
