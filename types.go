package invoicepdf

import (
	"fmt"
	"os"
	"path/filepath"
)

// Invoice is a fully formed invoice record as returned by the invoices API.
// The pipeline treats it as read-only input: nothing here is recomputed or
// validated against anything else. In particular, line item amounts are
// trusted verbatim and never checked against quantity * rate.
type Invoice struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Number   string  `json:"invoiceNumber" yaml:"number"`
	Status   string  `json:"status,omitempty" yaml:"status,omitempty"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Tax      float64 `json:"tax,omitempty" yaml:"tax,omitempty"`
	Discount float64 `json:"discount,omitempty" yaml:"discount,omitempty"`
	Total    float64 `json:"total" yaml:"total"`

	// Currency is an ISO 4217 code. Empty or unrecognized values format as USD.
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`

	IssueDate string `json:"issueDate,omitempty" yaml:"issueDate,omitempty"`
	DueDate   string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`

	// Embedded billing recipient fields, used when no richer Client record
	// is supplied.
	ClientName    string `json:"clientName,omitempty" yaml:"clientName,omitempty"`
	ClientEmail   string `json:"clientEmail,omitempty" yaml:"clientEmail,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty" yaml:"clientAddress,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty" yaml:"clientPhone,omitempty"`

	Project string     `json:"project,omitempty" yaml:"project,omitempty"`
	Items   []LineItem `json:"items,omitempty" yaml:"items,omitempty"`

	// Notes and Terms accept Markdown.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Terms string `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// LineItem is a single billable row on an invoice.
type LineItem struct {
	Description string  `json:"description" yaml:"description"`
	Details     string  `json:"details,omitempty" yaml:"details,omitempty"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Amount      float64 `json:"amount" yaml:"amount"`
}

// Issuer is the business profile of the party issuing the invoice.
// Every field is optional; a nil or empty issuer renders as a fixed
// placeholder identity.
type Issuer struct {
	BusinessName string   `json:"businessName,omitempty" yaml:"businessName,omitempty"`
	LogoURL      string   `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	Address      *Address `json:"address,omitempty" yaml:"address,omitempty"`
	Phone        string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email        string   `json:"email,omitempty" yaml:"email,omitempty"`
	Website      string   `json:"website,omitempty" yaml:"website,omitempty"`
}

// Client is the billing recipient record from the clients API. It is richer
// than the fields embedded on Invoice and takes precedence when supplied.
type Client struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	CompanyName string   `json:"companyName,omitempty" yaml:"companyName,omitempty"`
	Email       string   `json:"email,omitempty" yaml:"email,omitempty"`
	Phone       string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address     *Address `json:"address,omitempty" yaml:"address,omitempty"`
}

// Address is a postal address with all fields optional.
type Address struct {
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip     string `json:"zip,omitempty" yaml:"zip,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Input contains generation parameters. Invoice is required; everything else
// is optional.
type Input struct {
	Invoice *Invoice
	Issuer  *Issuer
	Client  *Client

	// Filename overrides the default "<invoice number>.pdf".
	Filename string
}

// Document is the result of a generation call.
type Document struct {
	// PDF is the assembled multi-page document.
	PDF []byte

	// HTML is the intermediate rendered markup, kept for debugging.
	HTML []byte

	// Pages is the number of pages in the assembled PDF.
	Pages int

	// Filename is the resolved output name, e.g. "INV-1001.pdf".
	Filename string
}

// WriteFile writes the PDF to path atomically: the bytes go to a temp file
// in the destination directory first, then a rename. A failed write never
// leaves a partial document behind.
func (d *Document) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".invoicepdf-*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(d.PDF); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("moving output file: %w", err)
	}
	return nil
}

// DefaultFilenameBase is used when the invoice has no number.
const DefaultFilenameBase = "invoice"

// resolveFilename returns the explicit filename, or the invoice number with
// a .pdf extension.
func resolveFilename(input Input) string {
	if input.Filename != "" {
		return input.Filename
	}
	base := DefaultFilenameBase
	if input.Invoice != nil && input.Invoice.Number != "" {
		base = input.Invoice.Number
	}
	return base + ".pdf"
}
