// Package render builds the self-contained HTML document for an invoice.
//
// The renderer is a pure projection of its input: it formats and arranges
// values but never recomputes or validates them. Line item amounts in
// particular are trusted verbatim.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/alnah/go-invoicepdf/internal/dateutil"
	"github.com/alnah/go-invoicepdf/internal/moneyutil"
)

// Placeholder issuer identity used when no issuer profile is supplied.
const (
	PlaceholderBusinessName = "Your Business Name"
	PlaceholderAddressLine  = "Your Business Address"
)

// SyntheticItemLabel names the single row rendered for invoices without
// line items.
const SyntheticItemLabel = "Services"

// Input is the deterministic input for document rendering. The caller maps
// domain records into these views; the renderer owns all fallback policy.
type Input struct {
	Invoice InvoiceView
	Badge   BadgeView
	Issuer  IssuerView
	BillTo  BillToView

	// CSS, Items, NotesHTML, TermsHTML and DaysText are populated by the
	// renderer itself and ignored on input.
	CSS       template.CSS
	Items     []ItemView
	NotesHTML template.HTML
	TermsHTML template.HTML
	DaysText  string
}

// InvoiceView carries the invoice fields the template consumes.
type InvoiceView struct {
	Number    string
	Status    string
	Currency  string
	Project   string
	Amount    float64
	Tax       float64
	Discount  float64
	Total     float64
	IssueDate string
	DueDate   string
	Notes     string // Markdown
	Terms     string // Markdown
	Items     []ItemView
}

// BadgeView is the status badge presentation resolved by the caller.
type BadgeView struct {
	Label      string
	Color      string
	Background string
}

// IssuerView is the issuing business identity.
type IssuerView struct {
	BusinessName string
	LogoURL      string
	AddressLines []string
	Phone        string
	Email        string
	Website      string
}

// BillToView is the billing recipient block.
type BillToView struct {
	Name         string
	Company      string
	Email        string
	Phone        string
	AddressLines []string
}

// ItemView is a single billable row.
type ItemView struct {
	Description string
	Details     string
	Quantity    float64
	Rate        float64
	Amount      float64
}

// Renderer defines the contract for invoice document rendering.
type Renderer interface {
	Render(ctx context.Context, in Input) (string, error)
}

// HTMLRenderer renders the invoice document from an HTML template with an
// inlined stylesheet, so the output has no external dependencies.
type HTMLRenderer struct {
	tpl   *template.Template
	css   string
	notes NotesConverter

	// now is injectable for deterministic days-remaining output in tests.
	now func() time.Time
}

// NewHTMLRenderer creates an HTMLRenderer from template and CSS content.
// Returns error if the template cannot be parsed.
func NewHTMLRenderer(tmplContent, css string) (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"money":     moneyutil.Format,
		"longdate":  dateutil.FormatLong,
		"shortdate": dateutil.FormatShort,
		"qty":       formatQuantity,
	}

	tpl, err := template.New("invoice").Funcs(funcs).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing invoice template: %w", err)
	}

	return &HTMLRenderer{
		tpl:   tpl,
		css:   css,
		notes: NewGoldmarkNotes(),
		now:   time.Now,
	}, nil
}

// Render produces the complete HTML document for the input.
// Every optional field degrades independently; Render fails only when
// template execution itself fails.
func (r *HTMLRenderer) Render(ctx context.Context, in Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	in.CSS = template.CSS(r.css)
	in.Items = resolveItems(in.Invoice)

	if in.Issuer.BusinessName == "" {
		in.Issuer.BusinessName = PlaceholderBusinessName
		if len(in.Issuer.AddressLines) == 0 {
			in.Issuer.AddressLines = []string{PlaceholderAddressLine}
		}
	}

	in.NotesHTML = r.notes.ToHTML(ctx, in.Invoice.Notes)
	in.TermsHTML = r.notes.ToHTML(ctx, in.Invoice.Terms)
	in.DaysText = dateutil.DaysRemaining(in.Invoice.DueDate, r.now())

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("executing invoice template: %w", err)
	}
	return buf.String(), nil
}

// resolveItems returns the invoice's line items, or the single synthesized
// "Services" row when the invoice has none. Every invoice shows at least one
// billable line; this is policy, not a defect.
func resolveItems(inv InvoiceView) []ItemView {
	if len(inv.Items) > 0 {
		return inv.Items
	}
	return []ItemView{{
		Description: SyntheticItemLabel,
		Quantity:    1,
		Rate:        inv.Amount,
		Amount:      inv.Amount,
	}}
}

// formatQuantity trims trailing zeros: 1 -> "1", 2.50 -> "2.5".
func formatQuantity(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
