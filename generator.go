package invoicepdf

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alnah/go-invoicepdf/internal/assets"
	"github.com/alnah/go-invoicepdf/internal/fileutil"
	"github.com/alnah/go-invoicepdf/internal/render"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ render.Renderer = (*render.HTMLRenderer)(nil)
	_ capturer        = (*rodCapturer)(nil)
	_ assembler       = (*fpdfAssembler)(nil)
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout       time.Duration
	documentWidth int
	scale         float64
	styleInput    string
	resolvedStyle string
	assetPath     string
	logger        *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the capture timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("invoicepdf: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithScale sets the capture supersampling factor. Values below 1 are
// rejected at construction.
func WithScale(scale float64) Option {
	return func(g *Generator) {
		g.cfg.scale = scale
	}
}

// WithDocumentWidth sets the fixed document width in CSS pixels.
func WithDocumentWidth(px int) Option {
	return func(g *Generator) {
		g.cfg.documentWidth = px
	}
}

// WithStyle selects the document style: a built-in style name ("default",
// "compact"), a path to a CSS file, or raw CSS content.
func WithStyle(style string) Option {
	return func(g *Generator) {
		g.cfg.styleInput = style
	}
}

// WithAssetPath overrides built-in templates and styles from a directory
// with styles/ and templates/ subdirectories.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithLogger sets the logger used by GenerateToFile. The library logs
// nowhere else. Defaults to stderr.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		g.cfg.logger = l
	}
}

// Generator orchestrates the invoice-to-PDF pipeline: render the HTML
// document, capture it as a bitmap, and assemble the paginated PDF.
// Create with NewGenerator, use Generate, and Close when done.
type Generator struct {
	cfg         generatorConfig
	assetLoader assets.AssetLoader
	renderer    render.Renderer
	capturer    capturer
	assembler   assembler
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle).
// Returns error if asset loading or template parsing fails.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout:       defaultTimeout,
			documentWidth: DefaultDocumentWidth,
			scale:         DefaultScale,
		},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.scale < 1 {
		return nil, fmt.Errorf("%w: %.2f (must be >= 1)", ErrInvalidScale, g.cfg.scale)
	}
	if g.cfg.documentWidth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDocumentWidth, g.cfg.documentWidth)
	}
	if g.cfg.logger == nil {
		g.cfg.logger = log.New(os.Stderr, "invoicepdf: ", log.LstdFlags)
	}

	// Handle WithAssetPath: resolve to a filesystem loader
	if g.cfg.assetPath != "" {
		loader, err := assets.NewFilesystemLoader(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		g.assetLoader = loader
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := g.resolveStyle(); err != nil {
		return nil, err
	}

	// Create renderer from the document template (if not injected by tests)
	if g.renderer == nil {
		tmpl, err := g.assetLoader.LoadTemplate(assets.DocumentTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading document template: %w", err)
		}
		g.renderer, err = render.NewHTMLRenderer(tmpl, g.cfg.resolvedStyle)
		if err != nil {
			return nil, fmt.Errorf("initializing renderer: %w", err)
		}
	}

	// Create capturer and assembler if not injected (e.g., by tests)
	if g.capturer == nil {
		g.capturer = newRodCapturer(g.cfg.timeout, g.cfg.documentWidth, g.cfg.scale)
	}
	if g.assembler == nil {
		g.assembler = &fpdfAssembler{}
	}

	return g, nil
}

// Generate runs the full pipeline and returns the document containing the
// HTML, the PDF, and the page count. The context is used for cancellation
// and timeout. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Invoice == nil {
		return nil, ErrNilInvoice
	}

	htmlContent, err := g.renderer.Render(ctx, toRenderInput(input))
	if err != nil {
		// Double wrap keeps context.Canceled visible to errors.Is so callers
		// can tell an abandoned request from a broken template.
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	image, err := g.capturer.CaptureImage(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("capturing document: %w", err)
	}

	pdfBytes, pages, err := g.assembler.Assemble(image)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	return &Document{
		PDF:      pdfBytes,
		HTML:     []byte(htmlContent),
		Pages:    pages,
		Filename: resolveFilename(input),
	}, nil
}

// GenerateToFile generates the document and writes it to path, returning a
// success indicator instead of an error. Any failure at any stage is logged
// and surfaced as false; no partial file is ever left at the destination.
//
// When path is empty the document's resolved filename is used, e.g.
// "INV-1001.pdf" in the working directory.
func (g *Generator) GenerateToFile(ctx context.Context, input Input, path string) bool {
	doc, err := g.Generate(ctx, input)
	if err != nil {
		g.cfg.logger.Printf("generate failed: %v", err)
		return false
	}

	if path == "" {
		path = doc.Filename
	}
	if err := doc.WriteFile(path); err != nil {
		g.cfg.logger.Printf("generate failed: %v", err)
		return false
	}
	return true
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.capturer != nil {
		return g.capturer.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Called during NewGenerator after options are applied and the
// asset loader is configured.
func (g *Generator) resolveStyle() error {
	input := g.cfg.styleInput
	if input == "" {
		css, err := g.assetLoader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return fmt.Errorf("loading default style: %w", err)
		}
		g.cfg.resolvedStyle = css
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		g.cfg.resolvedStyle = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		g.cfg.resolvedStyle = string(content)
		return nil
	}

	// Style name -> use asset loader
	css, err := g.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	g.cfg.resolvedStyle = css
	return nil
}

// toRenderInput maps the public input records to the renderer's views,
// resolving status presentation and the bill-to fallback chain.
func toRenderInput(input Input) render.Input {
	inv := input.Invoice

	items := make([]render.ItemView, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = render.ItemView{
			Description: it.Description,
			Details:     it.Details,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		}
	}

	badge := StatusPresentation(inv.Status)

	out := render.Input{
		Invoice: render.InvoiceView{
			Number:    inv.Number,
			Status:    inv.Status,
			Currency:  inv.Currency,
			Project:   inv.Project,
			Amount:    inv.Amount,
			Tax:       inv.Tax,
			Discount:  inv.Discount,
			Total:     inv.Total,
			IssueDate: inv.IssueDate,
			DueDate:   inv.DueDate,
			Notes:     inv.Notes,
			Terms:     inv.Terms,
			Items:     items,
		},
		Badge: render.BadgeView{
			Label:      badge.Label,
			Color:      badge.Color,
			Background: badge.Background,
		},
		BillTo: toBillToView(inv, input.Client),
	}

	if input.Issuer != nil {
		out.Issuer = render.IssuerView{
			BusinessName: input.Issuer.BusinessName,
			LogoURL:      input.Issuer.LogoURL,
			AddressLines: addressLines(input.Issuer.Address),
			Phone:        input.Issuer.Phone,
			Email:        input.Issuer.Email,
			Website:      input.Issuer.Website,
		}
	}

	return out
}

// toBillToView prefers the richer Client record and falls back to the
// invoice's embedded client fields.
func toBillToView(inv *Invoice, client *Client) render.BillToView {
	if client != nil {
		name := client.Name
		if name == "" {
			name = inv.ClientName
		}
		email := client.Email
		if email == "" {
			email = inv.ClientEmail
		}
		return render.BillToView{
			Name:         name,
			Company:      client.CompanyName,
			Email:        email,
			Phone:        client.Phone,
			AddressLines: addressLines(client.Address),
		}
	}

	view := render.BillToView{
		Name:  inv.ClientName,
		Email: inv.ClientEmail,
		Phone: inv.ClientPhone,
	}
	if inv.ClientAddress != "" {
		view.AddressLines = []string{inv.ClientAddress}
	}
	return view
}

// addressLines flattens an Address into display lines, skipping empty parts.
func addressLines(a *Address) []string {
	if a == nil {
		return nil
	}
	var lines []string
	if a.Street != "" {
		lines = append(lines, a.Street)
	}
	locality := joinNonEmpty([]string{a.City, a.State, a.Zip}, ", ")
	if locality != "" {
		lines = append(lines, locality)
	}
	if a.Country != "" {
		lines = append(lines, a.Country)
	}
	return lines
}

func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
