// Package invoicepdf renders invoice records into paginated PDF documents
// using headless Chrome.
//
// # Quick Start
//
// Create a generator, generate a document, and close when done:
//
//	gen, err := invoicepdf.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	doc, err := gen.Generate(ctx, invoicepdf.Input{
//	    Invoice: &invoicepdf.Invoice{
//	        Number: "INV-1001",
//	        Amount: 500,
//	        Total:  540,
//	        Items: []invoicepdf.LineItem{
//	            {Description: "Design", Quantity: 1, Rate: 500, Amount: 500},
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(doc.Filename, doc.PDF, 0644)
//
// The result contains the PDF bytes (doc.PDF), the intermediate HTML
// (doc.HTML) for debugging, and the page count (doc.Pages).
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. HTML rendering from the invoice record (inline-styled, self-contained)
//  2. Full-page bitmap capture via headless Chrome (go-rod) at 2x scale
//  3. Page assembly: the bitmap is scaled to A4 width and sliced into
//     successive page-height windows (gofpdf)
//
// Every optional field of the invoice, issuer, and client is independently
// omittable; the renderer degrades to placeholders instead of failing.
// An invoice with no line items renders a single synthesized "Services" row.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := invoicepdf.NewGenerator(
//	    invoicepdf.WithTimeout(2 * time.Minute),
//	    invoicepdf.WithStyle("compact"),
//	    invoicepdf.WithScale(3),
//	)
//
// # Fire-and-Forget Generation
//
// GenerateToFile never returns an error: any failure at any stage is logged
// and surfaced as a boolean, and no partial file is ever left behind.
//
//	ok := gen.GenerateToFile(ctx, input, "")
//
// When no path is given the file is named after the invoice number, e.g.
// INV-1001.pdf.
//
// # Parallel Processing
//
// For batch generation, use GeneratorPool to manage multiple browser
// instances:
//
//	pool := invoicepdf.NewGeneratorPool(4)
//	defer pool.Close()
//
//	gen, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(gen)
//
// # Browser Requirements
//
// Bitmap capture requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// Use ROD_BROWSER_BIN to point at a pre-installed Chrome binary; when it is
// set, or when CI=true, the browser launches with the sandbox disabled for
// containerized environments.
package invoicepdf
