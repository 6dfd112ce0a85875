package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// A4 in inches
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Printer turns an HTML page into PDF bytes
type Printer interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePrinter prints HTML with headless Chrome/Chromium
type ChromePrinter struct {
	chromePath string
	timeout    time.Duration
}

// NewChromePrinter creates a printer. chromePath may be empty to auto-detect;
// timeout bounds each print (0 means 30s).
func NewChromePrinter(chromePath string, timeout time.Duration) *ChromePrinter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromePrinter{
		chromePath: detectChromePath(chromePath),
		timeout:    timeout,
	}
}

// Ensure ChromePrinter implements Printer
var _ Printer = (*ChromePrinter)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		log.Printf("⚠️  CHROME_PATH %s not found, falling back to auto-detection", configured)
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// PrintPDF loads html into a blank tab and prints it on A4
func (p *ChromePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "ChromePrinter.PrintPDF")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if p.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0). // Margins are in the page CSS
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}

	return pdfBuf, nil
}
