package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

const lookbookTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Outfit lookbook</title>
<style>
	body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #333; }
	h1 { font-size: 22px; margin-bottom: 4px; }
	.summary { color: #666; margin-bottom: 24px; }
	.outfit { page-break-inside: avoid; }
</style>
</head>
<body>
<h1>Outfit lookbook</h1>
<p class="summary">{{.Summary}}</p>
{{.Board}}
</body>
</html>`

// LookbookService prints a recommendation board to PDF with headless Chrome
// Implements LookbookServiceInterface
type LookbookService struct {
	chromePath string
	timeout    time.Duration
	tmpl       *template.Template
}

// NewLookbookService creates a new LookbookService.
// chromePath may be empty, common install locations are then probed.
func NewLookbookService(chromePath string, timeout time.Duration) *LookbookService {
	return &LookbookService{
		chromePath: chromePath,
		timeout:    timeout,
		tmpl:       template.Must(template.New("lookbook").Parse(lookbookTemplate)),
	}
}

// Ensure LookbookService implements LookbookServiceInterface
var _ LookbookServiceInterface = (*LookbookService)(nil)

// detectChromePath returns the configured Chrome path if it exists, else the first common install path found
func detectChromePath(configured string) string {
	paths := []string{
		configured,
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RenderLookbookHTML wraps a recommendation into a standalone printable page
func (s *LookbookService) RenderLookbookHTML(rec *Recommendation) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("recommendation is nil")
	}

	var buf bytes.Buffer
	err := s.tmpl.Execute(&buf, struct {
		Summary string
		Board   template.HTML
	}{
		Summary: rec.Reply,
		// composer output is produced by html/template and already escaped
		Board: template.HTML(rec.HTML),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render lookbook: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF renders the recommendation page in Chrome and prints it to A4 PDF
func (s *LookbookService) GeneratePDF(ctx context.Context, rec *Recommendation) ([]byte, error) {
	htmlContent, err := s.RenderLookbookHTML(rec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		zerolog.Ctx(ctx).Warn().Msg("⚠️  Chrome not found in common paths, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Wait for outfit images, giving up on each after 5s
		chromedp.Evaluate(`
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete) { resolve(); return; }
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}));
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	zerolog.Ctx(ctx).Info().Msgf("✓ Lookbook PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
