package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeDPConverter 借助远程 Chrome 实例渲染 PDF
type ChromeDPConverter struct {
	RemoteWebSocketURL string
	DefaultTimeout     time.Duration
	DefaultOptions     Options
}

func NewChromeDPConverter(remoteWebSocketURL string) *ChromeDPConverter {
	return &ChromeDPConverter{
		RemoteWebSocketURL: remoteWebSocketURL,
		DefaultTimeout:     60 * time.Second,
		DefaultOptions: Options{
			PaperWidthInch:   8.27,
			PaperHeightInch:  11.69,
			MarginTopInch:    0.4,
			MarginBottomInch: 0.4,
			MarginLeftInch:   0.4,
			MarginRightInch:  0.4,
		},
	}
}

func (c *ChromeDPConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := c.DefaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.DefaultTimeout)
	defer cancel()
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(timeoutCtx, c.RemoteWebSocketURL)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	params := page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(true).
		WithMarginTop(options.MarginTopInch).
		WithMarginBottom(options.MarginBottomInch).
		WithMarginLeft(options.MarginLeftInch).
		WithMarginRight(options.MarginRightInch).
		WithLandscape(options.Landscape)
	if options.PaperWidthInch > 0 && options.PaperHeightInch > 0 {
		params = params.
			WithPaperWidth(options.PaperWidthInch).
			WithPaperHeight(options.PaperHeightInch)
	}
	if options.Title != "" {
		html = fmt.Sprintf("<html><head><title>%s</title></head><body>%s</body></html>", options.Title, html)
	}

	var pdfData []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp PDF生成失败: %w", err)
	}
	return pdfData, nil
}
