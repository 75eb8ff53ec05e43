package pdf

import (
	"context"
)

// Converter 把 HTML 内容渲染成 PDF
type Converter interface {
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
	Title            string
}

type Option func(*Options)

// WithPaperSize 设置纸张尺寸（英寸）
func WithPaperSize(width, height float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = width
		o.PaperHeightInch = height
	}
}

// WithMargins 设置页边距（英寸）
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTopInch = top
		o.MarginRightInch = right
		o.MarginBottomInch = bottom
		o.MarginLeftInch = left
	}
}

func WithLandscape(landscape bool) Option {
	return func(o *Options) {
		o.Landscape = landscape
	}
}

func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

var (
	// A4纸尺寸（8.27 x 11.69英寸）
	PaperA4 = WithPaperSize(8.27, 11.69)
	// Letter尺寸（8.5 x 11英寸）
	PaperLetter = WithPaperSize(8.5, 11)
	// 标准边距（0.4英寸）
	MarginsNormal = WithMargins(0.4, 0.4, 0.4, 0.4)
)
