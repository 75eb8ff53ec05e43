package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/vrecruit/vrecruit/internal/pkg/pdf"
)

// InitPDFConverter 报表渲染走远程 Chrome
func InitPDFConverter() pdf.Converter {
	return pdf.NewChromeDPConverter(econf.GetString("pdf.chromeWebSocketURL"))
}
