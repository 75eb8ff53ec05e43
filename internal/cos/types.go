package cos

import (
	"github.com/vrecruit/vrecruit/internal/cos/internal/web"
)

type Handler = web.Handler

var NewHandler = web.NewHandler

type Module struct {
	Hdl *Handler
}
