package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vrecruit/vrecruit/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.InvalidRole.Code,
		Msg:  "无权访问",
	}
)
