package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vrecruit/vrecruit/internal/cos/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidResumeFileResult = ginx.Result{
		Code: errs.InvalidResumeFile.Code,
		Msg:  errs.InvalidResumeFile.Msg,
	}
)
