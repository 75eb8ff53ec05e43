package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	evaluationExistsResult = ginx.Result{
		Code: errs.EvaluationExists.Code,
		Msg:  errs.EvaluationExists.Msg,
	}
	sessionNotFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
	invalidStateResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	notAssignedResult = ginx.Result{
		Code: errs.NotAssigned.Code,
		Msg:  errs.NotAssigned.Msg,
	}
	outsideWindowResult = ginx.Result{
		Code: errs.OutsideWindow.Code,
		Msg:  errs.OutsideWindow.Msg,
	}
	invalidScheduleResult = ginx.Result{
		Code: errs.InvalidSchedule.Code,
		Msg:  errs.InvalidSchedule.Msg,
	}
	invalidScoreResult = ginx.Result{
		Code: errs.InvalidScore.Code,
		Msg:  errs.InvalidScore.Msg,
	}
	invalidVerdictResult = ginx.Result{
		Code: errs.InvalidVerdict.Code,
		Msg:  errs.InvalidVerdict.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	verdictOnlyResult = ginx.Result{
		Code: errs.VerdictOnlyRound.Code,
		Msg:  errs.VerdictOnlyRound.Msg,
	}
)
