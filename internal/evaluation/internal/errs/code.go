package errs

var (
	SystemError       = ErrorCode{Code: 504001, Msg: "系统错误"}
	EvaluationExists  = ErrorCode{Code: 504002, Msg: "该场面试你已经提交过评价"}
	SessionNotFound   = ErrorCode{Code: 504003, Msg: "评分会话不存在或已结束"}
	InvalidState      = ErrorCode{Code: 504004, Msg: "当前会话状态不允许该操作"}
	NotAssigned       = ErrorCode{Code: 504005, Msg: "你不是该场面试的评委"}
	OutsideWindow     = ErrorCode{Code: 504006, Msg: "不在可进入的时间窗口内"}
	InvalidSchedule   = ErrorCode{Code: 504007, Msg: "排期不存在或状态不对"}
	InvalidScore      = ErrorCode{Code: 504008, Msg: "评分不合法"}
	InvalidVerdict    = ErrorCode{Code: 504009, Msg: "录用结论不合法"}
	PermissionDenied  = ErrorCode{Code: 504010, Msg: "无权操作"}
	VerdictOnlyRound  = ErrorCode{Code: 504011, Msg: "终面没有计时评分，请直接提交结论"}
	EvaluationMissing = ErrorCode{Code: 504012, Msg: "评价记录不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
