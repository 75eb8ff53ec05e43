package errs

var (
	SystemError      = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidSchedule  = ErrorCode{Code: 503002, Msg: "排期字段不完整"}
	InvalidDuration  = ErrorCode{Code: 503003, Msg: "面试时长必须大于0"}
	ScheduleNotFound = ErrorCode{Code: 503004, Msg: "排期不存在"}
	InvalidStatus    = ErrorCode{Code: 503005, Msg: "当前状态不允许该操作"}
	PermissionDenied = ErrorCode{Code: 503006, Msg: "无权操作"}
	OutsideWindow    = ErrorCode{Code: 503007, Msg: "不在可进入的时间窗口内"}
	NotAssigned      = ErrorCode{Code: 503008, Msg: "你不是该场面试的评委"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
