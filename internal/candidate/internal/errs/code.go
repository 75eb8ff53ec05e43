package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系统错误"}
	NameRequired    = ErrorCode{Code: 502002, Msg: "姓和名不能为空"}
	ProfileNotFound = ErrorCode{Code: 502003, Msg: "候选人资料不存在"}
	InvalidVerdict  = ErrorCode{Code: 502004, Msg: "录用结论不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
