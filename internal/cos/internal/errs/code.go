package errs

var (
	SystemError       = ErrorCode{Code: 507001, Msg: "系统错误"}
	InvalidResumeFile = ErrorCode{Code: 507002, Msg: "简历文件类型不支持"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
