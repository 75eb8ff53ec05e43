package errs

var (
	SystemError            = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicate          = ErrorCode{Code: 501002, Msg: "邮箱已被注册"}
	InvalidEmailOrPassword = ErrorCode{Code: 501003, Msg: "邮箱或密码错误"}
	InvalidRole            = ErrorCode{Code: 501004, Msg: "角色不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
