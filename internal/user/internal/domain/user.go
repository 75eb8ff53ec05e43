package domain

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePrincipal Role = "principal"
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
	RoleCandidate Role = "candidate"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePrincipal, RoleProfessor, RoleStudent, RoleCandidate:
		return true
	default:
		return false
	}
}

// IsApprover 面试安排的审批权限，只有管理员和校长有
func (r Role) IsApprover() bool {
	return r == RoleAdmin || r == RolePrincipal
}

type User struct {
	Id int64
	SN string
	// 登录邮箱，全局唯一
	Email string
	// 密码密文
	Password        string
	FullName        string
	Role            Role
	ProfileComplete bool
	ProfileImageURL string
}
