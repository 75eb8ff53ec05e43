package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/user/internal/domain"
)

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	FullName        string `json:"fullName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type ListReq struct {
	Role   string `json:"role"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type User struct {
	Id              int64  `json:"id"`
	SN              string `json:"sn"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Role            string `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func newUser(u domain.User) User {
	return User{
		Id:              u.Id,
		SN:              u.SN,
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            string(u.Role),
		ProfileComplete: u.ProfileComplete,
		ProfileImageURL: u.ProfileImageURL,
	}
}

func newUserList(us []domain.User) []User {
	return slice.Map(us, func(idx int, src domain.User) User {
		return newUser(src)
	})
}
