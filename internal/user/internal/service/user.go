// Copyright 2024 vrecruit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"

	"github.com/lithammer/shortuuid/v4"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/user/internal/domain"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate         = repository.ErrUserDuplicate
	ErrInvalidUserOrPassword = errors.New("邮箱或密码不正确")
	ErrInvalidRole           = errors.New("角色不合法")
	ErrUserNotFound          = repository.ErrUserNotFound
)

type UserService interface {
	// Create 创建账号，密码为明文，内部负责加密
	Create(ctx context.Context, u domain.User, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	ListByRole(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// Delete 删除账号。候选人录入失败回滚时会用到
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
	gen  snowflake.Generator
}

func NewUserService(repo repository.UserRepository, gen snowflake.Generator) UserService {
	return &userService{
		repo: repo,
		gen:  gen,
	}
}

func (svc *userService) Create(ctx context.Context, u domain.User, password string) (domain.User, error) {
	if !u.Role.Valid() {
		return domain.User{}, ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	id, err := svc.gen.Generate(snowflake.AppUser)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id.Int64()
	u.SN = shortuuid.New()
	u.Password = string(hash)
	_, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 序列号、邮箱和角色都不允许在这里改
	user.SN = ""
	user.Email = ""
	user.Role = ""
	user.Password = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) ListByRole(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	return svc.repo.ListByRole(ctx, role, offset, limit)
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}
