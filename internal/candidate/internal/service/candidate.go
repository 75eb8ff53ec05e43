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
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/domain"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/repository"
	"github.com/vrecruit/vrecruit/internal/user"
)

var (
	ErrNameRequired    = errors.New("姓和名不能为空")
	ErrProfileNotFound = repository.ErrProfileNotFound
	ErrInvalidVerdict  = errors.New("录用结论不合法")
)

type CandidateService interface {
	// Add 创建候选人账号并保存资料，资料写失败会回滚账号
	Add(ctx context.Context, p domain.Profile) (int64, error)
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	List(ctx context.Context, offset, limit int) ([]domain.Profile, error)
	// SetFinalVerdict 终面结论流程专用
	SetFinalVerdict(ctx context.Context, uid int64, verdict domain.Verdict) error
}

type candidateService struct {
	repo    repository.ProfileRepository
	userSvc user.UserService
	logger  *elog.Component
}

func NewCandidateService(repo repository.ProfileRepository, userSvc user.UserService) CandidateService {
	return &candidateService{
		repo:    repo,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (svc *candidateService) Add(ctx context.Context, p domain.Profile) (int64, error) {
	fullName := strings.TrimSpace(p.FullName())
	if fullName == "" {
		return 0, ErrNameRequired
	}
	email := p.Email
	if email == "" {
		// 表单允许不填邮箱，生成一个临时的
		email = fmt.Sprintf("temp_%s@candidate.vrecruit.local", strings.ToLower(shortuuid.New()[:8]))
	}
	u, err := svc.userSvc.Create(ctx, user.User{
		Email:    email,
		FullName: fullName,
		Role:     user.RoleCandidate,
	}, shortuuid.New())
	if err != nil {
		return 0, fmt.Errorf("创建候选人账号失败: %w", err)
	}
	p.Uid = u.Id
	err = svc.repo.Create(ctx, p)
	if err != nil {
		// 资料没写进去，把刚建的账号删掉
		if de := svc.userSvc.Delete(ctx, u.Id); de != nil {
			svc.logger.Error("回滚候选人账号失败",
				elog.FieldErr(de),
				elog.Int64("uid", u.Id))
		}
		return 0, fmt.Errorf("保存候选人资料失败: %w", err)
	}
	return u.Id, nil
}

func (svc *candidateService) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	return svc.repo.FindByUid(ctx, uid)
}

func (svc *candidateService) List(ctx context.Context, offset, limit int) ([]domain.Profile, error) {
	return svc.repo.List(ctx, offset, limit)
}

func (svc *candidateService) SetFinalVerdict(ctx context.Context, uid int64, verdict domain.Verdict) error {
	if !verdict.Valid() {
		return ErrInvalidVerdict
	}
	return svc.repo.UpdateVerdict(ctx, uid, verdict)
}
