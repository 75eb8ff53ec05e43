package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/user/internal/domain"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository/cache"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, dao.User{
		Id:              u.Id,
		FullName:        u.FullName,
		ProfileImageURL: u.ProfileImageURL,
		ProfileComplete: u.ProfileComplete,
	})
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.toDomain(ue)
	// 缓存写失败不影响主流程
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), nil
}

func (ur *CachedUserRepository) ListByRole(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.ListByRole(ctx, string(role), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), nil
}

func (ur *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := ur.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:              u.Id,
		SN:              u.SN,
		Email:           u.Email,
		Password:        u.Password,
		FullName:        u.FullName,
		Role:            string(u.Role),
		ProfileComplete: u.ProfileComplete,
		ProfileImageURL: u.ProfileImageURL,
	}
}

func (ur *CachedUserRepository) toDomain(ue dao.User) domain.User {
	return domain.User{
		Id:              ue.Id,
		SN:              ue.SN,
		Email:           ue.Email,
		Password:        ue.Password,
		FullName:        ue.FullName,
		Role:            domain.Role(ue.Role),
		ProfileComplete: ue.ProfileComplete,
		ProfileImageURL: ue.ProfileImageURL,
	}
}
