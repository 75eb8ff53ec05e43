package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/user/internal/domain"
	"github.com/vrecruit/vrecruit/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo 内存实现，避免依赖数据库
type fakeUserRepo struct {
	repository.UserRepository
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (int64, error) {
	if _, ok := f.users[u.Email]; ok {
		return 0, repository.ErrUserDuplicate
	}
	f.users[u.Email] = u
	return u.Id, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newTestService(t *testing.T, repo repository.UserRepository) UserService {
	gen, err := snowflake.NewAppSnowflake(0)
	require.NoError(t, err)
	return NewUserService(repo, gen)
}

func TestUserService_Create(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newTestService(t, repo)

	u, err := svc.Create(context.Background(), domain.User{
		Email:    "prof@example.com",
		FullName: "Prof Zhang",
		Role:     domain.RoleProfessor,
	}, "hello#world123")
	require.NoError(t, err)
	assert.True(t, u.Id > 0)
	assert.NotEmpty(t, u.SN)
	// 密码必须是密文
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hello#world123")))

	_, err = svc.Create(context.Background(), domain.User{
		Email: "prof@example.com",
		Role:  domain.RoleProfessor,
	}, "hello#world123")
	assert.ErrorIs(t, err, ErrUserDuplicate)

	_, err = svc.Create(context.Background(), domain.User{
		Email: "x@example.com",
		Role:  "director",
	}, "hello#world123")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newTestService(t, repo)
	_, err := svc.Create(context.Background(), domain.User{
		Email: "admin@example.com",
		Role:  domain.RoleAdmin,
	}, "hello#world123")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "admin@example.com", "hello#world123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidUserOrPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "hello#world123")
	assert.ErrorIs(t, err, ErrInvalidUserOrPassword)
}
