package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱冲突
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	ListByRole(ctx context.Context, role string, offset, limit int) ([]User, error)
	Delete(ctx context.Context, id int64) error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{})
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) ListByRole(ctx context.Context, role string, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Where("role = ?", role).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Delete(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

type User struct {
	// 雪花算法生成，非自增
	Id       int64  `gorm:"primaryKey"`
	SN       string `gorm:"type:varchar(256);unique"`
	Email    string `gorm:"type:varchar(256);uniqueIndex:uk_email"`
	Password string `gorm:"type:varchar(256)"`
	FullName string `gorm:"type:varchar(256)"`
	Role     string `gorm:"type:varchar(32);index:idx_role"`
	// 候选人资料是否已经录入完整
	ProfileComplete bool
	ProfileImageURL string `gorm:"type:varchar(1024)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (User) TableName() string {
	return "users"
}
