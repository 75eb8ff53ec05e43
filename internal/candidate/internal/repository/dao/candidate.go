package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrProfileNotFound = gorm.ErrRecordNotFound

type CandidateProfileDAO interface {
	Insert(ctx context.Context, p CandidateProfile) (int64, error)
	FindByUid(ctx context.Context, uid int64) (CandidateProfile, error)
	List(ctx context.Context, offset, limit int) ([]CandidateProfile, error)
	UpdateVerdict(ctx context.Context, uid int64, verdict string) error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CandidateProfile{})
}

type GORMCandidateProfileDAO struct {
	db *egorm.Component
}

func NewGORMCandidateProfileDAO(db *egorm.Component) CandidateProfileDAO {
	return &GORMCandidateProfileDAO{
		db: db,
	}
}

func (d *GORMCandidateProfileDAO) Insert(ctx context.Context, p CandidateProfile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *GORMCandidateProfileDAO) FindByUid(ctx context.Context, uid int64) (CandidateProfile, error) {
	var p CandidateProfile
	err := d.db.WithContext(ctx).First(&p, "uid = ?", uid).Error
	return p, err
}

func (d *GORMCandidateProfileDAO) List(ctx context.Context, offset, limit int) ([]CandidateProfile, error) {
	var ps []CandidateProfile
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&ps).Error
	return ps, err
}

func (d *GORMCandidateProfileDAO) UpdateVerdict(ctx context.Context, uid int64, verdict string) error {
	return d.db.WithContext(ctx).
		Model(&CandidateProfile{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"final_verdict": verdict,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

type CandidateProfile struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"uniqueIndex:uk_uid"`

	PositionAppliedFor  string `gorm:"type:varchar(256)"`
	FirstName           string `gorm:"type:varchar(256)"`
	FatherOrHusbandName string `gorm:"type:varchar(256)"`
	Surname             string `gorm:"type:varchar(256)"`
	CurrentAddress      string `gorm:"type:varchar(1024)"`
	PermanentAddress    string `gorm:"type:varchar(1024)"`
	Mobile              string `gorm:"type:varchar(64)"`
	Email               string `gorm:"type:varchar(256)"`
	DateOfBirth         string `gorm:"type:varchar(32)"`
	MaritalStatus       string `gorm:"type:varchar(32)"`
	Gender              string `gorm:"type:varchar(32)"`
	Religion            string `gorm:"type:varchar(64)"`
	Caste               string `gorm:"type:varchar(64)"`
	Category            string `gorm:"type:varchar(64)"`
	Nationality         string `gorm:"type:varchar(64)"`
	BloodGroup          string `gorm:"type:varchar(16)"`
	Allergies           string `gorm:"type:varchar(512)"`
	Disability          string `gorm:"type:varchar(512)"`
	AadharCardNo        string `gorm:"type:varchar(32)"`
	PanNo               string `gorm:"type:varchar(32)"`
	ResumeURL           string `gorm:"type:varchar(1024)"`

	// 表单明细区块，JSON 文本原样入库
	AcademicDetails   string `gorm:"type:text"`
	ExperienceDetails string `gorm:"type:text"`
	ComputerSkills    string `gorm:"type:text"`
	LanguagesKnown    string `gorm:"type:text"`
	AdditionalInfo    string `gorm:"type:text"`
	ReportingOfficers string `gorm:"type:text"`
	SelfRatings       string `gorm:"type:text"`
	FamilyDetails     string `gorm:"type:text"`

	FinalVerdict string `gorm:"type:varchar(32)"`

	Ctime int64
	Utime int64
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}
