package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = gorm.ErrRecordNotFound
	// ErrInvalidStatus 条件更新没命中，说明状态已经被别人改掉了
	ErrInvalidStatus = errors.New("排期状态不匹配")
)

type ScheduleDAO interface {
	Insert(ctx context.Context, s Schedule) (int64, error)
	FindById(ctx context.Context, id int64) (Schedule, error)
	// UpdateStatus 只有当前状态在 from 里才会流转到 to
	UpdateStatus(ctx context.Context, id int64, from []string, to string) error
	Update(ctx context.Context, s Schedule) error
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Schedule, error)
	ListByCandidate(ctx context.Context, candidateUid int64) ([]Schedule, error)
	CountPendingBefore(ctx context.Context, ctimeBefore int64) (int64, error)
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Schedule{})
}

type GORMScheduleDAO struct {
	db *egorm.Component
}

func NewGORMScheduleDAO(db *egorm.Component) ScheduleDAO {
	return &GORMScheduleDAO{
		db: db,
	}
}

func (d *GORMScheduleDAO) Insert(ctx context.Context, s Schedule) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (d *GORMScheduleDAO) FindById(ctx context.Context, id int64) (Schedule, error) {
	var s Schedule
	err := d.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

func (d *GORMScheduleDAO) UpdateStatus(ctx context.Context, id int64, from []string, to string) error {
	res := d.db.WithContext(ctx).
		Model(&Schedule{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatus
	}
	return nil
}

func (d *GORMScheduleDAO) Update(ctx context.Context, s Schedule) error {
	s.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).
		Model(&Schedule{}).
		Where("id = ?", s.Id).
		Updates(map[string]any{
			"candidate_uid":    s.CandidateUid,
			"round_type":       s.RoundType,
			"interview_date":   s.InterviewDate,
			"start_time":       s.StartTime,
			"end_time":         s.EndTime,
			"duration_minutes": s.DurationMinutes,
			"mode":             s.Mode,
			"meeting_link":     s.MeetingLink,
			"notes":            s.Notes,
			"evaluator_uids":   s.EvaluatorUids,
			"utime":            s.Utime,
		}).Error
}

func (d *GORMScheduleDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Schedule{}, "id = ?", id).Error
}

func (d *GORMScheduleDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Schedule, error) {
	var ss []Schedule
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Order("interview_date ASC, start_time ASC").
		Offset(offset).Limit(limit).
		Find(&ss).Error
	return ss, err
}

func (d *GORMScheduleDAO) ListByCandidate(ctx context.Context, candidateUid int64) ([]Schedule, error) {
	var ss []Schedule
	err := d.db.WithContext(ctx).
		Where("candidate_uid = ?", candidateUid).
		Order("ctime ASC").
		Find(&ss).Error
	return ss, err
}

func (d *GORMScheduleDAO) CountPendingBefore(ctx context.Context, ctimeBefore int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).
		Model(&Schedule{}).
		Where("status = ? AND ctime < ?", "Pending Approval", ctimeBefore).
		Count(&cnt).Error
	return cnt, err
}

type Schedule struct {
	// 雪花算法生成
	Id           int64  `gorm:"primaryKey"`
	CandidateUid int64  `gorm:"index:idx_candidate_uid"`
	RoundType    string `gorm:"type:varchar(64)"`
	// 日期与起止时间保持表单原样，时长冗余一份方便查询
	InterviewDate   string `gorm:"type:varchar(32)"`
	StartTime       string `gorm:"type:varchar(16)"`
	EndTime         string `gorm:"type:varchar(16)"`
	DurationMinutes int64
	Mode            string                   `gorm:"type:varchar(16)"`
	MeetingLink     string                   `gorm:"type:varchar(1024)"`
	Notes           string                   `gorm:"type:text"`
	Status          string                   `gorm:"type:varchar(32);index:idx_status"`
	EvaluatorUids   sqlx.JsonColumn[[]int64] `gorm:"type:varchar(512)"`
	CreatedBy       int64
	Ctime           int64
	Utime           int64
}

func (Schedule) TableName() string {
	return "schedules"
}
