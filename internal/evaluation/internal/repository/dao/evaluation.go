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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrEvaluationNotFound = gorm.ErrRecordNotFound
	// ErrEvaluationExists 一个评委对一场面试只能有一条记录
	ErrEvaluationExists = errors.New("评价已存在")
)

type EvaluationDAO interface {
	Insert(ctx context.Context, e Evaluation) (int64, error)
	FindByScheduleAndEvaluator(ctx context.Context, scheduleId, evaluatorUid int64) (Evaluation, error)
	ListByEvaluator(ctx context.Context, evaluatorUid int64) ([]Evaluation, error)
	ListByCandidate(ctx context.Context, candidateUid int64, onlyComplete bool) ([]Evaluation, error)
	ListBySchedule(ctx context.Context, scheduleId int64) ([]Evaluation, error)
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Evaluation{})
}

type GORMEvaluationDAO struct {
	db *egorm.Component
}

func NewGORMEvaluationDAO(db *egorm.Component) EvaluationDAO {
	return &GORMEvaluationDAO{
		db: db,
	}
}

func (d *GORMEvaluationDAO) Insert(ctx context.Context, e Evaluation) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	err := d.db.WithContext(ctx).Create(&e).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrEvaluationExists
		}
	}
	return e.Id, err
}

func (d *GORMEvaluationDAO) FindByScheduleAndEvaluator(ctx context.Context, scheduleId, evaluatorUid int64) (Evaluation, error) {
	var e Evaluation
	err := d.db.WithContext(ctx).
		First(&e, "schedule_id = ? AND evaluator_uid = ?", scheduleId, evaluatorUid).Error
	return e, err
}

func (d *GORMEvaluationDAO) ListByEvaluator(ctx context.Context, evaluatorUid int64) ([]Evaluation, error) {
	var es []Evaluation
	err := d.db.WithContext(ctx).
		Where("evaluator_uid = ?", evaluatorUid).
		Order("submission_time DESC").
		Find(&es).Error
	return es, err
}

func (d *GORMEvaluationDAO) ListByCandidate(ctx context.Context, candidateUid int64, onlyComplete bool) ([]Evaluation, error) {
	var es []Evaluation
	query := d.db.WithContext(ctx).Where("candidate_uid = ?", candidateUid)
	if onlyComplete {
		query = query.Where("is_complete = ?", true)
	}
	err := query.Order("submission_time ASC").Find(&es).Error
	return es, err
}

func (d *GORMEvaluationDAO) ListBySchedule(ctx context.Context, scheduleId int64) ([]Evaluation, error) {
	var es []Evaluation
	err := d.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleId).
		Order("submission_time ASC").
		Find(&es).Error
	return es, err
}

// ModuleScore 字段名跟着历史数据走
type ModuleScore struct {
	Score int64 `json:"score"`
	Max   int64 `json:"max"`
}

type Comment struct {
	Round   string `json:"round"`
	Comment string `json:"comment"`
}

type Evaluation struct {
	// 雪花算法生成
	Id           int64  `gorm:"primaryKey"`
	ScheduleId   int64  `gorm:"uniqueIndex:uk_schedule_evaluator"`
	EvaluatorUid int64  `gorm:"uniqueIndex:uk_schedule_evaluator"`
	CandidateUid int64  `gorm:"index:idx_candidate_uid"`
	RoundType    string `gorm:"type:varchar(64)"`
	// SubmissionTime 毫秒时间戳
	SubmissionTime       int64
	TimeRemainingSeconds int64
	QuantitativeScores   sqlx.JsonColumn[map[string]ModuleScore] `gorm:"type:text"`
	QualitativeComments  sqlx.JsonColumn[[]Comment]              `gorm:"type:text"`
	TotalScore           int64
	TotalMaxScore        int64
	IsComplete           bool
	Ctime                int64
	Utime                int64
}

func (Evaluation) TableName() string {
	return "evaluations"
}
