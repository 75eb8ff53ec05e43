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

	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/progress/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

type ProgressService interface {
	// Progress 候选人四轮的推进状态，纯推导，不落库
	Progress(ctx context.Context, candidateUid int64) ([]domain.RoundProgress, error)
}

type progressService struct {
	scheduleSvc  schedule.ScheduleService
	candidateSvc candidate.CandidateService
}

func NewProgressService(scheduleSvc schedule.ScheduleService,
	candidateSvc candidate.CandidateService) ProgressService {
	return &progressService{
		scheduleSvc:  scheduleSvc,
		candidateSvc: candidateSvc,
	}
}

func (svc *progressService) Progress(ctx context.Context, candidateUid int64) ([]domain.RoundProgress, error) {
	ss, err := svc.scheduleSvc.ListByCandidate(ctx, candidateUid)
	if err != nil {
		return nil, err
	}
	verdictSet := false
	p, err := svc.candidateSvc.Profile(ctx, candidateUid)
	switch {
	case err == nil:
		verdictSet = p.FinalVerdict != ""
	case errors.Is(err, candidate.ErrProfileNotFound):
		// 没建档也能看排期推进
	default:
		return nil, err
	}
	snapshots := slice.Map(ss, func(idx int, src schedule.Schedule) domain.ScheduleSnapshot {
		return domain.ScheduleSnapshot{
			RoundType: string(src.RoundType),
			Status:    string(src.Status),
		}
	})
	return domain.Derive(snapshots, verdictSet), nil
}
