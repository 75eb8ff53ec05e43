package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/domain"
)

var ErrKeyNotExist = redis.Nil

type ReportCache interface {
	Get(ctx context.Context, candidateUid int64) (domain.Report, error)
	Set(ctx context.Context, candidateUid int64, r domain.Report) error
	Delete(ctx context.Context, candidateUid int64) error
}

type ReportECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewReportECache(c ecache.Cache) ReportCache {
	return &ReportECache{
		cache: &ecache.NamespaceCache{
			Namespace: "analytics:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (cache *ReportECache) Get(ctx context.Context, candidateUid int64) (domain.Report, error) {
	var r domain.Report
	err := cache.cache.Get(ctx, cache.key(candidateUid)).JSONScan(&r)
	return r, err
}

func (cache *ReportECache) Set(ctx context.Context, candidateUid int64, r domain.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(candidateUid), data, cache.expiration)
}

func (cache *ReportECache) Delete(ctx context.Context, candidateUid int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(candidateUid))
	return err
}

func (cache *ReportECache) key(candidateUid int64) string {
	return fmt.Sprintf("report:%d", candidateUid)
}
