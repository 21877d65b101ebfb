package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
)

// ClubDetailStorage is a short-TTL cache of resolved club details. The TTL
// is the only expiry mechanism; services additionally delete entries after
// every mutation that changes the club or its roster.
type ClubDetailStorage struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClubDetailStorage(rdb *redis.Client, ttl time.Duration) *ClubDetailStorage {
	return &ClubDetailStorage{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *ClubDetailStorage) Get(ctx context.Context, clubID string) (*dto.ClubDetail, error) {
	data, err := s.rdb.Get(ctx, s.key(clubID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorz.NotFound("club %s is not cached", clubID)
		}
		return nil, errorz.Unavailable(err, "read club %s from cache", clubID)
	}

	var detail dto.ClubDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		// a corrupt entry behaves like a miss
		return nil, errorz.NotFound("club %s is not cached", clubID)
	}
	return &detail, nil
}

func (s *ClubDetailStorage) Set(ctx context.Context, detail *dto.ClubDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(detail.ID), data, s.ttl).Err()
}

func (s *ClubDetailStorage) Delete(ctx context.Context, clubID string) error {
	return s.rdb.Del(ctx, s.key(clubID)).Err()
}

func (s *ClubDetailStorage) key(clubID string) string {
	return fmt.Sprintf("club-detail:%s", clubID)
}
