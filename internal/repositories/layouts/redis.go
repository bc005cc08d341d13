package layouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const indexKey = "layouts"

// Data is the stored form of a layout
type Data struct {
	ID        string             `json:"id"`
	Seed      int64              `json:"seed"`
	Config    *layout.Config     `json:"config"`
	Rooms     []*layout.Room     `json:"rooms"`
	Corridors []*layout.Corridor `json:"corridors"`
	Truncated bool               `json:"truncated"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient // Required
	TimeProvider TimeProvider          // Optional
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a Redis-backed layout repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
	if repo.timeProvider == nil {
		repo.timeProvider = realTimeProvider{}
	}

	return repo
}

func layoutKey(id string) string {
	return fmt.Sprintf("layout:%s", id)
}

func (r *redisRepo) Create(ctx context.Context, l *layout.Layout) error {
	if err := validate(l); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, layoutKey(l.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to check layout existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("layout %s already exists", l.ID).
			WithMeta("layout_id", l.ID)
	}

	now := r.timeProvider.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	return r.set(ctx, l)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*layout.Layout, error) {
	raw, err := r.client.Get(ctx, layoutKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("layout %s not found", id).
				WithMeta("layout_id", id)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to get layout from Redis").
			WithMeta("layout_id", id)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal layout data").
			WithMeta("layout_id", id)
	}

	return toLayout(&data), nil
}

func (r *redisRepo) Update(ctx context.Context, l *layout.Layout) error {
	if err := validate(l); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, layoutKey(l.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to check layout existence")
	}
	if exists == 0 {
		return dnderr.NotFoundf("layout %s not found", l.ID).
			WithMeta("layout_id", l.ID)
	}

	l.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, l)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, layoutKey(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to delete layout from Redis").
			WithMeta("layout_id", id)
	}

	if del.Val() == 0 {
		return dnderr.NotFoundf("layout %s not found", id).
			WithMeta("layout_id", id)
	}

	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*layout.Layout, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to list layout ids from Redis")
	}

	found := make([]*layout.Layout, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			l, err := r.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					log.Printf("Layouts: index references missing layout %s", id)
					return nil
				}
				return dnderr.Wrapf(err, "failed to get layout %s", id)
			}
			found[i] = l
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]*layout.Layout, 0, len(found))
	for _, l := range found {
		if l != nil {
			all = append(all, l)
		}
	}
	sortOldestFirst(all)

	return all, nil
}

func (r *redisRepo) set(ctx context.Context, l *layout.Layout) error {
	raw, err := json.Marshal(toData(l))
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal layout data").
			WithMeta("layout_id", l.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, layoutKey(l.ID), string(raw), 0)
	pipe.SAdd(ctx, indexKey, l.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to save layout in Redis").
			WithMeta("layout_id", l.ID)
	}

	return nil
}

func toData(l *layout.Layout) *Data {
	return &Data{
		ID:        l.ID,
		Seed:      l.Seed,
		Config:    l.Config,
		Rooms:     l.Rooms,
		Corridors: l.Corridors,
		Truncated: l.Truncated,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLayout(data *Data) *layout.Layout {
	l := &layout.Layout{
		ID:        data.ID,
		Seed:      data.Seed,
		Config:    data.Config,
		Rooms:     data.Rooms,
		Corridors: data.Corridors,
		Truncated: data.Truncated,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	l.Relink()
	return l
}
