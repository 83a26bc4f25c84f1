package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/infrastructure/persistence/models"
)

const maxToggleRetries = 5

var errToggleContention = errors.New("org chart view is being modified concurrently")

type RedisViewRepository struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisViewRepository(client *redis.Client, ttl time.Duration) *RedisViewRepository {
	return &RedisViewRepository{redis: client, prefix: "website:org_chart:views", ttl: ttl}
}

func (r *RedisViewRepository) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:{%s}", r.prefix, id.String())
}

func (r *RedisViewRepository) Create(ctx context.Context, forest hierarchy.Forest) (hierarchy.View, error) {
	view := hierarchy.View{ID: uuid.New(), Forest: forest, CreatedAt: time.Now()}
	data, err := json.Marshal(ToDBView(view))
	if err != nil {
		return hierarchy.View{}, err
	}
	if err := r.redis.Set(ctx, r.key(view.ID), data, r.ttl).Err(); err != nil {
		return hierarchy.View{}, err
	}
	return view, nil
}

func (r *RedisViewRepository) decode(raw string) (hierarchy.View, error) {
	var model models.OrgChartView
	if err := json.Unmarshal([]byte(raw), &model); err != nil {
		return hierarchy.View{}, err
	}
	return ToDomainView(model)
}

func (r *RedisViewRepository) GetByID(ctx context.Context, id uuid.UUID) (hierarchy.View, error) {
	// GETEX refreshes the idle ttl the same way the in-memory store does.
	raw, err := r.redis.GetEx(ctx, r.key(id), r.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return hierarchy.View{}, hierarchy.ErrViewNotFound
		}
		return hierarchy.View{}, err
	}
	return r.decode(raw)
}

func (r *RedisViewRepository) Toggle(ctx context.Context, id uuid.UUID, nodeID hierarchy.NodeID) (hierarchy.View, bool, error) {
	key := r.key(id)
	var (
		result  hierarchy.View
		toggled bool
	)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return hierarchy.ErrViewNotFound
			}
			return err
		}
		view, err := r.decode(raw)
		if err != nil {
			return err
		}
		view.Forest, toggled = hierarchy.Toggle(view.Forest, nodeID)
		result = view
		if !toggled {
			// A no-op toggle still counts as use of the view.
			return tx.Expire(ctx, key, r.ttl).Err()
		}
		data, err := json.Marshal(ToDBView(view))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxToggleRetries; i++ {
		err := r.redis.Watch(ctx, txf, key)
		if err == nil {
			return result, toggled, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return hierarchy.View{}, false, err
	}
	return hierarchy.View{}, false, errToggleContention
}

func (r *RedisViewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.redis.Del(ctx, r.key(id)).Err()
}
