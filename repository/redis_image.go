package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
)

// redisImageRepo, ImageRepository'nin Redis implementasyonu.
//
// Görüntüler ilişkisel veri değildir ve base64 data-URI olarak büyük
// string'lerdir — SQLite satırı yerine Redis key'inde tutulur.
// Key formatı: image:<uuid>. TTL yok: görüntü, referans eden profil/pet
// kaydı yaşadığı sürece erişilebilir kalmalıdır.
type redisImageRepo struct {
	client *redis.Client
}

func NewRedisImageRepo(client *redis.Client) ImageRepository {
	return &redisImageRepo{client: client}
}

func imageKey(id string) string {
	return "image:" + id
}

func (r *redisImageRepo) Save(ctx context.Context, image *models.Image) error {
	if err := r.client.Set(ctx, imageKey(image.ID), image.Image, 0).Err(); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func (r *redisImageRepo) Get(ctx context.Context, id string) (*models.Image, error) {
	data, err := r.client.Get(ctx, imageKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return &models.Image{ID: id, Image: data}, nil
}
