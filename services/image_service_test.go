package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// newTestImages, miniredis üzerinde çalışan ImageService kurar.
// miniredis gerçek bir Redis protokolü konuşur — mock değil,
// in-process sahte sunucu.
func newTestImages(t *testing.T) ImageService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewImageService(repository.NewRedisImageRepo(client))
}

const testDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

func TestImageSaveAndGet(t *testing.T) {
	images := newTestImages(t)

	saved, err := images.Save(context.Background(), &models.SaveImageRequest{Image: testDataURI})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, testDataURI, saved.Image)

	got, err := images.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, testDataURI, got.Image)
}

func TestImageSaveRejectsNonDataURI(t *testing.T) {
	images := newTestImages(t)

	_, err := images.Save(context.Background(), &models.SaveImageRequest{Image: "plain-base64-blob"})

	var verr *pkg.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "image", verr.Messages[0].Path)
}

func TestImageSaveRejectsEmpty(t *testing.T) {
	images := newTestImages(t)

	_, err := images.Save(context.Background(), &models.SaveImageRequest{Image: "   "})

	var verr *pkg.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestImageGetMissingIsNotFound(t *testing.T) {
	images := newTestImages(t)

	_, err := images.Get(context.Background(), "hic-yok")
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestImageIDsAreUnique(t *testing.T) {
	images := newTestImages(t)

	a, err := images.Save(context.Background(), &models.SaveImageRequest{Image: testDataURI})
	require.NoError(t, err)
	b, err := images.Save(context.Background(), &models.SaveImageRequest{Image: testDataURI})
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID)
}
