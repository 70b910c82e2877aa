package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

func TestProvinceListIsSeeded(t *testing.T) {
	db := newTestDB(t)
	provinces := NewProvinceService(repository.NewSQLiteProvinceRepo(db.Conn))

	list, err := provinces.List(context.Background())
	require.NoError(t, err)
	// 23 il + Buenos Aires + CABA = 24 seed kaydı
	require.Len(t, list, 24)

	// Alfabetik sıralama
	require.Equal(t, "Buenos Aires", list[0].Name)
}

func TestProvinceCreateDuplicateNameConflicts(t *testing.T) {
	db := newTestDB(t)
	provinces := NewProvinceService(repository.NewSQLiteProvinceRepo(db.Conn))

	_, err := provinces.Create(context.Background(), &models.SaveProvinceRequest{Name: "Mendoza"})

	var cerr *pkg.ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "name", cerr.Path)
}

func TestProvinceCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	provinces := NewProvinceService(repository.NewSQLiteProvinceRepo(db.Conn))

	created, err := provinces.Create(context.Background(), &models.SaveProvinceRequest{Name: "Atlantida"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := provinces.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "Atlantida", got.Name)
}

func TestProvinceDeleteHidesFromReads(t *testing.T) {
	db := newTestDB(t)
	provinces := NewProvinceService(repository.NewSQLiteProvinceRepo(db.Conn))

	created, err := provinces.Create(context.Background(), &models.SaveProvinceRequest{Name: "Atlantida"})
	require.NoError(t, err)

	require.NoError(t, provinces.Delete(context.Background(), created.ID))

	_, err = provinces.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	require.ErrorIs(t, provinces.Delete(context.Background(), created.ID), pkg.ErrNotFound)
}
