package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

func newTestProfiles(t *testing.T, db *database.DB) ProfileService {
	t.Helper()
	return NewProfileService(
		db.Conn,
		repository.NewSQLiteProfileRepo(db.Conn),
		repository.NewSQLiteProvinceRepo(db.Conn),
	)
}

func TestProfileGetBeforeSaveIsNotFound(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	profiles := newTestProfiles(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	_, err := profiles.Get(context.Background(), userID)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestProfileUpdateCreatesAndSyncsName(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	profiles := newTestProfiles(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	profile, err := profiles.Update(context.Background(), userID, &models.UpdateProfileRequest{
		Name:    "Juan Actualizado",
		Phone:   "1155551234",
		Email:   "juan@example.com",
		Address: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)
	require.Equal(t, "Juan Actualizado", profile.Name)

	// users.name aynı transaction'da senkron güncellenmiş olmalı
	current, err := auth.CurrentUser(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "Juan Actualizado", current.Name)

	got, err := profiles.Get(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "1155551234", got.Phone)
}

func TestProfileUpdateIsUpsert(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	profiles := newTestProfiles(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	first, err := profiles.Update(context.Background(), userID, &models.UpdateProfileRequest{Name: "Primera"})
	require.NoError(t, err)

	second, err := profiles.Update(context.Background(), userID, &models.UpdateProfileRequest{Name: "Segunda"})
	require.NoError(t, err)

	// Aynı kayıt güncellendi, ikinci profil açılmadı
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Segunda", second.Name)
}

func TestProfileUpdateWithValidProvince(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	profiles := newTestProfiles(t, db)
	provinces := NewProvinceService(repository.NewSQLiteProvinceRepo(db.Conn))
	userID, _ := signUpUser(t, auth, "juan")

	list, err := provinces.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list) // migration seed'i

	profile, err := profiles.Update(context.Background(), userID, &models.UpdateProfileRequest{
		Name:       "Juan",
		ProvinceID: list[0].ID,
	})
	require.NoError(t, err)
	require.Equal(t, list[0].ID, profile.ProvinceID)
}

func TestProfileUpdateUnknownProvinceRejected(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	profiles := newTestProfiles(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	_, err := profiles.Update(context.Background(), userID, &models.UpdateProfileRequest{
		Name:       "Juan",
		ProvinceID: "hic-yok",
	})

	var verr *pkg.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "province", verr.Messages[0].Path)

	// Validation reddi hiçbir şey yazmamalı
	_, err = profiles.Get(context.Background(), userID)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}
