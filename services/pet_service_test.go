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

func newTestPets(t *testing.T, db *database.DB) PetService {
	t.Helper()
	return NewPetService(repository.NewSQLitePetRepo(db.Conn))
}

func TestPetCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	pets := newTestPets(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	pet, err := pets.Create(context.Background(), userID, &models.SavePetRequest{
		Name:        "Firulais",
		Description: "Perro bueno",
		BirthDate:   "2020-05-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pet.ID)
	require.Equal(t, userID, pet.UserID)

	got, err := pets.Get(context.Background(), pet.ID)
	require.NoError(t, err)
	require.Equal(t, "Firulais", got.Name)
}

func TestPetUpdateByNonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	pets := newTestPets(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")
	otherID, _ := signUpUser(t, auth, "maria")

	pet, err := pets.Create(context.Background(), ownerID, &models.SavePetRequest{Name: "Firulais"})
	require.NoError(t, err)

	_, err = pets.Update(context.Background(), otherID, pet.ID, &models.SavePetRequest{Name: "Robado"})
	require.ErrorIs(t, err, pkg.ErrForbidden)

	// İlan değişmemiş olmalı
	got, err := pets.Get(context.Background(), pet.ID)
	require.NoError(t, err)
	require.Equal(t, "Firulais", got.Name)
}

func TestPetDeleteHidesFromReads(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	pets := newTestPets(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	pet, err := pets.Create(context.Background(), userID, &models.SavePetRequest{Name: "Firulais"})
	require.NoError(t, err)

	require.NoError(t, pets.Delete(context.Background(), userID, pet.ID))

	// Soft-delete: tekil okuma da liste de artık görmez
	_, err = pets.Get(context.Background(), pet.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	list, err := pets.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestPetDeleteByNonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	pets := newTestPets(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")
	otherID, _ := signUpUser(t, auth, "maria")

	pet, err := pets.Create(context.Background(), ownerID, &models.SavePetRequest{Name: "Firulais"})
	require.NoError(t, err)

	require.ErrorIs(t, pets.Delete(context.Background(), otherID, pet.ID), pkg.ErrForbidden)
}

func TestPetListOnlyOwnPets(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	pets := newTestPets(t, db)
	juanID, _ := signUpUser(t, auth, "juan")
	mariaID, _ := signUpUser(t, auth, "maria")

	_, err := pets.Create(context.Background(), juanID, &models.SavePetRequest{Name: "Firulais"})
	require.NoError(t, err)
	_, err = pets.Create(context.Background(), mariaID, &models.SavePetRequest{Name: "Michi"})
	require.NoError(t, err)

	list, err := pets.ListByUser(context.Background(), juanID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Firulais", list[0].Name)
}

func TestPetValidation(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	pets := newTestPets(t, db)
	userID, _ := signUpUser(t, auth, "juan")

	_, err := pets.Create(context.Background(), userID, &models.SavePetRequest{Name: "   "})

	var verr *pkg.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Messages[0].Path)
}
