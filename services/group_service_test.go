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

func newTestGroups(t *testing.T, db *database.DB) GroupService {
	t.Helper()
	return NewGroupService(repository.NewSQLiteGroupRepo(db.Conn))
}

func TestGroupCreateOwnerIsMember(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	groups := newTestGroups(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")

	group, err := groups.Create(context.Background(), ownerID, &models.SaveGroupRequest{
		Name:        "Perros de Palermo",
		Description: "Paseos grupales",
	})
	require.NoError(t, err)
	require.Equal(t, ownerID, group.OwnerID)

	members, err := groups.Members(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, ownerID, members[0].UserID)
}

func TestGroupJoinIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	groups := newTestGroups(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")
	memberID, _ := signUpUser(t, auth, "maria")

	group, err := groups.Create(context.Background(), ownerID, &models.SaveGroupRequest{Name: "Grupo"})
	require.NoError(t, err)

	require.NoError(t, groups.Join(context.Background(), memberID, group.ID))
	require.NoError(t, groups.Join(context.Background(), memberID, group.ID)) // tekrar join no-op

	members, err := groups.Members(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestGroupLeaveWhenNotMemberIsNotFound(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	groups := newTestGroups(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")
	strangerID, _ := signUpUser(t, auth, "maria")

	group, err := groups.Create(context.Background(), ownerID, &models.SaveGroupRequest{Name: "Grupo"})
	require.NoError(t, err)

	require.ErrorIs(t, groups.Leave(context.Background(), strangerID, group.ID), pkg.ErrNotFound)
}

func TestGroupJoinLeaveCycle(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	groups := newTestGroups(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")
	memberID, _ := signUpUser(t, auth, "maria")

	group, err := groups.Create(context.Background(), ownerID, &models.SaveGroupRequest{Name: "Grupo"})
	require.NoError(t, err)

	require.NoError(t, groups.Join(context.Background(), memberID, group.ID))
	require.NoError(t, groups.Leave(context.Background(), memberID, group.ID))

	members, err := groups.Members(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1) // sadece owner kaldı
}

func TestGroupUpdateByNonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	groups := newTestGroups(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")
	otherID, _ := signUpUser(t, auth, "maria")

	group, err := groups.Create(context.Background(), ownerID, &models.SaveGroupRequest{Name: "Grupo"})
	require.NoError(t, err)

	_, err = groups.Update(context.Background(), otherID, group.ID, &models.SaveGroupRequest{Name: "Tomado"})
	require.ErrorIs(t, err, pkg.ErrForbidden)
}

func TestGroupDeleteHidesFromList(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	groups := newTestGroups(t, db)
	ownerID, _ := signUpUser(t, auth, "juan")

	group, err := groups.Create(context.Background(), ownerID, &models.SaveGroupRequest{Name: "Grupo"})
	require.NoError(t, err)

	require.NoError(t, groups.Delete(context.Background(), ownerID, group.ID))

	list, err := groups.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)

	// Silinmiş gruba join de edilemez
	require.ErrorIs(t, groups.Join(context.Background(), ownerID, group.ID), pkg.ErrNotFound)
}
