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

func newTestMessages(t *testing.T, db *database.DB) MessageService {
	t.Helper()
	return NewMessageService(
		repository.NewSQLiteMessageRepo(db.Conn),
		repository.NewSQLiteUserRepo(db.Conn),
	)
}

func TestMessageSendAndListBothSides(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	messages := newTestMessages(t, db)
	juanID, _ := signUpUser(t, auth, "juan")
	mariaID, _ := signUpUser(t, auth, "maria")

	sent, err := messages.Send(context.Background(), juanID, &models.SendMessageRequest{
		ToUserID: mariaID,
		Content:  "Hola!",
	})
	require.NoError(t, err)
	require.Equal(t, juanID, sent.FromUserID)

	// Hem gönderen hem alan kendi listesinde görür
	forJuan, err := messages.List(context.Background(), juanID)
	require.NoError(t, err)
	require.Len(t, forJuan, 1)

	forMaria, err := messages.List(context.Background(), mariaID)
	require.NoError(t, err)
	require.Len(t, forMaria, 1)
	require.Equal(t, "Hola!", forMaria[0].Content)
}

func TestMessageSendToUnknownUserIsNotFound(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	messages := newTestMessages(t, db)
	juanID, _ := signUpUser(t, auth, "juan")

	_, err := messages.Send(context.Background(), juanID, &models.SendMessageRequest{
		ToUserID: "hic-yok",
		Content:  "Hola?",
	})
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestMessageGetByOutsiderForbidden(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	messages := newTestMessages(t, db)
	juanID, _ := signUpUser(t, auth, "juan")
	mariaID, _ := signUpUser(t, auth, "maria")
	pedroID, _ := signUpUser(t, auth, "pedro")

	sent, err := messages.Send(context.Background(), juanID, &models.SendMessageRequest{
		ToUserID: mariaID,
		Content:  "Privado",
	})
	require.NoError(t, err)

	// Katılımcılar okuyabilir
	_, err = messages.Get(context.Background(), juanID, sent.ID)
	require.NoError(t, err)
	_, err = messages.Get(context.Background(), mariaID, sent.ID)
	require.NoError(t, err)

	// Üçüncü kişi okuyamaz
	_, err = messages.Get(context.Background(), pedroID, sent.ID)
	require.ErrorIs(t, err, pkg.ErrForbidden)
}

func TestMessageDeleteOnlyBySender(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	messages := newTestMessages(t, db)
	juanID, _ := signUpUser(t, auth, "juan")
	mariaID, _ := signUpUser(t, auth, "maria")

	sent, err := messages.Send(context.Background(), juanID, &models.SendMessageRequest{
		ToUserID: mariaID,
		Content:  "Borrame",
	})
	require.NoError(t, err)

	// Alıcı silemez
	require.ErrorIs(t, messages.Delete(context.Background(), mariaID, sent.ID), pkg.ErrForbidden)

	// Gönderen siler; mesaj iki taraftan da kaybolur
	require.NoError(t, messages.Delete(context.Background(), juanID, sent.ID))

	_, err = messages.Get(context.Background(), mariaID, sent.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	forMaria, err := messages.List(context.Background(), mariaID)
	require.NoError(t, err)
	require.Empty(t, forMaria)
}

func TestMessageValidation(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	messages := newTestMessages(t, db)
	juanID, _ := signUpUser(t, auth, "juan")

	_, err := messages.Send(context.Background(), juanID, &models.SendMessageRequest{
		ToUserID: "",
		Content:  "   ",
	})

	var verr *pkg.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Messages, 2)
}
