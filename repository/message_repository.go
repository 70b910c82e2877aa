package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// MessageRepository, kullanıcılar arası özel mesajlar.
// Erişim kontrolü (katılımcı mı, gönderen mi) service katmanındadır;
// repository sadece veri döner.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	// ListForUser, kullanıcının gönderdiği VEYA aldığı mesajları
	// yeniden eskiye sıralı döner.
	ListForUser(ctx context.Context, userID string) ([]models.Message, error)
	Disable(ctx context.Context, id string) error
}
