package services

import (
	"context"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// MessageService, kullanıcılar arası özel mesajlar.
// Bir mesajı sadece katılımcıları okuyabilir; silme gönderene aittir.
type MessageService interface {
	Send(ctx context.Context, fromUserID string, req *models.SendMessageRequest) (*models.Message, error)
	// List, kullanıcının gönderdiği ve aldığı tüm mesajlar.
	List(ctx context.Context, userID string) ([]models.Message, error)
	Get(ctx context.Context, userID, messageID string) (*models.Message, error)
	Delete(ctx context.Context, userID, messageID string) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *messageService) Send(ctx context.Context, fromUserID string, req *models.SendMessageRequest) (*models.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Alıcı var olmalı — FK hatası yerine 404.
	if _, err := s.userRepo.GetByID(ctx, req.ToUserID); err != nil {
		return nil, err
	}

	message := &models.Message{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *messageService) List(ctx context.Context, userID string) ([]models.Message, error) {
	return s.messageRepo.ListForUser(ctx, userID)
}

func (s *messageService) Get(ctx context.Context, userID, messageID string) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	// Katılımcı olmayan mesajı göremez.
	if message.FromUserID != userID && message.ToUserID != userID {
		return nil, pkg.ErrForbidden
	}

	return message, nil
}

func (s *messageService) Delete(ctx context.Context, userID, messageID string) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	// Alıcı bile silemez — silme hakkı yalnızca gönderende.
	if message.FromUserID != userID {
		return pkg.ErrForbidden
	}

	return s.messageRepo.Disable(ctx, messageID)
}
