package services

import (
	"context"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// GroupService, topluluk işlemleri.
// Grubu güncelleme/silme sadece sahibine aittir; üyelik herkese açıktır.
type GroupService interface {
	Create(ctx context.Context, ownerID string, req *models.SaveGroupRequest) (*models.Group, error)
	Get(ctx context.Context, id string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	Update(ctx context.Context, userID, groupID string, req *models.SaveGroupRequest) (*models.Group, error)
	Delete(ctx context.Context, userID, groupID string) error

	Join(ctx context.Context, userID, groupID string) error
	Leave(ctx context.Context, userID, groupID string) error
	Members(ctx context.Context, groupID string) ([]models.GroupMember, error)
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, ownerID string, req *models.SaveGroupRequest) (*models.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	group := &models.Group{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	// Sahip otomatik üyedir — kendi grubuna ayrıca join etmesi gerekmez.
	if err := s.groupRepo.AddMember(ctx, group.ID, ownerID); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *groupService) Get(ctx context.Context, id string) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *groupService) List(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.GetAll(ctx)
}

func (s *groupService) Update(ctx context.Context, userID, groupID string, req *models.SaveGroupRequest) (*models.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	group, err := s.ownedGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *groupService) Delete(ctx context.Context, userID, groupID string) error {
	if _, err := s.ownedGroup(ctx, userID, groupID); err != nil {
		return err
	}
	return s.groupRepo.Disable(ctx, groupID)
}

func (s *groupService) Join(ctx context.Context, userID, groupID string) error {
	// Grubun varlığı (ve enabled olduğu) doğrulanmadan üyelik yazılmaz.
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.groupRepo.AddMember(ctx, groupID, userID)
}

func (s *groupService) Leave(ctx context.Context, userID, groupID string) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.groupRepo.RemoveMember(ctx, groupID, userID)
}

func (s *groupService) Members(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.groupRepo.ListMembers(ctx, groupID)
}

func (s *groupService) ownedGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != userID {
		return nil, pkg.ErrForbidden
	}
	return group, nil
}
