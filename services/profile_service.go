package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// ProfileService, kullanıcı profili işlemleri.
//
// Get, profil yoksa 404 döner — kayıt üretmez. Update ise upsert'tür:
// kayıt yoksa oluşturur, varsa günceller ve profil adını users.name ile
// senkron tutar. İki tabloya yazma tek transaction'da yapılır.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.Profile, error)
}

type profileService struct {
	db           *sql.DB // Update'te WithTx için doğrudan bağlantı gerekir
	profileRepo  repository.ProfileRepository
	provinceRepo repository.ProvinceRepository
}

func NewProfileService(
	db *sql.DB,
	profileRepo repository.ProfileRepository,
	provinceRepo repository.ProvinceRepository,
) ProfileService {
	return &profileService{
		db:           db,
		profileRepo:  profileRepo,
		provinceRepo: provinceRepo,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Province referansı verilmişse var olmalı. FK hatasını DB'den
	// beklemek yerine burada anlamlı bir alan hatasına çevrilir.
	if req.ProvinceID != "" {
		if _, err := s.provinceRepo.GetByID(ctx, req.ProvinceID); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, pkg.NewValidationError("province", "La provincia no existe.")
			}
			return nil, err
		}
	}

	var profile *models.Profile

	// Profil ve users.name tek transaction'da güncellenir:
	// yarısı yazılmış durum (profil yeni ad, user eski ad) oluşamaz.
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txUsers := repository.NewSQLiteUserRepo(tx)

		existing, err := txProfiles.GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, pkg.ErrNotFound):
			profile = &models.Profile{UserID: userID}
			applyProfileFields(profile, req)
			if err := txProfiles.Create(ctx, profile); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			profile = existing
			applyProfileFields(profile, req)
			if err := txProfiles.Update(ctx, profile); err != nil {
				return err
			}
		}

		return txUsers.UpdateName(ctx, userID, req.Name)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func applyProfileFields(profile *models.Profile, req *models.UpdateProfileRequest) {
	profile.Name = req.Name
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.Address = req.Address
	profile.Picture = req.Picture
	profile.ProvinceID = req.ProvinceID
}
