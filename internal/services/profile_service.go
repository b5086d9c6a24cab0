package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
	appErr "github.com/folioforge/engine/pkg/errors"
)

// MaxAvatarBytes caps avatar uploads; avatars are stored inline as data URLs
// so oversize images would bloat every profile read.
const MaxAvatarBytes = 2 << 20

type UpdateProfileInput struct {
	Name     *string
	Headline *string
	Bio      *string
	Location *string
	Phone    *string
	Website  *string
}

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*models.User, error)
	SetAvatar(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (string, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

var _ ProfileService = (*profileService)(nil)

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Headline != nil {
		u.Headline = *input.Headline
	}
	if input.Bio != nil {
		u.Bio = *input.Bio
	}
	if input.Location != nil {
		u.Location = *input.Location
	}
	if input.Phone != nil {
		u.Phone = *input.Phone
	}
	if input.Website != nil {
		u.Website = *input.Website
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SetAvatar validates the uploaded image and stores it inline as a data URL.
func (s *profileService) SetAvatar(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", appErr.New(appErr.CodeInvalid, "avatar must be an image")
	}
	if len(data) == 0 || len(data) > MaxAvatarBytes {
		return "", appErr.New(appErr.CodeInvalid, "avatar must be between 1 byte and 2 MiB")
	}

	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return "", err
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	u.Avatar = dataURL
	if err := s.userRepo.Update(ctx, &u); err != nil {
		return "", err
	}
	return dataURL, nil
}
