package services

import (
	"errors"

	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(userID uint) (*models.User, error)
	UpdateSettings(userID uint, req models.UpdateSettingsRequest) (*models.User, error)
	SetProfilePhoto(userID uint, path string) (*models.User, error)
	RemoveProfilePhoto(userID uint) error
}

type profileService struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, err
	}
	return user, nil
}

// UpdateSettings applies a partial update to username, email or password.
// Uniqueness and the password policy are checked before anything is written.
func (s *profileService) UpdateSettings(userID uint, req models.UpdateSettingsRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if other, err := s.userRepo.GetByUsername(*req.Username); err == nil && other.ID != user.ID {
			return nil, models.NewFieldError("username", "This username is already taken.")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = *req.Username
	}

	if req.Email != nil && *req.Email != user.Email {
		if other, err := s.userRepo.GetByEmail(*req.Email); err == nil && other.ID != user.ID {
			return nil, models.NewFieldError("email", "This email is already in use.")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		if err := ValidatePassword(*req.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *profileService) SetProfilePhoto(userID uint, path string) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.ProfilePhoto = path
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *profileService) RemoveProfilePhoto(userID uint) error {
	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}

	if user.ProfilePhoto == "" {
		return models.ErrorValidation{Message: "No profile photo to remove"}
	}

	user.ProfilePhoto = ""
	return s.userRepo.Update(user)
}
