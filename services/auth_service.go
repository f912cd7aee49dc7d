package services

import (
	"errors"

	"backend/apperrors"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.IO("failed to check username", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict("username %q is taken", username)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.IO("failed to hash password", err)
	}

	user := &models.User{Username: username, Password: hashed}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.IO("failed to create user", err)
	}
	return user, nil
}

// Authenticate returns a signed session token for valid credentials.
func (s *AuthService) Authenticate(username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Authorization("invalid credentials")
		}
		return "", nil, apperrors.IO("failed to load user", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, apperrors.Authorization("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, apperrors.IO("failed to sign token", err)
	}
	return token, &user, nil
}

type ProfileInput struct {
	Name   *string  `json:"name"`
	Phone  *string  `json:"phone"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

func (s *AuthService) UpdateProfile(userID uint, in ProfileInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user %d not found", userID)
		}
		return nil, apperrors.IO("failed to load user", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Weight != nil {
		user.Weight = *in.Weight
	}
	if in.Height != nil {
		user.Height = *in.Height
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperrors.IO("failed to update profile", err)
	}
	return &user, nil
}
