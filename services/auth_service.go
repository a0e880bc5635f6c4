package services

import (
	"errors"

	"platebook/config"
	"platebook/models"
	"platebook/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Country   string `json:"country"`
	Email     string `json:"email"`
}

func RegisterUser(in RegisterInput) error {
	var count int64
	err := config.DB.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserExists
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:  in.Username,
		Password:  hashedPassword,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Country:   in.Country,
		Email:     in.Email,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// AuthenticateUser verifies the credentials and returns a signed token.
func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", errors.New("username incorrect")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("password incorrect")
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}
