package repository

import (
	"context"

	"hirehub/internal/database"
	"hirehub/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	result := database.DB.WithContext(ctx).Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

func UpdateUserPassword(ctx context.Context, userID uint, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password", string(hashedPassword)).Error
}

func DeleteUser(ctx context.Context, userID uint) error {
	return database.DB.WithContext(ctx).Delete(&models.User{}, userID).Error
}
