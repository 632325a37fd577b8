package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByAuthUserID(authUserID uuid.UUID) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByID(id uuid.UUID) (*User, error)
	FindAll() ([]User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByAuthUserID(authUserID uuid.UUID) (*User, error) {
	var u User
	err := r.db.Preload("Department").First(&u, "auth_user_id = ?", authUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.First(&u, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	err := r.db.Preload("Department").First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll() ([]User, error) {
	var users []User
	if err := r.db.Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
