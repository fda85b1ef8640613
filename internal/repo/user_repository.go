package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// UserRepository defines the interface for user account operations.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByEmail(email string) (models.User, error)
}
