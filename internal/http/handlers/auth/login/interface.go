package login

import (
	"context"

	"github.com/magabrotheeeer/auth-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}
