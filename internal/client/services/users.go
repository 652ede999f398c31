package services

import (
	"context"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
)

type UserService struct {
	api client.Client
}

func NewUserService(api client.Client) *UserService {
	return &UserService{api: api}
}

// Get returns a user profile, served from the cache when possible.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.api.User(ctx, id, client.CacheFirst)
}
