package countries

import (
	"context"
	"strings"

	"country-currency/feature/countries/models"
)

// QueryService serves the read side and explicit deletes.
type QueryService struct {
	repo *Repository
}

// NewQueryService creates a new query service.
func NewQueryService(repo *Repository) *QueryService {
	return &QueryService{repo: repo}
}

// List returns the countries matching q.
func (s *QueryService) List(ctx context.Context, q ListQuery) ([]models.Country, error) {
	return s.repo.List(ctx, q)
}

// GetByName returns the country matching name case-insensitively.
func (s *QueryService) GetByName(ctx context.Context, name string) (*models.Country, error) {
	name = strings.TrimSpace(name)
	if err := requireName(name); err != nil {
		return nil, err
	}
	return s.repo.FindByName(ctx, name)
}

// DeleteByName removes the country matching name. It returns false, and
// leaves the set unchanged, when nothing matched.
func (s *QueryService) DeleteByName(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if err := requireName(name); err != nil {
		return false, err
	}
	return s.repo.DeleteByName(ctx, name)
}
