// Package suggest maps learned description patterns to categories, so
// imported records can be pre-categorized before review.
package suggest

//go:generate mockgen -source=suggest.go -destination=repository_mock.go -package=suggest
type Repository interface {
	// FindMatch returns the category of the best pattern matching the
	// description, or "" when nothing matches.
	FindMatch(desc string) (string, error)
	CreateMapping(pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category for the given description. Returns
// empty string if no pattern matches.
func (s *Service) Suggest(desc string) (string, error) {
	return s.repo.FindMatch(desc)
}

// Learn remembers a new mapping between a description pattern and a
// category.
func (s *Service) Learn(pattern, category string) error {
	return s.repo.CreateMapping(pattern, category)
}
