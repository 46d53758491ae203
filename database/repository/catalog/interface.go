package catalogRepo

import (
	"context"

	"framelight/models"
)

// CatalogRepository serves the static site content: published portfolio work
// and the bookable package list. Both are read-only from the API's point of
// view.
type CatalogRepository interface {
	Portfolio(ctx context.Context) ([]models.PortfolioItem, error)
	Packages(ctx context.Context) ([]models.Package, error)
}
