package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"framelight/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seed populates the portfolio and packages collections on first run so a
// fresh deployment has content behind the static endpoints. Existing
// documents are left alone.
func (r *MongoCatalogRepo) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	portfolioCount, err := r.portfolio.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count portfolio items: %w", err)
	}
	if portfolioCount == 0 {
		docs := make([]interface{}, 0, len(defaultPortfolio))
		for _, item := range defaultPortfolio {
			docs = append(docs, item)
		}
		if _, err := r.portfolio.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed portfolio: %w", err)
		}
	}

	packageCount, err := r.packages.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count packages: %w", err)
	}
	if packageCount == 0 {
		docs := make([]interface{}, 0, len(defaultPackages))
		for _, p := range defaultPackages {
			docs = append(docs, p)
		}
		if _, err := r.packages.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed packages: %w", err)
		}
	}

	return nil
}

var defaultPortfolio = []models.PortfolioItem{
	{
		ID:          "golden-hour-vows",
		Title:       "Golden Hour Vows",
		Category:    "wedding",
		ImageURL:    "https://images.framelight.studio/portfolio/golden-hour-vows.jpg",
		Description: "An outdoor ceremony captured in late-afternoon light.",
		CreatedAt:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "studio-portrait-series",
		Title:       "Studio Portrait Series",
		Category:    "portrait",
		ImageURL:    "https://images.framelight.studio/portfolio/studio-portrait-series.jpg",
		Description: "Classic single-light portraits on seamless backdrop.",
		CreatedAt:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "gallery-opening-night",
		Title:       "Gallery Opening Night",
		Category:    "event",
		ImageURL:    "https://images.framelight.studio/portfolio/gallery-opening-night.jpg",
		Description: "Candid coverage of a downtown gallery opening.",
		CreatedAt:   time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "autumn-family-session",
		Title:       "Autumn Family Session",
		Category:    "family",
		ImageURL:    "https://images.framelight.studio/portfolio/autumn-family-session.jpg",
		Description: "A relaxed family session in the park.",
		CreatedAt:   time.Date(2024, 10, 19, 0, 0, 0, 0, time.UTC),
	},
}

var defaultPackages = []models.Package{
	{
		ID:          "essential",
		Name:        "Essential Session",
		Price:       599,
		Description: "A focused two-hour session for portraits or small occasions.",
		Features:    []string{"2 hours of coverage", "50 edited photos", "Online gallery"},
	},
	{
		ID:          "signature",
		Name:        "Signature Collection",
		Price:       1299,
		Description: "Half-day coverage for engagements, family milestones, and events.",
		Features:    []string{"5 hours of coverage", "200 edited photos", "Online gallery", "Print release"},
		Popular:     true,
	},
	{
		ID:          "full-day",
		Name:        "Full Day Story",
		Price:       2499,
		Description: "Complete wedding-day coverage from preparations to last dance.",
		Features:    []string{"10 hours of coverage", "500+ edited photos", "Second photographer", "Keepsake album"},
	},
}
