package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"framelight/database"
	"framelight/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	portfolio *mongo.Collection
	packages  *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo(db *database.Handle) *MongoCatalogRepo {
	return &MongoCatalogRepo{
		portfolio: db.Collection("portfolio"),
		packages:  db.Collection("packages"),
	}
}

// Portfolio retrieves all published portfolio items, newest first.
func (r *MongoCatalogRepo) Portfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.portfolio.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve portfolio: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.PortfolioItem{}
	for cursor.Next(ctx) {
		var item models.PortfolioItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode portfolio item: %w", err)
		}
		items = append(items, item)
	}
	return items, cursor.Err()
}

// Packages retrieves all packages, cheapest first.
func (r *MongoCatalogRepo) Packages(ctx context.Context) ([]models.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.packages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	pkgs := []models.Package{}
	for cursor.Next(ctx) {
		var p models.Package
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, cursor.Err()
}
