package models

import "time"

// PortfolioItem is one published piece of studio work.
type PortfolioItem struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Category    string    `bson:"category" json:"category"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Package is a bookable photography package.
type Package struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       int      `bson:"price" json:"price"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
	Popular     bool     `bson:"popular" json:"popular"`
}
