package models

import "time"

// Genres is the fixed set of genre labels a product may carry.
var Genres = []string{
	"Rock Clásico",
	"Hard Rock",
	"Heavy Metal",
	"Punk Rock",
	"Alternative Rock",
	"Progressive Rock",
	"Grunge",
	"Indie Rock",
}

// IsValidGenre reports whether g is one of the catalog genres.
func IsValidGenre(g string) bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Product represents a vinyl record in the catalog.
// ID, ImageURL and CreatedAt are assigned by the store at creation and never
// altered by updates. Deletes remove the row; there is no soft-delete column.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:255;uniqueIndex:idx_products_name_artist"`
	Artist      string    `json:"artist" gorm:"size:255;uniqueIndex:idx_products_name_artist"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Genre       *string   `json:"genre" gorm:"size:50"`
	ReleaseYear *int      `json:"release_year"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductInput is the request payload for create and update.
// Price and Stock are pointers so a missing field is distinguishable from a
// zero value when checking required-ness.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,min=3,max=255"`
	Artist      string   `json:"artist" validate:"required,min=2,max=255"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       *float64 `json:"price" validate:"required,gt=0,price2dp"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Genre       *string  `json:"genre" validate:"omitempty,genre"`
	ReleaseYear *int     `json:"release_year" validate:"omitempty,releaseyear"`
}
