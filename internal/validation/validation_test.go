package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vinylstore/internal/models"
	"vinylstore/internal/validation"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

// validInput returns a payload passing every rule; tests break one field at
// a time.
func validInput() models.ProductInput {
	return models.ProductInput{
		Name:        "Abbey Road",
		Artist:      "The Beatles",
		Description: "Iconic eleventh studio album",
		Price:       floatPtr(19.99),
		Stock:       intPtr(5),
		Genre:       strPtr("Rock Clásico"),
		ReleaseYear: intPtr(1969),
	}
}

func fields(errs []validation.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateProduct_ValidPayload(t *testing.T) {
	v := validation.New()
	input := validInput()

	assert.Nil(t, validation.ValidateProduct(v, &input))
}

func TestValidateProduct_OptionalFieldsMayBeAbsent(t *testing.T) {
	v := validation.New()
	input := validInput()
	input.Genre = nil
	input.ReleaseYear = nil

	assert.Nil(t, validation.ValidateProduct(v, &input))
}

func TestValidateProduct_SingleRuleViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ProductInput)
		wantField string
	}{
		{"missing name", func(in *models.ProductInput) { in.Name = "" }, "name"},
		{"name too short", func(in *models.ProductInput) { in.Name = "ab" }, "name"},
		{"artist too short", func(in *models.ProductInput) { in.Artist = "x" }, "artist"},
		{"missing artist", func(in *models.ProductInput) { in.Artist = "" }, "artist"},
		{"description too short", func(in *models.ProductInput) { in.Description = "corta" }, "description"},
		{"missing price", func(in *models.ProductInput) { in.Price = nil }, "price"},
		{"negative price", func(in *models.ProductInput) { in.Price = floatPtr(-5) }, "price"},
		{"zero price", func(in *models.ProductInput) { in.Price = floatPtr(0) }, "price"},
		{"price with three decimals", func(in *models.ProductInput) { in.Price = floatPtr(19.999) }, "price"},
		{"missing stock", func(in *models.ProductInput) { in.Stock = nil }, "stock"},
		{"negative stock", func(in *models.ProductInput) { in.Stock = intPtr(-1) }, "stock"},
		{"unknown genre", func(in *models.ProductInput) { in.Genre = strPtr("Cumbia") }, "genre"},
		{"release year before 1950", func(in *models.ProductInput) { in.ReleaseYear = intPtr(1949) }, "release_year"},
		{"release year in the future", func(in *models.ProductInput) { in.ReleaseYear = intPtr(time.Now().Year() + 1) }, "release_year"},
	}

	v := validation.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			errs := validation.ValidateProduct(v, &input)
			assert.NotEmpty(t, errs)
			assert.Contains(t, fields(errs), tt.wantField)
			for _, e := range errs {
				assert.NotEmpty(t, e.Message)
			}
		})
	}
}

func TestValidateProduct_ZeroStockIsValid(t *testing.T) {
	v := validation.New()
	input := validInput()
	input.Stock = intPtr(0)

	assert.Nil(t, validation.ValidateProduct(v, &input))
}

func TestValidateProduct_CollectsAllViolations(t *testing.T) {
	v := validation.New()
	input := models.ProductInput{
		Name:        "ab",
		Artist:      "",
		Description: "corta",
		Price:       floatPtr(-1),
		Stock:       nil,
	}

	errs := validation.ValidateProduct(v, &input)
	got := fields(errs)
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "artist")
	assert.Contains(t, got, "description")
	assert.Contains(t, got, "price")
	assert.Contains(t, got, "stock")
}

func TestValidateProduct_EveryGenreAccepted(t *testing.T) {
	v := validation.New()
	for _, genre := range models.Genres {
		input := validInput()
		input.Genre = strPtr(genre)
		assert.Nil(t, validation.ValidateProduct(v, &input), "genre %q should be valid", genre)
	}
}
