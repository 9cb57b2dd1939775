package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"vinylstore/internal/models"
)

// FieldError describes a single validation failure on one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// messages maps "<field>.<rule>" to the user-facing text.
var messages = map[string]string{
	"name.required":            "El nombre es obligatorio",
	"name.min":                 "El nombre debe tener al menos 3 caracteres",
	"name.max":                 "El nombre no puede superar los 255 caracteres",
	"artist.required":          "El artista es obligatorio",
	"artist.min":               "El artista debe tener al menos 2 caracteres",
	"artist.max":               "El artista no puede superar los 255 caracteres",
	"description.required":     "La descripción es requerida",
	"description.min":          "La descripción debe tener al menos 10 caracteres",
	"price.required":           "El precio es obligatorio",
	"price.gt":                 "El precio debe ser mayor a 0",
	"price.price2dp":           "El precio admite como máximo 2 decimales",
	"stock.required":           "El stock es obligatorio",
	"stock.gte":                "El stock no puede ser negativo",
	"genre.genre":              "El género no es válido",
	"release_year.releaseyear": "El año de lanzamiento debe estar entre 1950 y el año actual",
}

// New builds a validator with the catalog rules registered. Field names in
// validation errors are the json tag names, matching the wire format.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// price2dp: at most two fractional digits.
	_ = v.RegisterValidation("price2dp", func(fl validator.FieldLevel) bool {
		price := fl.Field().Float()
		scaled := price * 100
		return math.Abs(scaled-math.Round(scaled)) < 1e-9
	})

	// genre: membership in the fixed genre set.
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return models.IsValidGenre(fl.Field().String())
	})

	// releaseyear: within [1950, current year].
	_ = v.RegisterValidation("releaseyear", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1950 && year <= int64(time.Now().Year())
	})

	return v
}

// ValidateProduct checks every rule on the payload and returns all
// violations together; a nil slice means the payload is valid.
func ValidateProduct(v *validator.Validate, input *models.ProductInput) []FieldError {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payload", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		message, ok := messages[e.Field()+"."+e.Tag()]
		if !ok {
			message = fmt.Sprintf("El campo '%s' no pasó la regla '%s'", e.Field(), e.Tag())
		}
		fieldErrors = append(fieldErrors, FieldError{Field: e.Field(), Message: message})
	}
	return fieldErrors
}
