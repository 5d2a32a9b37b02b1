package validator

import "github.com/go-playground/validator/v10"

var knownRoles = map[string]struct{}{
	"fan":       {},
	"organizer": {},
	"security":  {},
	"emergency": {},
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("role", validateRole)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// role names are case-sensitive, same as the push topics they double as
func validateRole(fl validator.FieldLevel) bool {
	_, ok := knownRoles[fl.Field().String()]
	return ok
}
