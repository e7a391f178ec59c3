package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PH mobile format as the intake wizard enforces it: 09 then 9 digits.
var phMobileRe = regexp.MustCompile(`^09\d{9}$`)

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {},
	"B+": {}, "B-": {},
	"O+": {}, "O-": {},
	"AB+": {}, "AB-": {},
}

func IsPHMobile(s string) bool {
	return phMobileRe.MatchString(s)
}

func IsBloodType(s string) bool {
	_, ok := bloodTypes[s]
	return ok
}

// New returns a validator with the portal's custom tags registered.
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("ph_mobile", func(fl validator.FieldLevel) bool {
		return IsPHMobile(fl.Field().String())
	})
	_ = v.RegisterValidation("blood_type", func(fl validator.FieldLevel) bool {
		return IsBloodType(fl.Field().String())
	})

	return v
}
