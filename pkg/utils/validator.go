package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var plateRegex = regexp.MustCompile(`^[A-Za-z]{1,2}[ -]?[0-9]{1,4}[ -]?[A-Za-z]{0,3}$`)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
	Validate.RegisterValidation("platenumber", validatePlateNumber)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	return regexp.MustCompile(`[A-Z]`).MatchString(password)
}

// validatePlateNumber menerima format nomor polisi Indonesia, dengan atau
// tanpa spasi/tanda hubung. Normalisasi dilakukan terpisah di models.
func validatePlateNumber(fl validator.FieldLevel) bool {
	return plateRegex.MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {

		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Kolom '%s' wajib diisi.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki minimal %s karakter/nilai.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki maksimal %s karakter/nilai.", element.Field, err.Param())
			case "email":
				element.Msg = "Format email tidak valid."
			case "hasuppercase":
				element.Msg = "Password harus mengandung setidaknya satu huruf kapital."
			case "platenumber":
				element.Msg = "Format nomor polisi tidak valid."
			case "len":
				element.Msg = fmt.Sprintf("Kolom '%s' harus sepanjang %s karakter.", element.Field, err.Param())
			case "numeric":
				element.Msg = fmt.Sprintf("Kolom '%s' hanya boleh berisi angka.", element.Field)
			case "datetime":
				element.Msg = fmt.Sprintf("Kolom '%s' harus berformat '%s'.", element.Field, err.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("Kolom '%s' harus salah satu dari: %s.", element.Field, err.Param())
			default:

				element.Msg = fmt.Sprintf("Kolom '%s' gagal validasi untuk tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
