package util

import "testing"

func TestPlateNumberValidation(t *testing.T) {
	type form struct {
		Plate string `validate:"required,platenumber"`
	}

	valid := []string{
		"B 1234 XYZ",
		"B1234XYZ",
		"B-1234-XYZ",
		"AB 12 CD",
		"D 1 A",
		"B 1234",
	}
	for _, plate := range valid {
		if errs := ValidateStruct(form{Plate: plate}); errs != nil {
			t.Errorf("plat %q harusnya valid, dapat %v", plate, errs[0].Msg)
		}
	}

	invalid := []string{
		"1234 XYZ",
		"ABC 1234 XY",
		"B 12345 XYZ",
		"B 1234 XYZW",
		"!!@#",
	}
	for _, plate := range invalid {
		if errs := ValidateStruct(form{Plate: plate}); errs == nil {
			t.Errorf("plat %q harusnya ditolak", plate)
		}
	}
}

func TestHasUppercaseValidation(t *testing.T) {
	type form struct {
		Password string `validate:"required,hasuppercase"`
	}

	if errs := ValidateStruct(form{Password: "Password123"}); errs != nil {
		t.Errorf("password dengan huruf kapital harusnya valid, dapat %v", errs[0].Msg)
	}
	if errs := ValidateStruct(form{Password: "password123"}); errs == nil {
		t.Error("password tanpa huruf kapital harusnya ditolak")
	}
}
