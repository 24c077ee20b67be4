// Package calc implements the BMR/TDEE calorie calculator. It is pure
// computation with no state or side effects.
package calc

import "math"

// DefaultActivity is the activity factor applied when the client omits one.
const DefaultActivity = 1.55

// Input holds the calculator parameters.
type Input struct {
	HeightCM float64
	WeightKG float64
	AgeYears float64
	Sex      string
	Activity float64
}

// Result holds the rounded calculator output.
type Result struct {
	BMR  int `json:"bmr"`
	TDEE int `json:"tdee"`
}

// Calculate computes Basal Metabolic Rate via the Mifflin-St Jeor formula
// and scales it by the activity factor. Any sex value other than exactly
// "male" selects the female constant. Both outputs are rounded, with TDEE
// derived from the unrounded BMR.
func Calculate(in Input) Result {
	bmr := 10*in.WeightKG + 6.25*in.HeightCM - 5*in.AgeYears
	if in.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	activity := in.Activity
	if activity == 0 {
		activity = DefaultActivity
	}

	return Result{
		BMR:  int(math.Round(bmr)),
		TDEE: int(math.Round(bmr * activity)),
	}
}
