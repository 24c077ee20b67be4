package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fitzone/fitzone-be/internal/calc"
)

// CalcHandler serves the stateless BMR/TDEE calculator endpoint.
type CalcHandler struct{}

// NewCalcHandler creates a new CalcHandler.
func NewCalcHandler() *CalcHandler {
	return &CalcHandler{}
}

// Calculate computes BMR and TDEE from a JSON payload. Every failure,
// whatever the cause, is reported as a 400 with the error message.
func (h *CalcHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		calcError(w, err)
		return
	}

	height, err := numberField(payload, "height")
	if err != nil {
		calcError(w, err)
		return
	}
	weight, err := numberField(payload, "weight")
	if err != nil {
		calcError(w, err)
		return
	}
	age, err := numberField(payload, "age")
	if err != nil {
		calcError(w, err)
		return
	}

	// Only an absent key defaults to male; any present non-string value
	// falls through to the female branch like every other non-male value.
	sex := "male"
	if raw, ok := payload["sex"]; ok {
		sex, _ = raw.(string)
	}

	activity := calc.DefaultActivity
	if _, ok := payload["activity"]; ok {
		activity, err = numberField(payload, "activity")
		if err != nil {
			calcError(w, err)
			return
		}
	}

	result := calc.Calculate(calc.Input{
		HeightCM: height,
		WeightKG: weight,
		AgeYears: age,
		Sex:      sex,
		Activity: activity,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// numberField extracts a required numeric field, accepting JSON numbers and
// numeric strings.
func numberField(payload map[string]interface{}, key string) (float64, error) {
	value, ok := payload[key]
	if !ok || value == nil {
		return 0, fmt.Errorf("missing field %q", key)
	}

	switch v := value.(type) {
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not a number", key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q is not a number", key)
	}
}

func calcError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
