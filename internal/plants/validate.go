package plants

import (
	"strconv"
	"strings"

	"github.com/plantcare-app/plantcare/internal/common"
)

// FormInput is the raw text a plant form collects before validation.
type FormInput struct {
	Name             string
	Species          string
	LastWatered      string
	WateringInterval string
}

// Validate applies the local form rules and converts the input into store
// fields. It runs before any network call; an invalid form never reaches
// the store. Empty optional inputs become nil fields (stored as null).
func (in FormInput) Validate() (Fields, error) {
	var f Fields

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return f, common.NewValidationError("name is required")
	}
	f.Name = name

	if species := strings.TrimSpace(in.Species); species != "" {
		f.Species = &species
	}

	if raw := strings.TrimSpace(in.WateringInterval); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Fields{}, common.NewValidationError("watering interval must be a number")
		}
		if n <= 0 {
			return Fields{}, common.NewValidationError("watering interval must be a positive number")
		}
		f.WateringIntervalDays = &n
	}

	if raw := strings.TrimSpace(in.LastWatered); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			return Fields{}, common.NewValidationError("last watered date must be YYYY-MM-DD")
		}
		f.LastWatered = &d
	}

	return f, nil
}
