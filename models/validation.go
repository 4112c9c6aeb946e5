package models

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxRequestImages is the server-side cap on images per request. The form
// enforces its own tighter staging limit on top of this.
const MaxRequestImages = 10

// MinProjectYear is the oldest year a project may carry. The upper bound is
// five years past the current year, evaluated at validation time.
const MinProjectYear = 1900

func maxProjectYear() int {
	return time.Now().Year() + 5
}

func knownCategory(value interface{}) error {
	t, _ := value.(ProjectType)
	if !t.Valid() {
		return errors.New("Please select a project type")
	}
	return nil
}

// Validate applies the creation rule set: all fields bounded and at least
// one image attached.
func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Client,
			validation.Required.Error("Client name must be at least 3 characters"),
			validation.Length(3, 0).Error("Client name must be at least 3 characters"),
			validation.Length(0, 100).Error("Client name must be less than 100 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("Please select a project type"),
			validation.By(knownCategory),
		),
		validation.Field(&r.Location,
			validation.Required.Error("Location must be at least 2 characters"),
			validation.Length(2, 0).Error("Location must be at least 2 characters"),
			validation.Length(0, 100).Error("Location must be less than 100 characters"),
		),
		validation.Field(&r.Service,
			validation.Required.Error("Service must be at least 3 characters"),
			validation.Length(3, 0).Error("Service must be at least 3 characters"),
			validation.Length(0, 100).Error("Service must be less than 100 characters"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("Year must be after 1900"),
			validation.Min(MinProjectYear).Error("Year must be after 1900"),
			validation.Max(maxProjectYear()).Error("Year cannot be more than 5 years in the future"),
		),
		validation.Field(&r.Images,
			validation.Required.Error("At least one image is required"),
			validation.Length(0, MaxRequestImages).Error("Maximum 10 images allowed"),
		),
	)
}

// Validate applies the update rule set: identical field bounds, but images
// are optional. An absent image list leaves the stored images unchanged.
func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Client,
			validation.Required.Error("Client name must be at least 3 characters"),
			validation.Length(3, 0).Error("Client name must be at least 3 characters"),
			validation.Length(0, 100).Error("Client name must be less than 100 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("Please select a project type"),
			validation.By(knownCategory),
		),
		validation.Field(&r.Location,
			validation.Required.Error("Location must be at least 2 characters"),
			validation.Length(2, 0).Error("Location must be at least 2 characters"),
			validation.Length(0, 100).Error("Location must be less than 100 characters"),
		),
		validation.Field(&r.Service,
			validation.Required.Error("Service must be at least 3 characters"),
			validation.Length(3, 0).Error("Service must be at least 3 characters"),
			validation.Length(0, 100).Error("Service must be less than 100 characters"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("Year must be after 1900"),
			validation.Min(MinProjectYear).Error("Year must be after 1900"),
			validation.Max(maxProjectYear()).Error("Year cannot be more than 5 years in the future"),
		),
		validation.Field(&r.Images,
			validation.Length(0, MaxRequestImages).Error("Maximum 10 images allowed"),
		),
	)
}
