package models

import (
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateProjectRequest {
	return CreateProjectRequest{
		Client:   "Acme Co",
		Location: "Paris",
		Service:  "Renovation",
		Year:     2024,
		Category: TypeHotel,
		Images:   []ImageFile{{Name: "a.jpg", Data: []byte{0x1}}},
	}
}

func validUpdateRequest() UpdateProjectRequest {
	return UpdateProjectRequest{
		ID:       1,
		Client:   "Acme Co",
		Location: "Paris",
		Service:  "Renovation",
		Year:     2024,
		Category: TypeHotel,
	}
}

func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	require.Contains(t, errs, field)
	return errs[field].Error()
}

func TestCreateValidation_AcceptsValidRequest(t *testing.T) {
	require.NoError(t, validCreateRequest().Validate())
}

func TestCreateValidation_ClientBounds(t *testing.T) {
	req := validCreateRequest()
	req.Client = "ab"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Client name must be at least 3 characters", fieldMessage(t, err, "Client"))

	req.Client = ""
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Client name must be at least 3 characters", fieldMessage(t, err, "Client"))

	req.Client = strings.Repeat("x", 101)
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Client name must be less than 100 characters", fieldMessage(t, err, "Client"))

	req.Client = strings.Repeat("x", 100)
	require.NoError(t, req.Validate())
}

func TestCreateValidation_LocationBounds(t *testing.T) {
	req := validCreateRequest()
	req.Location = "x"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Location must be at least 2 characters", fieldMessage(t, err, "Location"))

	req.Location = "xy"
	require.NoError(t, req.Validate())
}

func TestCreateValidation_ServiceBounds(t *testing.T) {
	req := validCreateRequest()
	req.Service = "ab"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Service must be at least 3 characters", fieldMessage(t, err, "Service"))
}

func TestCreateValidation_YearWindow(t *testing.T) {
	req := validCreateRequest()

	req.Year = 1899
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Year must be after 1900", fieldMessage(t, err, "Year"))

	req.Year = 1900
	require.NoError(t, req.Validate())

	req.Year = time.Now().Year() + 5
	require.NoError(t, req.Validate())

	req.Year = time.Now().Year() + 6
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Year cannot be more than 5 years in the future", fieldMessage(t, err, "Year"))
}

func TestCreateValidation_Category(t *testing.T) {
	req := validCreateRequest()

	req.Category = ""
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please select a project type", fieldMessage(t, err, "Category"))

	req.Category = "warehouse"
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please select a project type", fieldMessage(t, err, "Category"))

	for _, category := range ProjectTypes {
		req.Category = category
		assert.NoError(t, req.Validate(), "category %s should be accepted", category)
	}
}

func TestCreateValidation_ImagesRequired(t *testing.T) {
	req := validCreateRequest()

	req.Images = nil
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "At least one image is required", fieldMessage(t, err, "Images"))

	req.Images = make([]ImageFile, MaxRequestImages+1)
	for i := range req.Images {
		req.Images[i] = ImageFile{Name: "img.jpg", Data: []byte{0x1}}
	}
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Maximum 10 images allowed", fieldMessage(t, err, "Images"))

	req.Images = req.Images[:MaxRequestImages]
	require.NoError(t, req.Validate())
}

func TestUpdateValidation_ImagesOptional(t *testing.T) {
	req := validUpdateRequest()
	require.NoError(t, req.Validate())

	req.Images = make([]ImageFile, MaxRequestImages+1)
	for i := range req.Images {
		req.Images[i] = ImageFile{Name: "img.jpg", Data: []byte{0x1}}
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Maximum 10 images allowed", fieldMessage(t, err, "Images"))
}

func TestUpdateValidation_FieldBoundsMatchCreate(t *testing.T) {
	req := validUpdateRequest()
	req.Client = "ab"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Client name must be at least 3 characters", fieldMessage(t, err, "Client"))

	req = validUpdateRequest()
	req.Year = 1899
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Year must be after 1900", fieldMessage(t, err, "Year"))
}

func TestProjectTypeLabels(t *testing.T) {
	assert.Equal(t, "Homeliving", TypeHomeliving.Label())
	assert.Equal(t, "Cinema", TypeCinema.Label())
	assert.True(t, TypeShowroom.Valid())
	assert.False(t, ProjectType("warehouse").Valid())
}
