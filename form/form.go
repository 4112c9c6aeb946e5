package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolioadmin/models"
)

// MaxStagedImages caps how many images one form session may stage. The
// server accepts up to models.MaxRequestImages; this tighter limit binds
// first on the client side.
const MaxStagedImages = 6

var (
	ErrTooManyImages  = fmt.Errorf("maximum of %d images allowed", MaxStagedImages)
	ErrCategoryLocked = errors.New("category is locked for this form")
	ErrNoSuchImage    = errors.New("no staged image at that index")
)

// Submitter performs the network call and cache update once the draft
// validates. The store satisfies this.
type Submitter interface {
	Create(ctx context.Context, req models.CreateProjectRequest) error
	Update(ctx context.Context, req models.UpdateProjectRequest) error
}

// Form holds an in-progress project draft. A form constructed from an
// existing project is in edit mode and validates with the update rule set;
// otherwise it is in create mode.
type Form struct {
	existing *models.Project

	Client   string
	Category models.ProjectType
	Location string
	Service  string
	Year     int

	images       []models.ImageFile
	lockCategory bool
}

// NewCreate starts an empty draft. A preselected category may be locked when
// the form is opened under an active category filter; the lock is a UX
// convenience, not a server-enforced constraint.
func NewCreate(preselected models.ProjectType, lock bool) *Form {
	return &Form{
		Category:     preselected,
		Year:         time.Now().Year(),
		lockCategory: lock,
	}
}

// NewEdit starts a draft populated from an existing project. Staged images
// start empty; submitting without staging any leaves the stored images
// unchanged.
func NewEdit(project models.Project) *Form {
	return &Form{
		existing: &project,
		Client:   project.Client,
		Category: project.Category,
		Location: project.Location,
		Service:  project.Service,
		Year:     project.Year,
	}
}

func (f *Form) EditMode() bool {
	return f.existing != nil
}

func (f *Form) CategoryLocked() bool {
	return f.lockCategory
}

// SetCategory changes the draft's category unless it is locked.
func (f *Form) SetCategory(category models.ProjectType) error {
	if f.lockCategory {
		return ErrCategoryLocked
	}
	f.Category = category
	return nil
}

// Images returns the staged attachments in staging order.
func (f *Form) Images() []models.ImageFile {
	return f.images
}

// AddImage stages one attachment. Staging beyond the cap fails without
// touching the list.
func (f *Form) AddImage(image models.ImageFile) error {
	if len(f.images) >= MaxStagedImages {
		return ErrTooManyImages
	}
	f.images = append(f.images, image)
	return nil
}

// RemoveImage drops the staged attachment at index, preserving the relative
// order of the rest.
func (f *Form) RemoveImage(index int) error {
	if index < 0 || index >= len(f.images) {
		return ErrNoSuchImage
	}
	f.images = append(f.images[:index], f.images[index+1:]...)
	return nil
}

// CreateRequest merges the field values and staged images into a creation
// payload.
func (f *Form) CreateRequest() models.CreateProjectRequest {
	return models.CreateProjectRequest{
		Client:   f.Client,
		Location: f.Location,
		Service:  f.Service,
		Year:     f.Year,
		Category: f.Category,
		Images:   f.images,
	}
}

// UpdateRequest merges the field values and staged images into an update
// payload targeting the existing project.
func (f *Form) UpdateRequest() models.UpdateProjectRequest {
	return models.UpdateProjectRequest{
		ID:       f.existing.ID,
		Client:   f.Client,
		Location: f.Location,
		Service:  f.Service,
		Year:     f.Year,
		Category: f.Category,
		Images:   f.images,
	}
}

// Validate runs the mode-appropriate rule set and returns field-scoped
// errors.
func (f *Form) Validate() error {
	if f.EditMode() {
		return f.UpdateRequest().Validate()
	}
	return f.CreateRequest().Validate()
}

// Submit validates the draft and hands the request to the submitter,
// returning its error so the caller can restore submission state.
// Validation failures never reach the network.
func (f *Form) Submit(ctx context.Context, submitter Submitter) error {
	if err := f.Validate(); err != nil {
		return err
	}

	if f.EditMode() {
		return submitter.Update(ctx, f.UpdateRequest())
	}
	return submitter.Create(ctx, f.CreateRequest())
}

// Cancel discards the draft with no side effects.
func (f *Form) Cancel() {
	f.Client = ""
	f.Location = ""
	f.Service = ""
	f.images = nil
	if f.EditMode() {
		f.Client = f.existing.Client
		f.Category = f.existing.Category
		f.Location = f.existing.Location
		f.Service = f.existing.Service
		f.Year = f.existing.Year
		return
	}
	if !f.lockCategory {
		f.Category = ""
	}
	f.Year = time.Now().Year()
}
