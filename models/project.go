package models

// ProjectType is the closed set of portfolio categories. The set is compiled
// in; adding a category requires a matching change on the server.
type ProjectType string

const (
	TypeCinema     ProjectType = "cinema"
	TypeCivil      ProjectType = "civil"
	TypeHomeliving ProjectType = "homeliving"
	TypeHotel      ProjectType = "hotel"
	TypeOffice     ProjectType = "office"
	TypeRestaurant ProjectType = "restaurant"
	TypeShowroom   ProjectType = "showroom"
)

// ProjectTypes lists all categories in display order.
var ProjectTypes = []ProjectType{
	TypeCinema,
	TypeCivil,
	TypeHomeliving,
	TypeHotel,
	TypeOffice,
	TypeRestaurant,
	TypeShowroom,
}

var projectTypeLabels = map[ProjectType]string{
	TypeCinema:     "Cinema",
	TypeCivil:      "Civil",
	TypeHomeliving: "Homeliving",
	TypeHotel:      "Hotel",
	TypeOffice:     "Office",
	TypeRestaurant: "Restaurant",
	TypeShowroom:   "Showroom",
}

// Label returns the human-readable name of the category.
func (t ProjectType) Label() string {
	if label, ok := projectTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether t is one of the known categories.
func (t ProjectType) Valid() bool {
	_, ok := projectTypeLabels[t]
	return ok
}

// ProjectImage is one stored image as the server reports it. ProjectID is a
// plain foreign-key back-reference, not an ownership relation.
type ProjectImage struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	ProjectID int    `json:"projectId"`
}

// Project is a client engagement record. ID and the image URLs are
// server-assigned; the client never synthesizes them.
type Project struct {
	ID       int            `json:"id"`
	Client   string         `json:"client"`
	Location string         `json:"location"`
	Service  string         `json:"service"`
	Year     int            `json:"year"`
	Category ProjectType    `json:"category"`
	Images   []ProjectImage `json:"images"`
}

// ImageFile is a locally staged image attachment, read from disk and not yet
// uploaded. The server assigns id and url on upload.
type ImageFile struct {
	Name string
	Data []byte
}

// CreateProjectRequest carries a new project's fields and its staged images.
type CreateProjectRequest struct {
	Client   string
	Location string
	Service  string
	Year     int
	Category ProjectType
	Images   []ImageFile
}

// UpdateProjectRequest targets an existing project. An empty Images slice
// means the stored images stay as they are; the server treats omission as
// leave-unchanged.
type UpdateProjectRequest struct {
	ID       int
	Client   string
	Location string
	Service  string
	Year     int
	Category ProjectType
	Images   []ImageFile
}
