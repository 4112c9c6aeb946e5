package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioadmin/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: 1, Client: "Acme Co", Location: "Paris", Service: "Renovation", Year: 2024, Category: models.TypeHotel},
		{ID: 2, Client: "Beta Ltd", Location: "Riga", Service: "Fit-out", Year: 2023, Category: models.TypeCinema},
		{ID: 3, Client: "Gamma Inc", Location: "Oslo", Service: "Interior", Year: 2022, Category: models.TypeHotel},
	}
}

func TestFilter_ByCategoryKeepsCacheOrder(t *testing.T) {
	projects := sampleProjects()

	hotels := Filter(projects, "hotel")
	require.Len(t, hotels, 2)
	assert.Equal(t, 1, hotels[0].ID)
	assert.Equal(t, 3, hotels[1].ID)

	assert.Empty(t, Filter(projects, "showroom"))
}

func TestFilter_AllReturnsCollectionUnchanged(t *testing.T) {
	projects := sampleProjects()

	all := Filter(projects, TabAll)
	assert.Equal(t, projects, all)
}

func TestTabs_DerivedCounts(t *testing.T) {
	tabs := Tabs(sampleProjects())

	require.Len(t, tabs, len(models.ProjectTypes)+1)
	assert.Equal(t, TabAll, tabs[0].Tab)
	assert.Equal(t, 3, tabs[0].Count)

	byTab := make(map[string]int)
	for _, tab := range tabs {
		byTab[tab.Tab] = tab.Count
	}
	assert.Equal(t, 2, byTab["hotel"])
	assert.Equal(t, 1, byTab["cinema"])
	assert.Equal(t, 0, byTab["office"])
}

func TestResolveImageURL(t *testing.T) {
	base := "https://assets.example.com"

	assert.Equal(t, "https://assets.example.com/uploads/a.jpg", ResolveImageURL(base, "/uploads/a.jpg"))
	assert.Equal(t, "https://assets.example.com/uploads/a.jpg", ResolveImageURL(base, "uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/b.jpg", ResolveImageURL(base, "https://cdn.example.com/b.jpg"))
	assert.Equal(t, PlaceholderImage, ResolveImageURL(base, ""))
	assert.Equal(t, "https://assets.example.com/c.jpg", ResolveImageURL(base+"/", "c.jpg"))
}

func TestRenderTable_ShowsRowsAndImageCounts(t *testing.T) {
	projects := sampleProjects()
	projects[0].Images = []models.ProjectImage{{ID: 1, URL: "/a.jpg", ProjectID: 1}}

	var buf bytes.Buffer
	RenderTable(&buf, projects)

	out := buf.String()
	assert.Contains(t, out, "Acme Co")
	assert.Contains(t, out, "Hotel")
	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "Beta Ltd")
}

func TestRenderTable_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, nil)
	assert.Contains(t, buf.String(), "No projects found")
}

func TestRenderTabs_MarksActiveTab(t *testing.T) {
	var buf bytes.Buffer
	RenderTabs(&buf, sampleProjects(), "hotel")

	out := buf.String()
	assert.Contains(t, out, "All (3)")
	assert.Contains(t, out, "[Hotel (2)]")
	assert.Contains(t, out, "Cinema (1)")
}

func TestRenderDetail_ResolvesImageURLs(t *testing.T) {
	project := sampleProjects()[0]
	project.Images = []models.ProjectImage{
		{ID: 1, URL: "/uploads/a.jpg", ProjectID: 1},
		{ID: 2, URL: "", ProjectID: 1},
	}

	var buf bytes.Buffer
	RenderDetail(&buf, project, "https://assets.example.com")

	out := buf.String()
	assert.Contains(t, out, "Acme Co")
	assert.Contains(t, out, "Images (2)")
	assert.Contains(t, out, "https://assets.example.com/uploads/a.jpg")
	assert.Contains(t, out, PlaceholderImage)
}
