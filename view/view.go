package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"portfolioadmin/models"
)

// TabAll is the synthetic tab showing the whole collection.
const TabAll = "all"

// PlaceholderImage stands in for an image whose URL cannot be resolved.
const PlaceholderImage = "/placeholder.svg"

// TabCount pairs a tab with its derived project count.
type TabCount struct {
	Tab   string
	Label string
	Count int
}

// Tabs derives the tab bar from the cached collection: "all" first, then one
// tab per category in display order. Counts are computed, never stored.
func Tabs(projects []models.Project) []TabCount {
	tabs := []TabCount{{Tab: TabAll, Label: "All", Count: len(projects)}}
	for _, t := range models.ProjectTypes {
		tabs = append(tabs, TabCount{
			Tab:   string(t),
			Label: t.Label(),
			Count: len(Filter(projects, string(t))),
		})
	}
	return tabs
}

// Filter returns the projects belonging to a tab, in original cache order.
// The "all" tab returns the collection unchanged.
func Filter(projects []models.Project, tab string) []models.Project {
	if tab == TabAll || tab == "" {
		return projects
	}
	var filtered []models.Project
	for _, project := range projects {
		if string(project.Category) == tab {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// RenderTabs prints the tab bar with per-tab counts.
func RenderTabs(w io.Writer, projects []models.Project, active string) {
	parts := make([]string, 0, len(models.ProjectTypes)+1)
	for _, tab := range Tabs(projects) {
		label := fmt.Sprintf("%s (%d)", tab.Label, tab.Count)
		if tab.Tab == active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// RenderTable prints the projects of the active tab.
func RenderTable(w io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Client", "Type", "Location", "Service", "Year", "Images"})
	for _, project := range projects {
		table.Append([]string{
			strconv.Itoa(project.ID),
			project.Client,
			project.Category.Label(),
			project.Location,
			project.Service,
			strconv.Itoa(project.Year),
			strconv.Itoa(len(project.Images)),
		})
	}
	table.Render()
}

// ResolveImageURL turns a stored image path into a display URL. Absolute
// URLs pass through; relative paths are joined to the asset base; an empty
// path falls back to the placeholder graphic.
func ResolveImageURL(assetBase, url string) string {
	if url == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return strings.TrimSuffix(assetBase, "/") + url
}

// RenderDetail prints the read-only detail view of one project, with each
// image's resolved display URL.
func RenderDetail(w io.Writer, project models.Project, assetBase string) {
	fmt.Fprintf(w, "%s\n", project.Client)
	fmt.Fprintf(w, "Category: %s\n", project.Category.Label())
	fmt.Fprintf(w, "Location: %s\n", project.Location)
	fmt.Fprintf(w, "Service:  %s\n", project.Service)
	fmt.Fprintf(w, "Year:     %d\n", project.Year)
	fmt.Fprintf(w, "Images (%d):\n", len(project.Images))
	for i, image := range project.Images {
		fmt.Fprintf(w, "  %d. %s\n", i+1, ResolveImageURL(assetBase, image.URL))
	}
}
