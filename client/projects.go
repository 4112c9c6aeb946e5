package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"portfolioadmin/models"
)

// List fetches the full project collection.
func (a *API) List(ctx context.Context) ([]models.Project, error) {
	resp, err := a.http().
		GET("/projects").
		Context().Set(ctx).
		Header().Add("Accept", "application/json").
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var projects []models.Project
	if err := parseResponse(*resp, "Failed to load projects", &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// ListByCategory fetches the server-side filtered collection. The list view
// filters the cache client-side instead, but the endpoint stays available.
func (a *API) ListByCategory(ctx context.Context, category models.ProjectType) ([]models.Project, error) {
	resp, err := a.http().
		GET("/projects/categories/" + string(category)).
		Context().Set(ctx).
		Header().Add("Accept", "application/json").
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var projects []models.Project
	if err := parseResponse(*resp, "Failed to load projects", &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// Create uploads a new project and returns the server's canonical record,
// with the assigned id and image urls.
func (a *API) Create(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	body, contentType, err := encodeProject(req.Client, req.Location, req.Service, req.Year, req.Category, req.Images)
	if err != nil {
		return models.Project{}, err
	}

	resp, err := a.http().
		POST("/projects").
		Context().Set(ctx).
		Header().Add("Content-Type", contentType).
		Body().AsReader(body).
		Send()
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var project models.Project
	if err := parseResponse(*resp, "Failed to create project", &project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// Update replaces an existing project's fields. When req.Images is empty no
// image parts are sent and the server leaves the stored images unchanged.
func (a *API) Update(ctx context.Context, req models.UpdateProjectRequest) (models.Project, error) {
	body, contentType, err := encodeProject(req.Client, req.Location, req.Service, req.Year, req.Category, req.Images)
	if err != nil {
		return models.Project{}, err
	}

	resp, err := a.http().
		PUT(fmt.Sprintf("/projects/%d", req.ID)).
		Context().Set(ctx).
		Header().Add("Content-Type", contentType).
		Body().AsReader(body).
		Send()
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var project models.Project
	if err := parseResponse(*resp, "Failed to update project", &project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// Delete removes a project by id. The response carries no body.
func (a *API) Delete(ctx context.Context, id int) error {
	resp, err := a.http().
		DELETE(fmt.Sprintf("/projects/%d", id)).
		Context().Set(ctx).
		Send()
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		return requestError(*resp, "Failed to delete project")
	}

	return nil
}

// encodeProject serializes the text fields and each staged image as a
// repeated "images" file part, in the order the server expects.
func encodeProject(client, location, service string, year int, category models.ProjectType, images []models.ImageFile) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct {
		name  string
		value string
	}{
		{"client", client},
		{"location", location},
		{"service", service},
		{"year", strconv.Itoa(year)},
		{"category", string(category)},
	}
	for _, field := range fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", field.name, err)
		}
	}

	for _, image := range images {
		part, err := w.CreateFormFile("images", image.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write image %s: %w", image.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
