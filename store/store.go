package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"portfolioadmin/client"
	"portfolioadmin/models"
)

// API is the slice of the HTTP client the store needs.
type API interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)
	Update(ctx context.Context, req models.UpdateProjectRequest) (models.Project, error)
	Delete(ctx context.Context, id int) error
}

// Notifier surfaces the outcome of an operation to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier reports outcomes through the logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Success(message string) {
	n.Logger.Info().Msg(message)
}

func (n LogNotifier) Error(message string) {
	n.Logger.Error().Msg(message)
}

// Store is the session cache of the project collection. It mirrors server
// state and is never authoritative: every mutation is confirmed by the
// server's response before the cache changes, and the cached entry is the
// exact object the server returned.
//
// Mutations are not serialized against each other. Overlapping calls are
// last-response-wins; callers are expected to use the busy flag to disable
// re-submission while a request is outstanding.
type Store struct {
	api      API
	notifier Notifier
	logger   zerolog.Logger

	projects       []models.Project
	loading        bool
	initialLoading bool
}

func New(api API, notifier Notifier, logger zerolog.Logger) *Store {
	return &Store{
		api:            api,
		notifier:       notifier,
		logger:         logger,
		initialLoading: true,
	}
}

// Projects returns the cached collection in display order, newest-created
// first.
func (s *Store) Projects() []models.Project {
	return s.projects
}

// Loading reports whether a mutating operation is in flight.
func (s *Store) Loading() bool {
	return s.loading
}

// InitialLoading reports whether the first load has not yet resolved.
func (s *Store) InitialLoading() bool {
	return s.initialLoading
}

// Get looks a project up in the cache by id.
func (s *Store) Get(id int) (models.Project, bool) {
	for _, project := range s.projects {
		if project.ID == id {
			return project, true
		}
	}
	return models.Project{}, false
}

// ByCategory returns the cached projects of one category in cache order.
func (s *Store) ByCategory(category models.ProjectType) []models.Project {
	var filtered []models.Project
	for _, project := range s.projects {
		if project.Category == category {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// Load replaces the cache with the server's current collection. On failure
// the prior cache state is left untouched.
func (s *Store) Load(ctx context.Context) error {
	s.initialLoading = true
	defer func() {
		s.initialLoading = false
	}()

	projects, err := s.api.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load projects")
		s.notifier.Error(displayMessage(err, "Failed to load projects"))
		return err
	}

	s.projects = projects
	return nil
}

// Create submits a new project and, on success, prepends the server's
// returned record to the cache.
func (s *Store) Create(ctx context.Context, req models.CreateProjectRequest) error {
	s.loading = true
	defer func() {
		s.loading = false
	}()

	project, err := s.api.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		s.notifier.Error(displayMessage(err, "Failed to create project"))
		return err
	}

	s.projects = append([]models.Project{project}, s.projects...)
	s.notifier.Success("Project created successfully")
	return nil
}

// Update submits changed fields and replaces the matching cached entry with
// the server's returned object.
func (s *Store) Update(ctx context.Context, req models.UpdateProjectRequest) error {
	s.loading = true
	defer func() {
		s.loading = false
	}()

	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update project")
		s.notifier.Error(displayMessage(err, "Failed to update project"))
		return err
	}

	for i, project := range s.projects {
		if project.ID == req.ID {
			s.projects[i] = updated
		}
	}
	s.notifier.Success("Project updated successfully")
	return nil
}

// Delete removes a project on the server and drops it from the cache.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.loading = true
	defer func() {
		s.loading = false
	}()

	if err := s.api.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete project")
		s.notifier.Error(displayMessage(err, "Failed to delete project"))
		return err
	}

	remaining := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		if project.ID != id {
			remaining = append(remaining, project)
		}
	}
	s.projects = remaining
	s.notifier.Success("Project deleted successfully")
	return nil
}

// displayMessage prefers the server-provided wording of a request error and
// falls back to the fixed per-operation message for transport failures.
func displayMessage(err error, fallback string) string {
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return fallback
}
