package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"portfolioadmin/client"
	"portfolioadmin/config"
	"portfolioadmin/credentials"
	"portfolioadmin/form"
	"portfolioadmin/models"
	"portfolioadmin/store"
	"portfolioadmin/view"
)

type App struct {
	cfg    config.Config
	logger zerolog.Logger

	creds *credentials.Store
	api   *client.API
	store *store.Store
}

// setup wires the credential store, API client and project cache. Called at
// the start of every handler so each invocation picks up the stored token.
func (a *App) setup() error {
	creds, err := credentials.Open(a.cfg.TokenDBPath)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	a.creds = creds
	a.api = client.New(a.cfg.APIBaseURL, a.cfg.RequestTimeout, creds)
	a.store = store.New(a.api, store.LogNotifier{Logger: a.logger}, a.logger)
	return nil
}

func newLoginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the admin token",
		Args:  cobra.ExactArgs(1),
		Run:   app.handleLogin,
	}
	cmd.Flags().String("password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored token",
		Args:  cobra.NoArgs,
		Run:   app.handleLogout,
	}
}

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally filtered by category",
		Args:  cobra.NoArgs,
		Run:   app.handleList,
	}
	cmd.Flags().String("category", "", "show one category tab (cinema, civil, homeliving, hotel, office, restaurant, showroom)")
	cmd.Flags().Bool("remote-filter", false, "filter on the server instead of client-side")
	return cmd
}

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one project with its images",
		Args:  cobra.ExactArgs(1),
		Run:   app.handleView,
	}
}

func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().String("client", "", "client name")
	cmd.Flags().String("category", "", "project category")
	cmd.Flags().String("location", "", "project location")
	cmd.Flags().String("service", "", "service provided")
	cmd.Flags().Int("year", 0, "project year")
	cmd.Flags().StringArray("image", nil, "image file to attach (repeatable, up to 6)")
}

func newCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project with at least one image",
		Args:  cobra.NoArgs,
		Run:   app.handleCreate,
	}
	addProjectFlags(cmd)
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project; omitted flags keep current values, omitted images stay unchanged",
		Args:  cobra.ExactArgs(1),
		Run:   app.handleUpdate,
	}
	addProjectFlags(cmd)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project after confirmation",
		Args:  cobra.ExactArgs(1),
		Run:   app.handleDelete,
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolioadmin",
		Short: "CLI for managing the portfolio project collection",
	}
	cmd.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newListCmd(app),
		newViewCmd(app),
		newCreateCmd(app),
		newUpdateCmd(app),
		newDeleteCmd(app),
	)
	return cmd
}

func (a *App) handleLogin(cmd *cobra.Command, args []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	username := args[0]
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("Error reading password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimSpace(line)
	}

	token, err := a.api.Login(cmd.Context(), username, password)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := a.creds.Set(token); err != nil {
		fmt.Printf("Error storing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Logged in as %s\n", username)
}

func (a *App) handleLogout(cmd *cobra.Command, _ []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	// Drop the local session even when the server call fails.
	if err := a.api.Logout(cmd.Context()); err != nil {
		a.logger.Warn().Err(err).Msg("server logout failed")
	}

	if err := a.creds.Clear(); err != nil {
		fmt.Printf("Error clearing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Logged out")
}

func (a *App) handleList(cmd *cobra.Command, _ []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	category, _ := cmd.Flags().GetString("category")
	remoteFilter, _ := cmd.Flags().GetBool("remote-filter")

	if category != "" && !models.ProjectType(category).Valid() {
		fmt.Printf("Error: unknown category %q\n", category)
		os.Exit(1)
	}

	if remoteFilter && category != "" {
		projects, err := a.api.ListByCategory(cmd.Context(), models.ProjectType(category))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		view.RenderTable(os.Stdout, projects)
		return
	}

	if err := a.store.Load(cmd.Context()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tab := view.TabAll
	if category != "" {
		tab = category
	}
	view.RenderTabs(os.Stdout, a.store.Projects(), tab)
	view.RenderTable(os.Stdout, view.Filter(a.store.Projects(), tab))
}

func (a *App) handleView(cmd *cobra.Command, args []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Error: invalid project id %q\n", args[0])
		os.Exit(1)
	}

	if err := a.store.Load(cmd.Context()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	project, ok := a.store.Get(id)
	if !ok {
		fmt.Printf("Error: project %d not found\n", id)
		os.Exit(1)
	}

	view.RenderDetail(os.Stdout, project, a.cfg.AssetBaseURL)
}

// stageImages reads each image file into the form one at a time, the same
// way the staging list is built interactively.
func stageImages(f *form.Form, paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read image %s: %w", path, err)
		}
		if err := f.AddImage(models.ImageFile{Name: filepath.Base(path), Data: data}); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) handleCreate(cmd *cobra.Command, _ []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	category, _ := cmd.Flags().GetString("category")
	f := form.NewCreate(models.ProjectType(category), category != "")

	f.Client, _ = cmd.Flags().GetString("client")
	f.Location, _ = cmd.Flags().GetString("location")
	f.Service, _ = cmd.Flags().GetString("service")
	if cmd.Flags().Changed("year") {
		f.Year, _ = cmd.Flags().GetInt("year")
	}

	imagePaths, _ := cmd.Flags().GetStringArray("image")
	if err := stageImages(f, imagePaths); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := f.Validate(); err != nil {
		fmt.Printf("Validation failed: %v\n", err)
		os.Exit(1)
	}

	if err := f.Submit(cmd.Context(), a.store); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	created := a.store.Projects()[0]
	fmt.Printf("Created project %d (%s)\n", created.ID, created.Client)
}

func (a *App) handleUpdate(cmd *cobra.Command, args []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Error: invalid project id %q\n", args[0])
		os.Exit(1)
	}

	if err := a.store.Load(cmd.Context()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	project, ok := a.store.Get(id)
	if !ok {
		fmt.Printf("Error: project %d not found\n", id)
		os.Exit(1)
	}

	f := form.NewEdit(project)
	if cmd.Flags().Changed("client") {
		f.Client, _ = cmd.Flags().GetString("client")
	}
	if cmd.Flags().Changed("category") {
		category, _ := cmd.Flags().GetString("category")
		if err := f.SetCategory(models.ProjectType(category)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if cmd.Flags().Changed("location") {
		f.Location, _ = cmd.Flags().GetString("location")
	}
	if cmd.Flags().Changed("service") {
		f.Service, _ = cmd.Flags().GetString("service")
	}
	if cmd.Flags().Changed("year") {
		f.Year, _ = cmd.Flags().GetInt("year")
	}

	imagePaths, _ := cmd.Flags().GetStringArray("image")
	if err := stageImages(f, imagePaths); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := f.Validate(); err != nil {
		fmt.Printf("Validation failed: %v\n", err)
		os.Exit(1)
	}

	if err := f.Submit(cmd.Context(), a.store); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated project %d\n", id)
}

func (a *App) handleDelete(cmd *cobra.Command, args []string) {
	if err := a.setup(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.creds.Close()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Error: invalid project id %q\n", args[0])
		os.Exit(1)
	}

	if err := a.store.Load(cmd.Context()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	project, ok := a.store.Get(id)
	if !ok {
		fmt.Printf("Error: project %d not found\n", id)
		os.Exit(1)
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Printf("Are you sure you want to delete %q? This action cannot be undone. [y/N]: ", project.Client)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("Error reading confirmation: %v\n", err)
			os.Exit(1)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted")
			return
		}
	}

	if err := a.store.Delete(cmd.Context(), id); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted project %d\n", id)
}

// Execute initializes and runs the root command. It is the single entry point
// for the command-line interface.
func Execute() {
	app := &App{
		cfg:    config.Load(),
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
	rootCmd := newRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, so we just need to exit.
		os.Exit(1)
	}
}
