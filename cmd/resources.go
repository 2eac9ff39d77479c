package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/modrinth-go/modrinth"
)

var userProjects bool

var userCmd = &cobra.Command{
	Use:     "user [id|username]...",
	Short:   "Show users",
	Long:    `Show one or more users. Without arguments the authenticated user is shown.`,
	PreRunE: initializeApp,
	RunE:    runUser,
}

var projectCmd = &cobra.Command{
	Use:     "project <id|slug>...",
	Short:   "Show projects",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runProject,
}

var projectVersionCmd = &cobra.Command{
	Use:     "version <id>...",
	Short:   "Show project versions",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(userCmd, projectCmd, projectVersionCmd)

	userCmd.Flags().BoolVar(&userProjects, "projects", false, "also list the user's projects")
}

func runUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var users []modrinth.User
	switch len(args) {
	case 0:
		u, err := client.Users.GetUserFromAuth(ctx)
		if err != nil {
			return err
		}
		users = []modrinth.User{*u}
	case 1:
		u, err := client.Users.GetUser(ctx, args[0])
		if err != nil {
			return err
		}
		users = []modrinth.User{*u}
	default:
		var err error
		users, err = client.Users.GetUsers(ctx, args)
		if err != nil {
			return err
		}
	}

	if jsonOut && !userProjects {
		return printJSON(os.Stdout, users)
	}

	for _, u := range users {
		fmt.Printf("• %s (ID: %s)\n", u.Username, u.ID)
		if u.Name != nil && *u.Name != "" {
			fmt.Printf("  Name: %s\n", *u.Name)
		}
		if u.Role != "" {
			fmt.Printf("  Role: %s\n", u.Role)
		}
		fmt.Printf("  Joined: %s\n", u.Created.Format("2006-01-02"))

		if !userProjects {
			continue
		}

		projects, err := client.Projects.GetUserProjects(ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  Projects (%d):\n", len(projects))
		for _, p := range projects {
			fmt.Printf("    - %s (%s, %d downloads)\n", p.Title, p.Slug, p.Downloads)
		}
	}

	return nil
}

func runProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var projects []modrinth.Project
	if len(args) == 1 {
		p, err := client.Projects.GetProject(ctx, args[0])
		if err != nil {
			return err
		}
		projects = []modrinth.Project{*p}
	} else {
		var err error
		projects, err = client.Projects.GetProjectsBatched(ctx, args)
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(os.Stdout, projects)
	}

	for _, p := range projects {
		fmt.Printf("• %s (%s, ID: %s)\n", p.Title, p.Slug, p.ID)
		if p.Description != "" {
			fmt.Printf("  %s\n", p.Description)
		}
		fmt.Printf("  Type: %s  Status: %s\n", p.ProjectType, p.Status)
		fmt.Printf("  Downloads: %d  Followers: %d\n", p.Downloads, p.Followers)
		if len(p.Loaders) > 0 {
			fmt.Printf("  Loaders: %s\n", strings.Join(p.Loaders, ", "))
		}
		fmt.Printf("  Updated: %s\n", p.Updated.Format("2006-01-02"))
	}

	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var versions []modrinth.Version
	if len(args) == 1 {
		v, err := client.Versions.GetVersion(ctx, args[0])
		if err != nil {
			return err
		}
		versions = []modrinth.Version{*v}
	} else {
		var err error
		versions, err = client.Versions.GetVersions(ctx, args)
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(os.Stdout, versions)
	}

	for _, v := range versions {
		fmt.Printf("• %s %s [%s] (ID: %s)\n", v.Name, v.VersionNumber, v.VersionType, v.ID)
		fmt.Printf("  Project: %s  Published: %s\n", v.ProjectID, v.DatePublished.Format("2006-01-02"))
		if len(v.GameVersions) > 0 {
			fmt.Printf("  Game versions: %s\n", strings.Join(v.GameVersions, ", "))
		}
		if f, ok := v.PrimaryFile(); ok {
			fmt.Printf("  File: %s (%d bytes)\n", f.Filename, f.Size)
		}
	}

	return nil
}
