package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/taskhive/taskhive/adapters/store/inmem"
	"github.com/taskhive/taskhive/adapters/store/rdb"
	"github.com/taskhive/taskhive/domain"
)

// repositories bundles every repository a use case may need.
type repositories struct {
	Workspace domain.WorkspaceRepository
	Project   domain.ProjectRepository
	Task      domain.TaskRepository
	Comment   domain.CommentRepository
	User      domain.UserRepository
}

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// getDBURL extracts the db-url flag value from command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	f := findFlag(cmd, "db-url")
	if f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "sqlite:taskhive.db"
}

// buildRepositories creates repositories based on db-url.
// If db-url starts with "file:", it loads the seed file into a memory store.
func buildRepositories(cmd *cobra.Command) (*repositories, error) {
	dbURL := getDBURL(cmd)

	switch {
	case dbURL == "memory:":
		store := inmem.NewStore()
		return storeRepositories(store), nil

	case strings.HasPrefix(dbURL, "file:"):
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, fmt.Errorf("file path is required for file: URL")
		}

		store := inmem.NewStore()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := store.LoadFromFile(ctx, filePath); err != nil {
			return nil, fmt.Errorf("failed to load seed from %s: %w", filePath, err)
		}
		return storeRepositories(store), nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &repositories{
			Workspace: rdb.NewWorkspaceRepository(db),
			Project:   rdb.NewProjectRepository(db),
			Task:      rdb.NewTaskRepository(db),
			Comment:   rdb.NewCommentRepository(db),
			User:      rdb.NewUserRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

func storeRepositories(store *inmem.Store) *repositories {
	return &repositories{
		Workspace: store.WorkspaceRepo,
		Project:   store.ProjectRepo,
		Task:      store.TaskRepo,
		Comment:   store.CommentRepo,
		User:      store.UserRepo,
	}
}
