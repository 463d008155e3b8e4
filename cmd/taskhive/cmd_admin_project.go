package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskhive/taskhive/usecase/project"
)

// projectSpec is the YAML/JSON on-disk representation for create/update.
type projectSpec struct {
	WorkspaceID int64  `yaml:"workspaceId" json:"workspaceId"`
	Title       string `yaml:"title" json:"title"`
	Icon        string `yaml:"icon" json:"icon"`
}

func newCmdAdminProject() *cobra.Command {
	c := &cobra.Command{
		Use:                "project",
		Aliases:            []string{"prj"},
		Short:              "Project admin commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdAdminProjectList())
	c.AddCommand(newCmdAdminProjectGet())
	c.AddCommand(newCmdAdminProjectCreate())
	c.AddCommand(newCmdAdminProjectUpdate())
	c.AddCommand(newCmdAdminProjectDelete())
	return c
}

func newCmdAdminProjectList() *cobra.Command {
	var workspaceID int64
	c := &cobra.Command{
		Use:                "list",
		Short:              "List projects",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildProjectUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			var projects []any
			if workspaceID > 0 {
				out, err := uc.ListByWorkspace(ctx, &project.ListByWorkspaceInput{WorkspaceID: workspaceID})
				if err != nil {
					return err
				}
				for _, it := range out.Projects {
					projects = append(projects, it)
				}
			} else {
				out, err := uc.List(ctx, &project.ListInput{})
				if err != nil {
					return err
				}
				for _, it := range out.Projects {
					projects = append(projects, it)
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range projects {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().Int64Var(&workspaceID, "workspace", 0, "Limit to projects of a workspace id")
	return c
}

func newCmdAdminProjectGet() *cobra.Command {
	return &cobra.Command{
		Use:                "get <id>",
		Short:              "Get a project",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			uc, err := buildProjectUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Get(ctx, &project.GetInput{ProjectID: id})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Project)
		},
	}
}

func newCmdAdminProjectCreate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "create",
		Short:              "Create a project (from spec file)",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildProjectUseCase(cmd)
			if err != nil {
				return err
			}
			var spec projectSpec
			if err := readSpecFile(cmd, file, &spec); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Create(ctx, &project.CreateInput{
				WorkspaceID: spec.WorkspaceID,
				Title:       spec.Title,
				Icon:        spec.Icon,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Project)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to project spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminProjectUpdate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "update <id>",
		Short:              "Update a project (merge from spec)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			uc, err := buildProjectUseCase(cmd)
			if err != nil {
				return err
			}
			var spec projectSpec
			if err := readSpecFile(cmd, file, &spec); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			var titlePtr, iconPtr *string
			if spec.Title != "" {
				titlePtr = &spec.Title
			}
			if spec.Icon != "" {
				iconPtr = &spec.Icon
			}
			out, err := uc.Update(ctx, &project.UpdateInput{ProjectID: id, Title: titlePtr, Icon: iconPtr})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Project)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to project spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminProjectDelete() *cobra.Command {
	return &cobra.Command{
		Use:                "delete <id>",
		Short:              "Delete a project",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			uc, err := buildProjectUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if _, err := uc.Delete(ctx, &project.DeleteInput{ProjectID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
