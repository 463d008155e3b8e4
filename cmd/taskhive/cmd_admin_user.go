package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskhive/taskhive/usecase/user"
)

// userSpec is the YAML/JSON on-disk representation for create.
type userSpec struct {
	Username  string `yaml:"username" json:"username"`
	Email     string `yaml:"email" json:"email"`
	AvatarURL string `yaml:"avatarUrl" json:"avatarUrl"`
}

func newCmdAdminUser() *cobra.Command {
	c := &cobra.Command{
		Use:                "user",
		Short:              "User admin commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdAdminUserList())
	c.AddCommand(newCmdAdminUserGet())
	c.AddCommand(newCmdAdminUserCreate())
	c.AddCommand(newCmdAdminUserDelete())
	return c
}

func newCmdAdminUserList() *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List users",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildUserUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.List(ctx, &user.ListInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Users {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCmdAdminUserGet() *cobra.Command {
	return &cobra.Command{
		Use:                "get <id>",
		Short:              "Get a user",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			uc, err := buildUserUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Get(ctx, &user.GetInput{UserID: id})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.User)
		},
	}
}

func newCmdAdminUserCreate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "create",
		Short:              "Create a user (from spec file)",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildUserUseCase(cmd)
			if err != nil {
				return err
			}
			var spec userSpec
			if err := readSpecFile(cmd, file, &spec); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Create(ctx, &user.CreateInput{
				Username:  spec.Username,
				Email:     spec.Email,
				AvatarURL: spec.AvatarURL,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.User)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to user spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminUserDelete() *cobra.Command {
	return &cobra.Command{
		Use:                "delete <id>",
		Short:              "Delete a user",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			uc, err := buildUserUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if _, err := uc.Delete(ctx, &user.DeleteInput{UserID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
