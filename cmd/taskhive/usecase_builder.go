package main

import (
	"github.com/spf13/cobra"
	"github.com/taskhive/taskhive/adapters/httpapi"
	"github.com/taskhive/taskhive/usecase/comment"
	"github.com/taskhive/taskhive/usecase/project"
	"github.com/taskhive/taskhive/usecase/task"
	"github.com/taskhive/taskhive/usecase/user"
	"github.com/taskhive/taskhive/usecase/workspace"
)

// buildUseCases creates every use case backed by a single repository set.
func buildUseCases(cmd *cobra.Command) (*httpapi.UseCases, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	return &httpapi.UseCases{
		Workspace: &workspace.UseCase{Repos: &workspace.Repos{Workspace: repos.Workspace}},
		Project:   &project.UseCase{Repos: &project.Repos{Workspace: repos.Workspace, Project: repos.Project}},
		Task:      &task.UseCase{Repos: &task.Repos{Project: repos.Project, Task: repos.Task}},
		Comment:   &comment.UseCase{Repos: &comment.Repos{Task: repos.Task, User: repos.User, Comment: repos.Comment}},
		User:      &user.UseCase{Repos: &user.Repos{User: repos.User}},
	}, nil
}

// buildWorkspaceUseCase creates the workspace use case with required repositories.
func buildWorkspaceUseCase(cmd *cobra.Command) (*workspace.UseCase, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	return &workspace.UseCase{Repos: &workspace.Repos{Workspace: repos.Workspace}}, nil
}

// buildProjectUseCase creates the project use case with required repositories.
func buildProjectUseCase(cmd *cobra.Command) (*project.UseCase, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	return &project.UseCase{Repos: &project.Repos{Workspace: repos.Workspace, Project: repos.Project}}, nil
}

// buildUserUseCase creates the user use case with required repositories.
func buildUserUseCase(cmd *cobra.Command) (*user.UseCase, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	return &user.UseCase{Repos: &user.Repos{User: repos.User}}, nil
}
