package project

import "github.com/taskhive/taskhive/domain"

// Repos holds repositories needed for project use cases.
type Repos struct {
	Workspace domain.WorkspaceRepository
	Project   domain.ProjectRepository
}

// UseCase wires repositories needed for project use cases.
type UseCase struct {
	Repos *Repos
}
