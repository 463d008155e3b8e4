package task

import "github.com/taskhive/taskhive/domain"

// Repos holds repositories needed for task use cases.
type Repos struct {
	Project domain.ProjectRepository
	Task    domain.TaskRepository
}

// UseCase wires repositories needed for task use cases.
type UseCase struct {
	Repos *Repos
}
