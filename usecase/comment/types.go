package comment

import "github.com/taskhive/taskhive/domain"

// Repos holds repositories needed for comment use cases.
type Repos struct {
	Task    domain.TaskRepository
	User    domain.UserRepository
	Comment domain.CommentRepository
}

// UseCase wires repositories needed for comment use cases.
type UseCase struct {
	Repos *Repos
}
