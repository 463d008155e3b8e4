package user

import "github.com/taskhive/taskhive/domain"

// Repos holds repositories needed for user use cases.
type Repos struct {
	User domain.UserRepository
}

// UseCase wires repositories needed for user use cases.
type UseCase struct {
	Repos *Repos
}
