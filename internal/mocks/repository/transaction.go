package repository

import (
	"context"

	"authgate/internal/domain/repository"
)

// StaticRepositoryFactory is a RepositoryFactory that always hands out the
// same repository instance.
type StaticRepositoryFactory struct {
	Users repository.UserRepository
}

func (f *StaticRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

// PassthroughTransactionManager runs the callback directly against a fixed
// repository, without any real transaction. Use-case tests exercise the
// business logic through it while the repository itself is mocked.
type PassthroughTransactionManager struct {
	Users repository.UserRepository
}

func (m *PassthroughTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&StaticRepositoryFactory{Users: m.Users})
}
