package service_test

import (
	"github.com/textdesk/textdesk/internal/repository"
	"github.com/textdesk/textdesk/internal/repository/memory"
)

func newMemoryRepo() repository.Repository {
	return memory.NewRepository()
}
