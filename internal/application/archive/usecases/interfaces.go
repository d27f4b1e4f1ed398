package usecases

import (
	"context"

	"tag/internal/application/archive/dto"
)

// TransactionRunner runs fn in one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ArchiveEntityExecutor interface {
	Execute(ctx context.Context, cmd ArchiveEntityCommand) (*dto.ArchiveRecordDTO, error)
}

type RestoreEntityExecutor interface {
	Execute(ctx context.Context, cmd RestoreEntityCommand) (*dto.RestoredEntityDTO, error)
}

type CheckStatusExecutor interface {
	Execute(ctx context.Context, query CheckStatusQuery) (*dto.ArchiveStatusDTO, error)
}

type ListArchivesExecutor interface {
	Execute(ctx context.Context, query ListArchivesQuery) (*dto.ArchiveListDTO, error)
}
