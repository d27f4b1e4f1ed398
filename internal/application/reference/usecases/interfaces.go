package usecases

import (
	"context"

	"tag/internal/application/reference/dto"
	"tag/internal/shared/authorization"
)

type ListCommunesExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]dto.CommuneDTO, error)
}

type CreateCommuneExecutor interface {
	Execute(ctx context.Context, cmd CreateCommuneCommand) (*dto.CommuneDTO, error)
}

type SetCommuneActifExecutor interface {
	Execute(ctx context.Context, cmd SetCommuneActifCommand) (*dto.CommuneDTO, error)
}

type ListThemesExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]dto.ThemeDTO, error)
}

type CreateThemeExecutor interface {
	Execute(ctx context.Context, cmd CreateThemeCommand) (*dto.ThemeDTO, error)
}

type SetThemeActifExecutor interface {
	Execute(ctx context.Context, cmd SetThemeActifCommand) (*dto.ThemeDTO, error)
}
