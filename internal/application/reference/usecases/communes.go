package usecases

import (
	"context"

	"tag/internal/application/common/access"
	"tag/internal/application/reference/dto"
	"tag/internal/domain/commune"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type ListCommunesUseCase struct {
	repo   commune.Repository
	policy permission.Policy
	logger logger.Interface
}

func NewListCommunesUseCase(repo commune.Repository, policy permission.Policy, logger logger.Interface) *ListCommunesUseCase {
	return &ListCommunesUseCase{repo: repo, policy: policy, logger: logger}
}

// Execute lists live communes by name with their user and intervention counts.
func (uc *ListCommunesUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]dto.CommuneDTO, error) {
	if err := access.Require(uc.policy, actor, permission.ResourceReference, permission.ActionRead, false); err != nil {
		return nil, err
	}

	communes, err := uc.repo.ListLive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list communes", "error", err)
		return nil, errors.NewInternalError("failed to list communes")
	}

	out := make([]dto.CommuneDTO, 0, len(communes))
	for _, c := range communes {
		out = append(out, dto.ToCommuneDTO(c))
	}
	return out, nil
}

type CreateCommuneCommand struct {
	Actor authorization.Actor
	Nom   string
}

type CreateCommuneUseCase struct {
	repo   commune.Repository
	policy permission.Policy
	logger logger.Interface
}

func NewCreateCommuneUseCase(repo commune.Repository, policy permission.Policy, logger logger.Interface) *CreateCommuneUseCase {
	return &CreateCommuneUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *CreateCommuneUseCase) Execute(ctx context.Context, cmd CreateCommuneCommand) (*dto.CommuneDTO, error) {
	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceReference, permission.ActionManage, false); err != nil {
		return nil, err
	}

	c, err := commune.NewCommune(cmd.Nom)
	if err != nil {
		return nil, errors.NewValidationError("Le nom de la commune est requis")
	}

	exists, err := uc.repo.ExistsByNom(ctx, c.Nom())
	if err != nil {
		uc.logger.Errorw("failed to check commune name", "nom", c.Nom(), "error", err)
		return nil, errors.NewInternalError("failed to check commune name")
	}
	if exists {
		return nil, errors.NewConflictError("Cette commune existe déjà", c.Nom())
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create commune", "nom", c.Nom(), "error", err)
		return nil, errors.NewInternalError("failed to create commune")
	}

	uc.logger.Infow("commune created", "commune_id", c.ID(), "nom", c.Nom())

	result := dto.ToCommuneDTO(c)
	return &result, nil
}

type SetCommuneActifCommand struct {
	Actor     authorization.Actor
	CommuneID uint
	Actif     bool
}

type SetCommuneActifUseCase struct {
	repo   commune.Repository
	policy permission.Policy
	logger logger.Interface
}

func NewSetCommuneActifUseCase(repo commune.Repository, policy permission.Policy, logger logger.Interface) *SetCommuneActifUseCase {
	return &SetCommuneActifUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *SetCommuneActifUseCase) Execute(ctx context.Context, cmd SetCommuneActifCommand) (*dto.CommuneDTO, error) {
	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceReference, permission.ActionManage, false); err != nil {
		return nil, err
	}

	c, err := uc.repo.GetByID(ctx, cmd.CommuneID)
	if err != nil {
		uc.logger.Errorw("failed to get commune", "commune_id", cmd.CommuneID, "error", err)
		return nil, errors.NewInternalError("failed to get commune")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("Commune introuvable")
	}

	c.SetActif(cmd.Actif)
	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update commune", "commune_id", cmd.CommuneID, "error", err)
		return nil, errors.NewInternalError("failed to update commune")
	}

	result := dto.ToCommuneDTO(c)
	return &result, nil
}
