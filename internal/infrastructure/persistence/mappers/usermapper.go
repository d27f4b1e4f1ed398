package mappers

import (
	"tag/internal/domain/user"
	"tag/internal/infrastructure/persistence/models"
	"tag/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToEntity(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:            u.ID(),
		Nom:           u.Nom(),
		Prenom:        u.Prenom(),
		Email:         u.Email(),
		PasswordHash:  u.PasswordHash(),
		Role:          u.Role().String(),
		CommuneID:     u.CommuneID(),
		Actif:         u.Actif(),
		DateArchivage: u.DateArchivage(),
		CreatedAt:     u.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Nom,
		model.Prenom,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.CommuneID,
		model.Actif,
		utcPtr(model.DateArchivage),
		model.CreatedAt.UTC(),
	)
}
