package dto

import (
	"time"

	"tag/internal/domain/user"
	"tag/internal/shared/utils"
)

type UserDTO struct {
	ID           uint      `json:"id"`
	Nom          string    `json:"nom"`
	Prenom       string    `json:"prenom"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CommuneID    *uint     `json:"commune_id,omitempty"`
	Actif        bool      `json:"actif"`
	DateCreation time.Time `json:"date_creation"`
}

type UserListDTO struct {
	Users      []UserDTO      `json:"users"`
	Pagination utils.PageInfo `json:"pagination"`
}

// LoginDTO is the answer to a successful login.
type LoginDTO struct {
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expires_in"`
	User      UserDTO `json:"user"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Nom:          u.Nom(),
		Prenom:       u.Prenom(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		CommuneID:    u.CommuneID(),
		Actif:        u.Actif(),
		DateCreation: u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}
