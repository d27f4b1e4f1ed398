package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"tag/internal/shared/authorization"
)

type User struct {
	id            uint
	nom           string
	prenom        string
	email         string
	passwordHash  string
	role          authorization.UserRole
	communeID     *uint
	actif         bool
	dateArchivage *time.Time
	createdAt     time.Time
}

func NewUser(nom, prenom, email, passwordHash string, role authorization.UserRole, communeID *uint) (*User, error) {
	nom = strings.TrimSpace(nom)
	prenom = strings.TrimSpace(prenom)
	email = strings.ToLower(strings.TrimSpace(email))

	if nom == "" || prenom == "" {
		return nil, fmt.Errorf("nom and prenom are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role == authorization.RoleCommune && (communeID == nil || *communeID == 0) {
		return nil, fmt.Errorf("commune ID is required for role %s", role)
	}
	if role != authorization.RoleCommune {
		communeID = nil
	}

	return &User{
		nom:          nom,
		prenom:       prenom,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		communeID:    communeID,
		actif:        true,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructUser(
	id uint,
	nom, prenom, email, passwordHash string,
	role authorization.UserRole,
	communeID *uint,
	actif bool,
	dateArchivage *time.Time,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:            id,
		nom:           nom,
		prenom:        prenom,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		communeID:     communeID,
		actif:         actif,
		dateArchivage: dateArchivage,
		createdAt:     createdAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Nom() string                  { return u.nom }
func (u *User) Prenom() string               { return u.prenom }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CommuneID() *uint             { return u.communeID }
func (u *User) Actif() bool                  { return u.actif }
func (u *User) DateArchivage() *time.Time    { return u.dateArchivage }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) FullName() string             { return u.prenom + " " + u.nom }
func (u *User) Actor() authorization.Actor   { return authorization.Actor{UserID: u.id, Role: u.role} }
func (u *User) IsArchived() bool             { return u.dateArchivage != nil }

// CanLogin reports whether the account is enabled and not archived.
func (u *User) CanLogin() bool {
	return u.actif && u.dateArchivage == nil
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetActif(actif bool) {
	u.actif = actif
}
