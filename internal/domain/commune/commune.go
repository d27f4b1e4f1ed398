package commune

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Commune struct {
	id                uint
	nom               string
	actif             bool
	dateArchivage     *time.Time
	userCount         int64
	interventionCount int64
}

func NewCommune(nom string) (*Commune, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, fmt.Errorf("nom is required")
	}
	return &Commune{nom: nom, actif: true}, nil
}

func ReconstructCommune(id uint, nom string, actif bool, dateArchivage *time.Time, userCount, interventionCount int64) *Commune {
	return &Commune{
		id:                id,
		nom:               nom,
		actif:             actif,
		dateArchivage:     dateArchivage,
		userCount:         userCount,
		interventionCount: interventionCount,
	}
}

func (c *Commune) ID() uint                  { return c.id }
func (c *Commune) Nom() string               { return c.nom }
func (c *Commune) Actif() bool               { return c.actif }
func (c *Commune) DateArchivage() *time.Time { return c.dateArchivage }
func (c *Commune) UserCount() int64          { return c.userCount }
func (c *Commune) InterventionCount() int64  { return c.interventionCount }

func (c *Commune) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("commune ID is already set")
	}
	c.id = id
	return nil
}

func (c *Commune) SetActif(actif bool) { c.actif = actif }

type Repository interface {
	Create(ctx context.Context, c *Commune) error
	Update(ctx context.Context, c *Commune) error
	// GetByID returns nil, nil when no live row exists.
	GetByID(ctx context.Context, id uint) (*Commune, error)
	ExistsByNom(ctx context.Context, nom string) (bool, error)
	// ListLive returns non-archived communes with their counts, by name.
	ListLive(ctx context.Context) ([]*Commune, error)
}
