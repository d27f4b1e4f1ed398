package theme

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Theme is the subject area an intervention is filed under.
type Theme struct {
	id                uint
	designation       string
	actif             bool
	dateArchivage     *time.Time
	interventionCount int64
}

func NewTheme(designation string) (*Theme, error) {
	designation = strings.TrimSpace(designation)
	if designation == "" {
		return nil, fmt.Errorf("designation is required")
	}
	return &Theme{designation: designation, actif: true}, nil
}

func ReconstructTheme(id uint, designation string, actif bool, dateArchivage *time.Time, interventionCount int64) *Theme {
	return &Theme{
		id:                id,
		designation:       designation,
		actif:             actif,
		dateArchivage:     dateArchivage,
		interventionCount: interventionCount,
	}
}

func (t *Theme) ID() uint                  { return t.id }
func (t *Theme) Designation() string       { return t.designation }
func (t *Theme) Actif() bool               { return t.actif }
func (t *Theme) DateArchivage() *time.Time { return t.dateArchivage }
func (t *Theme) InterventionCount() int64  { return t.interventionCount }

func (t *Theme) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("theme ID is already set")
	}
	t.id = id
	return nil
}

func (t *Theme) SetActif(actif bool) { t.actif = actif }

type Repository interface {
	Create(ctx context.Context, t *Theme) error
	Update(ctx context.Context, t *Theme) error
	GetByID(ctx context.Context, id uint) (*Theme, error)
	ExistsByDesignation(ctx context.Context, designation string) (bool, error)
	ListLive(ctx context.Context) ([]*Theme, error)
}
