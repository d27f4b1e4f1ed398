package attachment

import (
	"fmt"
	"strings"
	"time"
)

// StoredFile describes an upload already written to disk by the HTTP layer.
type StoredFile struct {
	OriginalName string
	StoredName   string
	Path         string
}

// Attachment (pièce jointe) is a file bound to exactly one intervention.
type Attachment struct {
	id             uint
	nomOriginal    string
	nomFichier     string
	chemin         string
	interventionID uint
	dateCreation   time.Time
}

func NewAttachment(interventionID uint, file StoredFile) (*Attachment, error) {
	if interventionID == 0 {
		return nil, fmt.Errorf("intervention ID is required")
	}
	if strings.TrimSpace(file.StoredName) == "" || strings.TrimSpace(file.Path) == "" {
		return nil, fmt.Errorf("stored file name and path are required")
	}
	nom := file.OriginalName
	if nom == "" {
		nom = file.StoredName
	}

	return &Attachment{
		nomOriginal:    nom,
		nomFichier:     file.StoredName,
		chemin:         file.Path,
		interventionID: interventionID,
		dateCreation:   time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(id uint, nomOriginal, nomFichier, chemin string, interventionID uint, dateCreation time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	return &Attachment{
		id:             id,
		nomOriginal:    nomOriginal,
		nomFichier:     nomFichier,
		chemin:         chemin,
		interventionID: interventionID,
		dateCreation:   dateCreation,
	}, nil
}

func (a *Attachment) ID() uint                { return a.id }
func (a *Attachment) NomOriginal() string     { return a.nomOriginal }
func (a *Attachment) NomFichier() string      { return a.nomFichier }
func (a *Attachment) Chemin() string          { return a.chemin }
func (a *Attachment) InterventionID() uint    { return a.interventionID }
func (a *Attachment) DateCreation() time.Time { return a.dateCreation }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
