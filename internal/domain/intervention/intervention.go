package intervention

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrAlreadyRated is returned when a satisfaction is already recorded.
var ErrAlreadyRated = errors.New("satisfaction has already been given")

const (
	MinSatisfaction = 1
	MaxSatisfaction = 5

	maxTitreLength = 255
)

// Party is the display projection of a related row (commune, theme or user)
// eagerly attached to listings.
type Party struct {
	ID     uint
	Name   string
	Prenom string
	Actif  *bool
}

// Intervention is a legal question submitted by a commune user.
type Intervention struct {
	id            uint
	titre         string
	description   string
	reponse       *string
	notes         *string
	satisfaction  *int
	urgent        bool
	demandeurID   uint
	juristeID     *uint
	communeID     uint
	themeID       uint
	dateQuestion  time.Time
	dateReponse   *time.Time
	dateArchivage *time.Time

	commune   *Party
	theme     *Party
	demandeur *Party
	juriste   *Party
}

func NewIntervention(titre, description string, urgent bool, demandeurID, communeID, themeID uint) (*Intervention, error) {
	titre = strings.TrimSpace(titre)
	description = strings.TrimSpace(description)

	if titre == "" {
		return nil, fmt.Errorf("titre is required")
	}
	if len(titre) > maxTitreLength {
		return nil, fmt.Errorf("titre exceeds maximum length of %d characters", maxTitreLength)
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if demandeurID == 0 {
		return nil, fmt.Errorf("demandeur ID is required")
	}
	if communeID == 0 {
		return nil, fmt.Errorf("commune ID is required")
	}
	if themeID == 0 {
		return nil, fmt.Errorf("theme ID is required")
	}

	return &Intervention{
		titre:        titre,
		description:  description,
		urgent:       urgent,
		demandeurID:  demandeurID,
		communeID:    communeID,
		themeID:      themeID,
		dateQuestion: time.Now().UTC(),
	}, nil
}

// ReconstructIntervention rebuilds an intervention from persistence.
func ReconstructIntervention(
	id uint,
	titre, description string,
	reponse, notes *string,
	satisfaction *int,
	urgent bool,
	demandeurID uint,
	juristeID *uint,
	communeID, themeID uint,
	dateQuestion time.Time,
	dateReponse, dateArchivage *time.Time,
) (*Intervention, error) {
	if id == 0 {
		return nil, fmt.Errorf("intervention ID cannot be zero")
	}
	if satisfaction != nil && (*satisfaction < MinSatisfaction || *satisfaction > MaxSatisfaction) {
		return nil, fmt.Errorf("satisfaction out of range: %d", *satisfaction)
	}

	return &Intervention{
		id:            id,
		titre:         titre,
		description:   description,
		reponse:       reponse,
		notes:         notes,
		satisfaction:  satisfaction,
		urgent:        urgent,
		demandeurID:   demandeurID,
		juristeID:     juristeID,
		communeID:     communeID,
		themeID:       themeID,
		dateQuestion:  dateQuestion,
		dateReponse:   dateReponse,
		dateArchivage: dateArchivage,
	}, nil
}

func (i *Intervention) ID() uint                  { return i.id }
func (i *Intervention) Titre() string             { return i.titre }
func (i *Intervention) Description() string       { return i.description }
func (i *Intervention) Reponse() *string          { return i.reponse }
func (i *Intervention) Notes() *string            { return i.notes }
func (i *Intervention) Satisfaction() *int        { return i.satisfaction }
func (i *Intervention) Urgent() bool              { return i.urgent }
func (i *Intervention) DemandeurID() uint         { return i.demandeurID }
func (i *Intervention) JuristeID() *uint          { return i.juristeID }
func (i *Intervention) CommuneID() uint           { return i.communeID }
func (i *Intervention) ThemeID() uint             { return i.themeID }
func (i *Intervention) DateQuestion() time.Time   { return i.dateQuestion }
func (i *Intervention) DateReponse() *time.Time   { return i.dateReponse }
func (i *Intervention) DateArchivage() *time.Time { return i.dateArchivage }
func (i *Intervention) Commune() *Party           { return i.commune }
func (i *Intervention) Theme() *Party             { return i.theme }
func (i *Intervention) Demandeur() *Party         { return i.demandeur }
func (i *Intervention) Juriste() *Party           { return i.juriste }

func (i *Intervention) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("intervention ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("intervention ID cannot be zero")
	}
	i.id = id
	return nil
}

// AttachRelations sets the eagerly loaded display projections. Nil entries
// mean the relation was not requested or does not exist.
func (i *Intervention) AttachRelations(commune, theme, demandeur, juriste *Party) {
	i.commune = commune
	i.theme = theme
	i.demandeur = demandeur
	i.juriste = juriste
}

func (i *Intervention) Status() Status {
	return DeriveStatus(i.reponse, i.satisfaction)
}

func (i *Intervention) IsArchived() bool {
	return i.dateArchivage != nil
}

func (i *Intervention) IsRequestedBy(userID uint) bool {
	return i.demandeurID == userID
}

// Answer records a jurist's answer. Answering again replaces the text and
// keeps an existing rating.
func (i *Intervention) Answer(juristeID uint, reponse string, notes *string) error {
	if i.IsArchived() {
		return fmt.Errorf("cannot answer an archived intervention")
	}
	if juristeID == 0 {
		return fmt.Errorf("juriste ID is required")
	}
	reponse = strings.TrimSpace(reponse)
	if reponse == "" {
		return fmt.Errorf("reponse is required")
	}

	now := time.Now().UTC()
	i.reponse = &reponse
	i.notes = notes
	i.juristeID = &juristeID
	i.dateReponse = &now
	return nil
}

// Rate stores the requester's satisfaction, once, after an answer exists.
func (i *Intervention) Rate(value int) error {
	if i.IsArchived() {
		return fmt.Errorf("cannot rate an archived intervention")
	}
	if i.reponse == nil {
		return fmt.Errorf("intervention has not been answered yet")
	}
	if i.satisfaction != nil {
		return ErrAlreadyRated
	}
	if value < MinSatisfaction || value > MaxSatisfaction {
		return fmt.Errorf("satisfaction must be between %d and %d", MinSatisfaction, MaxSatisfaction)
	}
	i.satisfaction = &value
	return nil
}
