package archive

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Table names an archivable table.
type Table string

const (
	TableInterventions Table = "interventions"
	TableUsers         Table = "users"
	TableCommunes      Table = "communes"
	TableThemes        Table = "themes"
)

func (t Table) String() string {
	return string(t)
}

func (t Table) IsValid() bool {
	switch t {
	case TableInterventions, TableUsers, TableCommunes, TableThemes:
		return true
	}
	return false
}

func ParseTable(value string) (Table, error) {
	t := Table(strings.ToLower(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", fmt.Errorf("unsupported archive table: %s", value)
	}
	return t, nil
}

// Record is a point-in-time JSON snapshot of an archived row. It stays as
// history after a restore; only records with no restore stamp are active.
type Record struct {
	id            uint
	table         Table
	entityID      uint
	entityData    json.RawMessage
	reason        string
	dateArchivage time.Time
	archivedBy    uint
	restoredAt    *time.Time
	restoredBy    *uint
}

func NewRecord(table Table, entityID uint, snapshot json.RawMessage, reason string, archivedBy uint, at time.Time) (*Record, error) {
	if !table.IsValid() {
		return nil, fmt.Errorf("unsupported archive table: %s", table)
	}
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if len(snapshot) == 0 || !json.Valid(snapshot) {
		return nil, fmt.Errorf("snapshot must be valid JSON")
	}
	if archivedBy == 0 {
		return nil, fmt.Errorf("archived_by is required")
	}

	return &Record{
		table:         table,
		entityID:      entityID,
		entityData:    snapshot,
		reason:        strings.TrimSpace(reason),
		dateArchivage: at.UTC(),
		archivedBy:    archivedBy,
	}, nil
}

func ReconstructRecord(
	id uint,
	table Table,
	entityID uint,
	entityData json.RawMessage,
	reason string,
	dateArchivage time.Time,
	archivedBy uint,
	restoredAt *time.Time,
	restoredBy *uint,
) *Record {
	return &Record{
		id:            id,
		table:         table,
		entityID:      entityID,
		entityData:    entityData,
		reason:        reason,
		dateArchivage: dateArchivage,
		archivedBy:    archivedBy,
		restoredAt:    restoredAt,
		restoredBy:    restoredBy,
	}
}

func (r *Record) ID() uint                    { return r.id }
func (r *Record) Table() Table                { return r.table }
func (r *Record) EntityID() uint              { return r.entityID }
func (r *Record) EntityData() json.RawMessage { return r.entityData }
func (r *Record) Reason() string              { return r.reason }
func (r *Record) DateArchivage() time.Time    { return r.dateArchivage }
func (r *Record) ArchivedBy() uint            { return r.archivedBy }
func (r *Record) RestoredAt() *time.Time      { return r.restoredAt }
func (r *Record) RestoredBy() *uint           { return r.restoredBy }

func (r *Record) IsActive() bool {
	return r.restoredAt == nil
}

func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("archive record ID is already set")
	}
	r.id = id
	return nil
}

// MarkRestored closes the record.
func (r *Record) MarkRestored(by uint, at time.Time) error {
	if !r.IsActive() {
		return fmt.Errorf("archive record %d is already restored", r.id)
	}
	t := at.UTC()
	r.restoredAt = &t
	r.restoredBy = &by
	return nil
}
