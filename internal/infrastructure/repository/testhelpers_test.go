package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbdriver "tag/internal/infrastructure/database"
	"tag/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(dbdriver.SQLiteDialector(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	// :memory: databases are per connection; count and fetch run in parallel.
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(models.All()...))
	return database
}

type fixture struct {
	communeA, communeB uint
	themeUrba, themeRH uint
	demandeurA         uint
	demandeurB         uint
	juriste            uint
}

func seedReferences(t *testing.T, database *gorm.DB) fixture {
	t.Helper()

	now := time.Now().UTC()
	communes := []*models.CommuneModel{
		{Nom: "Saint-Étienne", Actif: true, CreatedAt: now, UpdatedAt: now},
		{Nom: "Lyon", Actif: true, CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, database.Create(&communes).Error)

	themes := []*models.ThemeModel{
		{Designation: "Urbanisme", Actif: true, CreatedAt: now, UpdatedAt: now},
		{Designation: "Ressources humaines", Actif: true, CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, database.Create(&themes).Error)

	users := []*models.UserModel{
		{Nom: "Martin", Prenom: "Claire", Email: "claire@st-etienne.fr", PasswordHash: "x", Role: "commune", CommuneID: &communes[0].ID, Actif: true, CreatedAt: now, UpdatedAt: now},
		{Nom: "Bernard", Prenom: "Luc", Email: "luc@lyon.fr", PasswordHash: "x", Role: "commune", CommuneID: &communes[1].ID, Actif: true, CreatedAt: now, UpdatedAt: now},
		{Nom: "Durand", Prenom: "Paul", Email: "paul@tag.fr", PasswordHash: "x", Role: "juriste", Actif: true, CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, database.Create(&users).Error)

	return fixture{
		communeA:   communes[0].ID,
		communeB:   communes[1].ID,
		themeUrba:  themes[0].ID,
		themeRH:    themes[1].ID,
		demandeurA: users[0].ID,
		demandeurB: users[1].ID,
		juriste:    users[2].ID,
	}
}

type interventionSeed struct {
	titre        string
	description  string
	reponse      *string
	notes        *string
	satisfaction *int
	demandeur    uint
	commune      uint
	theme        uint
	dateQuestion time.Time
	archivedAt   *time.Time
}

func seedIntervention(t *testing.T, database *gorm.DB, s interventionSeed) uint {
	t.Helper()

	if s.description == "" {
		s.description = "Question"
	}
	if s.dateQuestion.IsZero() {
		s.dateQuestion = time.Now().UTC()
	}
	m := &models.InterventionModel{
		Titre:         s.titre,
		Description:   s.description,
		Reponse:       s.reponse,
		Notes:         s.notes,
		Satisfaction:  s.satisfaction,
		DemandeurID:   s.demandeur,
		CommuneID:     s.commune,
		ThemeID:       s.theme,
		DateQuestion:  s.dateQuestion,
		DateArchivage: s.archivedAt,
	}
	require.NoError(t, database.Create(m).Error)
	return m.ID
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}
