package migration

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pressly/goose/v3"

	"tag/internal/shared/logger"
)

var migrationName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes new goose SQL scripts into the source tree.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration creates a sequentially numbered script holding both the
// Up and Down sections.
func (g *Generator) CreateMigration(name string) error {
	if !migrationName.MatchString(name) {
		return fmt.Errorf("migration name must be snake_case: %q", name)
	}

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	goose.SetSequential(true)
	if err := goose.Create(nil, g.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	g.logger.Infow("migration file created", "name", name, "dir", g.scriptsPath)
	return nil
}
