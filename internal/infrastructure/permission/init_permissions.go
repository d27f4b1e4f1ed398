package permission

import (
	"fmt"

	"tag/internal/domain/permission"
)

// SeedDefaultPolicies writes the default table when storage holds no rules.
// An operator-edited table is left untouched.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing, err := e.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policies: %w", err)
	}
	if len(existing) > 0 {
		e.logger.Infow("policy table already seeded", "rules", len(existing))
		return nil
	}

	rules := toPolicies(permission.DefaultRules())
	if _, err := e.enforcer.AddPolicies(rules); err != nil {
		e.logger.Errorw("failed to seed default policies", "error", err)
		return fmt.Errorf("failed to seed default policies: %w", err)
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		e.logger.Errorw("failed to save default policies", "error", err)
		return fmt.Errorf("failed to save default policies: %w", err)
	}

	e.logger.Infow("default policies seeded", "rules", len(rules))
	return nil
}
