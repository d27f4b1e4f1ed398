// Package testutil provides test doubles shared by the application use case tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tag/internal/domain/permission"
	infraPermission "tag/internal/infrastructure/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/logger"
)

// NewPolicy returns the default policy table held in memory.
func NewPolicy(t *testing.T) permission.Policy {
	t.Helper()
	enforcer, err := infraPermission.NewMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	return enforcer
}

func Admin(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleAdmin}
}

func Juriste(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleJuriste}
}

func Commune(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleCommune}
}
