package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/logger"
)

// modelText grants a request when a policy row matches role, resource and
// action, and its scope is "any" or equals the request's ownership.
const modelText = `
[request_definition]
r = sub, obj, act, own

[policy_definition]
p = sub, obj, act, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act && (p.scope == "any" || p.scope == r.own)
`

var _ permission.Policy = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer backs the policy table with the casbin_rule table.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// NewMemoryEnforcer holds the default rules in memory only.
func NewMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if _, err := enforcer.AddPolicies(toPolicies(permission.DefaultRules())); err != nil {
		return nil, fmt.Errorf("failed to add default policies: %w", err)
	}
	return e, nil
}

func (e *Enforcer) Allowed(role authorization.UserRole, resource permission.Resource, action permission.Action, own bool) (bool, error) {
	ownership := permission.OwnershipOther
	if own {
		ownership = permission.OwnershipOwn
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(string(role), string(resource), string(action), ownership)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) ScopeOf(role authorization.UserRole, resource permission.Resource, action permission.Action) (permission.Scope, error) {
	anyAllowed, err := e.Allowed(role, resource, action, false)
	if err != nil {
		return permission.ScopeNone, err
	}
	if anyAllowed {
		return permission.ScopeAny, nil
	}

	ownAllowed, err := e.Allowed(role, resource, action, true)
	if err != nil {
		return permission.ScopeNone, err
	}
	if ownAllowed {
		return permission.ScopeOwn, nil
	}
	return permission.ScopeNone, nil
}

func toPolicy(r permission.Rule) []string {
	return []string{string(r.Role), string(r.Resource), string(r.Action), string(r.Scope)}
}

func toPolicies(rules []permission.Rule) [][]string {
	out := make([][]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, toPolicy(r))
	}
	return out
}
