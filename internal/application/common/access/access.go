// Package access turns policy decisions into application errors.
package access

import (
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
)

const deniedMessage = "Accès refusé"

// Require fails with a Forbidden error unless the actor may perform action
// on resource. own tells whether the actor owns the target.
func Require(policy permission.Policy, actor authorization.Actor, resource permission.Resource, action permission.Action, own bool) error {
	allowed, err := policy.Allowed(actor.Role, resource, action, own)
	if err != nil {
		return errors.NewInternalError("failed to evaluate permissions", err.Error())
	}
	if !allowed {
		return errors.NewForbiddenError(deniedMessage)
	}
	return nil
}

// Scope returns the widest granted scope, failing with Forbidden when none.
func Scope(policy permission.Policy, actor authorization.Actor, resource permission.Resource, action permission.Action) (permission.Scope, error) {
	scope, err := policy.ScopeOf(actor.Role, resource, action)
	if err != nil {
		return permission.ScopeNone, errors.NewInternalError("failed to evaluate permissions", err.Error())
	}
	if scope == permission.ScopeNone {
		return permission.ScopeNone, errors.NewForbiddenError(deniedMessage)
	}
	return scope, nil
}
