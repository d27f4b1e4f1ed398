// Package permission describes the role × resource × action × scope table
// that every use case consults before acting.
package permission

import "tag/internal/shared/authorization"

type Resource string

const (
	ResourceIntervention Resource = "intervention"
	ResourceAttachment   Resource = "attachment"
	ResourceArchive      Resource = "archive"
	ResourceUser         Resource = "user"
	ResourceReference    Resource = "reference"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRead     Action = "read"
	ActionCreate   Action = "create"
	ActionAnswer   Action = "answer"
	ActionRate     Action = "rate"
	ActionUpload   Action = "upload"
	ActionDownload Action = "download"
	ActionDelete   Action = "delete"
	ActionArchive  Action = "archive"
	ActionRestore  Action = "restore"
	ActionStatus   Action = "status"
	ActionManage   Action = "manage"
)

// Scope is how far a granted permission reaches.
type Scope string

const (
	ScopeNone Scope = ""
	ScopeOwn  Scope = "own"
	ScopeAny  Scope = "any"
)

// Ownership is the request-side counterpart of Scope.
const (
	OwnershipOwn   = "own"
	OwnershipOther = "other"
)

// Rule is one row of the policy table.
type Rule struct {
	Role     authorization.UserRole
	Resource Resource
	Action   Action
	Scope    Scope
}

type Policy interface {
	// Allowed reports whether role may perform action on a resource it owns
	// (own=true) or on someone else's.
	Allowed(role authorization.UserRole, resource Resource, action Action, own bool) (bool, error)
	// ScopeOf returns the widest scope granted, ScopeNone when denied.
	ScopeOf(role authorization.UserRole, resource Resource, action Action) (Scope, error)
}

// DefaultRules is the policy table seeded into storage on first start.
func DefaultRules() []Rule {
	admin, juriste, commune := authorization.RoleAdmin, authorization.RoleJuriste, authorization.RoleCommune

	rules := []Rule{
		{admin, ResourceIntervention, ActionList, ScopeAny},
		{admin, ResourceIntervention, ActionRead, ScopeAny},
		{admin, ResourceIntervention, ActionAnswer, ScopeAny},
		{juriste, ResourceIntervention, ActionList, ScopeAny},
		{juriste, ResourceIntervention, ActionRead, ScopeAny},
		{juriste, ResourceIntervention, ActionAnswer, ScopeAny},
		{commune, ResourceIntervention, ActionList, ScopeOwn},
		{commune, ResourceIntervention, ActionRead, ScopeOwn},
		{commune, ResourceIntervention, ActionCreate, ScopeAny},
		{commune, ResourceIntervention, ActionRate, ScopeOwn},

		{admin, ResourceAttachment, ActionDelete, ScopeAny},
		{commune, ResourceAttachment, ActionDelete, ScopeOwn},

		{admin, ResourceUser, ActionManage, ScopeAny},
		{admin, ResourceReference, ActionManage, ScopeAny},
	}

	for _, act := range []Action{ActionUpload, ActionList, ActionDownload} {
		rules = append(rules,
			Rule{admin, ResourceAttachment, act, ScopeAny},
			Rule{juriste, ResourceAttachment, act, ScopeAny},
			Rule{commune, ResourceAttachment, act, ScopeOwn},
		)
	}
	for _, act := range []Action{ActionArchive, ActionRestore, ActionStatus, ActionList} {
		rules = append(rules, Rule{admin, ResourceArchive, act, ScopeAny})
	}
	for _, role := range authorization.AllRoles() {
		rules = append(rules, Rule{role, ResourceReference, ActionRead, ScopeAny})
	}

	return rules
}
