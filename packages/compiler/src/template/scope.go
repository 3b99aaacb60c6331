package template

import (
	"fmt"

	"fortio.org/safecast"
)

// ScopeID indexes a TemplateScope in a ScopeRegistry
type ScopeID uint32

// RootScope is the file-level scope. It has no effective parent.
const RootScope ScopeID = 0

// TemplateScope is a lexical scope introduced by a list construct
type TemplateScope struct {
	Variables []string
	Parent    ScopeID
}

// Declares reports whether the scope introduces name
func (s *TemplateScope) Declares(name string) bool {
	for _, v := range s.Variables {
		if v == name {
			return true
		}
	}
	return false
}

// ScopeRegistry stores template scopes in a flat arena. A scope's parent
// always has a smaller index, so scopes are allocated in pre-order and the
// ancestor chain can be walked without cycles.
type ScopeRegistry struct {
	scopes []TemplateScope
}

// NewScopeRegistry creates a registry holding only the root scope
func NewScopeRegistry() *ScopeRegistry {
	return &ScopeRegistry{scopes: []TemplateScope{{}}}
}

// Add allocates a child scope of parent
func (r *ScopeRegistry) Add(parent ScopeID, variables ...string) (ScopeID, error) {
	value, err := safecast.Conv[uint32](len(r.scopes))
	if err != nil {
		return 0, fmt.Errorf("scope arena overflow: %w", err)
	}
	id := ScopeID(value)
	if parent >= id {
		return 0, fmt.Errorf("scope %d: parent %d is not allocated yet", id, parent)
	}
	r.scopes = append(r.scopes, TemplateScope{Variables: variables, Parent: parent})
	return id, nil
}

// Get returns the scope or nil if the id is out of range
func (r *ScopeRegistry) Get(id ScopeID) *TemplateScope {
	if int(id) >= len(r.scopes) {
		return nil
	}
	return &r.scopes[id]
}

// Parent returns the enclosing scope of id. The root is its own parent.
func (r *ScopeRegistry) Parent(id ScopeID) ScopeID {
	if scope := r.Get(id); scope != nil && id != RootScope {
		return scope.Parent
	}
	return RootScope
}

// Len is the number of scopes including the root
func (r *ScopeRegistry) Len() int { return len(r.scopes) }

// Lookup walks from id up to the root and returns the first scope declaring
// name. Unknown ids resolve nothing.
func (r *ScopeRegistry) Lookup(id ScopeID, name string) (ScopeID, bool) {
	for {
		scope := r.Get(id)
		if scope == nil {
			return 0, false
		}
		if scope.Declares(name) {
			return id, true
		}
		if id == RootScope {
			return 0, false
		}
		id = scope.Parent
	}
}
