// Package authz decides allow/deny for resource operations. Ownership
// comparison is the sole primitive: no roles, no ACLs. The functions here
// are pure so callers can check decisions without touching storage.
//
// Callers must confirm the resource exists before asking; a missing
// resource is NotFound regardless of the actor.
package authz

type Operation int

const (
	OpRead Operation = iota
	OpCreate
	OpUpdate
	OpDelete
)

// Can reports whether the actor may perform op on a resource owned by
// ownerID. Actor id 0 means unauthenticated.
func Can(actorID, ownerID uint, op Operation) bool {
	switch op {
	case OpRead:
		return true
	case OpCreate:
		return actorID != 0
	case OpUpdate, OpDelete:
		return actorID != 0 && actorID == ownerID
	}
	return false
}
