package rolestate

import (
	"errors"

	"natheme-api/models"
)

// Transition defines a valid role change and who can perform it
type Transition struct {
	From  models.UserRole
	To    models.UserRole
	Actor string // "owner" is the only actor that may change roles
}

const ActorOwner = "owner"

// validTransitions is the authoritative role state machine definition.
// The owner role never appears as a From or To state: owner status is
// established by configuration, not through the API.
var validTransitions = []Transition{
	{From: models.RoleCustomer, To: models.RoleAdmin, Actor: ActorOwner},
	{From: models.RoleAdmin, To: models.RoleCustomer, Actor: ActorOwner},
}

type transitionKey struct {
	From  models.UserRole
	To    models.UserRole
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next roles from a given role
func ValidTransitionsFrom(role models.UserRole) []models.UserRole {
	var nexts []models.UserRole
	seen := map[models.UserRole]bool{}
	for _, t := range validTransitions {
		if t.From == role && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move a user between roles
func CanTransition(from, to models.UserRole, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid role change: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'",
	)
}

// GetAllTransitions returns the full role state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
