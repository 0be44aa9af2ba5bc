package service

import "github.com/google/uuid"

// Actor is the acting principal passed into workflow operations. Role
// gates live at the API boundary; the workflow uses the actor only to
// stamp audit rows and preparer/assembler/courier references, so
// privileged internal callers work without re-deriving role checks.
type Actor struct {
	UserID       uuid.UUID
	Capabilities []string
}

// SystemActor is the anonymous internal principal (seed jobs, queue
// workers). Its audit rows carry no user reference.
var SystemActor = Actor{}

// userIDRef returns the actor's user id for audit rows, nil for
// anonymous principals.
func (a Actor) userIDRef() *uuid.UUID {
	if a.UserID == uuid.Nil {
		return nil
	}
	id := a.UserID
	return &id
}

// Can reports whether the actor holds the capability.
func (a Actor) Can(capability string) bool {
	for _, c := range a.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}
