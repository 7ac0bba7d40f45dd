package models

import "strings"

// UserLookup is satisfied by any store that can resolve an account by
// email, returning (nil, nil) on a miss.
type UserLookup interface {
	GetUserByEmail(email string) (*User, error)
}

// RequireTeacher runs the actor preconditions shared by every
// teacher-only flow, in order: missing actor, actor not found, not a
// teacher. It returns the teacher account when all three pass.
func RequireTeacher(store UserLookup, email, claimedRole string) (*User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(claimedRole) == "" {
		return nil, ErrMissingActor
	}
	teacher, err := store.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, ErrActorNotFound
	}
	if !teacher.IsTeacher(claimedRole) {
		return nil, ErrNotATeacher
	}
	return teacher, nil
}
