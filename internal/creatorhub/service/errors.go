package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. The HTTP layer maps each kind to a
// status code.
type Kind string

const (
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindNotFound      Kind = "not_found"
	KindValidation    Kind = "validation_error"
	KindInviteInvalid Kind = "invite_invalid"
	KindEmailMismatch Kind = "email_mismatch"
	KindAlreadyLinked Kind = "already_linked"
	KindConflict      Kind = "conflict"
)

// Error is a typed business failure. Anything that is not an *Error is an
// internal fault.
type Error struct {
	Kind    Kind
	Message string

	// Details maps input field names to problems, set for KindValidation.
	Details map[string]string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches on kind, and on message when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

var (
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrInviteInvalid      = &Error{Kind: KindInviteInvalid, Message: "invite is invalid or expired"}
	ErrEmailMismatch      = &Error{Kind: KindEmailMismatch, Message: "email does not match the invite"}
	ErrAlreadyLinked      = &Error{Kind: KindAlreadyLinked, Message: "roster entry is already linked to an account"}
	ErrNotYourCampaign    = &Error{Kind: KindForbidden, Message: "not your campaign"}
	ErrNotYourRosterEntry = &Error{Kind: KindUnauthorized, Message: "not your roster entry"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "invalid email or password"}
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "email already registered"}
)

func notFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func invalid(field, problem string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "invalid input",
		Details: map[string]string{field: problem},
	}
}

// KindOf returns the kind of err, or "" when err is not a service error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
