package model

// ErrorKind classifies domain failures into a closed set of variants.
// HTTP handlers map kinds to status codes without inspecting entity types.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindNotFound
	ErrKindConflict
	ErrKindInvalid
	ErrKindMalformedID
)

// Error is a tagged domain error carrying the entity kind and a
// human-readable message. Two Errors match under errors.Is when their
// Kind and Entity are equal.
type Error struct {
	Kind   ErrorKind
	Entity string
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Entity == t.Entity
}

var (
	ErrWorkspaceNotFound = &Error{Kind: ErrKindNotFound, Entity: "workspace", Msg: "workspace not found"}
	ErrWorkspaceInvalid  = &Error{Kind: ErrKindInvalid, Entity: "workspace", Msg: "workspace invalid"}

	ErrProjectNotFound      = &Error{Kind: ErrKindNotFound, Entity: "project", Msg: "project not found"}
	ErrProjectInvalid       = &Error{Kind: ErrKindInvalid, Entity: "project", Msg: "project invalid"}
	ErrProjectAlreadyExists = &Error{Kind: ErrKindConflict, Entity: "project", Msg: "project already exists in this workspace"}

	ErrTaskNotFound = &Error{Kind: ErrKindNotFound, Entity: "task", Msg: "task not found"}
	ErrTaskInvalid  = &Error{Kind: ErrKindInvalid, Entity: "task", Msg: "task invalid"}

	ErrCommentNotFound = &Error{Kind: ErrKindNotFound, Entity: "comment", Msg: "comment not found"}
	ErrCommentInvalid  = &Error{Kind: ErrKindInvalid, Entity: "comment", Msg: "comment invalid"}

	ErrUserNotFound = &Error{Kind: ErrKindNotFound, Entity: "user", Msg: "user not found"}
	ErrUserInvalid  = &Error{Kind: ErrKindInvalid, Entity: "user", Msg: "user invalid"}

	ErrMalformedID = &Error{Kind: ErrKindMalformedID, Entity: "id", Msg: "malformed identifier"}
)

func kindOf(err error) ErrorKind {
	for e := err; e != nil; {
		if de, ok := e.(*Error); ok {
			return de.Kind
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return ErrKindUnknown
		}
		e = u.Unwrap()
	}
	return ErrKindUnknown
}

// IsNotFound reports whether err is a NotFound-class domain error.
func IsNotFound(err error) bool { return kindOf(err) == ErrKindNotFound }

// IsConflict reports whether err is a Conflict-class domain error.
func IsConflict(err error) bool { return kindOf(err) == ErrKindConflict }

// IsInvalid reports whether err is an Invalid-class domain error.
func IsInvalid(err error) bool { return kindOf(err) == ErrKindInvalid }

// IsMalformedID reports whether err is a malformed identifier error.
func IsMalformedID(err error) bool { return kindOf(err) == ErrKindMalformedID }
