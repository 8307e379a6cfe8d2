package social

import "fmt"

// ErrorKind is a stable machine-readable error category. Transport layers
// map kinds to status codes; the core only decides which kind applies.
type ErrorKind string

const (
	KindForbidden               ErrorKind = "forbidden"
	KindCommentsDisabled        ErrorKind = "comments_disabled"
	KindDuplicateTopLevel       ErrorKind = "duplicate_top_level_comment"
	KindSelfReply               ErrorKind = "self_reply_forbidden"
	KindDuplicateRelationship   ErrorKind = "duplicate_relationship"
	KindSelfFriendship          ErrorKind = "self_friendship"
	KindAlreadyLiked            ErrorKind = "already_liked"
	KindMaxCommentDepthExceeded ErrorKind = "max_comment_depth_exceeded"
	KindNotFound                ErrorKind = "not_found"
	KindPersistence             ErrorKind = "persistence_error"
)

// Error is a domain-rule violation or storage failure with a stable kind
// and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same kind, so callers can test against the
// package sentinels with errors.Is regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrForbidden              = &Error{Kind: KindForbidden, Message: "you are not allowed to access this content"}
	ErrCommentsDisabled       = &Error{Kind: KindCommentsDisabled, Message: "comments are disabled for this content"}
	ErrDuplicateTopLevel      = &Error{Kind: KindDuplicateTopLevel, Message: "you already have a comment on this content"}
	ErrSelfReply              = &Error{Kind: KindSelfReply, Message: "you cannot reply to your own comment"}
	ErrDuplicateRelationship  = &Error{Kind: KindDuplicateRelationship, Message: "a relationship with this user already exists"}
	ErrSelfFriendship         = &Error{Kind: KindSelfFriendship, Message: "you cannot send a friend request to yourself"}
	ErrAlreadyLiked           = &Error{Kind: KindAlreadyLiked, Message: "you already liked this content"}
	ErrMaxCommentDepth        = &Error{Kind: KindMaxCommentDepthExceeded, Message: "maximum comment nesting depth exceeded"}
	ErrNotFound               = &Error{Kind: KindNotFound, Message: "the requested resource does not exist"}
)

func notFound(what string) error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func persistence(err error) error {
	return &Error{Kind: KindPersistence, Message: fmt.Sprintf("storage failure: %v", err), cause: err}
}
