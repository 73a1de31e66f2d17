package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length limits, shared by the API server and the client-side stores
// so both sides reject the same input.
const (
	TitleMaxLen   = 200
	ContentMaxLen = 2000
	AuthorMaxLen  = 100
)

// ValidationError carries per-field messages in the same shape the API
// returns them: field name to a list of human-readable problems.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	var parts []string
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func checkRequired(e *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, field+" is required")
	}
}

func checkMaxLen(e *ValidationError, field, value string, maxLen int) {
	if utf8.RuneCountInString(value) > maxLen {
		e.add(field, fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
}

// ValidateNewTask checks the fields of a task create request.
func ValidateNewTask(title string) error {
	var e ValidationError
	checkRequired(&e, "title", title)
	checkMaxLen(&e, "title", title, TitleMaxLen)
	return e.orNil()
}

// ValidateTaskPatch checks the set fields of a task update. Nil fields are
// omitted from the request and skip validation.
func ValidateTaskPatch(title *string) error {
	var e ValidationError
	if title != nil {
		checkRequired(&e, "title", *title)
		checkMaxLen(&e, "title", *title, TitleMaxLen)
	}
	return e.orNil()
}

// ValidateNewComment checks the fields of a comment create request. Author is
// required on creation.
func ValidateNewComment(content, author string) error {
	var e ValidationError
	checkRequired(&e, "content", content)
	checkMaxLen(&e, "content", content, ContentMaxLen)
	checkRequired(&e, "author", author)
	checkMaxLen(&e, "author", author, AuthorMaxLen)
	return e.orNil()
}

// ValidateCommentPatch checks the set fields of a comment update. Author may
// be omitted; when present it must still be non-empty.
func ValidateCommentPatch(content, author *string) error {
	var e ValidationError
	if content != nil {
		checkRequired(&e, "content", *content)
		checkMaxLen(&e, "content", *content, ContentMaxLen)
	}
	if author != nil {
		checkRequired(&e, "author", *author)
		checkMaxLen(&e, "author", *author, AuthorMaxLen)
	}
	return e.orNil()
}
