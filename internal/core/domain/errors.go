package domain

import "errors"

// ErrorCode identifies a roster failure kind
type ErrorCode string

const (
	CodeNoDeveloper                    ErrorCode = "NO_DEVELOPER"
	CodeDuplicatedMemberID             ErrorCode = "DUPLICATED_MEMBER_ID"
	CodeLevelExperienceYearsNotMatched ErrorCode = "LEVEL_EXPERIENCE_YEARS_NOT_MATCHED"
	CodeInvalidRequest                 ErrorCode = "INVALID_REQUEST"
	CodeInternalServerError            ErrorCode = "INTERNAL_SERVER_ERROR"
)

var codeMessages = map[ErrorCode]string{
	CodeNoDeveloper:                    "no developer found for the given member id",
	CodeDuplicatedMemberID:             "a developer with this member id already exists",
	CodeLevelExperienceYearsNotMatched: "developer level and experience years do not match",
	CodeInvalidRequest:                 "invalid request",
	CodeInternalServerError:            "internal server error",
}

// Message returns the default human readable message for the code
func (c ErrorCode) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return codeMessages[CodeInternalServerError]
}

// RosterError is a request-scoped failure carrying an error code
type RosterError struct {
	Code   ErrorCode
	Detail string
}

// NewError creates a RosterError with an optional detail message
func NewError(code ErrorCode, detail string) *RosterError {
	return &RosterError{Code: code, Detail: detail}
}

func (e *RosterError) Error() string {
	if e.Detail != "" {
		return string(e.Code) + ": " + e.Detail
	}
	return string(e.Code) + ": " + e.Code.Message()
}

// Message returns the detail when set, otherwise the code's default message
func (e *RosterError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Code.Message()
}

// Is matches any RosterError with the same code
func (e *RosterError) Is(target error) bool {
	var t *RosterError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Roster errors
var (
	ErrNoDeveloper                    = &RosterError{Code: CodeNoDeveloper}
	ErrDuplicatedMemberID             = &RosterError{Code: CodeDuplicatedMemberID}
	ErrLevelExperienceYearsNotMatched = &RosterError{Code: CodeLevelExperienceYearsNotMatched}
	ErrInvalidRequest                 = &RosterError{Code: CodeInvalidRequest}
	ErrInternalServerError            = &RosterError{Code: CodeInternalServerError}
)

// CodeOf extracts the error code; anything unanticipated is INTERNAL_SERVER_ERROR
func CodeOf(err error) ErrorCode {
	var re *RosterError
	if errors.As(err, &re) {
		return re.Code
	}
	return CodeInternalServerError
}
