package validation

// IssueCodeCustom is the code carried by every engine-produced issue, matching
// the payload contract of the storage layer.
const IssueCodeCustom = "custom"

// Message ids handed to the localizer. The engine never emits final strings.
const (
	msgInvalidString = "Invalid string"
	msgInvalidShape  = "Invalid response shape"
	msgRequired      = "error_required_field"
	msgInvalidEmail  = "email_validation_error"
)

// Issue is a structured, localizable validation failure for one field or
// sub-field.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Localizer resolves a message id into a user-facing string. Callers pass
// their translation function; Keys passes ids through untouched.
type Localizer func(key string) string

// Keys is the identity localizer, useful in tests and non-UI callers.
func Keys(key string) string { return key }

// IssueSink collects issues during a validation pass.
type IssueSink struct {
	issues []Issue
}

// Add appends a localized issue.
func (s *IssueSink) Add(message string) {
	s.issues = append(s.issues, Issue{Code: IssueCodeCustom, Message: message})
}

// Issues returns the collected issues in emission order.
func (s *IssueSink) Issues() []Issue { return s.issues }

// Empty reports whether no issue was collected.
func (s *IssueSink) Empty() bool { return len(s.issues) == 0 }
