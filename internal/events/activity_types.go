package events

import "time"

// ActivityType enumerates the auth activities the gateway emits.
type ActivityType string

const (
	ActivityLogin            ActivityType = "auth_login"
	ActivityLoginFailed      ActivityType = "auth_login_failed"
	ActivityLogout           ActivityType = "auth_logout"
	ActivityRegister         ActivityType = "auth_register"
	ActivityOrganizerRequest ActivityType = "organizer_request"
)

// All lists every activity type, for subscribers that want the full feed.
func All() []ActivityType {
	return []ActivityType{
		ActivityLogin,
		ActivityLoginFailed,
		ActivityLogout,
		ActivityRegister,
		ActivityOrganizerRequest,
	}
}

// Activity is an auth-layer event emitted by handlers. The gateway never
// stores these; subscribers decide what to do with them.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Email     string       `json:"email,omitempty"`
	Detail    string       `json:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
