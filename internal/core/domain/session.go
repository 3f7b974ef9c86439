package domain

// SessionState is a step of the session lifecycle.
type SessionState string

const (
	SessionUnresolved    SessionState = "unresolved"
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// User-facing failure messages surfaced through Session.Error.
const (
	MsgLoginFailed  = "Invalid email or password"
	MsgSignupFailed = "Failed to create account"
)

// Session is a point-in-time view of a session store.
type Session struct {
	State    SessionState `json:"state"`
	Identity *Identity    `json:"user"`
	Loading  bool         `json:"loading"`
	Error    string       `json:"error,omitempty"`
}

// Authenticated reports whether the snapshot holds an identity.
func (s Session) Authenticated() bool {
	return s.State == SessionAuthenticated && s.Identity != nil
}
