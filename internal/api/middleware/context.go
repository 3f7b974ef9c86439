package middleware

// Keys under which middleware stores request-scoped values in echo.Context.
const (
	// ContextProfile holds the browser profile id (string).
	ContextProfile = "profile_id"
	// ContextIdentity holds the bearer token's domain.Identity.
	ContextIdentity = "identity"
	// ContextRole holds the bearer token's role as a string, for RBAC.
	ContextRole = "role"
)
