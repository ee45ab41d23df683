package dto

// Estados da sessão.
const (
	SessionAnonymous      = "anonymous"
	SessionAuthenticated  = "authenticated"
	SessionProfileMissing = "profile_missing"
)

// SessionResponse GET /api/session.
type SessionResponse struct {
	State string        `json:"state"`
	User  *UserResponse `json:"user,omitempty"`
}

// GuardResponse decisão do guard de rota: render, redirect ou loading.
type GuardResponse struct {
	Decision string `json:"decision"`
	Location string `json:"location,omitempty"`
}
