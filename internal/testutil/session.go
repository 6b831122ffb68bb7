package testutil

// FixedSessionGenerator generates the same session token every time.
//
// The CLI tags every log line and journal entry with a session token; a
// fixed one keeps journal listings and log output comparable across runs.
//
// Thread-safety: FixedSessionGenerator is stateless and safe for concurrent use.
type FixedSessionGenerator struct {
	token string
}

// NewFixedSessionGenerator creates a new fixed session generator.
//
// If token is empty, Generate() returns "test-session".
func NewFixedSessionGenerator(token string) *FixedSessionGenerator {
	if token == "" {
		token = "test-session"
	}
	return &FixedSessionGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedSessionGenerator) Generate() string {
	return g.token
}
