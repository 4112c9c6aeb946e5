package credentials

// Provider abstracts where the bearer token lives, so the API client depends
// on an interface instead of process-wide state and tests can substitute an
// in-memory holder.
type Provider interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// Memory holds the token in process memory. Used in tests and for sessions
// that should not outlive the process.
type Memory struct {
	token string
}

func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Get() (string, error) {
	return m.token, nil
}

func (m *Memory) Set(token string) error {
	m.token = token
	return nil
}

func (m *Memory) Clear() error {
	m.token = ""
	return nil
}
