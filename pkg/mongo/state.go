package mongo

import "sync/atomic"

// State is the process-wide connectivity flag. The bootstrapper is its only
// writer; health checks read it.
type State interface {
	Connected() bool
	SetConnected(bool)
}

// ConnectionState is the default State. The zero value reports disconnected
// and is safe for concurrent use.
type ConnectionState struct {
	connected atomic.Bool
}

// NewConnectionState returns a disconnected state.
func NewConnectionState() *ConnectionState {
	return &ConnectionState{}
}

// Connected reports whether the last bootstrap attempt succeeded.
func (s *ConnectionState) Connected() bool {
	return s.connected.Load()
}

// SetConnected stores the result of a bootstrap attempt.
func (s *ConnectionState) SetConnected(v bool) {
	s.connected.Store(v)
}
