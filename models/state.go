package models

// SyncState is the lifecycle state of the client sync controller.
//
//	uninitialized -> loading -> idle(hasData|empty) -> saving -> idle
type SyncState int

const (
	StateUninitialized SyncState = iota
	StateLoading
	StateIdleEmpty
	StateIdleHasData
	StateSaving
)

func (s SyncState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateIdleEmpty:
		return "idle(empty)"
	case StateIdleHasData:
		return "idle(hasData)"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// Idle reports whether s is one of the idle states.
func (s SyncState) Idle() bool {
	return s == StateIdleEmpty || s == StateIdleHasData
}
