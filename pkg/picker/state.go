package picker

import "sync"

// OpenState is a host-side open flag for callers without their own state
// store. Pass Open() as Props.IsOpen and Set as Props.SetOpen.
type OpenState struct {
	mu   sync.Mutex
	open bool
}

// Open reports the current flag.
func (s *OpenState) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Set stores the flag.
func (s *OpenState) Set(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
}

// Bind returns props wired to the state.
func (s *OpenState) Bind(props Props) Props {
	props.IsOpen = s.Open()
	props.SetOpen = s.Set
	return props
}
