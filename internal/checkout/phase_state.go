package checkout

import "sync"

// phaseState guards the phase and last-error pair so the UI can read them
// while a submission runs in a command goroutine.
type phaseState struct {
	mu      *sync.Mutex
	current Phase
	lastErr string
}

func newPhaseState() phaseState {
	return phaseState{mu: &sync.Mutex{}, current: PhaseForm}
}

// begin claims the workflow for one attempt. It refuses while an attempt is
// mid-flight and clears the previous attempt's error.
func (s *phaseState) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == PhaseProcessing || s.current == PhasePayment {
		return false
	}
	s.current = PhaseForm
	s.lastErr = ""
	return true
}

func (s *phaseState) advance(phase Phase) {
	s.mu.Lock()
	s.current = phase
	s.mu.Unlock()
}

func (s *phaseState) fail(message string) {
	s.mu.Lock()
	s.current = PhaseForm
	s.lastErr = message
	s.mu.Unlock()
}

func (s *phaseState) succeed() {
	s.mu.Lock()
	s.current = PhaseSucceeded
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *phaseState) reset() {
	s.mu.Lock()
	s.current = PhaseForm
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *phaseState) phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *phaseState) err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
