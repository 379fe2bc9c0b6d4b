package predictor

import "sync"

// Mock returns configured scores in sequence and records every input vector.
// It is used to exercise the simulation without real model artifacts.
type Mock struct {
	// Scores are returned in call order; the last entry repeats once the
	// sequence is exhausted. An empty slice scores everything as 0.
	Scores []float64
	// Err, when set, fails every call.
	Err error

	mu     sync.Mutex
	calls  int
	inputs [][]float64
}

// Predict returns the next configured score and stores a copy of the input.
func (m *Mock) Predict(features []float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]float64, len(features))
	copy(cp, features)
	m.inputs = append(m.inputs, cp)
	m.calls++
	if m.Err != nil {
		return 0, m.Err
	}
	if len(m.Scores) == 0 {
		return 0, nil
	}
	i := m.calls - 1
	if i >= len(m.Scores) {
		i = len(m.Scores) - 1
	}
	return m.Scores[i], nil
}

// Calls returns the number of Predict invocations.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Inputs returns the recorded input vectors in call order.
func (m *Mock) Inputs() [][]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]float64, len(m.inputs))
	copy(out, m.inputs)
	return out
}
