// Package randomfakes provides scripted random sources for deterministic tests.
package randomfakes

import "github.com/louisbranch/rolltable/internal/random"

// Sequence is a random.Source fake that replays scripted results.
//
// Choices are returned by Choose in order; once exhausted Choose returns the
// first index with positive weight. Ints are returned by Intn in order, each
// reduced modulo n; once exhausted Intn returns 0.
type Sequence struct {
	Choices []int
	Ints    []int

	ChooseCalls int
	IntnCalls   int
}

// Choose implements random.Source.
func (s *Sequence) Choose(weights []float64) (int, error) {
	s.ChooseCalls++
	first := -1
	for i, w := range weights {
		if w > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, random.ErrNoWeight
	}
	if len(s.Choices) == 0 {
		return first, nil
	}
	next := s.Choices[0]
	s.Choices = s.Choices[1:]
	return next, nil
}

// Intn implements random.Source.
func (s *Sequence) Intn(n int) int {
	s.IntnCalls++
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	next := s.Ints[0]
	s.Ints = s.Ints[1:]
	return next % n
}
