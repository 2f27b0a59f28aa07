package model

import (
	"slices"
	"time"
)

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusFeasible means the best assignment violates no constraint.
	StatusFeasible Status = iota
	// StatusInfeasible means the iteration budget ran out with violations
	// remaining; the best-effort assignment is still exposed for diagnostics.
	StatusInfeasible
)

func (status Status) String() string {
	if status == StatusFeasible {
		return "feasible"
	}
	return "infeasible"
}

// Assignment maps every exam to a room and a slot through two parallel
// slices indexed by exam id.
type Assignment struct {
	Rooms []int
	Slots []int
}

func (assignment Assignment) clone() Assignment {
	return Assignment{
		Rooms: slices.Clone(assignment.Rooms),
		Slots: slices.Clone(assignment.Slots),
	}
}

// Result is what a solve reports: the outcome status, the best assignment
// found, its cost, the iterations consumed and the elapsed wall time. The
// elapsed time is informational only and never drives control flow.
type Result struct {
	Status     Status
	Assignment Assignment
	Cost       int
	Iterations int
	Elapsed    time.Duration
}
