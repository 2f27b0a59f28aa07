package model

import "math/rand"

// Timetabler builds a complete exam assignment for an instance and verifies
// candidate assignments against the scheduling rules.
type Timetabler interface {
	// Build constructs an assignment and reports the outcome. It returns an
	// error only for contract violations (InputError) or structural
	// infeasibility (InfeasibleError); an exhausted iteration budget is a
	// normal Result with StatusInfeasible.
	Build(instance Instance) (*Result, error)

	// Verify reports whether an assignment is complete, structurally valid
	// and free of every soft-rule violation for the instance.
	Verify(assignment Assignment, instance Instance) bool
}

// NewTimetabler returns the annealing timetabler. A nil rng falls back to a
// source seeded with DefaultSeed; passing a fixed-seed rng makes the whole
// solve deterministic.
func NewTimetabler(parameters Parameters, rng *rand.Rand) Timetabler {
	return newAnnealingTimetabler(parameters, rng)
}
