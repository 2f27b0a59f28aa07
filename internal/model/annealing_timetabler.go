package model

import (
	"math"
	"math/rand"
	"time"
)

// annealingTimetabler runs a Metropolis-style local search over complete
// assignments. Acceptance of a worse move is measured against the best cost
// seen so far rather than the current cost; this best-seeking variant is the
// intended behaviour, not textbook annealing.
type annealingTimetabler struct {
	parameters Parameters
	rng        *rand.Rand

	// trace, when set, observes (iteration, bestCost) after every counted
	// iteration. Used by tests to pin the best-cost trajectory.
	trace func(iteration, bestCost int)
}

func newAnnealingTimetabler(parameters Parameters, rng *rand.Rand) *annealingTimetabler {
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return &annealingTimetabler{
		parameters: parameters,
		rng:        rng,
	}
}

func (timetabler *annealingTimetabler) Build(instance Instance) (*Result, error) {
	started := time.Now()

	if err := instance.Validate(); err != nil {
		return nil, err
	}

	// No exams means an empty assignment is already feasible.
	if instance.Exams == 0 {
		return &Result{
			Status:  StatusFeasible,
			Elapsed: time.Since(started),
		}, nil
	}

	index := NewIncidenceIndex(instance)
	candidates, err := BuildCandidates(instance, index, timetabler.parameters)
	if err != nil {
		return nil, err
	}

	evaluator := newCostEvaluator(instance, index, timetabler.parameters)

	// Initial assignment: a uniformly random candidate per exam.
	current := Assignment{
		Rooms: make([]int, instance.Exams),
		Slots: make([]int, instance.Exams),
	}
	for exam := range candidates {
		candidate := candidates[exam][timetabler.rng.Intn(len(candidates[exam]))]
		current.Rooms[exam] = candidate.Room
		current.Slots[exam] = candidate.Slot
	}

	best := current.clone()
	bestCost := evaluator.cost(best)

	maxIterations := timetabler.parameters.MaxIterations
	iterations := 0

	for iteration := 0; iteration < maxIterations; iteration++ {
		if bestCost == 0 {
			break
		}
		iterations = iteration + 1

		temperature := timetabler.parameters.StartTemp *
			math.Pow(timetabler.parameters.EndTemp/timetabler.parameters.StartTemp, float64(iteration)/float64(maxIterations))

		// Propose: relocate a random exam to a random candidate. A no-op
		// proposal is skipped but still consumes the iteration.
		exam := timetabler.rng.Intn(instance.Exams)
		oldRoom, oldSlot := current.Rooms[exam], current.Slots[exam]
		candidate := candidates[exam][timetabler.rng.Intn(len(candidates[exam]))]
		if candidate.Room == oldRoom && candidate.Slot == oldSlot {
			timetabler.observe(iterations, bestCost)
			continue
		}

		current.Rooms[exam], current.Slots[exam] = candidate.Room, candidate.Slot
		newCost := evaluator.cost(current)

		// Accept on a new global best, otherwise keep the move with the
		// Metropolis probability measured against the best cost.
		if newCost < bestCost {
			bestCost = newCost
			best = current.clone()
		} else if timetabler.rng.Float64() >= math.Exp(-float64(newCost-bestCost)/math.Max(temperature, 1e-6)) {
			current.Rooms[exam], current.Slots[exam] = oldRoom, oldSlot
		}

		timetabler.observe(iterations, bestCost)
	}

	status := StatusInfeasible
	if bestCost == 0 {
		status = StatusFeasible
	}

	return &Result{
		Status:     status,
		Assignment: best,
		Cost:       bestCost,
		Iterations: iterations,
		Elapsed:    time.Since(started),
	}, nil
}

func (timetabler *annealingTimetabler) Verify(assignment Assignment, instance Instance) bool {
	if instance.Validate() != nil {
		return false
	}
	if len(assignment.Rooms) != instance.Exams || len(assignment.Slots) != instance.Exams {
		return false
	}

	index := NewIncidenceIndex(instance)

	// Structural rules first: placements in range and rooms large enough.
	for exam := 0; exam < instance.Exams; exam++ {
		room, slot := assignment.Rooms[exam], assignment.Slots[exam]
		if room < 0 || room >= instance.Rooms || slot < 0 || slot >= instance.Slots {
			return false
		}
		if index.ExamSize(exam) > instance.RoomCapacities[room] {
			return false
		}
	}

	evaluator := newCostEvaluator(instance, index, timetabler.parameters)
	return evaluator.cost(assignment) == 0
}

func (timetabler *annealingTimetabler) observe(iteration, bestCost int) {
	if timetabler.trace != nil {
		timetabler.trace(iteration, bestCost)
	}
}
