package model

// Parameters gathers every tunable of the solver: the scheduling rules, the
// penalty weight of each violation class, and the annealing schedule. A
// Parameters value is passed to the timetabler at construction and never
// mutated afterwards.
type Parameters struct {
	SlotsPerDay        int
	MinGap             int
	TurnaroundGap      int
	LargeExamThreshold int
	ExaminerCapacity   int

	RoomDoubleWeight  int
	ClashWeight       int
	MinGapWeight      int
	DayCapWeight      int
	TurnaroundWeight  int
	LastSlotWeight    int
	InvigilatorWeight int

	MaxIterations int
	StartTemp     float64
	EndTemp       float64
}

// DefaultParameters carries the documented defaults.
var DefaultParameters = Parameters{
	SlotsPerDay:        4,
	MinGap:             1,
	TurnaroundGap:      1,
	LargeExamThreshold: 10,
	ExaminerCapacity:   10,

	RoomDoubleWeight:  10,
	ClashWeight:       10,
	MinGapWeight:      6,
	DayCapWeight:      8,
	TurnaroundWeight:  6,
	LastSlotWeight:    12,
	InvigilatorWeight: 8,

	MaxIterations: 20000,
	StartTemp:     3.0,
	EndTemp:       0.01,
}

// DefaultSeed seeds the pseudo-random source when the caller does not
// provide one.
const DefaultSeed int64 = 42

// lastSlot reports whether a slot is the last one of its day.
func (parameters Parameters) lastSlot(slot int) bool {
	return parameters.SlotsPerDay > 0 && slot%parameters.SlotsPerDay == parameters.SlotsPerDay-1
}

// day returns the day a slot belongs to. With no day structure every slot
// falls on day 0.
func (parameters Parameters) day(slot int) int {
	if parameters.SlotsPerDay <= 0 {
		return 0
	}
	return slot / parameters.SlotsPerDay
}
