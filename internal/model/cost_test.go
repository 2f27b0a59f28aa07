package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

func evaluate(instance Instance, parameters Parameters, assignment Assignment) int {
	evaluator := newCostEvaluator(instance, NewIncidenceIndex(instance), parameters)
	return evaluator.cost(assignment)
}

func TestCostNoViolation(t *testing.T) {
	g := NewWithT(t)

	enrollments, students := disjointEnrollments(1, 1)
	instance := Instance{
		Students:       students,
		Exams:          2,
		Slots:          4,
		Rooms:          2,
		RoomCapacities: []int{5, 5},
		Enrollments:    enrollments,
	}
	assignment := Assignment{Rooms: []int{0, 1}, Slots: []int{0, 2}}

	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(BeZero())
}

func TestCostRoomDoubleBooking(t *testing.T) {
	g := NewWithT(t)

	enrollments, students := disjointEnrollments(1, 1)
	instance := Instance{
		Students:       students,
		Exams:          2,
		Slots:          4,
		Rooms:          1,
		RoomCapacities: []int{5},
		Enrollments:    enrollments,
	}
	// Both exams on (room 0, slot 0): one double-booking plus one turnaround
	// violation for the zero gap between the room's two uses.
	assignment := Assignment{Rooms: []int{0, 0}, Slots: []int{0, 0}}

	expected := DefaultParameters.RoomDoubleWeight + DefaultParameters.TurnaroundWeight
	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(Equal(expected))
}

func TestCostStudentClash(t *testing.T) {
	g := NewWithT(t)

	instance := Instance{
		Students:       1,
		Exams:          2,
		Slots:          4,
		Rooms:          2,
		RoomCapacities: []int{5, 5},
		Enrollments:    sharedEnrollments(0, 0, 1),
	}
	// Same slot, different rooms: a clash, which also incurs the min-gap
	// penalty since the slot difference is zero.
	assignment := Assignment{Rooms: []int{0, 1}, Slots: []int{2, 2}}

	expected := DefaultParameters.ClashWeight + DefaultParameters.MinGapWeight
	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(Equal(expected))
}

func TestCostMinimumGap(t *testing.T) {
	g := NewWithT(t)

	instance := Instance{
		Students:       1,
		Exams:          2,
		Slots:          4,
		Rooms:          2,
		RoomCapacities: []int{5, 5},
		Enrollments:    sharedEnrollments(0, 0, 1),
	}
	assignment := Assignment{Rooms: []int{0, 1}, Slots: []int{0, 1}}

	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(Equal(DefaultParameters.MinGapWeight))
}

func TestCostDailyOverload(t *testing.T) {
	g := NewWithT(t)

	instance := Instance{
		Students:       1,
		Exams:          3,
		Slots:          6,
		Rooms:          3,
		RoomCapacities: []int{5, 5, 5},
		Enrollments:    sharedEnrollments(0, 0, 1, 2),
	}
	// Six slots per day puts all three exams on day 0 with pairwise gaps of
	// two, so only the day cap fires.
	parameters := DefaultParameters
	parameters.SlotsPerDay = 6
	assignment := Assignment{Rooms: []int{0, 1, 2}, Slots: []int{0, 2, 4}}

	g.Expect(evaluate(instance, parameters, assignment)).To(Equal(parameters.DayCapWeight))
}

func TestCostRoomTurnaround(t *testing.T) {
	g := NewWithT(t)

	enrollments, students := disjointEnrollments(1, 1)
	instance := Instance{
		Students:       students,
		Exams:          2,
		Slots:          4,
		Rooms:          1,
		RoomCapacities: []int{5},
		Enrollments:    enrollments,
	}
	assignment := Assignment{Rooms: []int{0, 0}, Slots: []int{0, 1}}

	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(Equal(DefaultParameters.TurnaroundWeight))
}

func TestCostLargeExamLastSlot(t *testing.T) {
	g := NewWithT(t)

	enrollments, students := disjointEnrollments(10)
	instance := Instance{
		Students:       students,
		Exams:          1,
		Slots:          4,
		Rooms:          1,
		RoomCapacities: []int{20},
		Enrollments:    enrollments,
	}
	assignment := Assignment{Rooms: []int{0}, Slots: []int{3}}

	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(Equal(DefaultParameters.LastSlotWeight))
}

func TestCostInvigilatorOvercapacity(t *testing.T) {
	g := NewWithT(t)

	enrollments, students := disjointEnrollments(1, 1, 1, 1, 1, 1)
	instance := Instance{
		Students:       students,
		Exams:          6,
		Slots:          4,
		Rooms:          6,
		RoomCapacities: []int{5, 5, 5, 5, 5, 5},
		Enrollments:    enrollments,
	}
	// Six small exams in one slot demand 12 invigilators, two over capacity.
	assignment := Assignment{
		Rooms: []int{0, 1, 2, 3, 4, 5},
		Slots: []int{0, 0, 0, 0, 0, 0},
	}

	g.Expect(evaluate(instance, DefaultParameters, assignment)).To(Equal(2 * DefaultParameters.InvigilatorWeight))
}

func TestCostPurity(t *testing.T) {
	g := NewWithT(t)

	instance := Instance{
		Students:       1,
		Exams:          3,
		Slots:          8,
		Rooms:          2,
		RoomCapacities: []int{5, 5},
		Enrollments:    sharedEnrollments(0, 0, 1, 2),
	}
	assignment := Assignment{Rooms: []int{0, 1, 0}, Slots: []int{0, 1, 1}}
	evaluator := newCostEvaluator(instance, NewIncidenceIndex(instance), DefaultParameters)

	first := evaluator.cost(assignment)
	second := evaluator.cost(assignment)

	g.Expect(first).To(BeNumerically(">=", 0))
	g.Expect(second).To(Equal(first))
}
