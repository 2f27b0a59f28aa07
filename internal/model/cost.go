package model

import (
	"slices"

	"github.com/samber/lo"
)

// costEvaluator scores a complete assignment against the soft rules. The
// score is a weighted sum over seven violation classes and is zero exactly
// when no class is violated. Evaluation is a pure function of the
// assignment: the evaluator only reads its precomputed views.
type costEvaluator struct {
	instance   Instance
	index      *IncidenceIndex
	parameters Parameters

	large  []bool // exam size reaches the large-exam threshold
	demand []int  // invigilators required per exam
}

func newCostEvaluator(instance Instance, index *IncidenceIndex, parameters Parameters) *costEvaluator {
	large := make([]bool, instance.Exams)
	demand := make([]int, instance.Exams)
	for exam := range large {
		large[exam] = index.ExamSize(exam) >= parameters.LargeExamThreshold
		demand[exam] = lo.Ternary(large[exam], 3, 2)
	}
	return &costEvaluator{
		instance:   instance,
		index:      index,
		parameters: parameters,
		large:      large,
		demand:     demand,
	}
}

func (evaluator *costEvaluator) cost(assignment Assignment) int {
	total := 0
	parameters := evaluator.parameters

	// Room double-booking: k exams on one (room, slot) count k-1 times.
	occupancy := make(map[Candidate]int, evaluator.instance.Exams)
	for exam := 0; exam < evaluator.instance.Exams; exam++ {
		occupancy[Candidate{Room: assignment.Rooms[exam], Slot: assignment.Slots[exam]}]++
	}
	for _, count := range occupancy {
		if count > 1 {
			total += parameters.RoomDoubleWeight * (count - 1)
		}
	}

	// Per-student rules: same-slot clashes, minimum gap, daily overload. A
	// same-slot pair incurs both the clash and the min-gap penalty.
	for student := 0; student < evaluator.instance.Students; student++ {
		exams := evaluator.index.ExamsByStudent(student)
		if len(exams) == 0 {
			continue
		}
		for i := 0; i < len(exams); i++ {
			for j := i + 1; j < len(exams); j++ {
				slot1 := assignment.Slots[exams[i]]
				slot2 := assignment.Slots[exams[j]]
				if slot1 == slot2 {
					total += parameters.ClashWeight
				}
				if absInt(slot1-slot2) <= parameters.MinGap {
					total += parameters.MinGapWeight
				}
			}
		}

		dayCounts := lo.CountValuesBy(exams, func(exam int) int {
			return parameters.day(assignment.Slots[exam])
		})
		for _, count := range dayCounts {
			if count > 2 {
				total += parameters.DayCapWeight * (count - 2)
			}
		}
	}

	// Turnaround: adjacent uses of a room must leave idle slots between.
	for room := 0; room < evaluator.instance.Rooms; room++ {
		times := make([]int, 0, evaluator.instance.Exams)
		for exam := 0; exam < evaluator.instance.Exams; exam++ {
			if assignment.Rooms[exam] == room {
				times = append(times, assignment.Slots[exam])
			}
		}
		slices.Sort(times)
		for i := 1; i < len(times); i++ {
			if times[i]-times[i-1] <= parameters.TurnaroundGap {
				total += parameters.TurnaroundWeight
			}
		}
	}

	// Large exams must avoid the last slot of a day.
	for exam := 0; exam < evaluator.instance.Exams; exam++ {
		if evaluator.large[exam] && parameters.lastSlot(assignment.Slots[exam]) {
			total += parameters.LastSlotWeight
		}
	}

	// Invigilator capacity per slot.
	for slot := 0; slot < evaluator.instance.Slots; slot++ {
		demand := 0
		for exam := 0; exam < evaluator.instance.Exams; exam++ {
			if assignment.Slots[exam] == slot {
				demand += evaluator.demand[exam]
			}
		}
		if demand > parameters.ExaminerCapacity {
			total += parameters.InvigilatorWeight * (demand - parameters.ExaminerCapacity)
		}
	}

	return total
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
