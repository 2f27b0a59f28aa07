package model

import "fmt"

// Candidate is a (room, slot) pair structurally eligible for a given exam:
// the exam fits the room, and a large exam is never offered the last slot of
// a day.
type Candidate struct {
	Room int
	Slot int
}

// InfeasibleError reports an exam whose candidate set is empty, meaning no
// assignment can satisfy the always-hard structural rules.
type InfeasibleError struct {
	Exam int
}

func (err InfeasibleError) Error() string {
	return fmt.Sprintf("exam %v has no feasible room and slot", err.Exam)
}

// BuildCandidates precomputes, per exam, its ordered candidate list. The
// generation is deterministic: rooms ascend, slots ascend within a room. An
// exam with zero candidates yields an InfeasibleError and search must not
// run.
func BuildCandidates(instance Instance, index *IncidenceIndex, parameters Parameters) ([][]Candidate, error) {
	candidates := make([][]Candidate, instance.Exams)
	for exam := range candidates {
		size := index.ExamSize(exam)
		for room, capacity := range instance.RoomCapacities {
			if size > capacity {
				continue
			}
			for slot := 0; slot < instance.Slots; slot++ {
				if size >= parameters.LargeExamThreshold && parameters.lastSlot(slot) {
					continue
				}
				candidates[exam] = append(candidates[exam], Candidate{Room: room, Slot: slot})
			}
		}
		if len(candidates[exam]) == 0 {
			return nil, InfeasibleError{Exam: exam}
		}
	}
	return candidates, nil
}
