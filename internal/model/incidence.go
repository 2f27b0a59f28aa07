package model

import (
	"slices"

	"github.com/samber/lo"
)

// IncidenceIndex holds the read-only mappings derived once per solve from an
// instance's exam-student incidence: which students sit each exam, which
// exams each student takes, and the resulting exam sizes.
type IncidenceIndex struct {
	studentsByExam [][]int
	examsByStudent [][]int
	examSize       []int
}

// NewIncidenceIndex builds the index for an instance. Duplicate enrollments
// collapse into one.
func NewIncidenceIndex(instance Instance) *IncidenceIndex {
	studentSets := make([]map[int]struct{}, instance.Exams)
	examSets := make([]map[int]struct{}, instance.Students)
	for i := range studentSets {
		studentSets[i] = make(map[int]struct{})
	}
	for i := range examSets {
		examSets[i] = make(map[int]struct{})
	}

	for _, enrollment := range instance.Enrollments {
		if enrollment.Exam < 0 || enrollment.Exam >= instance.Exams ||
			enrollment.Student < 0 || enrollment.Student >= instance.Students {
			continue
		}
		studentSets[enrollment.Exam][enrollment.Student] = struct{}{}
		examSets[enrollment.Student][enrollment.Exam] = struct{}{}
	}

	sorted := func(set map[int]struct{}) []int {
		members := lo.Keys(set)
		slices.Sort(members)
		return members
	}

	index := &IncidenceIndex{
		studentsByExam: lo.Map(studentSets, func(set map[int]struct{}, _ int) []int { return sorted(set) }),
		examsByStudent: lo.Map(examSets, func(set map[int]struct{}, _ int) []int { return sorted(set) }),
	}
	index.examSize = lo.Map(index.studentsByExam, func(students []int, _ int) int { return len(students) })

	return index
}

// StudentsByExam returns the students sitting an exam, in ascending order.
func (index *IncidenceIndex) StudentsByExam(exam int) []int {
	return index.studentsByExam[exam]
}

// ExamsByStudent returns the exams a student takes, in ascending order.
func (index *IncidenceIndex) ExamsByStudent(student int) []int {
	return index.examsByStudent[student]
}

// ExamSize returns the number of distinct students sitting an exam.
func (index *IncidenceIndex) ExamSize(exam int) int {
	return index.examSize[exam]
}
