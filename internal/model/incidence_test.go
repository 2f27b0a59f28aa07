package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIncidenceIndex(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//**Arrange
		instance := Instance{
			Students:       3,
			Exams:          2,
			Slots:          4,
			Rooms:          1,
			RoomCapacities: []int{10},
			Enrollments: []Enrollment{
				{Exam: 0, Student: 1},
				{Exam: 0, Student: 0},
				{Exam: 1, Student: 2},
				{Exam: 1, Student: 0},
			},
		}

		//**Act
		index := NewIncidenceIndex(instance)

		//**Assert
		assert.Equal(t, []int{0, 1}, index.StudentsByExam(0))
		assert.Equal(t, []int{0, 2}, index.StudentsByExam(1))
		assert.Equal(t, []int{0, 1}, index.ExamsByStudent(0))
		assert.Equal(t, []int{0}, index.ExamsByStudent(1))
		assert.Equal(t, []int{1}, index.ExamsByStudent(2))
		assert.Equal(t, 2, index.ExamSize(0))
		assert.Equal(t, 2, index.ExamSize(1))
	})

	t.Run("Duplicate enrollments collapse", func(t *testing.T) {
		//**Arrange
		instance := Instance{
			Students:       1,
			Exams:          1,
			Slots:          1,
			Rooms:          1,
			RoomCapacities: []int{10},
			Enrollments: []Enrollment{
				{Exam: 0, Student: 0},
				{Exam: 0, Student: 0},
			},
		}

		//**Act
		index := NewIncidenceIndex(instance)

		//**Assert
		assert.Equal(t, 1, index.ExamSize(0))
		assert.Equal(t, []int{0}, index.StudentsByExam(0))
	})

	t.Run("Student with no exams", func(t *testing.T) {
		//**Arrange
		instance := Instance{
			Students:       2,
			Exams:          1,
			Slots:          1,
			Rooms:          1,
			RoomCapacities: []int{10},
			Enrollments:    []Enrollment{{Exam: 0, Student: 0}},
		}

		//**Act
		index := NewIncidenceIndex(instance)

		//**Assert
		assert.Empty(t, index.ExamsByStudent(1))
	})
}
