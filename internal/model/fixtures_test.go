package model

// disjointEnrollments enrolls examSizes[e] fresh students into each exam so
// no student sits two exams. It returns the enrollments and the total
// student count.
func disjointEnrollments(examSizes ...int) ([]Enrollment, int) {
	enrollments := make([]Enrollment, 0)
	student := 0
	for exam, size := range examSizes {
		for i := 0; i < size; i++ {
			enrollments = append(enrollments, Enrollment{Exam: exam, Student: student})
			student++
		}
	}
	return enrollments, student
}

// sharedEnrollments enrolls a single student into every listed exam.
func sharedEnrollments(student int, exams ...int) []Enrollment {
	enrollments := make([]Enrollment, 0, len(exams))
	for _, exam := range exams {
		enrollments = append(enrollments, Enrollment{Exam: exam, Student: student})
	}
	return enrollments
}
