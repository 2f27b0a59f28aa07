package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Enrollment states that a student takes an exam.
type Enrollment struct {
	Exam    int
	Student int
}

// Instance describes a single exam-timetabling problem: the domain counts,
// the capacity of each room and the exam-student incidence. Instances are
// immutable once loaded.
type Instance struct {
	Students       int
	Exams          int
	Slots          int
	Rooms          int
	RoomCapacities []int
	Enrollments    []Enrollment
}

// InputError reports an instance that breaks the input contract: negative
// counts, a capacity list whose length differs from the room count, or
// out-of-range ids.
type InputError struct {
	Reason string
}

func (err InputError) Error() string {
	return fmt.Sprintf("invalid instance: %v", err.Reason)
}

// Validate checks the instance against the input contract. The solver calls
// it again defensively at solve start.
func (instance Instance) Validate() error {
	if instance.Students < 0 || instance.Exams < 0 || instance.Slots < 0 || instance.Rooms < 0 {
		return InputError{Reason: "counts must be non-negative"}
	}
	if len(instance.RoomCapacities) != instance.Rooms {
		return InputError{Reason: fmt.Sprintf("room_capacities length %v must equal number of rooms %v", len(instance.RoomCapacities), instance.Rooms)}
	}
	for room, capacity := range instance.RoomCapacities {
		if capacity < 0 {
			return InputError{Reason: fmt.Sprintf("room %v has negative capacity %v", room, capacity)}
		}
	}
	for _, enrollment := range instance.Enrollments {
		if enrollment.Exam < 0 || enrollment.Exam >= instance.Exams {
			return InputError{Reason: fmt.Sprintf("exam id %v out of range(0..%v)", enrollment.Exam, instance.Exams-1)}
		}
		if enrollment.Student < 0 || enrollment.Student >= instance.Students {
			return InputError{Reason: fmt.Sprintf("student id %v out of range(0..%v)", enrollment.Student, instance.Students-1)}
		}
	}
	return nil
}

var pairPattern = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s*$`)

// ParseInstance reads the text instance format: four "Number of <x>: n"
// header lines, one "Room r capacity: c" line per room, then one
// "exam student" pair per line until EOF.
func ParseInstance(reader io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(reader)

	readAttribute := func(name string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, InputError{Reason: fmt.Sprintf("unexpected end of input; expected the %v attribute", name)}
		}
		line := scanner.Text()
		match := regexp.MustCompile(`^` + name + `:\s*(\d+)$`).FindStringSubmatch(line)
		if match == nil {
			return 0, InputError{Reason: fmt.Sprintf("could not parse line %q; expected the %v attribute", line, name)}
		}
		return strconv.Atoi(match[1])
	}

	var instance Instance
	var err error
	if instance.Students, err = readAttribute("Number of students"); err != nil {
		return Instance{}, err
	}
	if instance.Exams, err = readAttribute("Number of exams"); err != nil {
		return Instance{}, err
	}
	if instance.Slots, err = readAttribute("Number of slots"); err != nil {
		return Instance{}, err
	}
	if instance.Rooms, err = readAttribute("Number of rooms"); err != nil {
		return Instance{}, err
	}

	instance.RoomCapacities = make([]int, 0, max(instance.Rooms, 0))
	for room := 0; room < instance.Rooms; room++ {
		capacity, err := readAttribute(fmt.Sprintf("Room %v capacity", room))
		if err != nil {
			return Instance{}, err
		}
		instance.RoomCapacities = append(instance.RoomCapacities, capacity)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		match := pairPattern.FindStringSubmatch(line)
		if match == nil {
			return Instance{}, InputError{Reason: fmt.Sprintf("failed to parse this line: %q", line)}
		}
		exam, _ := strconv.Atoi(match[1])
		student, _ := strconv.Atoi(match[2])
		instance.Enrollments = append(instance.Enrollments, Enrollment{Exam: exam, Student: student})
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, err
	}

	return instance, instance.Validate()
}

// ParseInstanceFile parses a text-format instance from a file.
func ParseInstanceFile(file string) (Instance, error) {
	handle, err := os.Open(file)
	if err != nil {
		return Instance{}, err
	}
	defer handle.Close()
	return ParseInstance(handle)
}

type rawInstance struct {
	Students       int     `mapstructure:"students"`
	Exams          int     `mapstructure:"exams"`
	Slots          int     `mapstructure:"slots"`
	Rooms          int     `mapstructure:"rooms"`
	RoomCapacities []int   `mapstructure:"roomCapacities"`
	ExamStudents   [][]int `mapstructure:"examStudents"`
}

// InputFromJSON parses a JSON-format instance from a file.
func InputFromJSON(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, err
	}

	var raw rawInstance
	if err := mapstructure.Decode(inputJson, &raw); err != nil {
		return Instance{}, err
	}

	instance := Instance{
		Students:       raw.Students,
		Exams:          raw.Exams,
		Slots:          raw.Slots,
		Rooms:          raw.Rooms,
		RoomCapacities: raw.RoomCapacities,
	}
	for _, pair := range raw.ExamStudents {
		if len(pair) != 2 {
			return Instance{}, InputError{Reason: fmt.Sprintf("examStudents entry %v must hold exactly an exam id and a student id", pair)}
		}
		instance.Enrollments = append(instance.Enrollments, Enrollment{Exam: pair[0], Student: pair[1]})
	}

	return instance, instance.Validate()
}
