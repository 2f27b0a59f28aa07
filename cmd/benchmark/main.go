package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"examtimetabling/internal/model"
	"examtimetabling/pkg/config"
	"examtimetabling/pkg/logger"
)

const repetitions = 5

type tier struct {
	Name            string
	Students        int
	Exams           int
	Slots           int
	Rooms           int
	MaxCapacity     int
	ExamsPerStudent int
}

var tiers = []tier{
	{Name: "short", Students: 20, Exams: 6, Slots: 8, Rooms: 2, MaxCapacity: 25, ExamsPerStudent: 2},
	{Name: "medium", Students: 60, Exams: 15, Slots: 16, Rooms: 4, MaxCapacity: 40, ExamsPerStudent: 3},
	{Name: "long", Students: 150, Exams: 30, Slots: 24, Rooms: 6, MaxCapacity: 60, ExamsPerStudent: 4},
}

type benchmarkRow struct {
	Name       string
	Seed       int64
	Status     string
	Cost       int
	Iterations int
	RuntimeMs  float64
}

func main() {
	outPtr := flag.String("out", "benchmark.csv", "Path to the CSV file where results will be written")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	rows := make([]benchmarkRow, 0, len(tiers)*repetitions)

	for _, t := range tiers {
		for repetition := 0; repetition < repetitions; repetition++ {
			seed := int64(repetition + 1)
			instance := generateInstance(t, rand.New(rand.NewSource(seed)))

			timetabler := model.NewTimetabler(model.DefaultParameters, rand.New(rand.NewSource(seed)))
			result, err := timetabler.Build(instance)
			if err != nil {
				zapLogger.Warn("instance rejected before search",
					zap.String("tier", t.Name),
					zap.Int64("seed", seed),
					zap.Error(err),
				)
				rows = append(rows, benchmarkRow{Name: t.Name, Seed: seed, Status: "rejected"})
				continue
			}

			zapLogger.Info("benchmark solve",
				zap.String("tier", t.Name),
				zap.Int64("seed", seed),
				zap.String("status", result.Status.String()),
				zap.Int("cost", result.Cost),
				zap.Int("iterations", result.Iterations),
				zap.Duration("elapsed", result.Elapsed),
			)

			rows = append(rows, benchmarkRow{
				Name:       t.Name,
				Seed:       seed,
				Status:     result.Status.String(),
				Cost:       result.Cost,
				Iterations: result.Iterations,
				RuntimeMs:  float64(result.Elapsed.Microseconds()) / 1000.0,
			})
		}
	}

	if err := writeCsv(*outPtr, rows); err != nil {
		zapLogger.Error("an error occurred while writing the CSV file", zap.Error(err))
		os.Exit(1)
	}
}

// generateInstance builds a random instance for a tier: capacities spread up
// to the tier maximum, each student enrolled in a handful of distinct exams.
func generateInstance(t tier, rng *rand.Rand) model.Instance {
	capacities := lo.Map(lo.Range(t.Rooms), func(_ int, _ int) int {
		return t.MaxCapacity/2 + rng.Intn(t.MaxCapacity/2+1)
	})

	enrollments := make([]model.Enrollment, 0, t.Students*t.ExamsPerStudent)
	for student := 0; student < t.Students; student++ {
		exams := rng.Perm(t.Exams)[:t.ExamsPerStudent]
		for _, exam := range exams {
			enrollments = append(enrollments, model.Enrollment{Exam: exam, Student: student})
		}
	}

	return model.Instance{
		Students:       t.Students,
		Exams:          t.Exams,
		Slots:          t.Slots,
		Rooms:          t.Rooms,
		RoomCapacities: capacities,
		Enrollments:    enrollments,
	}
}

func writeCsv(file string, rows []benchmarkRow) error {
	handle, err := os.Create(file)
	if err != nil {
		return err
	}
	defer handle.Close()

	writer := csv.NewWriter(handle)
	defer writer.Flush()

	if err := writer.Write([]string{"tier", "seed", "status", "cost", "iterations", "runtime_ms"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.FormatInt(row.Seed, 10),
			row.Status,
			strconv.Itoa(row.Cost),
			strconv.Itoa(row.Iterations),
			fmt.Sprintf("%.3f", row.RuntimeMs),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
