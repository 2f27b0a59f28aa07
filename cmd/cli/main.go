package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"examtimetabling/internal/model"
	"examtimetabling/pkg/config"
	"examtimetabling/pkg/logger"
)

var validFormats = []string{"text", "json"}

type placementJson struct {
	Exam int `json:"exam"`
	Room int `json:"room"`
	Slot int `json:"slot"`
}

type resultJson struct {
	Status     string          `json:"status"`
	RuntimeMs  float64         `json:"runtimeMs"`
	Assignment []placementJson `json:"assignment,omitempty"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the instance file")
	formatPtr := flag.String("format", "text", `Instance format. Allowed values are: "text" and "json", where "text" is the default`)
	outFilePathPtr := flag.String("out", "", "Path to the file where the JSON result will be written; if empty, the schedule is written into the Standard Output")
	seedPtr := flag.Int64("seed", 0, "Seed for the pseudo-random source; 0 keeps the configured seed")
	flag.Parse()
	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Extract instance
	var instance model.Instance
	switch format {
	case "json":
		instance, err = model.InputFromJSON(filePath)
	default:
		instance, err = model.ParseInstanceFile(filePath)
	}
	if err != nil {
		zapLogger.Error("cannot parse instance file", zap.String("file", filePath), zap.Error(err))
		os.Exit(1)
	}

	seed := cfg.Annealing.Seed
	if *seedPtr != 0 {
		seed = *seedPtr
	}

	// Initialize engine
	rng := rand.New(rand.NewSource(seed))
	timetabler := model.NewTimetabler(parameters(cfg), rng)

	zapLogger.Info("solve started",
		zap.Int("exams", instance.Exams),
		zap.Int("students", instance.Students),
		zap.Int("slots", instance.Slots),
		zap.Int("rooms", instance.Rooms),
		zap.Int64("seed", seed),
	)

	// Build timetable
	result, err := timetabler.Build(instance)
	if err != nil {
		var infeasible model.InfeasibleError
		if errors.As(err, &infeasible) {
			zapLogger.Warn("structurally infeasible instance", zap.Int("exam", infeasible.Exam))
			fmt.Println("runtime_ms: 0.000")
			fmt.Println("unsat")
			os.Exit(20)
		}
		zapLogger.Error("an error occurred during timetable construction", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("solve completed",
		zap.String("status", result.Status.String()),
		zap.Int("cost", result.Cost),
		zap.Int("iterations", result.Iterations),
		zap.Duration("elapsed", result.Elapsed),
	)

	runtimeMs := float64(result.Elapsed.Microseconds()) / 1000.0
	fmt.Printf("runtime_ms: %.3f\n", runtimeMs)

	if result.Status == model.StatusInfeasible {
		fmt.Println("unsat")
		os.Exit(20)
	}

	// Verify timetable correctness
	if !timetabler.Verify(result.Assignment, instance) {
		zapLogger.Error("verification failed for a feasible result")
		os.Exit(15)
	}

	fmt.Println("sat")

	if outFile == "" {
		for exam := 0; exam < instance.Exams; exam++ {
			fmt.Printf("exam %v: room %v, slot %v\n", exam, result.Assignment.Rooms[exam], result.Assignment.Slots[exam])
		}
		os.Exit(10)
	}

	// Build output from the assignment
	output := resultJson{
		Status:    result.Status.String(),
		RuntimeMs: runtimeMs,
		Assignment: lo.Map(lo.Range(instance.Exams), func(exam int, _ int) placementJson {
			return placementJson{
				Exam: exam,
				Room: result.Assignment.Rooms[exam],
				Slot: result.Assignment.Slots[exam],
			}
		}),
	}

	outputJson, err := json.Marshal(output)
	if err != nil {
		zapLogger.Error("an error occurred while building output json", zap.Error(err))
		os.Exit(1)
	}
	if err := os.WriteFile(outFile, outputJson, 0666); err != nil {
		zapLogger.Error("an error occurred while writing to the output file", zap.Error(err))
		os.Exit(1)
	}

	os.Exit(10)
}

func parameters(cfg *config.Config) model.Parameters {
	return model.Parameters{
		SlotsPerDay:        cfg.Rules.SlotsPerDay,
		MinGap:             cfg.Rules.MinGap,
		TurnaroundGap:      cfg.Rules.TurnaroundGap,
		LargeExamThreshold: cfg.Rules.LargeExamThreshold,
		ExaminerCapacity:   cfg.Rules.ExaminerCapacity,

		RoomDoubleWeight:  cfg.Weights.RoomDouble,
		ClashWeight:       cfg.Weights.Clash,
		MinGapWeight:      cfg.Weights.MinGap,
		DayCapWeight:      cfg.Weights.DayCap,
		TurnaroundWeight:  cfg.Weights.Turnaround,
		LastSlotWeight:    cfg.Weights.LastSlot,
		InvigilatorWeight: cfg.Weights.Invigilator,

		MaxIterations: cfg.Annealing.MaxIterations,
		StartTemp:     cfg.Annealing.StartTemp,
		EndTemp:       cfg.Annealing.EndTemp,
	}
}
