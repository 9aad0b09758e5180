package schedulers

import (
	"fmt"
	"io"
	"log/slog"

	"cpu-scheduler/internal/core"
)

// Result is the outcome of one engine run. Processes is the caller's slice,
// mutated in place.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int
	Processes   []core.Process
	Timeline    []core.Slice
	Averages    Averages
}

// Engine runs the scheduling algorithms. It keeps no state between runs.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{logger: logger.With("component", "scheduler")}
}

// Run dispatches to the engine for algorithm. timeQuantum is only read by
// round robin.
func (e *Engine) Run(algorithm Algorithm, processes []core.Process, timeQuantum int) (Result, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return e.FirstComeFirstServe(processes)
	case AlgorithmSJF:
		return e.ShortestJobFirst(processes)
	case AlgorithmRR:
		return e.RoundRobin(processes, timeQuantum)
	default:
		return Result{}, fmt.Errorf("%w: cannot run algorithm %q", ErrInvalidParameter, algorithm)
	}
}

// prepare validates every process before touching any of them, then resets
// derived state so a slice can be scheduled more than once.
func prepare(processes []core.Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: no processes to schedule", ErrInvalidInput)
	}
	for i, p := range processes {
		if field, err := p.Validate(); err != nil {
			return &ValidationError{Index: i, ProcessId: p.ProcessId, Field: field, Err: err}
		}
	}
	for i := range processes {
		processes[i].Reset()
	}
	return nil
}

// runToCompletion sets the derived fields of a process that ran without
// preemption, ending at completionTime.
func runToCompletion(p *core.Process, completionTime int) core.Slice {
	p.CompletionTime = completionTime
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitTime = p.TurnAroundTime - p.BurstTime
	return core.Slice{ProcessId: p.ProcessId, Start: completionTime - p.BurstTime, End: completionTime}
}

func (e *Engine) finish(algorithm Algorithm, processes []core.Process, timeline []core.Slice, acc *Accumulator) (Result, error) {
	averages, err := acc.Finalize()
	if err != nil {
		return Result{}, err
	}
	e.logger.Info("schedule complete",
		"algorithm", algorithm,
		"processes", len(processes),
		"avg_turn_around", averages.TurnAround,
		"avg_wait", averages.Wait,
	)
	return Result{
		Algorithm: algorithm,
		Processes: processes,
		Timeline:  timeline,
		Averages:  averages,
	}, nil
}
