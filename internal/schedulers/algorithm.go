package schedulers

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

type Algorithm string

const (
	AlgorithmFCFS Algorithm = "fcfs"
	AlgorithmSJF  Algorithm = "sjf"
	AlgorithmRR   Algorithm = "rr"
	// AlgorithmAll runs every engine on the same request.
	AlgorithmAll Algorithm = "all"
)

// Algorithms lists the runnable engines in menu order.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmRR}

// ParseAlgorithm accepts the short names and the menu numbers 1-3.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "1":
		return AlgorithmFCFS, nil
	case "sjf", "2":
		return AlgorithmSJF, nil
	case "rr", "round-robin", "3":
		return AlgorithmRR, nil
	case "all":
		return AlgorithmAll, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, s)
}

func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmFCFS:
		return "First Come First Served (FCFS)"
	case AlgorithmSJF:
		return "Shortest Job First (SJF)"
	case AlgorithmRR:
		return "Round Robin (RR)"
	case AlgorithmAll:
		return "All algorithms"
	}
	return string(a)
}

// Schedule runs request through a single engine. An AlgorithmAll request is
// rejected; use ScheduleAll.
func (e *Engine) Schedule(algorithm Algorithm, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return e.ScheduleFirstComeFirstServe(request)
	case AlgorithmSJF:
		return e.ScheduleShortestJobFirst(request)
	case AlgorithmRR:
		return e.ScheduleRoundRobin(request, request.Quantum())
	}
	return responses.ScheduleResponse{}, fmt.Errorf("%w: cannot schedule with %q", ErrInvalidParameter, algorithm)
}

// ScheduleAll runs every engine on the same request. The first failure
// aborts the comparison.
func (e *Engine) ScheduleAll(request requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	all := make([]responses.ScheduleResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		response, err := e.Schedule(algorithm, request)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		all = append(all, response)
	}
	return all, nil
}
