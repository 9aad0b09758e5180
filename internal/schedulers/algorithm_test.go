package schedulers

import (
	"errors"
	"testing"

	"cpu-scheduler/internal/requests"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"fcfs", AlgorithmFCFS},
		{"FCFS", AlgorithmFCFS},
		{"1", AlgorithmFCFS},
		{"sjf", AlgorithmSJF},
		{"2", AlgorithmSJF},
		{" rr ", AlgorithmRR},
		{"3", AlgorithmRR},
		{"all", AlgorithmAll},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
	}

	if _, err := ParseAlgorithm("mlfq"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown algorithm: err = %v, want ErrInvalidParameter", err)
	}
}

func scenarioRequest() requests.ScheduleRequests {
	return requests.ScheduleRequests{
		Jobs: []requests.Job{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 3},
			{ProcessId: 3, ArrivalTime: 2, BurstTime: 8},
		},
	}.WithQuantum(2)
}

func TestEngine_Schedule(t *testing.T) {
	e := NewEngine(nil)

	response, err := e.Schedule(AlgorithmRR, scenarioRequest())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if response.Algorithm != "rr" || response.TimeQuantum != 2 {
		t.Errorf("response header = %q/%d", response.Algorithm, response.TimeQuantum)
	}
	if response.TotalTime != 16 {
		t.Errorf("TotalTime = %d, want 16", response.TotalTime)
	}
	if len(response.Details) != 3 || response.Details[1].CompletionTime != 9 {
		t.Errorf("Details = %+v", response.Details)
	}

	if _, err := e.Schedule(AlgorithmAll, scenarioRequest()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Schedule(all): err = %v, want ErrInvalidParameter", err)
	}

	req := scenarioRequest().WithQuantum(0)
	if _, err := e.Schedule(AlgorithmRR, req); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero quantum: err = %v, want ErrInvalidParameter", err)
	}
}

func TestEngine_ScheduleAll(t *testing.T) {
	all, err := NewEngine(nil).ScheduleAll(scenarioRequest())
	if err != nil {
		t.Fatalf("ScheduleAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, algorithm := range Algorithms {
		if all[i].Algorithm != string(algorithm) {
			t.Errorf("all[%d].Algorithm = %q, want %q", i, all[i].Algorithm, algorithm)
		}
	}
	if all[0].Details[2].CompletionTime != 16 {
		t.Errorf("fcfs details = %+v", all[0].Details)
	}

	if _, err := NewEngine(nil).ScheduleAll(requests.ScheduleRequests{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty request: err = %v, want ErrInvalidInput", err)
	}
}

func TestEngine_Run(t *testing.T) {
	if _, err := NewEngine(nil).Run(Algorithm("bogus"), procs([3]int{1, 0, 1}), 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}
