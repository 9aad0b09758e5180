package core

import "fmt"

// Process is one unit of schedulable work. Derived fields are zero until an
// engine runs over it.
type Process struct {
	ProcessId          int `json:"process_id" yaml:"process_id"`
	ArrivalTime        int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime          int `json:"burst_time" yaml:"burst_time"`
	RemainingBurstTime int `json:"remaining_burst_time" yaml:"-"`
	CompletionTime     int `json:"completion_time" yaml:"-"`
	TurnAroundTime     int `json:"turn_around_time" yaml:"-"`
	WaitTime           int `json:"wait_time" yaml:"-"`
}

// Slice is a contiguous interval during which the CPU ran a single process.
type Slice struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

func (s Slice) Len() int {
	return s.End - s.Start
}

func NewProcess(processId, arrivalTime, burstTime int) Process {
	return Process{
		ProcessId:          processId,
		ArrivalTime:        arrivalTime,
		BurstTime:          burstTime,
		RemainingBurstTime: burstTime,
	}
}

// Validate checks the caller-supplied fields. It returns the offending field
// name alongside the error so callers can build structured errors.
func (p Process) Validate() (field string, err error) {
	if p.ArrivalTime < 0 {
		return "arrival_time", fmt.Errorf("arrival time must be >= 0, got %d", p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return "burst_time", fmt.Errorf("burst time must be > 0, got %d", p.BurstTime)
	}
	return "", nil
}

// Reset clears the derived fields and refills the remaining burst counter.
func (p *Process) Reset() {
	p.RemainingBurstTime = p.BurstTime
	p.CompletionTime = 0
	p.TurnAroundTime = 0
	p.WaitTime = 0
}
