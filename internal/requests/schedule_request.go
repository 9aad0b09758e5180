package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

// ScheduleRequests is the body of a schedule call. TimeQuantum is nil when the
// caller left it out.
type ScheduleRequests struct {
	Algorithm   string `json:"algorithm,omitempty"`
	TimeQuantum *int   `json:"time_quantum,omitempty"`
	Jobs        []Job  `json:"jobs"`
}

// Quantum returns the requested round robin quantum, or 0 when none was given.
func (r ScheduleRequests) Quantum() int {
	if r.TimeQuantum == nil {
		return 0
	}
	return *r.TimeQuantum
}

// WithQuantum returns a copy of r carrying quantum.
func (r ScheduleRequests) WithQuantum(quantum int) ScheduleRequests {
	r.TimeQuantum = &quantum
	return r
}

// Processes builds fresh processes from the request jobs, in request order.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	return processes
}

func FromProcesses(processes []core.Process) []Job {
	jobs := make([]Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, Job{ProcessId: p.ProcessId, ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime})
	}
	return jobs
}
