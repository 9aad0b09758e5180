package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// FirstComeFirstServe runs processes to completion in arrival order. The
// slice is sorted in place.
//
// Idle gaps are not modeled: each process starts when the previous one
// finishes, so a process arriving after the CPU went idle gets a negative
// wait time.
func (e *Engine) FirstComeFirstServe(processes []core.Process) (Result, error) {
	if err := prepare(processes); err != nil {
		return Result{}, err
	}
	e.logger.Debug("running fcfs algorithm", "processes", len(processes))

	SortByArrival(processes)

	var acc Accumulator
	timeline := make([]core.Slice, 0, len(processes))

	first := &processes[0]
	timeline = append(timeline, runToCompletion(first, first.ArrivalTime+first.BurstTime))
	acc.Add(*first)

	served := first.CompletionTime
	for i := 1; i < len(processes); i++ {
		p := &processes[i]
		p.WaitTime = served - p.ArrivalTime
		served += p.BurstTime
		p.TurnAroundTime = p.WaitTime + p.BurstTime
		p.CompletionTime = processes[i-1].CompletionTime + p.BurstTime
		timeline = append(timeline, core.Slice{ProcessId: p.ProcessId, Start: p.CompletionTime - p.BurstTime, End: p.CompletionTime})
		acc.Add(*p)

		e.logger.Debug("process completed", "pid", p.ProcessId, "completion", p.CompletionTime, "wait", p.WaitTime)
	}

	return e.finish(AlgorithmFCFS, processes, timeline, &acc)
}

func (e *Engine) ScheduleFirstComeFirstServe(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	result, err := e.FirstComeFirstServe(request.Processes())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(result), nil
}
