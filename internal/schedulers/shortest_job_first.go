package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ShortestJobFirst is non-preemptive SJF. The earliest arrival always runs
// first; the rest run in ascending burst order. When the next candidate has
// not arrived by the time the CPU frees up it is swapped once with the
// candidate behind it. There is no further re-ordering, so a second
// unavailable candidate still runs early and may get a negative wait time.
//
// On return the slice holds the processes in execution order.
func (e *Engine) ShortestJobFirst(processes []core.Process) (Result, error) {
	if err := prepare(processes); err != nil {
		return Result{}, err
	}
	e.logger.Debug("running sjf algorithm", "processes", len(processes))

	SortByArrival(processes)

	var acc Accumulator
	timeline := make([]core.Slice, 0, len(processes))

	first := &processes[0]
	timeline = append(timeline, runToCompletion(first, first.ArrivalTime+first.BurstTime))
	acc.Add(*first)

	SortByBurst(processes[1:])

	for i := 1; i < len(processes); i++ {
		prev := processes[i-1]
		if processes[i].ArrivalTime > prev.CompletionTime && i+1 < len(processes) {
			e.logger.Debug("candidate not yet arrived, swapping with next",
				"pid", processes[i].ProcessId,
				"arrival", processes[i].ArrivalTime,
				"clock", prev.CompletionTime,
				"next_pid", processes[i+1].ProcessId,
			)
			processes[i], processes[i+1] = processes[i+1], processes[i]
		}

		p := &processes[i]
		timeline = append(timeline, runToCompletion(p, prev.CompletionTime+p.BurstTime))
		acc.Add(*p)

		e.logger.Debug("process completed", "pid", p.ProcessId, "completion", p.CompletionTime, "wait", p.WaitTime)
	}

	return e.finish(AlgorithmSJF, processes, timeline, &acc)
}

func (e *Engine) ScheduleShortestJobFirst(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	result, err := e.ShortestJobFirst(request.Processes())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(result), nil
}
