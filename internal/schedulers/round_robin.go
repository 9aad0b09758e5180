package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// readyQueue is walked forward and never shrunk: serviced entries stay behind
// the read position. Entries are indexes into the process slice.
type readyQueue struct {
	entries []int
	pos     int
}

func newReadyQueue(capacity int) *readyQueue {
	return &readyQueue{entries: make([]int, 0, capacity)}
}

func (q *readyQueue) push(index int) {
	q.entries = append(q.entries, index)
}

func (q *readyQueue) current() (int, bool) {
	if q.pos >= len(q.entries) {
		return 0, false
	}
	return q.entries[q.pos], true
}

func (q *readyQueue) advance() {
	if q.pos < len(q.entries) {
		q.pos++
	}
}

// holds reports whether a process with processId sits at or after the read
// position. Membership is by id, not by slot.
func (q *readyQueue) holds(processes []core.Process, processId int) bool {
	for _, index := range q.entries[q.pos:] {
		if processes[index].ProcessId == processId {
			return true
		}
	}
	return false
}

// RoundRobin is preemptive round robin over the processes in input order.
// The ready queue starts with the first process of the slice, whatever its
// arrival time. After each slice, newly arrived processes are queued ahead
// of the preempted one.
func (e *Engine) RoundRobin(processes []core.Process, timeQuantum int) (Result, error) {
	if timeQuantum <= 0 {
		return Result{}, fmt.Errorf("%w: time quantum must be > 0, got %d", ErrInvalidParameter, timeQuantum)
	}
	if err := prepare(processes); err != nil {
		return Result{}, err
	}
	e.logger.Debug("running roundRobin algorithm", "processes", len(processes), "time_quantum", timeQuantum)

	var acc Accumulator
	timeline := make([]core.Slice, 0, len(processes))
	queue := newReadyQueue(len(processes))
	queue.push(0)

	currentTime := 0
	completedProcesses := 0
	for completedProcesses < len(processes) {
		index, ok := queue.current()
		if !ok {
			// cpu idle until the next arrival
			if next := nextArrival(processes); next > currentTime {
				currentTime = next
			}
			e.logger.Debug("ready queue empty", "clock", currentTime)
			e.admit(processes, queue, currentTime, -1)
			continue
		}

		p := &processes[index]
		if p.RemainingBurstTime == 0 {
			queue.advance()
			continue
		}

		run := timeQuantum
		if p.RemainingBurstTime < run {
			run = p.RemainingBurstTime
		}
		start := currentTime
		currentTime += run
		p.RemainingBurstTime -= run
		timeline = append(timeline, core.Slice{ProcessId: p.ProcessId, Start: start, End: currentTime})

		e.logger.Debug("process ran", "pid", p.ProcessId, "start", start, "end", currentTime, "remaining", p.RemainingBurstTime)

		if p.RemainingBurstTime == 0 {
			p.CompletionTime = currentTime
			p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
			p.WaitTime = p.TurnAroundTime - p.BurstTime
			completedProcesses++
			acc.Add(*p)

			e.logger.Debug("process completed", "pid", p.ProcessId, "completion", p.CompletionTime, "wait", p.WaitTime)
		}

		e.admit(processes, queue, currentTime, index)
		if p.RemainingBurstTime != 0 {
			queue.push(index)
		}
		queue.advance()
	}

	result, err := e.finish(AlgorithmRR, processes, timeline, &acc)
	if err != nil {
		return Result{}, err
	}
	result.TimeQuantum = timeQuantum
	return result, nil
}

// admit queues every unfinished process that has arrived by now, is not the
// one that just ran and is not already waiting.
func (e *Engine) admit(processes []core.Process, queue *readyQueue, now, running int) {
	for i := range processes {
		p := processes[i]
		if i == running || p.ArrivalTime > now || p.RemainingBurstTime == 0 {
			continue
		}
		if queue.holds(processes, p.ProcessId) {
			continue
		}
		queue.push(i)
		e.logger.Debug("process admitted", "pid", p.ProcessId, "arrival", p.ArrivalTime, "clock", now)
	}
}

// nextArrival returns the earliest arrival among unfinished processes.
func nextArrival(processes []core.Process) int {
	next := -1
	for _, p := range processes {
		if p.RemainingBurstTime == 0 {
			continue
		}
		if next == -1 || p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}

func (e *Engine) ScheduleRoundRobin(request requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	result, err := e.RoundRobin(request.Processes(), timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(result), nil
}
