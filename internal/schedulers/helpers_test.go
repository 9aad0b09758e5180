package schedulers

import (
	"math"
	"testing"

	"cpu-scheduler/internal/core"
)

// procs builds processes from (id, arrival, burst) triples.
func procs(triples ...[3]int) []core.Process {
	out := make([]core.Process, 0, len(triples))
	for _, t := range triples {
		out = append(out, core.NewProcess(t[0], t[1], t[2]))
	}
	return out
}

func byID(t *testing.T, processes []core.Process, id int) core.Process {
	t.Helper()
	for _, p := range processes {
		if p.ProcessId == id {
			return p
		}
	}
	t.Fatalf("process %d not found", id)
	return core.Process{}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkInvariants(t *testing.T, processes []core.Process) {
	t.Helper()
	for _, p := range processes {
		if p.TurnAroundTime != p.CompletionTime-p.ArrivalTime {
			t.Errorf("pid %d: turnaround %d != completion %d - arrival %d", p.ProcessId, p.TurnAroundTime, p.CompletionTime, p.ArrivalTime)
		}
		if p.WaitTime != p.TurnAroundTime-p.BurstTime {
			t.Errorf("pid %d: wait %d != turnaround %d - burst %d", p.ProcessId, p.WaitTime, p.TurnAroundTime, p.BurstTime)
		}
	}
}

type expected struct {
	id, completion, turnAround, wait int
}

func checkExpected(t *testing.T, processes []core.Process, want []expected) {
	t.Helper()
	for _, w := range want {
		p := byID(t, processes, w.id)
		if p.CompletionTime != w.completion || p.TurnAroundTime != w.turnAround || p.WaitTime != w.wait {
			t.Errorf("pid %d: got (ct=%d, tat=%d, wt=%d), want (ct=%d, tat=%d, wt=%d)",
				w.id, p.CompletionTime, p.TurnAroundTime, p.WaitTime, w.completion, w.turnAround, w.wait)
		}
	}
}
