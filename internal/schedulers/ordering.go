package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// SortByArrival orders processes by arrival time, keeping input order on ties.
func SortByArrival(processes []core.Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
}

// SortByBurst orders processes by burst time, keeping input order on ties.
func SortByBurst(processes []core.Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].BurstTime < processes[j].BurstTime
	})
}
