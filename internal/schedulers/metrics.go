package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// Averages are the finalized per-run means.
type Averages struct {
	TurnAround float64
	Wait       float64
}

// Accumulator sums turnaround and wait time over one scheduling run. Each run
// owns its own accumulator; the zero value is ready to use.
type Accumulator struct {
	turnAroundSum int
	waitSum       int
	count         int
}

func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Add records a process whose derived fields are final.
func (a *Accumulator) Add(p core.Process) {
	a.turnAroundSum += p.TurnAroundTime
	a.waitSum += p.WaitTime
	a.count++
}

func (a *Accumulator) Count() int {
	return a.count
}

// Finalize divides the sums by the number of recorded processes.
func (a *Accumulator) Finalize() (Averages, error) {
	if a.count == 0 {
		return Averages{}, fmt.Errorf("%w: no processes recorded", ErrInvalidInput)
	}
	n := float64(a.count)
	return Averages{
		TurnAround: float64(a.turnAroundSum) / n,
		Wait:       float64(a.waitSum) / n,
	}, nil
}
