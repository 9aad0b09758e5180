package schedulers

import (
	"errors"
	"testing"

	"cpu-scheduler/internal/core"
)

func TestAccumulator(t *testing.T) {
	var acc Accumulator
	acc.Add(core.Process{TurnAroundTime: 5, WaitTime: 0})
	acc.Add(core.Process{TurnAroundTime: 7, WaitTime: 4})

	if acc.Count() != 2 {
		t.Errorf("Count = %d, want 2", acc.Count())
	}
	averages, err := acc.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if averages.TurnAround != 6 || averages.Wait != 2 {
		t.Errorf("averages = %+v, want {6 2}", averages)
	}

	acc.Reset()
	if _, err := acc.Finalize(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Finalize after Reset: err = %v, want ErrInvalidInput", err)
	}
}
