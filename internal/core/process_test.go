package core

import "testing"

func TestNewProcess(t *testing.T) {
	p := NewProcess(7, 3, 9)
	if p.ProcessId != 7 || p.ArrivalTime != 3 || p.BurstTime != 9 {
		t.Fatalf("unexpected process: %+v", p)
	}
	if p.RemainingBurstTime != 9 {
		t.Errorf("RemainingBurstTime = %d, want 9", p.RemainingBurstTime)
	}
}

func TestProcess_Validate(t *testing.T) {
	tests := []struct {
		name      string
		p         Process
		wantField string
	}{
		{"valid", NewProcess(1, 0, 1), ""},
		{"negative arrival", NewProcess(1, -1, 4), "arrival_time"},
		{"zero burst", NewProcess(1, 0, 0), "burst_time"},
		{"negative burst", NewProcess(1, 2, -3), "burst_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := tt.p.Validate()
			if field != tt.wantField {
				t.Errorf("field = %q, want %q", field, tt.wantField)
			}
			if (err != nil) != (tt.wantField != "") {
				t.Errorf("err = %v, wantField %q", err, tt.wantField)
			}
		})
	}
}

func TestProcess_Reset(t *testing.T) {
	p := Process{ProcessId: 1, BurstTime: 5, RemainingBurstTime: 0, CompletionTime: 9, TurnAroundTime: 9, WaitTime: 4}
	p.Reset()
	if p.RemainingBurstTime != 5 || p.CompletionTime != 0 || p.TurnAroundTime != 0 || p.WaitTime != 0 {
		t.Errorf("Reset left %+v", p)
	}
}
