package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []core.Slice      `json:"timeline"`
}
