package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// GenerateResponse converts an engine result into the response DTO, keeping
// the result's process order.
func GenerateResponse(result Result) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, generateProcessDetails(p))
	}

	var totalTime int
	for _, s := range result.Timeline {
		if s.End > totalTime {
			totalTime = s.End
		}
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             totalTime,
		AverageWaitingTime:    result.Averages.Wait,
		AverageTurnAroundTime: result.Averages.TurnAround,
		Details:               details,
		Timeline:              result.Timeline,
	}
}

func generateProcessDetails(p core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ProcessId,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: p.CompletionTime,
		TurnAroundTime: p.TurnAroundTime,
		WaitingTime:    p.WaitTime,
	}
}
