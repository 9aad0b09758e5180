package api

import (
	"errors"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	engine *schedulers.Engine
	store  store.Store
	logger *slog.Logger
}

// NewSchedulerHandlerImpl builds the handler. st may be nil, which disables
// run history.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, engine *schedulers.Engine, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		engine: engine,
		store:  st,
		logger: logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRR)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	all, err := s.engine.ScheduleAll(request)
	if err != nil {
		return s.respondError(ctx, err)
	}
	for _, response := range all {
		s.save(ctx, request, response)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "run history is disabled"})
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 20))
	if err != nil {
		s.logger.Error("list runs", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not list runs"})
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	return ctx.JSON(runs)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "run history is disabled"})
	}
	id := ctx.Params("id")
	run, err := s.store.GetRun(ctx.UserContext(), id)
	if err != nil {
		s.logger.Error("get run", "id", id, "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not load run"})
	}
	if run == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run '" + id + "' not found"})
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	response, err := s.engine.Schedule(algorithm, request)
	if err != nil {
		return s.respondError(ctx, err)
	}
	s.save(ctx, request, response)
	return ctx.JSON(response)
}

// parseRequest decodes the body. A missing time_quantum takes the configured
// round robin quantum; an explicit one, zero included, is passed through.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, err
	}
	if request.TimeQuantum == nil {
		request = request.WithQuantum(s.config.RoundRobinTimeQuantum)
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) respondError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidInput) || errors.Is(err, schedulers.ErrInvalidParameter) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("schedule", "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

// save records the run when history is enabled. A failed save is logged and
// does not fail the request.
func (s *SchedulerHandlerImpl) save(ctx *fiber.Ctx, request requests.ScheduleRequests, response responses.ScheduleResponse) {
	if s.store == nil {
		return
	}
	run := &store.Run{Jobs: request.Jobs, Response: response}
	if err := s.store.SaveRun(ctx.UserContext(), run); err != nil {
		s.logger.Error("save run", "algorithm", response.Algorithm, "error", err)
		return
	}
	ctx.Append("X-Run-Id", run.ID)
}
