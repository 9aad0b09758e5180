package api

import "github.com/gofiber/fiber/v2"

func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}

	return app
}
