package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/go-campus/campus/internal/engine/consts"
	"github.com/go-campus/campus/internal/engine/service"
	"github.com/go-campus/campus/internal/pkg/weather"
	"github.com/go-campus/campus/pkg/ctx"
	httpx "github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/middleware"
	"github.com/go-campus/campus/pkg/metrics"
)

/**
 * @file: router.go
 * @description: setup router
 */

type Router struct {
	Http     *httpx.Http
	Ctx      *ctx.Context
	Services *service.Services
	Weather  *weather.Client
}

func NewRouter(httpConf *httpx.Http, appCtx *ctx.Context, services *service.Services, weatherCli *weather.Client) *Router {
	return &Router{
		Http:     httpConf,
		Ctx:      appCtx,
		Services: services,
		Weather:  weatherCli,
	}
}

func (rt *Router) Router() *fiber.App {

	app := fiber.New(fiber.Config{
		AppName:               "campus",
		DisableStartupMessage: true,
		ReadBufferSize:        16 * 1024,
	})

	// panic recover
	app.Use(middleware.ExceptionMiddleware)

	// cors
	app.Use(middleware.CorsMiddleware())

	// access log
	app.Use(middleware.AccessLogMiddleware(rt.Http))

	// unified response
	app.Use(middleware.UnifiedResponseMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	if rt.Http.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	api := app.Group(rt.Http.ContextPath)
	rt.routerGroup(api)

	return app
}

func (rt *Router) routerGroup(r fiber.Router) {

	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, consts.UserInfoKey, rt.Ctx.GetRedisIns())

	// user
	user := r.Group("/user")
	{
		// not auth
		user.Post("/register", rt.register)
		user.Post("/login", rt.login)

		// auth
		user.Post("/logout", auth, rt.logout)
		user.Get("/info", auth, rt.userInfo)
		user.Put("/revise", auth, rt.updateUser)
	}

	// club
	club := r.Group("/club", auth)
	{
		club.Post("/register", rt.registerClub)
		club.Post("/create", rt.createClub)
		club.Get("/pending", rt.listPendingClubs)
		club.Get("/approved", rt.listApprovedClubs)
		club.Get("/rejected", rt.listRejectedClubs)
		club.Get("/:clubId", rt.getClub)
		club.Put("/:clubId", rt.updateClub)
		club.Post("/:clubId/approve", rt.approveClub)
		club.Post("/:clubId/reject", rt.rejectClub)
		club.Post("/:clubId/head", rt.changeHead)

		// members
		club.Get("/:clubId/members", rt.listMembers)
		club.Get("/:clubId/members/history", rt.listMemberHistory)
		club.Get("/:clubId/members/count", rt.countMembers)
		club.Get("/:clubId/members/search", rt.searchMembers)
		club.Post("/:clubId/members/:userId", rt.addMember)
		club.Delete("/:clubId/members/:userId", rt.removeMember)
		club.Post("/:clubId/members/:userId/reactivate", rt.reactivateMember)

		// executives
		club.Get("/:clubId/executives", rt.listExecutives)
		club.Get("/:clubId/executives/history", rt.listExecutiveHistory)
		club.Post("/:clubId/executives", rt.addExecutive)
		club.Delete("/:clubId/executives/:userId", rt.removeExecutive)
		club.Put("/:clubId/executives/:userId/position", rt.updatePosition)
		club.Post("/:clubId/executives/:userId/reactivate", rt.reactivateExecutive)

		// events
		club.Post("/:clubId/events", rt.createEvent)
		club.Get("/:clubId/events/upcoming", rt.listUpcomingEvents)
		club.Get("/:clubId/events/past", rt.listPastEvents)
	}

	// membership requests
	request := r.Group("/request", auth)
	{
		request.Post("", rt.createRequest)
		request.Get("/mine", rt.listMyRequests)
		request.Get("/club/:clubId", rt.listClubRequests)
		request.Get("/:requestId", rt.getRequest)
		request.Post("/:requestId/approve", rt.approveRequest)
		request.Post("/:requestId/reject", rt.rejectRequest)
		request.Delete("/:requestId", rt.cancelRequest)
	}

	// events
	event := r.Group("/event", auth)
	{
		event.Post("/:eventId/join", rt.joinEvent)
		event.Delete("/:eventId/join", rt.withdrawEvent)
	}

	// weather
	r.Get("/weather", auth, rt.currentWeather)
}
