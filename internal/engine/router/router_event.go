// Copyright 2025 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/engine/consts"
	"github.com/go-campus/campus/internal/engine/model"
	httpx "github.com/go-campus/campus/pkg/http"
)

func (rt *Router) createEvent(c *fiber.Ctx) error {
	var req model.CreateEventReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	event, err := rt.Services.Event.CreateEvent(c.Params("clubId"), currentUserId(c), &req)
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, event)
	return nil
}

func (rt *Router) listUpcomingEvents(c *fiber.Ctx) error {
	events, err := rt.Services.Event.ListUpcoming(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, events)
	return nil
}

func (rt *Router) listPastEvents(c *fiber.Ctx) error {
	events, err := rt.Services.Event.ListPast(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, events)
	return nil
}

func (rt *Router) joinEvent(c *fiber.Ctx) error {
	if err := rt.Services.Event.Join(c.Params("eventId"), currentUserId(c)); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) withdrawEvent(c *fiber.Ctx) error {
	if err := rt.Services.Event.Withdraw(c.Params("eventId"), currentUserId(c)); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) currentWeather(c *fiber.Ctx) error {
	if rt.Weather == nil {
		c.Status(fiber.StatusNotFound)
		return httpx.WithRepErrMsg(c, httpx.NotFound.Code, "weather is not configured", c.Path())
	}

	report, err := rt.Weather.Current(c.UserContext())
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return httpx.WithRepErrMsg(c, httpx.InternalError.Code, err.Error(), c.Path())
	}
	c.Locals(consts.DETAIL, report)
	return nil
}
