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
)

func (rt *Router) addExecutive(c *fiber.Ctx) error {
	var req model.AddExecutiveReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.ClubExecutive.AddExecutive(c.Params("clubId"), req.UserId, req.Position); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) removeExecutive(c *fiber.Ctx) error {
	if err := rt.Services.ClubExecutive.RemoveExecutive(c.Params("clubId"), c.Params("userId")); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) updatePosition(c *fiber.Ctx) error {
	var req model.UpdatePositionReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.ClubExecutive.UpdatePosition(c.Params("clubId"), c.Params("userId"), req.Position); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) reactivateExecutive(c *fiber.Ctx) error {
	var req model.UpdatePositionReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.ClubExecutive.ReactivateExecutive(c.Params("clubId"), c.Params("userId"), req.Position); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) listExecutives(c *fiber.Ctx) error {
	execs, err := rt.Services.ClubExecutive.ListActiveExecutives(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, execs)
	return nil
}

func (rt *Router) listExecutiveHistory(c *fiber.Ctx) error {
	execs, err := rt.Services.ClubExecutive.ListExecutiveHistory(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, execs)
	return nil
}
