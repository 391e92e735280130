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

// registerClub 提交注册，进入待审核状态
func (rt *Router) registerClub(c *fiber.Ctx) error {
	var req model.CreateClubReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if req.HeadUserId == "" {
		req.HeadUserId = currentUserId(c)
	}

	club, err := rt.Services.ClubRegistration.Register(&req)
	if err != nil {
		return respondErr(c, err)
	}

	c.Locals(consts.DETAIL, club)
	return nil
}

// createClub 管理员直建，无需审核
func (rt *Router) createClub(c *fiber.Ctx) error {
	var req model.CreateClubReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	club, err := rt.Services.ClubRegistration.CreateClub(&req)
	if err != nil {
		return respondErr(c, err)
	}

	c.Locals(consts.DETAIL, club)
	return nil
}

func (rt *Router) getClub(c *fiber.Ctx) error {
	club, err := rt.Services.Club.GetClub(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, club)
	return nil
}

func (rt *Router) updateClub(c *fiber.Ctx) error {
	var req model.UpdateClubReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.Club.UpdateClub(c.Params("clubId"), &req); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) approveClub(c *fiber.Ctx) error {
	var req model.ReviewClubReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.ClubRegistration.Approve(c.Params("clubId"), req.Token); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) rejectClub(c *fiber.Ctx) error {
	var req model.ReviewClubReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.ClubRegistration.Reject(c.Params("clubId"), req.Token, req.Reason); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) changeHead(c *fiber.Ctx) error {
	var req model.ChangeHeadReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.Club.ChangeHead(c.Params("clubId"), req.NewHeadUserId); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) listPendingClubs(c *fiber.Ctx) error {
	clubs, err := rt.Services.ClubRegistration.ListPending()
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, clubs)
	return nil
}

func (rt *Router) listApprovedClubs(c *fiber.Ctx) error {
	clubs, err := rt.Services.ClubRegistration.ListApproved()
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, clubs)
	return nil
}

func (rt *Router) listRejectedClubs(c *fiber.Ctx) error {
	clubs, err := rt.Services.ClubRegistration.ListRejected()
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, clubs)
	return nil
}
