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

func (rt *Router) createRequest(c *fiber.Ctx) error {
	var req model.CreateRequestReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	request, err := rt.Services.MembershipRequest.Create(currentUserId(c), req.ClubId, req.Message)
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, request)
	return nil
}

func (rt *Router) listMyRequests(c *fiber.Ctx) error {
	requests, err := rt.Services.MembershipRequest.ListByUser(currentUserId(c))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, requests)
	return nil
}

func (rt *Router) listClubRequests(c *fiber.Ctx) error {
	requests, err := rt.Services.MembershipRequest.ListByClub(c.Params("clubId"), c.Query("status"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, requests)
	return nil
}

func (rt *Router) getRequest(c *fiber.Ctx) error {
	request, err := rt.Services.MembershipRequest.GetRequest(c.Params("requestId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, request)
	return nil
}

func (rt *Router) approveRequest(c *fiber.Ctx) error {
	var req model.ProcessRequestReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.MembershipRequest.Approve(c.Params("requestId"), currentUserId(c), req.Message); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) rejectRequest(c *fiber.Ctx) error {
	var req model.ProcessRequestReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.MembershipRequest.Reject(c.Params("requestId"), currentUserId(c), req.Message); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) cancelRequest(c *fiber.Ctx) error {
	if err := rt.Services.MembershipRequest.Cancel(c.Params("requestId"), currentUserId(c)); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}
