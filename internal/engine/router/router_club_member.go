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
)

func (rt *Router) addMember(c *fiber.Ctx) error {
	if err := rt.Services.ClubMember.AddMember(c.Params("clubId"), c.Params("userId")); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) removeMember(c *fiber.Ctx) error {
	if err := rt.Services.ClubMember.RemoveMember(c.Params("clubId"), c.Params("userId")); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) reactivateMember(c *fiber.Ctx) error {
	if err := rt.Services.ClubMember.ReactivateMember(c.Params("clubId"), c.Params("userId")); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) listMembers(c *fiber.Ctx) error {
	members, err := rt.Services.ClubMember.ListActiveMembers(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, members)
	return nil
}

func (rt *Router) listMemberHistory(c *fiber.Ctx) error {
	members, err := rt.Services.ClubMember.ListMemberHistory(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, members)
	return nil
}

func (rt *Router) countMembers(c *fiber.Ctx) error {
	count, err := rt.Services.ClubMember.CountActiveMembers(c.Params("clubId"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, fiber.Map{"count": count})
	return nil
}

func (rt *Router) searchMembers(c *fiber.Ctx) error {
	users, err := rt.Services.ClubMember.SearchMembers(c.Params("clubId"), c.Query("name"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, users)
	return nil
}
