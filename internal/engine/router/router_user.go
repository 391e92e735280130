package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/engine/consts"
	"github.com/go-campus/campus/internal/engine/model"
)

/**
 * @file: router_user.go
 * @description: user router
 */

func (rt *Router) register(c *fiber.Ctx) error {
	var register model.Register
	if err := c.BodyParser(&register); err != nil {
		return badRequest(c)
	}

	user, err := rt.Services.User.Register(&register)
	if err != nil {
		return respondErr(c, err)
	}

	c.Locals(consts.DETAIL, fiber.Map{"userId": user.UserId})
	return nil
}

func (rt *Router) login(c *fiber.Ctx) error {
	var login model.Login
	if err := c.BodyParser(&login); err != nil {
		return badRequest(c)
	}

	resp, err := rt.Services.User.Login(&login, rt.Http.Auth)
	if err != nil {
		return respondErr(c, err)
	}

	c.Locals(consts.DETAIL, resp)
	return nil
}

func (rt *Router) logout(c *fiber.Ctx) error {
	if err := rt.Services.User.Logout(currentUserId(c)); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}

func (rt *Router) userInfo(c *fiber.Ctx) error {
	user, err := rt.Services.User.GetUser(currentUserId(c))
	if err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.DETAIL, model.UserInfo{
		UserId:    user.UserId,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
	})
	return nil
}

func (rt *Router) updateUser(c *fiber.Ctx) error {
	var u model.User
	if err := c.BodyParser(&u); err != nil {
		return badRequest(c)
	}

	if err := rt.Services.User.UpdateUser(currentUserId(c), &u); err != nil {
		return respondErr(c, err)
	}
	c.Locals(consts.OPERATION, "")
	return nil
}
