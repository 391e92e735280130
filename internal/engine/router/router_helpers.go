package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/engine/core"
	httpx "github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/jwt"
)

// respondErr 将错误类别映射为 HTTP 状态码：
// NotFound->404, Conflict->409, Precondition->400, Unauthorized->403
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.Status(fiber.StatusNotFound)
		return httpx.WithRepErrMsg(c, httpx.NotFound.Code, err.Error(), c.Path())
	case errors.Is(err, core.ErrConflict):
		c.Status(fiber.StatusConflict)
		return httpx.WithRepErrMsg(c, httpx.Conflict.Code, err.Error(), c.Path())
	case errors.Is(err, core.ErrPrecondition):
		c.Status(fiber.StatusBadRequest)
		return httpx.WithRepErrMsg(c, httpx.PreconditionFailed.Code, err.Error(), c.Path())
	case errors.Is(err, core.ErrUnauthorized):
		c.Status(fiber.StatusForbidden)
		return httpx.WithRepErrMsg(c, httpx.Forbidden.Code, err.Error(), c.Path())
	default:
		c.Status(fiber.StatusInternalServerError)
		return httpx.WithRepErrMsg(c, httpx.InternalError.Code, httpx.InternalError.Msg, c.Path())
	}
}

func badRequest(c *fiber.Ctx) error {
	c.Status(fiber.StatusBadRequest)
	return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code,
		httpx.RequestParameterParsingFailed.Msg, c.Path())
}

// currentUserId 从认证中间件写入的 claims 中取当前用户
func currentUserId(c *fiber.Ctx) string {
	if claims, ok := c.Locals("claims").(*jwt.AuthClaims); ok {
		return claims.UserId
	}
	return ""
}
