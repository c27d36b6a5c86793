package middleware

import (
	"fmt"

	pkgError "github.com/AzielCF/az-drive/pkg/error"
	"github.com/AzielCF/az-drive/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			err := recover()
			if err != nil {
				var res utils.ResponseData
				res.Status = 500
				res.Code = "INTERNAL_SERVER_ERROR"
				res.Message = fmt.Sprintf("%v", err)

				logrus.Errorf("Panic recovered in middleware: %v", err)

				typedErr, isTyped := err.(pkgError.GenericError)
				if isTyped {
					res.Status = typedErr.StatusCode()
					res.Code = typedErr.ErrCode()
					res.Message = typedErr.Error()
				}

				_ = ctx.Status(res.Status).JSON(res)
			}
		}()

		return ctx.Next()
	}
}
