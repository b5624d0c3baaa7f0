package handlers

import (
	"log"

	"github.com/ailawatlas/catalog_service/internal/api/rest/middleware"
	"github.com/ailawatlas/catalog_service/internal/apperr"
	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/helper"
	"github.com/ailawatlas/catalog_service/internal/helper/utils"
	"github.com/ailawatlas/catalog_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	user := api.Group("/user")

	// Auth
	user.Post("/register", h.Register)
	user.Post("/verify", h.VerifyEmail)
	user.Post("/login", h.Login)

	// Profile
	user.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if requestBody.Email == "" || requestBody.Password == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	if err := h.svc.Register(ctx.Context(), requestBody); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "registered, check your email for the verification code",
	})
}

func (h *UserHandler) VerifyEmail(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyEmailRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	alreadyVerified, err := h.svc.VerifyEmail(ctx.Context(), requestBody.Email, requestBody.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if alreadyVerified {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "email is already verified",
		})
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "email verified successfully",
	})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	token, err := h.svc.Login(ctx.Context(), requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
	})
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.svc.GetUser(ctx.Context(), uint(claims.UserID))
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

// respondError maps a service error to its HTTP response. Internal detail is
// logged here and never sent to the caller.
func respondError(ctx *fiber.Ctx, err error) error {
	status := apperr.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", ctx.Method(), ctx.Path(), err)
	}
	return utils.ResponseError(ctx, status, apperr.MessageOf(err))
}
