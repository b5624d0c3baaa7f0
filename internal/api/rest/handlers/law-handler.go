package handlers

import (
	"strconv"

	"github.com/ailawatlas/catalog_service/internal/api/rest/middleware"
	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/helper"
	"github.com/ailawatlas/catalog_service/internal/helper/utils"
	"github.com/ailawatlas/catalog_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LawHandler struct {
	svc services.LawService
}

func NewLawHandler(svc services.LawService) *LawHandler {
	return &LawHandler{svc: svc}
}

func (h *LawHandler) SetupRoutes(app *fiber.App, auth helper.Auth) {
	api := app.Group("/api")

	// public catalog
	api.Get("/laws", h.ListLaws)
	api.Get("/laws/:id", h.GetLaw)
	api.Get("/search", h.SearchLaws)

	// mutations need a verified account's token
	authed := middleware.AuthMiddleware(auth)
	api.Post("/laws", authed, h.CreateLaw)
	api.Put("/laws/:id", authed, h.UpdateLaw)
	api.Delete("/laws/:id", authed, h.DeleteLaw)
}

func (h *LawHandler) ListLaws(ctx *fiber.Ctx) error {
	laws, err := h.svc.ListLaws(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(laws)
}

func (h *LawHandler) SearchLaws(ctx *fiber.Ctx) error {
	laws, err := h.svc.SearchLaws(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(laws)
}

func (h *LawHandler) GetLaw(ctx *fiber.Ctx) error {
	lawID, err := parseLawID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid law id")
	}

	law, err := h.svc.GetLaw(ctx.Context(), lawID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(law)
}

func (h *LawHandler) CreateLaw(ctx *fiber.Ctx) error {
	var requestBody dto.LawInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	law, err := h.svc.CreateLaw(ctx.Context(), requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(law)
}

func (h *LawHandler) UpdateLaw(ctx *fiber.Ctx) error {
	lawID, err := parseLawID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid law id")
	}

	var requestBody dto.LawInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	law, err := h.svc.UpdateLaw(ctx.Context(), lawID, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(law)
}

func (h *LawHandler) DeleteLaw(ctx *fiber.Ctx) error {
	lawID, err := parseLawID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid law id")
	}

	if err := h.svc.DeleteLaw(ctx.Context(), lawID); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func parseLawID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
