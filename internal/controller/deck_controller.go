package controller

import (
	"decktrack-be/internal/dto"
	"decktrack-be/internal/pkg/serverutils"
	"decktrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDeckController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Index(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Analytics(ctx *fiber.Ctx) error
	ViewerDetail(ctx *fiber.Ctx) error
}

type deckController struct {
	deckService service.IDeckService
}

func NewDeckController(deckService service.IDeckService) IDeckController {
	return &deckController{
		deckService: deckService,
	}
}

func (c *deckController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/decks/v1")
	h.Use(authMiddleware)
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/analytics", c.Analytics)
	h.Get(":id/viewers/:viewerId", c.ViewerDetail)
}

func (c *deckController) Index(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.deckService.GetUserDecks(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get decks", res))
}

func (c *deckController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateDeckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.deckService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create deck", res))
}

func (c *deckController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid deck id")
	}

	res, err := c.deckService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show deck", res))
}

func (c *deckController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid deck id")
	}

	var req dto.UpdateDeckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.deckService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update deck", res))
}

func (c *deckController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid deck id")
	}

	if err := c.deckService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete deck", fiber.Map{"id": id}))
}

func (c *deckController) Analytics(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid deck id")
	}

	res, err := c.deckService.Analytics(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get deck analytics", res))
}

func (c *deckController) ViewerDetail(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	deckId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid deck id")
	}
	viewerId, err := uuid.Parse(ctx.Params("viewerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid viewer id")
	}

	res, err := c.deckService.ViewerDetail(ctx.Context(), userId, deckId, viewerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get viewer detail", res))
}
