package controller

import (
	"decktrack-be/internal/dto"
	"decktrack-be/internal/pkg/serverutils"
	"decktrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Viewer routes are the public tracking surface: no auth, viewers only ever
// identify themselves by email on a shared deck link.
type IViewerController interface {
	RegisterRoutes(r fiber.Router)
	Access(ctx *fiber.Ctx) error
	PublicDeck(ctx *fiber.Ctx) error
	StartSession(ctx *fiber.Ctx) error
	TrackSlide(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
}

type viewerController struct {
	viewerService service.IViewerService
}

func NewViewerController(viewerService service.IViewerService) IViewerController {
	return &viewerController{
		viewerService: viewerService,
	}
}

func (c *viewerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/viewer/v1")
	h.Post("access", c.Access)
	h.Get("deck/:id", c.PublicDeck)
	h.Post("session/start", c.StartSession)
	h.Post("track", c.TrackSlide)
	h.Post("session/end", c.EndSession)
}

func (c *viewerController) Access(ctx *fiber.Ctx) error {
	var req dto.ViewerAccessRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.viewerService.Access(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve viewer", res))
}

func (c *viewerController) PublicDeck(ctx *fiber.Ctx) error {
	res, err := c.viewerService.PublicDeck(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get deck", res))
}

func (c *viewerController) StartSession(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.viewerService.StartSession(ctx.Context(), &req, ctx.Get("User-Agent"), ctx.IP())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *viewerController) TrackSlide(ctx *fiber.Ctx) error {
	var req dto.TrackSlideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.viewerService.TrackSlide(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success track slide", fiber.Map{"tracked": true}))
}

func (c *viewerController) EndSession(ctx *fiber.Ctx) error {
	var req dto.EndSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.viewerService.EndSession(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success end session", fiber.Map{"ended": true}))
}
