package controller

import (
	"personal-crm-be/internal/dto"
	"personal-crm-be/internal/pkg/serverutils"
	"personal-crm-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	ForContact(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	jwt         fiber.Handler
}

func NewNoteController(noteService service.INoteService, jwt fiber.Handler) INoteController {
	return &noteController{
		noteService: noteService,
		jwt:         jwt,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(c.jwt)
	h.Post("process", c.Process)
	h.Get("contact/:id", c.ForContact)
}

func (c *noteController) Process(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ProcessNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.ProcessNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process note", res))
}

func (c *noteController) ForContact(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid contact id")
	}

	res, err := c.noteService.NotesForContact(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show contact notes", res))
}
