package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// FoodHandler exposes catalog endpoints.
type FoodHandler struct {
	foods *service.FoodService
}

// NewFoodHandler constructs handler.
func NewFoodHandler(foodService *service.FoodService) *FoodHandler {
	return &FoodHandler{foods: foodService}
}

// List handles GET /admin/foods and GET /customer/foods.
func (h *FoodHandler) List(c *fiber.Ctx) error {
	foods, err := h.foods.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFoodResponses(foods))
}

// Get handles GET /admin/food/:foodId and GET /customer/food/:foodId.
func (h *FoodHandler) Get(c *fiber.Ctx) error {
	id, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}
	food, err := h.foods.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFoodResponse(food))
}

// Image handles GET /admin/food/:foodId/image and GET /customer/food/:foodId/image.
func (h *FoodHandler) Image(c *fiber.Ctx) error {
	id, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}
	food, err := h.foods.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if len(food.ImageData) == 0 {
		return fiber.NewError(http.StatusNotFound, "no image for food item")
	}
	if food.ImageType != "" {
		c.Set(fiber.HeaderContentType, food.ImageType)
	}
	return c.Send(food.ImageData)
}

// Search handles GET /admin/foods/search and GET /customer/foods/search.
func (h *FoodHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	foods, err := h.foods.Search(c.Context(), keyword)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFoodResponses(foods))
}

// Create handles POST /admin/food.
func (h *FoodHandler) Create(c *fiber.Ctx) error {
	var req dto.FoodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	food, err := h.foods.Create(c.Context(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Food added successfully",
		"data":    dto.NewFoodResponse(food),
	})
}

// Update handles PUT /admin/food/:foodId.
func (h *FoodHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}

	var req dto.FoodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	food := req.ToDomain()
	food.ID = id
	updated, err := h.foods.Update(c.Context(), food)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFoodResponse(updated))
}

// Delete handles DELETE /admin/food/:foodId.
func (h *FoodHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}
	if err := h.foods.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendString("Food deleted successfully")
}
