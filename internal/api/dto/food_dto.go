package dto

import "github.com/spec-kit/foodyy-service/internal/domain"

// FoodRequest payload for creating or updating a catalog item. Image bytes
// arrive base64-encoded in JSON.
type FoodRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"gte=0"`
	Veg             bool    `json:"isVeg"`
	Ingredients     string  `json:"ingredients"`
	Calories        float64 `json:"calories"`
	PreparationMins int     `json:"preparationTime"`
	Spiciness       string  `json:"spiciness"`
	Available       *bool   `json:"available"`
	Category        string  `json:"category"`
	ImageName       string  `json:"imageName"`
	ImageType       string  `json:"imageType"`
	ImageData       []byte  `json:"imageData"`
}

// ToDomain maps the request onto a catalog item. Availability defaults to
// true when omitted.
func (r FoodRequest) ToDomain() *domain.Food {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return &domain.Food{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		Veg:             r.Veg,
		Ingredients:     r.Ingredients,
		Calories:        r.Calories,
		PreparationMins: r.PreparationMins,
		Spiciness:       domain.Spiciness(r.Spiciness),
		Available:       available,
		Category:        domain.FoodCategory(r.Category),
		ImageName:       r.ImageName,
		ImageType:       r.ImageType,
		ImageData:       r.ImageData,
	}
}

// FoodResponse is the catalog wire format; image bytes are served from the
// dedicated image endpoint instead.
type FoodResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Veg             bool    `json:"isVeg"`
	Ingredients     string  `json:"ingredients"`
	Calories        float64 `json:"calories"`
	PreparationMins int     `json:"preparationTime"`
	Spiciness       string  `json:"spiciness"`
	Available       bool    `json:"available"`
	Category        string  `json:"category"`
	ImageName       string  `json:"imageName"`
	ImageType       string  `json:"imageType"`
}

// NewFoodResponse maps the domain model.
func NewFoodResponse(f *domain.Food) FoodResponse {
	return FoodResponse{
		ID:              f.ID,
		Name:            f.Name,
		Description:     f.Description,
		Price:           f.Price,
		Veg:             f.Veg,
		Ingredients:     f.Ingredients,
		Calories:        f.Calories,
		PreparationMins: f.PreparationMins,
		Spiciness:       string(f.Spiciness),
		Available:       f.Available,
		Category:        string(f.Category),
		ImageName:       f.ImageName,
		ImageType:       f.ImageType,
	}
}

// NewFoodResponses maps a slice.
func NewFoodResponses(foods []domain.Food) []FoodResponse {
	out := make([]FoodResponse, 0, len(foods))
	for i := range foods {
		out = append(out, NewFoodResponse(&foods[i]))
	}
	return out
}
