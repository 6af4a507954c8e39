package domain

// Spiciness grades how hot a dish is.
type Spiciness string

const (
	SpicinessMild   Spiciness = "MILD"
	SpicinessMedium Spiciness = "MEDIUM"
	SpicinessHot    Spiciness = "HOT"
)

// FoodCategory groups catalog items for browsing.
type FoodCategory string

const (
	CategoryStarter  FoodCategory = "STARTER"
	CategoryMain     FoodCategory = "MAIN_COURSE"
	CategoryDessert  FoodCategory = "DESSERT"
	CategoryBeverage FoodCategory = "BEVERAGE"
	CategorySnack    FoodCategory = "SNACK"
)

// Food is a catalog item. Image bytes live in the same row and are served
// through a dedicated endpoint rather than inlined in list responses.
type Food struct {
	ID              int
	Name            string
	Description     string
	Price           float64
	Veg             bool
	Ingredients     string
	Calories        float64
	PreparationMins int
	Spiciness       Spiciness
	Available       bool
	Category        FoodCategory
	ImageName       string
	ImageType       string
	ImageData       []byte
}
