package menudata

import (
	"fmt"

	"smart-menu/internal/domain"
)

func menuItems() []domain.MenuItem {
	return []domain.MenuItem{
		// Veg
		{
			ID: "v1", Name: "Garden Fresh Salad",
			Description: "Mixed greens, cherry tomatoes, cucumber, and house dressing",
			Price:       8.99, Category: domain.CategoryVeg, SubCategory: "Starters",
			Available: true, PrepTime: 10, Featured: true,
			Tags: []string{"Healthy", "Fresh", "Gluten-Free"},
		},
		{
			ID: "v2", Name: "Margherita Pizza",
			Description: "Fresh tomatoes, mozzarella cheese, and basil on a thin crust",
			Price:       12.99, Category: domain.CategoryVeg, SubCategory: "Mains",
			Available: true, PrepTime: 20, Featured: true,
			Tags: []string{"Italian", "Cheesy"},
		},
		{
			ID: "v3", Name: "Vegetable Biryani",
			Description: "Aromatic basmati rice cooked with mixed vegetables and spices",
			Price:       14.99, Category: domain.CategoryVeg, SubCategory: "Mains",
			Available: true, PrepTime: 25,
			Tags: []string{"Spicy", "Indian"},
		},
		{
			ID: "v4", Name: "Pasta Primavera",
			Description: "Penne pasta with seasonal vegetables in a light cream sauce",
			Price:       13.99, Category: domain.CategoryVeg, SubCategory: "Mains",
			Available: true, PrepTime: 18,
			Tags: []string{"Italian", "Creamy"},
		},
		// Non-veg
		{
			ID: "nv1", Name: "Grilled Chicken Breast",
			Description: "Tender chicken breast seasoned and grilled to perfection",
			Price:       16.99, Category: domain.CategoryNonVeg, SubCategory: "Mains",
			Available: true, PrepTime: 22, Featured: true,
			Tags: []string{"Protein", "Healthy"},
		},
		{
			ID: "nv2", Name: "Classic Cheeseburger",
			Description: "Juicy beef patty with cheddar cheese and fresh vegetables",
			Price:       14.99, Category: domain.CategoryNonVeg, SubCategory: "Mains",
			Available: true, PrepTime: 15, Featured: true,
			Tags: []string{"American", "Hearty"},
		},
		{
			ID: "nv3", Name: "Butter Chicken",
			Description: "Tender chicken pieces in a rich and creamy tomato sauce",
			Price:       17.99, Category: domain.CategoryNonVeg, SubCategory: "Mains",
			Available: true, PrepTime: 25,
			Tags: []string{"Indian", "Spicy", "Creamy"},
		},
		{
			ID: "nv4", Name: "Grilled Salmon",
			Description: "Fresh Atlantic salmon fillet with herbs and lemon",
			Price:       19.99, Category: domain.CategoryNonVeg, SubCategory: "Mains",
			Available: true, PrepTime: 20,
			Tags: []string{"Seafood", "Healthy"},
		},
		// Drinks
		{
			ID: "d1", Name: "Cappuccino",
			Description: "Espresso with steamed milk and a layer of foamed milk",
			Price:       4.99, Category: domain.CategoryDrink, SubCategory: "Hot Beverages",
			Available: true, PrepTime: 5, Featured: true,
			Tags: []string{"Coffee", "Hot"},
		},
		{
			ID: "d2", Name: "Green Tea",
			Description: "Premium Japanese green tea leaves, delicately brewed",
			Price:       3.99, Category: domain.CategoryDrink, SubCategory: "Hot Beverages",
			Available: true, PrepTime: 3,
			Tags: []string{"Tea", "Hot", "Healthy"},
		},
		{
			ID: "d3", Name: "Fresh Lemonade",
			Description: "Freshly squeezed lemons with hint of mint and honey",
			Price:       4.99, Category: domain.CategoryDrink, SubCategory: "Cold Beverages",
			Available: true, PrepTime: 5, Featured: true,
			Tags: []string{"Refreshing", "Sweet"},
		},
		{
			ID: "d4", Name: "Mango Smoothie",
			Description: "Ripe mangoes blended with yogurt and a hint of honey",
			Price:       6.99, Category: domain.CategoryDrink, SubCategory: "Cold Beverages",
			Available: true, PrepTime: 7,
			Tags: []string{"Fruity", "Refreshing"},
		},
		{
			ID: "d5", Name: "Virgin Mojito",
			Description: "Muddled mint leaves, lime juice, and soda water",
			Price:       7.99, Category: domain.CategoryDrink, SubCategory: "Mocktails",
			Available: true, PrepTime: 8,
			Tags: []string{"Refreshing", "Minty"},
		},
		{
			ID: "d6", Name: "Tropical Punch",
			Description: "Blend of pineapple, orange, and passion fruit juices",
			Price:       8.99, Category: domain.CategoryDrink, SubCategory: "Mocktails",
			Available: true, PrepTime: 6, Featured: true,
			Tags: []string{"Fruity", "Sweet"},
		},
	}
}

func tables(prefix string, n int) []domain.Table {
	out := make([]domain.Table, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i)
		out = append(out, domain.Table{
			ID:        id,
			Number:    i,
			Seats:     4 + (i%2)*2, // alternating 4 and 6 seats
			QRCode:    id + "-qr",
			Type:      domain.TableShared,
			Available: true,
		})
	}
	return out
}

// Venues is the static directory the provider serves: one classic
// restaurant and one food court, so both venue variants are covered.
func Venues() []domain.Venue {
	return []domain.Venue{
		domain.Restaurant{
			ID:          "rest-1",
			Name:        "Gourmet Delight",
			Description: "Fine dining restaurant with a modern twist",
			Tables:      tables("table", 10),
			Menu:        menuItems(),
		},
		domain.FoodCourt{
			ID:     "court-1",
			Name:   "Harbor Food Court",
			Tables: tables("court-table", 6),
			Stalls: []domain.Stall{
				{
					ID: "stall-1", Name: "Wok Express", Cuisine: "Chinese",
					Menu: []domain.MenuItem{
						{
							ID: "s1-1", Name: "Vegetable Chow Mein",
							Description: "Stir-fried noodles with seasonal vegetables",
							Price:       9.99, Category: domain.CategoryVeg, SubCategory: "Mains",
							Available: true, PrepTime: 12, Tags: []string{"Noodles"},
						},
						{
							ID: "s1-2", Name: "Kung Pao Chicken",
							Description: "Spicy chicken with peanuts and dried chillies",
							Price:       12.49, Category: domain.CategoryNonVeg, SubCategory: "Mains",
							Available: true, PrepTime: 15, Tags: []string{"Spicy"},
						},
					},
				},
				{
					ID: "stall-2", Name: "Juice Bar", Cuisine: "Beverages",
					Menu: []domain.MenuItem{
						{
							ID: "s2-1", Name: "Watermelon Cooler",
							Description: "Chilled watermelon juice with lime",
							Price:       5.49, Category: domain.CategoryDrink, SubCategory: "Cold Beverages",
							Available: true, PrepTime: 4, Tags: []string{"Refreshing"},
						},
					},
				},
			},
		},
	}
}
