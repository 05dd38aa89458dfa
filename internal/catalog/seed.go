package catalog

import "github.com/fairyhunter13/minimal-shop/internal/model"

func fptr(f float64) *float64 { return &f }

// seedProducts is the fixed catalog authored at build time. It is never
// written back to storage and never mutated.
var seedProducts = []model.Product{
	{
		ID:          "1",
		Name:        "Minimal Canvas Tote",
		Description: "A beautifully crafted canvas tote bag with reinforced handles. Perfect for everyday use, groceries, or as a work bag. Made from 100% organic cotton canvas.",
		Price:       48,
		Images: []string{
			"https://images.unsplash.com/photo-1544816155-12df9643f363?w=800&q=80",
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
		},
		Category: "Bags",
		InStock:  true,
		Variants: []model.Variant{
			{Name: "Color", Options: []string{"Natural", "Black", "Navy"}},
		},
	},
	{
		ID:            "2",
		Name:          "Ceramic Pour-Over Set",
		Description:   "Hand-thrown ceramic pour-over coffee set. Includes dripper and carafe. Each piece is unique with subtle variations in glaze.",
		Price:         85,
		OriginalPrice: fptr(110),
		Images: []string{
			"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=800&q=80",
			"https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=800&q=80",
		},
		Category: "Kitchen",
		InStock:  true,
	},
	{
		ID:          "3",
		Name:        "Linen Throw Blanket",
		Description: "Soft, stonewashed linen throw blanket. Perfect weight for year-round comfort. Pre-washed for extra softness.",
		Price:       120,
		Images: []string{
			"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&q=80",
			"https://images.unsplash.com/photo-1540574163026-643ea20ade25?w=800&q=80",
		},
		Category: "Home",
		InStock:  true,
		Variants: []model.Variant{
			{Name: "Color", Options: []string{"Oatmeal", "Charcoal", "Sage"}},
		},
	},
	{
		ID:          "4",
		Name:        "Oak Desk Organizer",
		Description: "Solid oak desk organizer with multiple compartments. Natural oil finish highlights the wood grain. Handcrafted in small batches.",
		Price:       65,
		Images: []string{
			"https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?w=800&q=80",
			"https://images.unsplash.com/photo-1616627547584-bf28cee262db?w=800&q=80",
		},
		Category: "Office",
		InStock:  true,
	},
	{
		ID:            "5",
		Name:          "Wool Blend Scarf",
		Description:   "Luxuriously soft wool blend scarf. Generously sized for multiple styling options. Ethically sourced materials.",
		Price:         75,
		OriginalPrice: fptr(95),
		Images: []string{
			"https://images.unsplash.com/photo-1520903920243-00d872a2d1c9?w=800&q=80",
			"https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=800&q=80",
		},
		Category: "Accessories",
		InStock:  true,
		Variants: []model.Variant{
			{Name: "Color", Options: []string{"Camel", "Grey", "Burgundy"}},
		},
	},
	{
		ID:          "6",
		Name:        "Stoneware Mug Set",
		Description: "Set of four handcrafted stoneware mugs. Each mug holds 12oz. Microwave and dishwasher safe.",
		Price:       58,
		Images: []string{
			"https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=800&q=80",
			"https://images.unsplash.com/photo-1481349518771-20055b2a7b24?w=800&q=80",
		},
		Category: "Kitchen",
		InStock:  true,
	},
	{
		ID:          "7",
		Name:        "Leather Passport Holder",
		Description: "Full-grain leather passport holder with card slots. Develops beautiful patina over time. Fits standard passports.",
		Price:       42,
		Images: []string{
			"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800&q=80",
			"https://images.unsplash.com/photo-1473188588951-666fce8e7c68?w=800&q=80",
		},
		Category: "Accessories",
		InStock:  false,
	},
	{
		ID:          "8",
		Name:        "Brass Table Lamp",
		Description: "Minimalist brass table lamp with linen shade. Warm, ambient lighting. Dimmer compatible.",
		Price:       145,
		Images: []string{
			"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80",
			"https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=800&q=80",
		},
		Category: "Home",
		InStock:  true,
	},
}

// Seed returns a fresh copy of the built-in product table.
func Seed() []model.Product {
	out := make([]model.Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}
