package catalog

import "github.com/parisboutique/storefront/internal/models"

// defaultProducts is the compiled-in ground-truth catalog used whenever no
// valid persisted catalog exists. The sync engine refuses any write that
// would shrink the live catalog below MinCatalogSize, so this list must stay
// comfortably above that floor.
var defaultProducts = []models.Product{
	// Skincare
	{
		ID:          1,
		Title:       "Hydrating Rose Facial Serum",
		Description: "Hydrating Rose Facial Serum from our skincare collection, chosen by our boutique team.",
		Price:       "$17.99",
		Image:       "/images/products/hydrating-rose-facial-serum.jpg",
		Alt:         "Hydrating Rose Facial Serum",
		Rating:      4.1,
		Reviews:     187,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Cruelty free", "Dermatologist tested", "Paraben free"},
		Benefits:    []string{"Soothes irritation", "Protects all day", "Reduces fine lines"},
		Category:    "Skincare",
		DateAdded:   "2024-01-14",
	},
	{
		ID:          2,
		Title:       "Vitamin C Brightening Cream",
		Description: "Vitamin C Brightening Cream from our skincare collection, chosen by our boutique team.",
		Price:       "$89.99",
		Image:       "/images/products/vitamin-c-brightening-cream.jpg",
		Alt:         "Vitamin C Brightening Cream",
		Rating:      4.0,
		Reviews:     59,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Dermatologist tested", "Paraben free", "Fragrance free"},
		Benefits:    []string{"Soothes irritation", "Reduces fine lines", "Protects all day"},
		Category:    "Skincare",
		DateAdded:   "2023-11-01",
	},
	{
		ID:          3,
		Title:       "Gentle Aloe Cleansing Gel",
		Description: "Gentle Aloe Cleansing Gel from our skincare collection, chosen by our boutique team.",
		Price:       "$9.99",
		Image:       "/images/products/gentle-aloe-cleansing-gel.jpg",
		Alt:         "Gentle Aloe Cleansing Gel",
		Rating:      4.3,
		Reviews:     71,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Cruelty free", "Suitable for all skin types", "Fragrance free"},
		Benefits:    []string{"Reduces fine lines", "Protects all day", "Deeply hydrates"},
		Category:    "Skincare",
		DateAdded:   "2024-01-19",
	},
	{
		ID:          4,
		Title:       "Overnight Repair Night Cream",
		Description: "Overnight Repair Night Cream from our skincare collection, chosen by our boutique team.",
		Price:       "$22.99",
		Image:       "/images/products/overnight-repair-night-cream.jpg",
		Alt:         "Overnight Repair Night Cream",
		Rating:      4.5,
		Reviews:     82,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Fragrance free", "Paraben free", "Cruelty free"},
		Benefits:    []string{"Restores natural glow", "Protects all day", "Deeply hydrates"},
		Category:    "Skincare",
		DateAdded:   "2024-01-02",
	},
	{
		ID:            5,
		Title:         "Shea Butter Day Moisturizer",
		Description:   "Shea Butter Day Moisturizer from our skincare collection, chosen by our boutique team.",
		Price:         "$22.99",
		OriginalPrice: "$30.99",
		Image:         "/images/products/shea-butter-day-moisturizer.jpg",
		Alt:           "Shea Butter Day Moisturizer",
		Rating:        3.9,
		Reviews:       105,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategorySkincare,
		Features:      []string{"Paraben free", "Quick absorbing", "Cruelty free"},
		Benefits:      []string{"Restores natural glow", "Evens skin tone", "Deeply hydrates"},
		Category:      "Skincare",
		DateAdded:     "2023-12-18",
	},
	{
		ID:          6,
		Title:       "Charcoal Purifying Face Mask",
		Description: "Charcoal Purifying Face Mask from our skincare collection, chosen by our boutique team.",
		Price:       "$54.99",
		Image:       "/images/products/charcoal-purifying-face-mask.jpg",
		Alt:         "Charcoal Purifying Face Mask",
		Rating:      4.8,
		Reviews:     298,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Cruelty free", "Fragrance free", "Dermatologist tested"},
		Benefits:    []string{"Restores natural glow", "Deeply hydrates", "Protects all day"},
		Category:    "Skincare",
		DateAdded:   "2024-01-04",
	},
	{
		ID:            7,
		Title:         "Green Tea Toning Mist",
		Description:   "Green Tea Toning Mist from our skincare collection, chosen by our boutique team.",
		Price:         "$54.99",
		OriginalPrice: "$64.99",
		Image:         "/images/products/green-tea-toning-mist.jpg",
		Alt:           "Green Tea Toning Mist",
		Rating:        4.6,
		Reviews:       64,
		InStock:       false,
		IsPopular:     true,
		IsNew:         true,
		CategoryID:    models.CategorySkincare,
		Features:      []string{"Paraben free", "Quick absorbing", "Dermatologist tested"},
		Benefits:      []string{"Deeply hydrates", "Restores natural glow", "Reduces fine lines"},
		Category:      "Skincare",
		DateAdded:     "2023-11-22",
	},
	{
		ID:          8,
		Title:       "Collagen Firming Eye Cream",
		Description: "Collagen Firming Eye Cream from our skincare collection, chosen by our boutique team.",
		Price:       "$19.99",
		Image:       "/images/products/collagen-firming-eye-cream.jpg",
		Alt:         "Collagen Firming Eye Cream",
		Rating:      5.0,
		Reviews:     198,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Fragrance free", "Cruelty free", "Quick absorbing"},
		Benefits:    []string{"Soothes irritation", "Deeply hydrates", "Restores natural glow"},
		Category:    "Skincare",
		DateAdded:   "2024-01-21",
	},
	{
		ID:          9,
		Title:       "Argan Oil Facial Elixir",
		Description: "Argan Oil Facial Elixir from our skincare collection, chosen by our boutique team.",
		Price:       "$17.99",
		Image:       "/images/products/argan-oil-facial-elixir.jpg",
		Alt:         "Argan Oil Facial Elixir",
		Rating:      4.7,
		Reviews:     257,
		InStock:     true,
		IsPopular:   true,
		IsNew:       true,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Quick absorbing", "Paraben free", "Suitable for all skin types"},
		Benefits:    []string{"Protects all day", "Evens skin tone", "Deeply hydrates"},
		Category:    "Skincare",
		DateAdded:   "2023-11-17",
	},
	{
		ID:            10,
		Title:         "Cucumber Soothing Gel Mask",
		Description:   "Cucumber Soothing Gel Mask from our skincare collection, chosen by our boutique team.",
		Price:         "$64.99",
		OriginalPrice: "$69.99",
		Image:         "/images/products/cucumber-soothing-gel-mask.jpg",
		Alt:           "Cucumber Soothing Gel Mask",
		Rating:        4.7,
		Reviews:       145,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategorySkincare,
		Features:      []string{"Suitable for all skin types", "Quick absorbing", "Paraben free"},
		Benefits:      []string{"Protects all day", "Restores natural glow", "Evens skin tone"},
		Category:      "Skincare",
		DateAdded:     "2023-11-25",
	},
	{
		ID:          11,
		Title:       "SPF 30 Daily Defense Lotion",
		Description: "SPF 30 Daily Defense Lotion from our skincare collection, chosen by our boutique team.",
		Price:       "$27.99",
		Image:       "/images/products/spf-30-daily-defense-lotion.jpg",
		Alt:         "SPF 30 Daily Defense Lotion",
		Rating:      4.7,
		Reviews:     128,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategorySkincare,
		Features:    []string{"Dermatologist tested", "Paraben free", "Fragrance free"},
		Benefits:    []string{"Soothes irritation", "Restores natural glow", "Protects all day"},
		Category:    "Skincare",
		DateAdded:   "2023-11-24",
	},
	// Perfumes
	{
		ID:          12,
		Title:       "Midnight Jasmine Eau de Parfum",
		Description: "Midnight Jasmine Eau de Parfum from our perfumes collection, chosen by our boutique team.",
		Price:       "$54.99",
		Image:       "/images/products/midnight-jasmine-eau-de-parfum.jpg",
		Alt:         "Midnight Jasmine Eau de Parfum",
		Rating:      4.7,
		Reviews:     190,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Hand blended notes", "Travel friendly size", "Layerable scent"},
		Benefits:    []string{"Perfect for evenings", "Boosts confidence", "Fresh all-day scent"},
		Category:    "Perfumes",
		DateAdded:   "2023-12-11",
	},
	{
		ID:          13,
		Title:       "Amber Oud Signature Scent",
		Description: "Amber Oud Signature Scent from our perfumes collection, chosen by our boutique team.",
		Price:       "$9.99",
		Image:       "/images/products/amber-oud-signature-scent.jpg",
		Alt:         "Amber Oud Signature Scent",
		Rating:      4.6,
		Reviews:     55,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Layerable scent", "Hand blended notes", "Travel friendly size"},
		Benefits:    []string{"Boosts confidence", "Fresh all-day scent", "Perfect for evenings"},
		Category:    "Perfumes",
		DateAdded:   "2023-12-04",
	},
	{
		ID:          14,
		Title:       "Citrus Blossom Body Mist",
		Description: "Citrus Blossom Body Mist from our perfumes collection, chosen by our boutique team.",
		Price:       "$14.99",
		Image:       "/images/products/citrus-blossom-body-mist.jpg",
		Alt:         "Citrus Blossom Body Mist",
		Rating:      5.0,
		Reviews:     214,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Hand blended notes", "Layerable scent", "Alcohol free option"},
		Benefits:    []string{"Leaves a memorable trail", "Boosts confidence", "Fresh all-day scent"},
		Category:    "Perfumes",
		DateAdded:   "2023-12-02",
	},
	{
		ID:          15,
		Title:       "Velvet Rose Eau de Toilette",
		Description: "Velvet Rose Eau de Toilette from our perfumes collection, chosen by our boutique team.",
		Price:       "$19.99",
		Image:       "/images/products/velvet-rose-eau-de-toilette.jpg",
		Alt:         "Velvet Rose Eau de Toilette",
		Rating:      4.6,
		Reviews:     254,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Hand blended notes", "Long lasting wear", "Alcohol free option"},
		Benefits:    []string{"Great for gifting", "Leaves a memorable trail", "Boosts confidence"},
		Category:    "Perfumes",
		DateAdded:   "2024-01-06",
	},
	{
		ID:          16,
		Title:       "Sandalwood Noir Cologne",
		Description: "Sandalwood Noir Cologne from our perfumes collection, chosen by our boutique team.",
		Price:       "$49.99",
		Image:       "/images/products/sandalwood-noir-cologne.jpg",
		Alt:         "Sandalwood Noir Cologne",
		Rating:      4.1,
		Reviews:     120,
		InStock:     false,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Alcohol free option", "Elegant glass bottle", "Layerable scent"},
		Benefits:    []string{"Ideal signature scent", "Fresh all-day scent", "Boosts confidence"},
		Category:    "Perfumes",
		DateAdded:   "2023-12-03",
	},
	{
		ID:          17,
		Title:       "Vanilla Orchid Perfume Oil",
		Description: "Vanilla Orchid Perfume Oil from our perfumes collection, chosen by our boutique team.",
		Price:       "$12.99",
		Image:       "/images/products/vanilla-orchid-perfume-oil.jpg",
		Alt:         "Vanilla Orchid Perfume Oil",
		Rating:      4.3,
		Reviews:     246,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Alcohol free option", "Hand blended notes", "Layerable scent"},
		Benefits:    []string{"Ideal signature scent", "Great for gifting", "Leaves a memorable trail"},
		Category:    "Perfumes",
		DateAdded:   "2023-11-21",
	},
	{
		ID:          18,
		Title:       "Ocean Breeze Fresh Spray",
		Description: "Ocean Breeze Fresh Spray from our perfumes collection, chosen by our boutique team.",
		Price:       "$54.99",
		Image:       "/images/products/ocean-breeze-fresh-spray.jpg",
		Alt:         "Ocean Breeze Fresh Spray",
		Rating:      4.6,
		Reviews:     88,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Alcohol free option", "Long lasting wear", "Elegant glass bottle"},
		Benefits:    []string{"Great for gifting", "Ideal signature scent", "Fresh all-day scent"},
		Category:    "Perfumes",
		DateAdded:   "2023-12-16",
	},
	{
		ID:          19,
		Title:       "White Musk Classic Parfum",
		Description: "White Musk Classic Parfum from our perfumes collection, chosen by our boutique team.",
		Price:       "$17.99",
		Image:       "/images/products/white-musk-classic-parfum.jpg",
		Alt:         "White Musk Classic Parfum",
		Rating:      4.0,
		Reviews:     109,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Alcohol free option", "Long lasting wear", "Layerable scent"},
		Benefits:    []string{"Fresh all-day scent", "Perfect for evenings", "Boosts confidence"},
		Category:    "Perfumes",
		DateAdded:   "2023-11-11",
	},
	{
		ID:          20,
		Title:       "Spiced Bergamot Cologne",
		Description: "Spiced Bergamot Cologne from our perfumes collection, chosen by our boutique team.",
		Price:       "$29.99",
		Image:       "/images/products/spiced-bergamot-cologne.jpg",
		Alt:         "Spiced Bergamot Cologne",
		Rating:      4.5,
		Reviews:     256,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Elegant glass bottle", "Alcohol free option", "Hand blended notes"},
		Benefits:    []string{"Fresh all-day scent", "Boosts confidence", "Great for gifting"},
		Category:    "Perfumes",
		DateAdded:   "2023-11-14",
	},
	{
		ID:          21,
		Title:       "Peony Dream Eau de Parfum",
		Description: "Peony Dream Eau de Parfum from our perfumes collection, chosen by our boutique team.",
		Price:       "$17.99",
		Image:       "/images/products/peony-dream-eau-de-parfum.jpg",
		Alt:         "Peony Dream Eau de Parfum",
		Rating:      4.2,
		Reviews:     135,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryPerfumes,
		Features:    []string{"Long lasting wear", "Hand blended notes", "Elegant glass bottle"},
		Benefits:    []string{"Boosts confidence", "Perfect for evenings", "Great for gifting"},
		Category:    "Perfumes",
		DateAdded:   "2023-12-01",
	},
	{
		ID:            22,
		Title:         "Golden Saffron Attar",
		Description:   "Golden Saffron Attar from our perfumes collection, chosen by our boutique team.",
		Price:         "$54.99",
		OriginalPrice: "$59.99",
		Image:         "/images/products/golden-saffron-attar.jpg",
		Alt:           "Golden Saffron Attar",
		Rating:        4.3,
		Reviews:       261,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryPerfumes,
		Features:      []string{"Layerable scent", "Travel friendly size", "Alcohol free option"},
		Benefits:      []string{"Perfect for evenings", "Fresh all-day scent", "Boosts confidence"},
		Category:      "Perfumes",
		DateAdded:     "2024-01-05",
	},
	// Makeup
	{
		ID:          23,
		Title:       "Silk Finish Liquid Foundation",
		Description: "Silk Finish Liquid Foundation from our makeup collection, chosen by our boutique team.",
		Price:       "$39.99",
		Image:       "/images/products/silk-finish-liquid-foundation.jpg",
		Alt:         "Silk Finish Liquid Foundation",
		Rating:      4.7,
		Reviews:     21,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryMakeup,
		Features:    []string{"Cruelty free", "Enriched with vitamin E", "All day wear"},
		Benefits:    []string{"No touch-ups needed", "Flawless finish", "Photo ready look"},
		Category:    "Makeup",
		DateAdded:   "2023-12-05",
	},
	{
		ID:          24,
		Title:       "Velvet Matte Lipstick Set",
		Description: "Velvet Matte Lipstick Set from our makeup collection, chosen by our boutique team.",
		Price:       "$27.99",
		Image:       "/images/products/velvet-matte-lipstick-set.jpg",
		Alt:         "Velvet Matte Lipstick Set",
		Rating:      4.0,
		Reviews:     147,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryMakeup,
		Features:    []string{"Buildable coverage", "Cruelty free", "Enriched with vitamin E"},
		Benefits:    []string{"Enhances natural beauty", "Saves time each morning", "Photo ready look"},
		Category:    "Makeup",
		DateAdded:   "2023-12-20",
	},
	{
		ID:            25,
		Title:         "Waterproof Precision Eyeliner",
		Description:   "Waterproof Precision Eyeliner from our makeup collection, chosen by our boutique team.",
		Price:         "$34.99",
		OriginalPrice: "$39.99",
		Image:         "/images/products/waterproof-precision-eyeliner.jpg",
		Alt:           "Waterproof Precision Eyeliner",
		Rating:        4.8,
		Reviews:       105,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Blendable formula", "Smudge proof", "Enriched with vitamin E"},
		Benefits:      []string{"Flawless finish", "No touch-ups needed", "Saves time each morning"},
		Category:      "Makeup",
		DateAdded:     "2023-11-02",
	},
	{
		ID:            26,
		Title:         "Radiant Glow Highlighter Palette",
		Description:   "Radiant Glow Highlighter Palette from our makeup collection, chosen by our boutique team.",
		Price:         "$14.99",
		OriginalPrice: "$19.99",
		Image:         "/images/products/radiant-glow-highlighter-palette.jpg",
		Alt:           "Radiant Glow Highlighter Palette",
		Rating:        4.4,
		Reviews:       185,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"All day wear", "Buildable coverage", "Smudge proof"},
		Benefits:      []string{"No touch-ups needed", "Saves time each morning", "Flawless finish"},
		Category:      "Makeup",
		DateAdded:     "2023-12-12",
	},
	{
		ID:            27,
		Title:         "Volumizing Lash Mascara",
		Description:   "Volumizing Lash Mascara from our makeup collection, chosen by our boutique team.",
		Price:         "$22.99",
		OriginalPrice: "$30.99",
		Image:         "/images/products/volumizing-lash-mascara.jpg",
		Alt:           "Volumizing Lash Mascara",
		Rating:        4.1,
		Reviews:       171,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Cruelty free", "All day wear", "Buildable coverage"},
		Benefits:      []string{"Comfortable to wear", "Photo ready look", "Flawless finish"},
		Category:      "Makeup",
		DateAdded:     "2023-12-15",
	},
	{
		ID:            28,
		Title:         "Soft Blush Duo Compact",
		Description:   "Soft Blush Duo Compact from our makeup collection, chosen by our boutique team.",
		Price:         "$29.99",
		OriginalPrice: "$34.99",
		Image:         "/images/products/soft-blush-duo-compact.jpg",
		Alt:           "Soft Blush Duo Compact",
		Rating:        4.7,
		Reviews:       294,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Cruelty free", "Smudge proof", "Blendable formula"},
		Benefits:      []string{"Photo ready look", "Enhances natural beauty", "No touch-ups needed"},
		Category:      "Makeup",
		DateAdded:     "2023-11-23",
	},
	{
		ID:          29,
		Title:       "Nude Tones Eyeshadow Palette",
		Description: "Nude Tones Eyeshadow Palette from our makeup collection, chosen by our boutique team.",
		Price:       "$64.99",
		Image:       "/images/products/nude-tones-eyeshadow-palette.jpg",
		Alt:         "Nude Tones Eyeshadow Palette",
		Rating:      4.1,
		Reviews:     129,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryMakeup,
		Features:    []string{"Blendable formula", "Buildable coverage", "Cruelty free"},
		Benefits:    []string{"Comfortable to wear", "Flawless finish", "Saves time each morning"},
		Category:    "Makeup",
		DateAdded:   "2023-11-18",
	},
	{
		ID:            30,
		Title:         "Long-Wear Brow Pencil",
		Description:   "Long-Wear Brow Pencil from our makeup collection, chosen by our boutique team.",
		Price:         "$9.99",
		OriginalPrice: "$19.99",
		Image:         "/images/products/long-wear-brow-pencil.jpg",
		Alt:           "Long-Wear Brow Pencil",
		Rating:        4.4,
		Reviews:       40,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Blendable formula", "Enriched with vitamin E", "Buildable coverage"},
		Benefits:      []string{"Photo ready look", "Comfortable to wear", "Flawless finish"},
		Category:      "Makeup",
		DateAdded:     "2023-12-17",
	},
	{
		ID:            31,
		Title:         "Dewy Setting Spray",
		Description:   "Dewy Setting Spray from our makeup collection, chosen by our boutique team.",
		Price:         "$54.99",
		OriginalPrice: "$64.99",
		Image:         "/images/products/dewy-setting-spray.jpg",
		Alt:           "Dewy Setting Spray",
		Rating:        4.4,
		Reviews:       146,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Enriched with vitamin E", "Buildable coverage", "Smudge proof"},
		Benefits:      []string{"Comfortable to wear", "Saves time each morning", "Photo ready look"},
		Category:      "Makeup",
		DateAdded:     "2023-12-06",
	},
	{
		ID:            32,
		Title:         "Creamy Concealer Stick",
		Description:   "Creamy Concealer Stick from our makeup collection, chosen by our boutique team.",
		Price:         "$22.99",
		OriginalPrice: "$37.99",
		Image:         "/images/products/creamy-concealer-stick.jpg",
		Alt:           "Creamy Concealer Stick",
		Rating:        4.0,
		Reviews:       154,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Smudge proof", "Blendable formula", "Enriched with vitamin E"},
		Benefits:      []string{"Flawless finish", "Saves time each morning", "Enhances natural beauty"},
		Category:      "Makeup",
		DateAdded:     "2024-01-15",
	},
	{
		ID:            33,
		Title:         "Shimmer Lip Gloss Trio",
		Description:   "Shimmer Lip Gloss Trio from our makeup collection, chosen by our boutique team.",
		Price:         "$89.99",
		OriginalPrice: "$94.99",
		Image:         "/images/products/shimmer-lip-gloss-trio.jpg",
		Alt:           "Shimmer Lip Gloss Trio",
		Rating:        4.2,
		Reviews:       131,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryMakeup,
		Features:      []string{"Buildable coverage", "All day wear", "Cruelty free"},
		Benefits:      []string{"Comfortable to wear", "Enhances natural beauty", "Saves time each morning"},
		Category:      "Makeup",
		DateAdded:     "2024-01-18",
	},
	// Bath & Body
	{
		ID:          34,
		Title:       "Lavender Relaxing Bath Salts",
		Description: "Lavender Relaxing Bath Salts from our bath & body collection, chosen by our boutique team.",
		Price:       "$32.99",
		Image:       "/images/products/lavender-relaxing-bath-salts.jpg",
		Alt:         "Lavender Relaxing Bath Salts",
		Rating:      4.6,
		Reviews:     34,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Handmade in small batches", "Plastic free packaging", "Rich creamy lather"},
		Benefits:    []string{"Refreshes tired skin", "Calms the senses", "Melts away stress"},
		Category:    "Bath & Body",
		DateAdded:   "2024-01-12",
	},
	{
		ID:          35,
		Title:       "Coconut Milk Body Wash",
		Description: "Coconut Milk Body Wash from our bath & body collection, chosen by our boutique team.",
		Price:       "$89.99",
		Image:       "/images/products/coconut-milk-body-wash.jpg",
		Alt:         "Coconut Milk Body Wash",
		Rating:      4.7,
		Reviews:     129,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Natural ingredients", "Handmade in small batches", "Plastic free packaging"},
		Benefits:    []string{"Refreshes tired skin", "Melts away stress", "Calms the senses"},
		Category:    "Bath & Body",
		DateAdded:   "2024-01-20",
	},
	{
		ID:          36,
		Title:       "Exfoliating Coffee Body Scrub",
		Description: "Exfoliating Coffee Body Scrub from our bath & body collection, chosen by our boutique team.",
		Price:       "$79.99",
		Image:       "/images/products/exfoliating-coffee-body-scrub.jpg",
		Alt:         "Exfoliating Coffee Body Scrub",
		Rating:      4.4,
		Reviews:     13,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Plastic free packaging", "Natural ingredients", "Spa quality"},
		Benefits:    []string{"Calms the senses", "Locks in moisture", "Turns bath time into a ritual"},
		Category:    "Bath & Body",
		DateAdded:   "2023-12-26",
	},
	{
		ID:          37,
		Title:       "Rose Petal Bubble Bath",
		Description: "Rose Petal Bubble Bath from our bath & body collection, chosen by our boutique team.",
		Price:       "$14.99",
		Image:       "/images/products/rose-petal-bubble-bath.jpg",
		Alt:         "Rose Petal Bubble Bath",
		Rating:      4.2,
		Reviews:     117,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Handmade in small batches", "Natural ingredients", "Spa quality"},
		Benefits:    []string{"Calms the senses", "Turns bath time into a ritual", "Melts away stress"},
		Category:    "Bath & Body",
		DateAdded:   "2023-12-07",
	},
	{
		ID:            38,
		Title:         "Cocoa Butter Body Lotion",
		Description:   "Cocoa Butter Body Lotion from our bath & body collection, chosen by our boutique team.",
		Price:         "$24.99",
		OriginalPrice: "$32.99",
		Image:         "/images/products/cocoa-butter-body-lotion.jpg",
		Alt:           "Cocoa Butter Body Lotion",
		Rating:        4.3,
		Reviews:       167,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryBathBody,
		Features:      []string{"Handmade in small batches", "Gentle on sensitive skin", "Natural ingredients"},
		Benefits:      []string{"Calms the senses", "Leaves skin silky soft", "Locks in moisture"},
		Category:      "Bath & Body",
		DateAdded:     "2024-01-17",
	},
	{
		ID:          39,
		Title:       "Eucalyptus Shower Steamers",
		Description: "Eucalyptus Shower Steamers from our bath & body collection, chosen by our boutique team.",
		Price:       "$32.99",
		Image:       "/images/products/eucalyptus-shower-steamers.jpg",
		Alt:         "Eucalyptus Shower Steamers",
		Rating:      4.2,
		Reviews:     250,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Rich creamy lather", "Gentle on sensitive skin", "Natural ingredients"},
		Benefits:    []string{"Locks in moisture", "Melts away stress", "Turns bath time into a ritual"},
		Category:    "Bath & Body",
		DateAdded:   "2024-01-07",
	},
	{
		ID:            40,
		Title:         "Honey Oat Soap Bar Set",
		Description:   "Honey Oat Soap Bar Set from our bath & body collection, chosen by our boutique team.",
		Price:         "$54.99",
		OriginalPrice: "$69.99",
		Image:         "/images/products/honey-oat-soap-bar-set.jpg",
		Alt:           "Honey Oat Soap Bar Set",
		Rating:        5.0,
		Reviews:       210,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryBathBody,
		Features:      []string{"Plastic free packaging", "Natural ingredients", "Rich creamy lather"},
		Benefits:      []string{"Calms the senses", "Refreshes tired skin", "Turns bath time into a ritual"},
		Category:      "Bath & Body",
		DateAdded:     "2023-11-19",
	},
	{
		ID:            41,
		Title:         "Mango Body Butter Jar",
		Description:   "Mango Body Butter Jar from our bath & body collection, chosen by our boutique team.",
		Price:         "$39.99",
		OriginalPrice: "$49.99",
		Image:         "/images/products/mango-body-butter-jar.jpg",
		Alt:           "Mango Body Butter Jar",
		Rating:        4.9,
		Reviews:       198,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryBathBody,
		Features:      []string{"Natural ingredients", "Rich creamy lather", "Spa quality"},
		Benefits:      []string{"Locks in moisture", "Calms the senses", "Refreshes tired skin"},
		Category:      "Bath & Body",
		DateAdded:     "2023-11-09",
	},
	{
		ID:          42,
		Title:       "Citrus Sugar Hand Scrub",
		Description: "Citrus Sugar Hand Scrub from our bath & body collection, chosen by our boutique team.",
		Price:       "$32.99",
		Image:       "/images/products/citrus-sugar-hand-scrub.jpg",
		Alt:         "Citrus Sugar Hand Scrub",
		Rating:      4.4,
		Reviews:     204,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Gentle on sensitive skin", "Handmade in small batches", "Natural ingredients"},
		Benefits:    []string{"Leaves skin silky soft", "Melts away stress", "Turns bath time into a ritual"},
		Category:    "Bath & Body",
		DateAdded:   "2024-01-03",
	},
	{
		ID:          43,
		Title:       "Chamomile Sleep Body Oil",
		Description: "Chamomile Sleep Body Oil from our bath & body collection, chosen by our boutique team.",
		Price:       "$29.99",
		Image:       "/images/products/chamomile-sleep-body-oil.jpg",
		Alt:         "Chamomile Sleep Body Oil",
		Rating:      4.3,
		Reviews:     51,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Natural ingredients", "Gentle on sensitive skin", "Spa quality"},
		Benefits:    []string{"Melts away stress", "Turns bath time into a ritual", "Leaves skin silky soft"},
		Category:    "Bath & Body",
		DateAdded:   "2023-11-03",
	},
	{
		ID:          44,
		Title:       "Mint Revive Foot Cream",
		Description: "Mint Revive Foot Cream from our bath & body collection, chosen by our boutique team.",
		Price:       "$27.99",
		Image:       "/images/products/mint-revive-foot-cream.jpg",
		Alt:         "Mint Revive Foot Cream",
		Rating:      4.4,
		Reviews:     173,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryBathBody,
		Features:    []string{"Natural ingredients", "Handmade in small batches", "Rich creamy lather"},
		Benefits:    []string{"Calms the senses", "Melts away stress", "Refreshes tired skin"},
		Category:    "Bath & Body",
		DateAdded:   "2024-01-08",
	},
	// Kids & Gifts
	{
		ID:          45,
		Title:       "Plush Teddy Bear Gift Box",
		Description: "Plush Teddy Bear Gift Box from our kids & gifts collection, chosen by our boutique team.",
		Price:       "$49.99",
		Image:       "/images/products/plush-teddy-bear-gift-box.jpg",
		Alt:         "Plush Teddy Bear Gift Box",
		Rating:      4.7,
		Reviews:     158,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryKidsGifts,
		Features:    []string{"Gift ready packaging", "Easy to clean", "Ages 3 and up"},
		Benefits:    []string{"Sparks imagination", "Brings big smiles", "Builds fine motor skills"},
		Category:    "Kids & Gifts",
		DateAdded:   "2023-12-21",
	},
	{
		ID:          46,
		Title:       "Rainbow Art Supplies Kit",
		Description: "Rainbow Art Supplies Kit from our kids & gifts collection, chosen by our boutique team.",
		Price:       "$29.99",
		Image:       "/images/products/rainbow-art-supplies-kit.jpg",
		Alt:         "Rainbow Art Supplies Kit",
		Rating:      5.0,
		Reviews:     145,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryKidsGifts,
		Features:    []string{"Durable construction", "Easy to clean", "Child safe materials"},
		Benefits:    []string{"Makes bedtime easier", "Brings big smiles", "Hours of screen-free play"},
		Category:    "Kids & Gifts",
		DateAdded:   "2023-11-26",
	},
	{
		ID:          47,
		Title:       "Wooden Building Blocks Set",
		Description: "Wooden Building Blocks Set from our kids & gifts collection, chosen by our boutique team.",
		Price:       "$24.99",
		Image:       "/images/products/wooden-building-blocks-set.jpg",
		Alt:         "Wooden Building Blocks Set",
		Rating:      4.8,
		Reviews:     293,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryKidsGifts,
		Features:    []string{"Easy to clean", "Durable construction", "Gift ready packaging"},
		Benefits:    []string{"Builds fine motor skills", "Makes bedtime easier", "Brings big smiles"},
		Category:    "Kids & Gifts",
		DateAdded:   "2023-12-22",
	},
	{
		ID:            48,
		Title:         "Unicorn Night Light Lamp",
		Description:   "Unicorn Night Light Lamp from our kids & gifts collection, chosen by our boutique team.",
		Price:         "$14.99",
		OriginalPrice: "$19.99",
		Image:         "/images/products/unicorn-night-light-lamp.jpg",
		Alt:           "Unicorn Night Light Lamp",
		Rating:        4.3,
		Reviews:       200,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryKidsGifts,
		Features:      []string{"Durable construction", "Easy to clean", "Ages 3 and up"},
		Benefits:      []string{"A gift they will treasure", "Builds fine motor skills", "Makes bedtime easier"},
		Category:      "Kids & Gifts",
		DateAdded:     "2023-12-27",
	},
	{
		ID:            49,
		Title:         "Story Time Book Bundle",
		Description:   "Story Time Book Bundle from our kids & gifts collection, chosen by our boutique team.",
		Price:         "$44.99",
		OriginalPrice: "$49.99",
		Image:         "/images/products/story-time-book-bundle.jpg",
		Alt:           "Story Time Book Bundle",
		Rating:        4.4,
		Reviews:       306,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryKidsGifts,
		Features:      []string{"Durable construction", "Gift ready packaging", "Child safe materials"},
		Benefits:      []string{"Sparks imagination", "Makes bedtime easier", "A gift they will treasure"},
		Category:      "Kids & Gifts",
		DateAdded:     "2024-01-01",
	},
	{
		ID:          50,
		Title:       "Junior Puzzle Adventure Pack",
		Description: "Junior Puzzle Adventure Pack from our kids & gifts collection, chosen by our boutique team.",
		Price:       "$44.99",
		Image:       "/images/products/junior-puzzle-adventure-pack.jpg",
		Alt:         "Junior Puzzle Adventure Pack",
		Rating:      4.4,
		Reviews:     171,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategoryKidsGifts,
		Features:    []string{"Child safe materials", "Easy to clean", "Ages 3 and up"},
		Benefits:    []string{"Builds fine motor skills", "A gift they will treasure", "Hours of screen-free play"},
		Category:    "Kids & Gifts",
		DateAdded:   "2023-12-10",
	},
	{
		ID:          51,
		Title:       "Bath Time Toy Collection",
		Description: "Bath Time Toy Collection from our kids & gifts collection, chosen by our boutique team.",
		Price:       "$14.99",
		Image:       "/images/products/bath-time-toy-collection.jpg",
		Alt:         "Bath Time Toy Collection",
		Rating:      4.9,
		Reviews:     282,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryKidsGifts,
		Features:    []string{"Child safe materials", "Gift ready packaging", "Ages 3 and up"},
		Benefits:    []string{"Makes bedtime easier", "Builds fine motor skills", "Hours of screen-free play"},
		Category:    "Kids & Gifts",
		DateAdded:   "2023-12-24",
	},
	{
		ID:            52,
		Title:         "Glitter Hair Accessories Set",
		Description:   "Glitter Hair Accessories Set from our kids & gifts collection, chosen by our boutique team.",
		Price:         "$54.99",
		OriginalPrice: "$59.99",
		Image:         "/images/products/glitter-hair-accessories-set.jpg",
		Alt:           "Glitter Hair Accessories Set",
		Rating:        3.9,
		Reviews:       76,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryKidsGifts,
		Features:      []string{"Encourages creativity", "Gift ready packaging", "Durable construction"},
		Benefits:      []string{"Builds fine motor skills", "A gift they will treasure", "Hours of screen-free play"},
		Category:      "Kids & Gifts",
		DateAdded:     "2023-12-13",
	},
	{
		ID:            53,
		Title:         "Mini Backpack with Charm",
		Description:   "Mini Backpack with Charm from our kids & gifts collection, chosen by our boutique team.",
		Price:         "$17.99",
		OriginalPrice: "$25.99",
		Image:         "/images/products/mini-backpack-with-charm.jpg",
		Alt:           "Mini Backpack with Charm",
		Rating:        4.3,
		Reviews:       126,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryKidsGifts,
		Features:      []string{"Easy to clean", "Encourages creativity", "Ages 3 and up"},
		Benefits:      []string{"Brings big smiles", "Makes bedtime easier", "A gift they will treasure"},
		Category:      "Kids & Gifts",
		DateAdded:     "2023-11-15",
	},
	{
		ID:            54,
		Title:         "Colouring Champion Pencil Case",
		Description:   "Colouring Champion Pencil Case from our kids & gifts collection, chosen by our boutique team.",
		Price:         "$64.99",
		OriginalPrice: "$72.99",
		Image:         "/images/products/colouring-champion-pencil-case.jpg",
		Alt:           "Colouring Champion Pencil Case",
		Rating:        3.9,
		Reviews:       222,
		InStock:       true,
		IsPopular:     false,
		IsNew:         true,
		CategoryID:    models.CategoryKidsGifts,
		Features:      []string{"Easy to clean", "Durable construction", "Child safe materials"},
		Benefits:      []string{"Sparks imagination", "Makes bedtime easier", "A gift they will treasure"},
		Category:      "Kids & Gifts",
		DateAdded:     "2024-01-16",
	},
	{
		ID:            55,
		Title:         "Soft Baby Blanket Gift Set",
		Description:   "Soft Baby Blanket Gift Set from our kids & gifts collection, chosen by our boutique team.",
		Price:         "$39.99",
		OriginalPrice: "$44.99",
		Image:         "/images/products/soft-baby-blanket-gift-set.jpg",
		Alt:           "Soft Baby Blanket Gift Set",
		Rating:        4.7,
		Reviews:       227,
		InStock:       true,
		IsPopular:     false,
		IsNew:         true,
		CategoryID:    models.CategoryKidsGifts,
		Features:      []string{"Encourages creativity", "Ages 3 and up", "Child safe materials"},
		Benefits:      []string{"Makes bedtime easier", "A gift they will treasure", "Brings big smiles"},
		Category:      "Kids & Gifts",
		DateAdded:     "2023-12-09",
	},
	// Gifts
	{
		ID:          56,
		Title:       "Luxury Spa Gift Hamper",
		Description: "Luxury Spa Gift Hamper from our gifts collection, chosen by our boutique team.",
		Price:       "$32.99",
		Image:       "/images/products/luxury-spa-gift-hamper.jpg",
		Alt:         "Luxury Spa Gift Hamper",
		Rating:      4.1,
		Reviews:     250,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Ready to give", "Reusable keepsake box", "Includes gift card"},
		Benefits:    []string{"Feels truly special", "Memorable unboxing", "Shows you care"},
		Category:    "Gifts",
		DateAdded:   "2023-12-25",
	},
	{
		ID:          57,
		Title:       "Scented Candle Trio Box",
		Description: "Scented Candle Trio Box from our gifts collection, chosen by our boutique team.",
		Price:       "$12.99",
		Image:       "/images/products/scented-candle-trio-box.jpg",
		Alt:         "Scented Candle Trio Box",
		Rating:      4.1,
		Reviews:     213,
		InStock:     false,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Reusable keepsake box", "Beautifully wrapped", "Ready to give"},
		Benefits:    []string{"Feels truly special", "Memorable unboxing", "Shows you care"},
		Category:    "Gifts",
		DateAdded:   "2023-11-04",
	},
	{
		ID:          58,
		Title:       "Premium Chocolate Assortment",
		Description: "Premium Chocolate Assortment from our gifts collection, chosen by our boutique team.",
		Price:       "$34.99",
		Image:       "/images/products/premium-chocolate-assortment.jpg",
		Alt:         "Premium Chocolate Assortment",
		Rating:      5.0,
		Reviews:     96,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Premium quality", "Reusable keepsake box", "Beautifully wrapped"},
		Benefits:    []string{"Suits every occasion", "Memorable unboxing", "Loved by everyone"},
		Category:    "Gifts",
		DateAdded:   "2024-01-11",
	},
	{
		ID:          59,
		Title:       "Silk Scarf Gift Edition",
		Description: "Silk Scarf Gift Edition from our gifts collection, chosen by our boutique team.",
		Price:       "$34.99",
		Image:       "/images/products/silk-scarf-gift-edition.jpg",
		Alt:         "Silk Scarf Gift Edition",
		Rating:      4.0,
		Reviews:     52,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Beautifully wrapped", "Ready to give", "Includes gift card"},
		Benefits:    []string{"Memorable unboxing", "Suits every occasion", "Shows you care"},
		Category:    "Gifts",
		DateAdded:   "2023-12-08",
	},
	{
		ID:            60,
		Title:         "Crystal Jewellery Box",
		Description:   "Crystal Jewellery Box from our gifts collection, chosen by our boutique team.",
		Price:         "$49.99",
		OriginalPrice: "$64.99",
		Image:         "/images/products/crystal-jewellery-box.jpg",
		Alt:           "Crystal Jewellery Box",
		Rating:        4.1,
		Reviews:       289,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryGifts,
		Features:      []string{"Reusable keepsake box", "Beautifully wrapped", "Premium quality"},
		Benefits:      []string{"Feels truly special", "Memorable unboxing", "Takes the stress out of gifting"},
		Category:      "Gifts",
		DateAdded:     "2023-11-06",
	},
	{
		ID:            61,
		Title:         "Gourmet Tea Sampler Set",
		Description:   "Gourmet Tea Sampler Set from our gifts collection, chosen by our boutique team.",
		Price:         "$44.99",
		OriginalPrice: "$49.99",
		Image:         "/images/products/gourmet-tea-sampler-set.jpg",
		Alt:           "Gourmet Tea Sampler Set",
		Rating:        4.8,
		Reviews:       43,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryGifts,
		Features:      []string{"Curated selection", "Premium quality", "Ready to give"},
		Benefits:      []string{"Suits every occasion", "Shows you care", "Takes the stress out of gifting"},
		Category:      "Gifts",
		DateAdded:     "2023-11-16",
	},
	{
		ID:          62,
		Title:       "Personalised Photo Frame",
		Description: "Personalised Photo Frame from our gifts collection, chosen by our boutique team.",
		Price:       "$29.99",
		Image:       "/images/products/personalised-photo-frame.jpg",
		Alt:         "Personalised Photo Frame",
		Rating:      4.7,
		Reviews:     153,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Premium quality", "Beautifully wrapped", "Ready to give"},
		Benefits:    []string{"Feels truly special", "Takes the stress out of gifting", "Memorable unboxing"},
		Category:    "Gifts",
		DateAdded:   "2024-01-10",
	},
	{
		ID:          63,
		Title:       "Celebration Gift Basket",
		Description: "Celebration Gift Basket from our gifts collection, chosen by our boutique team.",
		Price:       "$54.99",
		Image:       "/images/products/celebration-gift-basket.jpg",
		Alt:         "Celebration Gift Basket",
		Rating:      4.3,
		Reviews:     140,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Reusable keepsake box", "Includes gift card", "Beautifully wrapped"},
		Benefits:    []string{"Loved by everyone", "Suits every occasion", "Feels truly special"},
		Category:    "Gifts",
		DateAdded:   "2023-11-27",
	},
	{
		ID:          64,
		Title:       "Leather Journal and Pen Set",
		Description: "Leather Journal and Pen Set from our gifts collection, chosen by our boutique team.",
		Price:       "$27.99",
		Image:       "/images/products/leather-journal-and-pen-set.jpg",
		Alt:         "Leather Journal and Pen Set",
		Rating:      4.3,
		Reviews:     197,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Reusable keepsake box", "Includes gift card", "Ready to give"},
		Benefits:    []string{"Memorable unboxing", "Takes the stress out of gifting", "Shows you care"},
		Category:    "Gifts",
		DateAdded:   "2023-12-28",
	},
	{
		ID:          65,
		Title:       "Aromatherapy Starter Kit",
		Description: "Aromatherapy Starter Kit from our gifts collection, chosen by our boutique team.",
		Price:       "$59.99",
		Image:       "/images/products/aromatherapy-starter-kit.jpg",
		Alt:         "Aromatherapy Starter Kit",
		Rating:      4.3,
		Reviews:     230,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryGifts,
		Features:    []string{"Beautifully wrapped", "Includes gift card", "Premium quality"},
		Benefits:    []string{"Memorable unboxing", "Loved by everyone", "Shows you care"},
		Category:    "Gifts",
		DateAdded:   "2023-11-12",
	},
	{
		ID:            66,
		Title:         "Mother's Day Pamper Box",
		Description:   "Mother's Day Pamper Box from our gifts collection, chosen by our boutique team.",
		Price:         "$22.99",
		OriginalPrice: "$37.99",
		Image:         "/images/products/mothers-day-pamper-box.jpg",
		Alt:           "Mother's Day Pamper Box",
		Rating:        4.4,
		Reviews:       132,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryGifts,
		Features:      []string{"Beautifully wrapped", "Curated selection", "Ready to give"},
		Benefits:      []string{"Suits every occasion", "Shows you care", "Loved by everyone"},
		Category:      "Gifts",
		DateAdded:     "2023-11-05",
	},
	// Home Decor
	{
		ID:            67,
		Title:         "Ceramic Vase Duo Set",
		Description:   "Ceramic Vase Duo Set from our home decor collection, chosen by our boutique team.",
		Price:         "$39.99",
		OriginalPrice: "$49.99",
		Image:         "/images/products/ceramic-vase-duo-set.jpg",
		Alt:           "Ceramic Vase Duo Set",
		Rating:        4.1,
		Reviews:       138,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryHomeDecor,
		Features:      []string{"Statement piece", "Easy to style", "Durable materials"},
		Benefits:      []string{"Instantly lifts a room", "Effortless elegance", "Conversation starter"},
		Category:      "Home Decor",
		DateAdded:     "2023-11-28",
	},
	{
		ID:          68,
		Title:       "Moroccan Lantern Candle Holder",
		Description: "Moroccan Lantern Candle Holder from our home decor collection, chosen by our boutique team.",
		Price:       "$27.99",
		Image:       "/images/products/moroccan-lantern-candle-holder.jpg",
		Alt:         "Moroccan Lantern Candle Holder",
		Rating:      4.2,
		Reviews:     63,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Neutral palette", "Easy to style", "Fits any room"},
		Benefits:    []string{"Conversation starter", "Instantly lifts a room", "Ties the look together"},
		Category:    "Home Decor",
		DateAdded:   "2024-01-09",
	},
	{
		ID:            69,
		Title:         "Woven Cotton Throw Blanket",
		Description:   "Woven Cotton Throw Blanket from our home decor collection, chosen by our boutique team.",
		Price:         "$27.99",
		OriginalPrice: "$35.99",
		Image:         "/images/products/woven-cotton-throw-blanket.jpg",
		Alt:           "Woven Cotton Throw Blanket",
		Rating:        4.6,
		Reviews:       310,
		InStock:       true,
		IsPopular:     true,
		IsNew:         false,
		CategoryID:    models.CategoryHomeDecor,
		Features:      []string{"Easy to style", "Neutral palette", "Durable materials"},
		Benefits:      []string{"Ties the look together", "Instantly lifts a room", "Brings warmth home"},
		Category:      "Home Decor",
		DateAdded:     "2023-11-08",
	},
	{
		ID:            70,
		Title:         "Gold Accent Wall Mirror",
		Description:   "Gold Accent Wall Mirror from our home decor collection, chosen by our boutique team.",
		Price:         "$39.99",
		OriginalPrice: "$49.99",
		Image:         "/images/products/gold-accent-wall-mirror.jpg",
		Alt:           "Gold Accent Wall Mirror",
		Rating:        4.3,
		Reviews:       34,
		InStock:       true,
		IsPopular:     false,
		IsNew:         false,
		CategoryID:    models.CategoryHomeDecor,
		Features:      []string{"Fits any room", "Easy to style", "Handcrafted finish"},
		Benefits:      []string{"Conversation starter", "Effortless elegance", "Ties the look together"},
		Category:      "Home Decor",
		DateAdded:     "2023-12-19",
	},
	{
		ID:          71,
		Title:       "Dried Flower Arrangement",
		Description: "Dried Flower Arrangement from our home decor collection, chosen by our boutique team.",
		Price:       "$22.99",
		Image:       "/images/products/dried-flower-arrangement.jpg",
		Alt:         "Dried Flower Arrangement",
		Rating:      4.0,
		Reviews:     28,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Handcrafted finish", "Neutral palette", "Easy to style"},
		Benefits:    []string{"Ties the look together", "Brings warmth home", "Instantly lifts a room"},
		Category:    "Home Decor",
		DateAdded:   "2023-11-13",
	},
	{
		ID:          72,
		Title:       "Marble Trinket Tray",
		Description: "Marble Trinket Tray from our home decor collection, chosen by our boutique team.",
		Price:       "$22.99",
		Image:       "/images/products/marble-trinket-tray.jpg",
		Alt:         "Marble Trinket Tray",
		Rating:      4.2,
		Reviews:     157,
		InStock:     true,
		IsPopular:   false,
		IsNew:       true,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Fits any room", "Statement piece", "Durable materials"},
		Benefits:    []string{"Effortless elegance", "Ties the look together", "Instantly lifts a room"},
		Category:    "Home Decor",
		DateAdded:   "2024-01-13",
	},
	{
		ID:          73,
		Title:       "Velvet Cushion Cover Pair",
		Description: "Velvet Cushion Cover Pair from our home decor collection, chosen by our boutique team.",
		Price:       "$39.99",
		Image:       "/images/products/velvet-cushion-cover-pair.jpg",
		Alt:         "Velvet Cushion Cover Pair",
		Rating:      4.3,
		Reviews:     219,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Neutral palette", "Handcrafted finish", "Statement piece"},
		Benefits:    []string{"Effortless elegance", "Brings warmth home", "Conversation starter"},
		Category:    "Home Decor",
		DateAdded:   "2023-11-10",
	},
	{
		ID:          74,
		Title:       "Glass Terrarium Centerpiece",
		Description: "Glass Terrarium Centerpiece from our home decor collection, chosen by our boutique team.",
		Price:       "$54.99",
		Image:       "/images/products/glass-terrarium-centerpiece.jpg",
		Alt:         "Glass Terrarium Centerpiece",
		Rating:      4.0,
		Reviews:     38,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Handcrafted finish", "Statement piece", "Durable materials"},
		Benefits:    []string{"Ties the look together", "Brings warmth home", "Creates a cozy atmosphere"},
		Category:    "Home Decor",
		DateAdded:   "2023-11-07",
	},
	{
		ID:          75,
		Title:       "Handwoven Storage Baskets",
		Description: "Handwoven Storage Baskets from our home decor collection, chosen by our boutique team.",
		Price:       "$19.99",
		Image:       "/images/products/handwoven-storage-baskets.jpg",
		Alt:         "Handwoven Storage Baskets",
		Rating:      4.1,
		Reviews:     99,
		InStock:     true,
		IsPopular:   true,
		IsNew:       false,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Easy to style", "Durable materials", "Fits any room"},
		Benefits:    []string{"Instantly lifts a room", "Effortless elegance", "Conversation starter"},
		Category:    "Home Decor",
		DateAdded:   "2023-12-23",
	},
	{
		ID:          76,
		Title:       "Botanical Print Wall Set",
		Description: "Botanical Print Wall Set from our home decor collection, chosen by our boutique team.",
		Price:       "$12.99",
		Image:       "/images/products/botanical-print-wall-set.jpg",
		Alt:         "Botanical Print Wall Set",
		Rating:      4.6,
		Reviews:     56,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Easy to style", "Fits any room", "Neutral palette"},
		Benefits:    []string{"Brings warmth home", "Creates a cozy atmosphere", "Effortless elegance"},
		Category:    "Home Decor",
		DateAdded:   "2023-11-20",
	},
	{
		ID:          77,
		Title:       "Reed Diffuser Collection",
		Description: "Reed Diffuser Collection from our home decor collection, chosen by our boutique team.",
		Price:       "$22.99",
		Image:       "/images/products/reed-diffuser-collection.jpg",
		Alt:         "Reed Diffuser Collection",
		Rating:      3.9,
		Reviews:     277,
		InStock:     true,
		IsPopular:   false,
		IsNew:       false,
		CategoryID:  models.CategoryHomeDecor,
		Features:    []string{"Fits any room", "Easy to style", "Handcrafted finish"},
		Benefits:    []string{"Brings warmth home", "Instantly lifts a room", "Conversation starter"},
		Category:    "Home Decor",
		DateAdded:   "2023-12-14",
	},
}

// Defaults returns a fresh copy of the built-in catalog so callers can never
// mutate the ground truth.
func Defaults() []models.Product {
	out := make([]models.Product, len(defaultProducts))
	copy(out, defaultProducts)

	return out
}

// Count reports the size of the built-in catalog.
func Count() int {
	return len(defaultProducts)
}
