package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the fixed set of catalog categories. Unknown values are
// rejected at validation time, never silently remapped.
type Category string

const (
	CategorySkincare  Category = "skincare"
	CategoryPerfumes  Category = "perfumes"
	CategoryMakeup    Category = "makeup"
	CategoryBathBody  Category = "bath-body"
	CategoryKidsGifts Category = "kids-gifts"
	CategoryGifts     Category = "gifts"
	CategoryHomeDecor Category = "home-decor"
)

var Categories = []Category{
	CategorySkincare,
	CategoryPerfumes,
	CategoryMakeup,
	CategoryBathBody,
	CategoryKidsGifts,
	CategoryGifts,
	CategoryHomeDecor,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// pricePattern is the only accepted currency format: $<integer>.<2 digits>
var pricePattern = regexp.MustCompile(`^\$[0-9]+\.[0-9]{2}$`)

func IsValidPrice(price string) bool {
	return pricePattern.MatchString(price)
}

// NormalizePrice coerces operator input like "19.99" or "$19.9" into the
// canonical "$19.99" form. It returns an error when the input is not a
// positive decimal amount at all.
func NormalizePrice(raw string) (string, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if trimmed == "" {
		return "", fmt.Errorf("price is empty")
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return "", fmt.Errorf("price %q is not a decimal amount: %w", raw, err)
	}

	if amount.IsNegative() {
		return "", fmt.Errorf("price %q is negative", raw)
	}

	return "$" + amount.StringFixed(2), nil
}

// DiscountPercent computes the rounded sale percentage between an original
// and a current price string. Returns 0 when either price is malformed or no
// discount applies.
func DiscountPercent(originalPrice, price string) int {
	original, err := decimal.NewFromString(strings.TrimPrefix(originalPrice, "$"))
	if err != nil {
		return 0
	}

	current, err := decimal.NewFromString(strings.TrimPrefix(price, "$"))
	if err != nil {
		return 0
	}

	if original.IsZero() || original.LessThanOrEqual(current) {
		return 0
	}

	percent := original.Sub(current).Div(original).Mul(decimal.NewFromInt(100))

	return int(percent.Round(0).IntPart())
}

// Product is the catalog entity. JSON field names match the persisted
// storage format exactly.
type Product struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Alt           string   `json:"alt"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"inStock"`
	IsPopular     bool     `json:"isPopular"`
	IsNew         bool     `json:"isNew"`
	CategoryID    Category `json:"categoryId"`
	Features      []string `json:"features"`
	Benefits      []string `json:"benefits"`
	Category      string   `json:"category"`
	DateAdded     string   `json:"dateAdded"`

	// Bookkeeping fields stamped by the sync engine.
	LastModified   string `json:"lastModified,omitempty"`
	AddedTimestamp int64  `json:"addedTimestamp,omitempty"`

	// Derived on every load from AddedTimestamp, never authoritative when
	// read back from storage.
	IsRecentlyAdded bool `json:"isRecentlyAdded,omitempty"`
}

// Validate enforces the invariants the engine requires before any write.
// Prices must already be well formed here; auto-formatting of operator input
// happens in the request layer, not in the engine.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("description is required")
	}

	if strings.TrimSpace(p.Image) == "" {
		return fmt.Errorf("image is required")
	}

	if !IsValidPrice(p.Price) {
		return fmt.Errorf("price %q does not match the required $0.00 format", p.Price)
	}

	if p.OriginalPrice != "" && !IsValidPrice(p.OriginalPrice) {
		return fmt.Errorf("originalPrice %q does not match the required $0.00 format", p.OriginalPrice)
	}

	if !p.CategoryID.IsValid() {
		return fmt.Errorf("unknown category %q", p.CategoryID)
	}

	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating %.1f is outside 0.0-5.0", p.Rating)
	}

	if p.Reviews < 0 {
		return fmt.Errorf("reviews count must not be negative")
	}

	return nil
}

type CreateProductRequest struct {
	ID            int64    `json:"id,omitempty"`
	Title         string   `json:"title" validate:"required,min=2,max=200"`
	Description   string   `json:"description" validate:"required"`
	Price         string   `json:"price" validate:"required"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Image         string   `json:"image" validate:"required"`
	Alt           string   `json:"alt,omitempty"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
	InStock       bool     `json:"inStock"`
	IsPopular     bool     `json:"isPopular"`
	CategoryID    Category `json:"categoryId" validate:"required"`
	Features      []string `json:"features,omitempty"`
	Benefits      []string `json:"benefits,omitempty"`
	Category      string   `json:"category,omitempty"`
	DateAdded     string   `json:"dateAdded,omitempty"`
}

// ToProduct normalizes operator-entered prices and builds the candidate
// product. The engine still validates the result; this is the only layer
// allowed to auto-correct formatting.
func (r *CreateProductRequest) ToProduct() (*Product, error) {
	price, err := NormalizePrice(r.Price)
	if err != nil {
		return nil, err
	}

	originalPrice := ""
	if strings.TrimSpace(r.OriginalPrice) != "" {
		originalPrice, err = NormalizePrice(r.OriginalPrice)
		if err != nil {
			return nil, err
		}
	}

	return &Product{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Image:         r.Image,
		Alt:           r.Alt,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		InStock:       r.InStock,
		IsPopular:     r.IsPopular,
		CategoryID:    r.CategoryID,
		Features:      r.Features,
		Benefits:      r.Benefits,
		Category:      r.Category,
		DateAdded:     r.DateAdded,
	}, nil
}

type UpdateProductRequest struct {
	Title         string   `json:"title" validate:"required,min=2,max=200"`
	Description   string   `json:"description" validate:"required"`
	Price         string   `json:"price" validate:"required"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Image         string   `json:"image" validate:"required"`
	Alt           string   `json:"alt,omitempty"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
	InStock       bool     `json:"inStock"`
	IsPopular     bool     `json:"isPopular"`
	IsNew         bool     `json:"isNew"`
	CategoryID    Category `json:"categoryId" validate:"required"`
	Features      []string `json:"features,omitempty"`
	Benefits      []string `json:"benefits,omitempty"`
	Category      string   `json:"category,omitempty"`
	DateAdded     string   `json:"dateAdded,omitempty"`
}

func (r *UpdateProductRequest) ToProduct(id int64) (*Product, error) {
	price, err := NormalizePrice(r.Price)
	if err != nil {
		return nil, err
	}

	originalPrice := ""
	if strings.TrimSpace(r.OriginalPrice) != "" {
		originalPrice, err = NormalizePrice(r.OriginalPrice)
		if err != nil {
			return nil, err
		}
	}

	return &Product{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Image:         r.Image,
		Alt:           r.Alt,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		InStock:       r.InStock,
		IsPopular:     r.IsPopular,
		IsNew:         r.IsNew,
		CategoryID:    r.CategoryID,
		Features:      r.Features,
		Benefits:      r.Benefits,
		Category:      r.Category,
		DateAdded:     r.DateAdded,
	}, nil
}
