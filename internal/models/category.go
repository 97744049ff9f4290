package models

import (
	"errors"
	"strings"
)

// Known category glyph tags. The set is closed; unknown tags resolve to
// IconDefault rather than failing.
const (
	IconCoffee       = "Coffee"
	IconCar          = "Car"
	IconHome         = "Home"
	IconGamepad      = "Gamepad2"
	IconHeart        = "Heart"
	IconBook         = "BookOpen"
	IconSmartphone   = "Smartphone"
	IconShoppingCart = "ShoppingCart"

	IconDefault = IconShoppingCart
)

// ColorDefault is the style token used when a category has no known color
const ColorDefault = "bg-gray-500"

var ErrCategoryNameEmpty = errors.New("category name must not be empty")

// Category represents a named spending category.
// Name doubles as the reference key on expense records; dangling references
// are tolerated and resolved with defaults.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Validate checks that the category carries a usable name
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameEmpty
	}
	return nil
}

// AllIcons returns all valid glyph tags
func AllIcons() []string {
	return []string{
		IconCoffee,
		IconCar,
		IconHome,
		IconGamepad,
		IconHeart,
		IconBook,
		IconSmartphone,
		IconShoppingCart,
	}
}

// IsValidIcon checks if a glyph tag is part of the closed set
func IsValidIcon(icon string) bool {
	for _, valid := range AllIcons() {
		if icon == valid {
			return true
		}
	}
	return false
}

// NormalizeIcon maps unknown glyph tags to the default
func NormalizeIcon(icon string) string {
	if IsValidIcon(icon) {
		return icon
	}
	return IconDefault
}

// DefaultCategories returns the seed set installed on first run
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "餐饮", Icon: IconCoffee, Color: "bg-orange-500"},
		{ID: 2, Name: "交通", Icon: IconCar, Color: "bg-blue-500"},
		{ID: 3, Name: "生活", Icon: IconHome, Color: "bg-green-500"},
		{ID: 4, Name: "娱乐", Icon: IconGamepad, Color: "bg-purple-500"},
		{ID: 5, Name: "医疗", Icon: IconHeart, Color: "bg-red-500"},
		{ID: 6, Name: "学习", Icon: IconBook, Color: "bg-indigo-500"},
		{ID: 7, Name: "数码", Icon: IconSmartphone, Color: "bg-gray-500"},
	}
}
