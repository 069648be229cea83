package model

import "fmt"

// Category is the closed set of life-status values. The same values are used
// for a user's status and for targeting broadcast messages, so a message sent
// to a category reaches exactly the users whose status matches it.
type Category string

const (
	CategoryEmployed  Category = "employed"
	CategoryGraduated Category = "graduated"
	CategoryPursuing  Category = "pursuing"
)

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{CategoryEmployed, CategoryGraduated, CategoryPursuing}
}

// ParseCategory validates a raw string at the boundary. Unknown values are
// rejected here instead of silently producing empty result sets downstream.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryEmployed, CategoryGraduated, CategoryPursuing:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) String() string { return string(c) }
