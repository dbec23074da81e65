package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownCategory(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, IsKnownCategory(category), category)
	}

	assert.False(t, IsKnownCategory(""))
	assert.False(t, IsKnownCategory("belleza"), "matching is exact, not case folded")
	assert.False(t, IsKnownCategory("Astronáutica"))
}

func TestFormatBusinessType(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		subcategory string
		customText  string
		want        string
	}{
		{name: "catalog pair", category: "Comida", subcategory: "Restaurante", want: "Comida: Restaurante"},
		{name: "otro category uses custom text", category: "Otro", customText: " Cerrajería 24h ", want: "Otro: Cerrajería 24h"},
		{name: "otro subcategory uses custom text", category: "Belleza", subcategory: "Otro", customText: "Micropigmentación", want: "Otro: Micropigmentación"},
		{name: "otro without custom text", category: "Otro", want: "Otro: "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatBusinessType(tc.category, tc.subcategory, tc.customText)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		name         string
		businessType string
		want         string
	}{
		{name: "catalog pair", businessType: "Comida: Restaurante", want: "Comida"},
		{name: "otro entry", businessType: "Otro: Cerrajería 24h", want: "Otro"},
		{name: "bare category", businessType: "Belleza", want: "Belleza"},
		{name: "empty", businessType: "", want: ""},
		{name: "category with slash", businessType: "Retail / Tienda: Ropa", want: "Retail / Tienda"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCategory(tc.businessType))
		})
	}
}
