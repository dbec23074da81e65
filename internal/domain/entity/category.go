package entity

import "strings"

// CategoryOtro is the escape hatch of the catalog: the owner types free text
// and picks the coverage mode manually.
const CategoryOtro = "Otro"

// Categories is the fixed catalog offered by the registration form.
// Resolution is an exact string match against these values.
var Categories = []string{
	"Belleza",
	"Salud",
	"Automotriz",
	"Retail / Tienda",
	"Construcción",
	"Hogar y mantenimiento",
	"Comida",
	"Servicios profesionales",
	"Tecnología / Digital",
	CategoryOtro,
}

// IsKnownCategory reports whether category is part of the fixed catalog.
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}

	return false
}

// FormatBusinessType builds the stored business_type string:
// "<Category>: <Subcategory>", or "Otro: <custom text>" when the category is
// "Otro" or the subcategory itself is "Otro".
func FormatBusinessType(category, subcategory, customText string) string {
	if category == CategoryOtro || subcategory == CategoryOtro {
		return CategoryOtro + ": " + strings.TrimSpace(customText)
	}

	return category + ": " + subcategory
}

// ParseCategory extracts the catalog category from a stored business_type
// string. Returns "" when the value carries no category.
func ParseCategory(businessType string) string {
	if businessType == "" {
		return ""
	}
	if strings.HasPrefix(businessType, CategoryOtro+":") {
		return CategoryOtro
	}

	category, _, found := strings.Cut(businessType, ":")
	if !found {
		return strings.TrimSpace(businessType)
	}

	return strings.TrimSpace(category)
}
