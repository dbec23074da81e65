package entity

import "strings"

// Mode is the location/coverage archetype of a business. It governs which
// location fields are required, optional, or forbidden.
type Mode string

const (
	// ModeFixedLocation: customers come to one address.
	ModeFixedLocation Mode = "FIXED_LOCATION"
	// ModeFieldService: the business travels to the customer.
	ModeFieldService Mode = "FIELD_SERVICE"
	// ModeFood: fixed address, optionally with delivery areas.
	ModeFood Mode = "FOOD"
	// ModeDigitalRemote: no physical presence required.
	ModeDigitalRemote Mode = "DIGITAL_REMOTE"
)

// IsValid checks if the Mode is a valid value.
func (m Mode) IsValid() bool {
	switch m {
	case ModeFixedLocation, ModeFieldService, ModeFood, ModeDigitalRemote:
		return true
	default:
		return false
	}
}

// ToggleYes is the affirmative value of the secondary form toggles
// ("has office", "offers delivery", "Belleza works mobile").
const ToggleYes = "yes"

// categoryModes maps catalog categories with an unconditional mode.
// "Otro" and "Belleza" are resolved through their secondary inputs.
var categoryModes = map[string]Mode{
	"Salud":                   ModeFixedLocation,
	"Automotriz":              ModeFixedLocation,
	"Retail / Tienda":         ModeFixedLocation,
	"Construcción":            ModeFieldService,
	"Hogar y mantenimiento":   ModeFieldService,
	"Comida":                  ModeFood,
	"Servicios profesionales": ModeDigitalRemote,
	"Tecnología / Digital":    ModeDigitalRemote,
}

// otroModes maps the manual selection shown for the "Otro" category.
var otroModes = map[string]Mode{
	"fixed":   ModeFixedLocation,
	"mobile":  ModeFieldService,
	"digital": ModeDigitalRemote,
}

// ResolveMode maps a category plus the secondary toggles to a coverage mode.
// First match wins; ok is false when no mode can be resolved (no category
// selected, or "Otro" without a manual selection).
func ResolveMode(category, otroSelection, bellezaMobile string) (Mode, bool) {
	switch category {
	case "":
		return "", false
	case CategoryOtro:
		mode, ok := otroModes[otroSelection]

		return mode, ok
	case "Belleza":
		if bellezaMobile == ToggleYes {
			return ModeFieldService, true
		}

		return ModeFixedLocation, true
	}

	mode, ok := categoryModes[category]

	return mode, ok
}

// FieldError carries field-level validation detail for API responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Coverage is the location data of a profile as a tagged union keyed by
// Mode. Switching mode is a single NewCoverage assignment, which
// structurally discards every field of the previous mode; stale values can
// never leak into a submission under a new mode.
type Coverage struct {
	Mode            Mode
	BusinessAddress string
	ServiceAreas    []string
	DeliveryAreas   []string
	// HasOffice gates the optional address for FIELD_SERVICE and
	// DIGITAL_REMOTE. OffersDelivery gates the delivery areas for FOOD.
	HasOffice      bool
	OffersDelivery bool
}

// NewCoverage returns the empty coverage state for a mode. Callers switching
// category (or a secondary toggle) must replace their Coverage with a fresh
// one; resetting twice yields the same empty state.
func NewCoverage(mode Mode) Coverage {
	return Coverage{Mode: mode}
}

// Validate enforces the per-mode field contract. It returns one FieldError
// per violated requirement; an empty slice means the coverage is complete.
func (c Coverage) Validate() []FieldError {
	var errs []FieldError

	switch c.Mode {
	case ModeFixedLocation:
		if strings.TrimSpace(c.BusinessAddress) == "" {
			errs = append(errs, FieldError{Field: "business_address", Message: "La dirección del negocio es obligatoria"})
		}
	case ModeFieldService:
		if len(c.ServiceAreas) == 0 {
			errs = append(errs, FieldError{Field: "service_area", Message: "Indica al menos una zona de servicio"})
		}
		if !c.HasOffice && strings.TrimSpace(c.BusinessAddress) != "" {
			errs = append(errs, FieldError{Field: "business_address", Message: "La dirección solo aplica si tienes local"})
		}
	case ModeFood:
		if strings.TrimSpace(c.BusinessAddress) == "" {
			errs = append(errs, FieldError{Field: "business_address", Message: "La dirección del negocio es obligatoria"})
		}
		if c.OffersDelivery && len(c.DeliveryAreas) == 0 {
			errs = append(errs, FieldError{Field: "delivery_area", Message: "Indica al menos una zona de delivery"})
		}
		if !c.OffersDelivery && len(c.DeliveryAreas) > 0 {
			errs = append(errs, FieldError{Field: "delivery_area", Message: "Las zonas de delivery solo aplican si ofreces delivery"})
		}
	case ModeDigitalRemote:
		if !c.HasOffice && strings.TrimSpace(c.BusinessAddress) != "" {
			errs = append(errs, FieldError{Field: "business_address", Message: "La dirección solo aplica si tienes local"})
		}
	default:
		errs = append(errs, FieldError{Field: "business_type", Message: "Selecciona una categoría de negocio"})
	}

	return errs
}

// Normalize returns a copy with every field the mode does not collect
// cleared, so exactly one coverage field-set is populated per mode.
func (c Coverage) Normalize() Coverage {
	out := NewCoverage(c.Mode)

	switch c.Mode {
	case ModeFixedLocation:
		out.BusinessAddress = strings.TrimSpace(c.BusinessAddress)
	case ModeFieldService:
		out.ServiceAreas = trimAreas(c.ServiceAreas)
		out.HasOffice = c.HasOffice
		if c.HasOffice {
			out.BusinessAddress = strings.TrimSpace(c.BusinessAddress)
		}
	case ModeFood:
		out.BusinessAddress = strings.TrimSpace(c.BusinessAddress)
		out.OffersDelivery = c.OffersDelivery
		if c.OffersDelivery {
			out.DeliveryAreas = trimAreas(c.DeliveryAreas)
		}
	case ModeDigitalRemote:
		out.HasOffice = c.HasOffice
		if c.HasOffice {
			out.BusinessAddress = strings.TrimSpace(c.BusinessAddress)
		}
	}

	return out
}

// Apply writes the normalized coverage into the profile's three stored
// location columns.
func (c Coverage) Apply(profile *BusinessProfile) {
	normalized := c.Normalize()

	profile.BusinessAddress = normalized.BusinessAddress
	profile.ServiceArea = JoinAreas(normalized.ServiceAreas)
	profile.DeliveryArea = JoinAreas(normalized.DeliveryAreas)
}

// SplitAreas parses a comma-separated area list into entries.
func SplitAreas(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	areas := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			areas = append(areas, trimmed)
		}
	}

	return areas
}

// JoinAreas renders area entries back into the stored text form.
func JoinAreas(areas []string) string {
	return strings.Join(areas, ", ")
}

func trimAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	for _, area := range areas {
		if trimmed := strings.TrimSpace(area); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
