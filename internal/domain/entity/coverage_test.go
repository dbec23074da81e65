package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMode(t *testing.T) {
	testCases := []struct {
		name          string
		category      string
		otroSelection string
		bellezaMobile string
		wantMode      Mode
		wantOK        bool
	}{
		{name: "fixed catalog category", category: "Comida", wantMode: ModeFood, wantOK: true},
		{name: "salud is fixed location", category: "Salud", wantMode: ModeFixedLocation, wantOK: true},
		{name: "construccion is field service", category: "Construcción", wantMode: ModeFieldService, wantOK: true},
		{name: "tecnologia is digital", category: "Tecnología / Digital", wantMode: ModeDigitalRemote, wantOK: true},
		{name: "otro with fixed selection", category: "Otro", otroSelection: "fixed", wantMode: ModeFixedLocation, wantOK: true},
		{name: "otro with mobile selection", category: "Otro", otroSelection: "mobile", wantMode: ModeFieldService, wantOK: true},
		{name: "otro with digital selection", category: "Otro", otroSelection: "digital", wantMode: ModeDigitalRemote, wantOK: true},
		{name: "otro without selection", category: "Otro", wantOK: false},
		{name: "otro with unknown selection", category: "Otro", otroSelection: "orbital", wantOK: false},
		{name: "belleza working mobile", category: "Belleza", bellezaMobile: "yes", wantMode: ModeFieldService, wantOK: true},
		{name: "belleza in a salon", category: "Belleza", bellezaMobile: "no", wantMode: ModeFixedLocation, wantOK: true},
		{name: "belleza toggle unanswered defaults to salon", category: "Belleza", wantMode: ModeFixedLocation, wantOK: true},
		{name: "no category", wantOK: false},
		{name: "unknown category", category: "Astronáutica", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mode, ok := ResolveMode(tc.category, tc.otroSelection, tc.bellezaMobile)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantMode, mode)
			}
		})
	}
}

func TestNewCoverage_ResetIsIdempotent(t *testing.T) {
	first := NewCoverage(ModeFood)
	second := NewCoverage(ModeFood)

	assert.Equal(t, first, second)
	assert.Empty(t, first.BusinessAddress)
	assert.Nil(t, first.ServiceAreas)
	assert.Nil(t, first.DeliveryAreas)
}

func TestCoverage_Validate(t *testing.T) {
	testCases := []struct {
		name       string
		coverage   Coverage
		wantFields []string
	}{
		{
			name:     "fixed location with address",
			coverage: Coverage{Mode: ModeFixedLocation, BusinessAddress: "Calle 45 #12-34"},
		},
		{
			name:       "fixed location without address",
			coverage:   Coverage{Mode: ModeFixedLocation, BusinessAddress: "   "},
			wantFields: []string{"business_address"},
		},
		{
			name:     "field service with areas",
			coverage: Coverage{Mode: ModeFieldService, ServiceAreas: []string{"Chapinero"}},
		},
		{
			name:       "field service without areas",
			coverage:   Coverage{Mode: ModeFieldService},
			wantFields: []string{"service_area"},
		},
		{
			name:       "field service with address but no office",
			coverage:   Coverage{Mode: ModeFieldService, ServiceAreas: []string{"Suba"}, BusinessAddress: "Carrera 7"},
			wantFields: []string{"business_address"},
		},
		{
			name:     "field service with office keeps address",
			coverage: Coverage{Mode: ModeFieldService, ServiceAreas: []string{"Suba"}, HasOffice: true, BusinessAddress: "Carrera 7"},
		},
		{
			name:     "food without delivery",
			coverage: Coverage{Mode: ModeFood, BusinessAddress: "Calle 10"},
		},
		{
			name:       "food with delivery but no areas",
			coverage:   Coverage{Mode: ModeFood, BusinessAddress: "Calle 10", OffersDelivery: true},
			wantFields: []string{"delivery_area"},
		},
		{
			name:       "food with areas but delivery off",
			coverage:   Coverage{Mode: ModeFood, BusinessAddress: "Calle 10", DeliveryAreas: []string{"Centro"}},
			wantFields: []string{"delivery_area"},
		},
		{
			name:     "digital with nothing",
			coverage: Coverage{Mode: ModeDigitalRemote},
		},
		{
			name:       "digital with address but no office",
			coverage:   Coverage{Mode: ModeDigitalRemote, BusinessAddress: "Calle 100"},
			wantFields: []string{"business_address"},
		},
		{
			name:       "unresolved mode",
			coverage:   Coverage{},
			wantFields: []string{"business_type"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.coverage.Validate()
			require.Len(t, errs, len(tc.wantFields))
			for i, field := range tc.wantFields {
				assert.Equal(t, field, errs[i].Field)
				assert.NotEmpty(t, errs[i].Message)
			}
		})
	}
}

func TestCoverage_Normalize_ClearsForeignFields(t *testing.T) {
	dirty := Coverage{
		Mode:            ModeFieldService,
		BusinessAddress: "Calle 45 #12-34",
		ServiceAreas:    []string{" Chapinero ", "", "Usaquén"},
		DeliveryAreas:   []string{"Centro"},
		OffersDelivery:  true,
	}

	got := dirty.Normalize()

	assert.Equal(t, ModeFieldService, got.Mode)
	assert.Equal(t, []string{"Chapinero", "Usaquén"}, got.ServiceAreas)
	assert.Empty(t, got.BusinessAddress, "address without office must be dropped")
	assert.Nil(t, got.DeliveryAreas)
	assert.False(t, got.OffersDelivery)
}

func TestCoverage_Normalize_KeepsOfficeAddress(t *testing.T) {
	got := Coverage{
		Mode:            ModeFieldService,
		ServiceAreas:    []string{"Suba"},
		HasOffice:       true,
		BusinessAddress: "  Carrera 7 #45-10  ",
	}.Normalize()

	assert.Equal(t, "Carrera 7 #45-10", got.BusinessAddress)
	assert.True(t, got.HasOffice)
}

func TestCoverage_Normalize_FoodDeliveryToggle(t *testing.T) {
	withDelivery := Coverage{
		Mode:            ModeFood,
		BusinessAddress: "Calle 10 #5-51",
		OffersDelivery:  true,
		DeliveryAreas:   []string{"Centro", " La Candelaria "},
	}.Normalize()
	assert.Equal(t, []string{"Centro", "La Candelaria"}, withDelivery.DeliveryAreas)

	withoutDelivery := Coverage{
		Mode:            ModeFood,
		BusinessAddress: "Calle 10 #5-51",
		DeliveryAreas:   []string{"Centro"},
	}.Normalize()
	assert.Nil(t, withoutDelivery.DeliveryAreas)
}

func TestCoverage_Apply(t *testing.T) {
	profile := &BusinessProfile{
		BusinessAddress: "stale address",
		DeliveryArea:    "stale delivery",
	}

	Coverage{
		Mode:         ModeFieldService,
		ServiceAreas: []string{"Chapinero", "Usaquén"},
	}.Apply(profile)

	assert.Empty(t, profile.BusinessAddress)
	assert.Equal(t, "Chapinero, Usaquén", profile.ServiceArea)
	assert.Empty(t, profile.DeliveryArea)
}

func TestSplitAreas(t *testing.T) {
	assert.Equal(t, []string{"Chapinero", "Usaquén"}, SplitAreas("Chapinero, Usaquén"))
	assert.Equal(t, []string{"Centro"}, SplitAreas(" Centro , , "))
	assert.Nil(t, SplitAreas("   "))
	assert.Nil(t, SplitAreas(""))
}

func TestJoinAreas_RoundTrip(t *testing.T) {
	areas := []string{"Chapinero", "Usaquén", "Suba"}
	assert.Equal(t, areas, SplitAreas(JoinAreas(areas)))
}
