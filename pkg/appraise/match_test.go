package appraise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

func TestMatch_Filters(t *testing.T) {
	t.Parallel()

	v := camry()
	pool := []Comparable{
		{ID: "same", Make: "TOYOTA", Model: " camry ", Year: 2021, Price: 24000},
		{ID: "old", Make: "Toyota", Model: "Camry", Year: 2017, Price: 15000},
		{ID: "edge", Make: "Toyota", Model: "Camry", Year: 2024, Price: 30000},
		{ID: "model", Make: "Toyota", Model: "Corolla", Year: 2021, Price: 20000},
		{ID: "make", Make: "Honda", Model: "Camry", Year: 2021, Price: 20000},
	}

	got := Match(&v, pool, nil, DefaultRates())

	ids := make([]string, len(got))
	for i := range got {
		ids[i] = got[i].ID
	}
	assert.ElementsMatch(t, []string{"same", "edge"}, ids)
	for i := range got {
		assert.Equal(t, UnknownDealer, got[i].DealershipName)
	}
}

func TestMatch_ScoreAndPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    func(*Vehicle)
		comp      Comparable
		wantScore int
		wantPrice float64
		wantTrim  bool
	}{
		{
			name: "identical with trim",
			comp: Comparable{
				Trim: "SE Upgrade", Year: 2021, Kilometers: 60000, Price: 24000,
				Transmission: domain.TransmissionAutomatic, BodyType: domain.BodySedan,
			},
			wantScore: 100,
			wantPrice: 24000,
			wantTrim:  true,
		},
		{
			name:   "older higher mileage no trim",
			target: func(v *Vehicle) { v.Trim = "" },
			comp: Comparable{
				Trim: "LE", Year: 2020, Kilometers: 70000, Price: 20000,
				Transmission: domain.TransmissionAutomatic, BodyType: domain.BodySedan,
			},
			// 100 - 10 - 1 + 5 + 5
			wantScore: 99,
			// (20000 - 10000*0.015) * 1.08
			wantPrice: 21438,
		},
		{
			name: "newer comparable discounted",
			comp: Comparable{
				Trim: "XLE", Year: 2023, Kilometers: 60000, Price: 30000,
				Transmission: domain.TransmissionCVT, BodyType: domain.BodySUV,
			},
			wantScore: 80,
			wantPrice: 30000 / (1.08 * 1.08),
		},
		{
			name: "odometer penalty caps at twenty",
			comp: Comparable{
				Year: 2018, Kilometers: 460000, Price: 1000,
			},
			// 100 - 30 - 20
			wantScore: 50,
			// (1000 - 400000*0.015) floors at zero
			wantPrice: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := camry()
			if tt.target != nil {
				tt.target(&v)
			}
			tt.comp.Make, tt.comp.Model = "Toyota", "Camry"

			got := Match(&v, []Comparable{tt.comp}, nil, DefaultRates())
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantScore, got[0].MatchScore)
			assert.InDelta(t, tt.wantPrice, got[0].PriceAdjusted, 0.01)
			assert.Equal(t, tt.wantTrim, got[0].TrimMatch)
			assert.Equal(t, v.Year-tt.comp.Year, got[0].YearDiff)
			assert.Equal(t, v.Kilometers-tt.comp.Kilometers, got[0].KmDiff)
		})
	}
}

func TestMatch_ScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	v := camry()
	var pool []Comparable
	for year := 2018; year <= 2024; year++ {
		for km := 0; km <= 400000; km += 50000 {
			for _, trim := range []string{"", "SE", "LE"} {
				pool = append(pool, Comparable{
					Make: "Toyota", Model: "Camry", Trim: trim,
					Year: year, Kilometers: km, Price: 20000,
					Transmission: domain.TransmissionAutomatic, BodyType: domain.BodySedan,
				})
			}
		}
	}

	got := Match(&v, pool, nil, DefaultRates())
	require.NotEmpty(t, got)
	for i := range got {
		assert.GreaterOrEqual(t, got[i].MatchScore, 0)
		assert.LessOrEqual(t, got[i].MatchScore, 100)
		assert.GreaterOrEqual(t, got[i].PriceAdjusted, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].MatchScore, got[i].MatchScore, "ranked descending")
		}
	}
}

func TestMatch_StableTies(t *testing.T) {
	t.Parallel()

	v := camry()
	pool := camryComparables(6, 24000)

	got := Match(&v, pool, nil, DefaultRates())
	require.Len(t, got, 6)
	for i := range got {
		assert.Equal(t, pool[i].ID, got[i].ID)
	}
}

func TestMatch_CustomRates(t *testing.T) {
	t.Parallel()

	v := camry()
	pool := []Comparable{{Make: "Toyota", Model: "Camry", Year: 2020, Kilometers: 50000, Price: 20000}}

	got := Match(&v, pool, nil, Rates{PerKm: 0.1, PerYear: 0})
	require.Len(t, got, 1)
	assert.InDelta(t, 21000, got[0].PriceAdjusted, 0.001)
}
