package taxonomy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tax := Default()
	require.NotNil(t, tax)
	assert.Same(t, tax, Default())

	assert.Equal(t, []string{
		Individual, BrandBusiness, InfluencerPublicFigure, MediaNews, Bot, SpamScam, CreativeMeme,
	}, tax.Names())

	total := 0.0
	for _, w := range tax.Weights() {
		total += w
	}
	assert.LessOrEqual(t, math.Abs(total-1.0), WeightTolerance)
}

func TestDefaultConfig_Validates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestDefaultConfig_IsFresh(t *testing.T) {
	a := DefaultConfig()
	a.AccountTypes[0].Personas[0] = "changed"
	assert.NotEqual(t, "changed", DefaultConfig().AccountTypes[0].Personas[0])
}

func TestDefault_Individual(t *testing.T) {
	at, err := Default().Lookup(Individual)
	require.NoError(t, err)

	assert.Equal(t, 0.60, at.Weight())
	assert.Equal(t, []string{
		"communication_style", "posting_mood", "education_level",
		"political_leaning", "life_stage", "primary_topic",
	}, at.CategoryNames())

	tests := []struct {
		persona  string
		category string
		want     []string
		fixed    bool
	}{
		{"anxiety_ridden_high_schooler", "life_stage", []string{"teenager"}, true},
		{"anxiety_ridden_high_schooler", "communication_style", []string{"anxious_oversharing"}, true},
		{"anxiety_ridden_high_schooler", "education_level", []string{"high_school_dropout", "high_school_grad"}, false},
		{"helicopter_mom_of_twins", "life_stage", []string{"parent"}, true},
		{"helicopter_mom_of_twins", "primary_topic", []string{"family_kids"}, true},
		{"retired_professor_still_teaching", "life_stage", []string{"retired"}, true},
		{"retired_professor_still_teaching", "education_level", []string{"graduate_degree"}, true},
		{"conspiracy_theory_uncle", "political_leaning", []string{"far_right_extremist", "conservative_republican"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.persona+"/"+tt.category, func(t *testing.T) {
			o, ok := at.Override(tt.persona, tt.category)
			require.True(t, ok)
			assert.Equal(t, tt.fixed, o.IsFixed())
			assert.Equal(t, tt.want, o.Values())
		})
	}

	for _, persona := range at.Personas() {
		_, ok := at.Override(persona, "life_stage")
		assert.True(t, ok, "persona %s should pin a life stage", persona)
	}
}

func TestDefault_OnlyIndividualOverrides(t *testing.T) {
	for _, at := range Default().AccountTypes() {
		if at.Name() == Individual {
			continue
		}
		assert.Empty(t, at.OverriddenPersonas(), at.Name())
	}
}
