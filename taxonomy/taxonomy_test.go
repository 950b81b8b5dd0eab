package taxonomy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTypeConfig() []AccountTypeConfig {
	return []AccountTypeConfig{
		{
			Name:     "person",
			Weight:   0.7,
			Personas: []string{"night_owl", "early_bird"},
			Modifiers: []Category{
				{Name: "mood", Options: []string{"happy", "grumpy", "sleepy"}},
				{Name: "topic", Options: []string{"coffee", "sunsets"}},
			},
			PersonaOverrides: map[string]map[string]Override{
				"night_owl": {
					"mood": Fixed("sleepy"),
				},
				"early_bird": {
					"mood": OneOf("happy", "grumpy"),
				},
			},
		},
		{
			Name:     "robot",
			Weight:   0.3,
			Personas: []string{"beep_bot"},
			Modifiers: []Category{
				{Name: "voice", Options: []string{"monotone"}},
			},
		},
	}
}

func TestNew(t *testing.T) {
	tax, err := New(twoTypeConfig()...)
	require.NoError(t, err)

	assert.Equal(t, 2, tax.Len())
	assert.Equal(t, []string{"person", "robot"}, tax.Names())
	assert.Equal(t, []float64{0.7, 0.3}, tax.Weights())
	assert.True(t, tax.Has("robot"))
	assert.False(t, tax.Has("Robot"))
}

func TestNew_CopiesInput(t *testing.T) {
	cfgs := twoTypeConfig()
	tax, err := New(cfgs...)
	require.NoError(t, err)

	cfgs[0].Personas[0] = "mutated"
	cfgs[0].Modifiers[0].Options[0] = "mutated"

	at, err := tax.Lookup("person")
	require.NoError(t, err)
	assert.Equal(t, "night_owl", at.Personas()[0])
	opts, ok := at.Options("mood")
	require.True(t, ok)
	assert.Equal(t, "happy", opts[0])
}

func TestLookup(t *testing.T) {
	tax, err := New(twoTypeConfig()...)
	require.NoError(t, err)

	t.Run("known", func(t *testing.T) {
		at, err := tax.Lookup("person")
		require.NoError(t, err)
		assert.Equal(t, "person", at.Name())
		assert.Equal(t, 0.7, at.Weight())
		assert.Equal(t, []string{"mood", "topic"}, at.CategoryNames())
	})

	t.Run("unknown", func(t *testing.T) {
		at, err := tax.Lookup("alien")
		require.Error(t, err)
		assert.Nil(t, at)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), `"alien"`)
	})
}

func TestAccountType_Accessors(t *testing.T) {
	tax, err := New(twoTypeConfig()...)
	require.NoError(t, err)
	at, err := tax.Lookup("person")
	require.NoError(t, err)

	t.Run("returned slices are copies", func(t *testing.T) {
		personas := at.Personas()
		personas[0] = "changed"
		assert.Equal(t, "night_owl", at.Personas()[0])

		cats := at.Categories()
		cats[0].Options[0] = "changed"
		opts, _ := at.Options("mood")
		assert.Equal(t, "happy", opts[0])
	})

	t.Run("persona membership is exact", func(t *testing.T) {
		assert.True(t, at.HasPersona("night_owl"))
		assert.False(t, at.HasPersona("NIGHT_OWL"))
		assert.False(t, at.HasPersona(""))
	})

	t.Run("options for unknown category", func(t *testing.T) {
		opts, ok := at.Options("nope")
		assert.False(t, ok)
		assert.Nil(t, opts)
	})

	t.Run("overrides", func(t *testing.T) {
		o, ok := at.Override("night_owl", "mood")
		require.True(t, ok)
		assert.True(t, o.IsFixed())
		assert.Equal(t, "sleepy", o.Value())

		o, ok = at.Override("early_bird", "mood")
		require.True(t, ok)
		assert.False(t, o.IsFixed())
		assert.Equal(t, []string{"happy", "grumpy"}, o.Values())

		_, ok = at.Override("night_owl", "topic")
		assert.False(t, ok)

		_, ok = at.Override("stranger", "mood")
		assert.False(t, ok)

		assert.Equal(t, []string{"early_bird", "night_owl"}, at.OverriddenPersonas())
	})
}

func TestToConfig_RoundTrip(t *testing.T) {
	tax, err := New(twoTypeConfig()...)
	require.NoError(t, err)

	rebuilt, err := New(tax.ToConfig().AccountTypes...)
	require.NoError(t, err)
	assert.Equal(t, tax.ToConfig(), rebuilt.ToConfig())
}

func TestGlobal(t *testing.T) {
	t.Cleanup(ResetGlobal)

	t.Run("defaults to built-in table", func(t *testing.T) {
		ResetGlobal()
		assert.Same(t, Default(), Global())
	})

	t.Run("InitGlobal before first use", func(t *testing.T) {
		ResetGlobal()
		custom, err := New(twoTypeConfig()...)
		require.NoError(t, err)

		InitGlobal(custom)
		assert.Same(t, custom, Global())
	})

	t.Run("InitGlobal with nil keeps built-in table", func(t *testing.T) {
		ResetGlobal()
		InitGlobal(nil)
		assert.Same(t, Default(), Global())
	})

	t.Run("InitGlobal after first use has no effect", func(t *testing.T) {
		ResetGlobal()
		first := Global()
		custom, err := New(twoTypeConfig()...)
		require.NoError(t, err)

		InitGlobal(custom)
		assert.Same(t, first, Global())
	})
}
