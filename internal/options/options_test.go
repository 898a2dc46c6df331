package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type splitterConfig struct {
	indexCol string
	flatten  bool
	applied  []string
}

func (c *splitterConfig) setIndexCol(name string) error {
	if name == "" {
		return errors.New("index column name cannot be empty")
	}
	c.indexCol = name
	c.applied = append(c.applied, "indexCol")

	return nil
}

func (c *splitterConfig) setFlatten(flatten bool) {
	c.flatten = flatten
	c.applied = append(c.applied, "flatten")
}

func TestNew(t *testing.T) {
	t.Run("applies fallible option", func(t *testing.T) {
		cfg := &splitterConfig{}
		opt := New(func(c *splitterConfig) error { return c.setIndexCol("date") })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, "date", cfg.indexCol)
	})

	t.Run("propagates option error", func(t *testing.T) {
		cfg := &splitterConfig{}
		opt := New(func(c *splitterConfig) error { return c.setIndexCol("") })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestNoError(t *testing.T) {
	cfg := &splitterConfig{}
	opt := NoError(func(c *splitterConfig) { c.setFlatten(true) })

	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.flatten)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &splitterConfig{}
		err := Apply(cfg,
			New(func(c *splitterConfig) error { return c.setIndexCol("ts") }),
			NoError(func(c *splitterConfig) { c.setFlatten(true) }),
		)

		require.NoError(t, err)
		require.Equal(t, []string{"indexCol", "flatten"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &splitterConfig{}
		err := Apply(cfg,
			New(func(c *splitterConfig) error { return c.setIndexCol("") }),
			NoError(func(c *splitterConfig) { c.setFlatten(true) }),
		)

		require.Error(t, err)
		require.False(t, cfg.flatten)
	})

	t.Run("accepts no options", func(t *testing.T) {
		cfg := &splitterConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.applied)
	})
}

func TestGenericTargets(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 7 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 7, n)
}
