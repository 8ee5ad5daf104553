package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type columnConfig struct {
	width int
	name  string
	calls []string
}

type columnOption = Option[*columnConfig]

func withWidth(width int) columnOption {
	return New(func(c *columnConfig) error {
		if width != 8 && width != 16 && width != 32 && width != 64 {
			return errors.New("unsupported width")
		}
		c.width = width
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) columnOption {
	return NoError(func(c *columnConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &columnConfig{}

	err := Apply(cfg, withName("ts"), withWidth(32), withName("ts2"))
	require.NoError(t, err)
	require.Equal(t, 32, cfg.width)
	require.Equal(t, "ts2", cfg.name)
	require.Equal(t, []string{"name", "width", "name"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &columnConfig{}

	err := Apply(cfg, withWidth(64), withWidth(12), withName("never"))
	require.EqualError(t, err, "unsupported width")
	require.Equal(t, 64, cfg.width)
	require.Empty(t, cfg.name)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &columnConfig{}

	require.NoError(t, Apply[*columnConfig](cfg, nil, withName("x")))
	require.Equal(t, "x", cfg.name)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &columnConfig{width: 8}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 8, cfg.width)
}
