package commands

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd fly on")
	require.True(t, ok)
	assert.Equal(t, []string{"fly", "on"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello dome")
	assert.False(t, ok)

	_, ok = Parse("CMD fly")
	assert.False(t, ok, "prefix is case-sensitive")
}

func TestExecuteDispatchesWithFlagsAndArgs(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("adjust", flag.ContinueOnError)
	brightness := fs.Float64("brightness", 0, "")
	var got []string
	r.Register("adjust", "tweak colors", fs, func(args []string) error {
		got = args
		return nil
	})

	require.NoError(t, r.Execute([]string{"adjust", "-brightness", "0.3", "extra"}))
	assert.Equal(t, 0.3, *brightness)
	assert.Equal(t, []string{"extra"}, got)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("fly", "toggle fly mode", nil, func([]string) error { return nil })

	assert.Error(t, r.Execute(nil))
	err := r.Execute([]string{"warp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fly")
}

func TestHelpSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("speed", "set base speed", nil, func([]string) error { return nil })
	r.Register("fly", "toggle fly mode", nil, func([]string) error { return nil })
	assert.Equal(t, []string{"fly", "speed"}, r.Names())
	help := r.Help()
	require.Len(t, help, 2)
	assert.Equal(t, "fly - toggle fly mode", help[0])
}
