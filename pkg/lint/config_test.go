package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_FullDocument(t *testing.T) {
	doc := `
targets:
  - func: expect
    value_arg: 0
    phrase_arg: 1
extra_properties:
  - runes
extra_predicates:
  - sorted
check_dynamic: true
`

	cfg, err := ParseConfig([]byte(doc))

	require.NoError(t, err)
	assert.Equal(t, []Target{
		{Func: "expect", ValueArg: 0, PhraseArg: 1},
	}, cfg.Targets)
	assert.Equal(t, []string{"runes"}, cfg.ExtraProperties)
	assert.Equal(t, []string{"sorted"}, cfg.ExtraPredicates)
	assert.True(t, cfg.CheckDynamic)
}

func TestParseConfig_EmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Targets, cfg.Targets)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("targets: \"nope"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("does-not-exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestConfig_TargetLookup(t *testing.T) {
	cfg := DefaultConfig()

	tgt, ok := cfg.target("That")
	require.True(t, ok)
	assert.Equal(t, 1, tgt.ValueArg)
	assert.Equal(t, 2, tgt.PhraseArg)

	_, ok = cfg.target("Expect")
	assert.False(t, ok)
}
