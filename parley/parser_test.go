package parley

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildParams(t *testing.T) *ParamSet {
	t.Helper()
	return NewParams().
		Positional("name", String()).Done().
		Flag("count", Int()).Short('c').Default(1).Done().
		Flag("dry-run", Bool()).Short('d').Default(false).Done()
}

func resolve(t *testing.T, params *ParamSet, tokens ...string) (*Binding, []string) {
	t.Helper()
	p := NewParser(params)
	p.Feed(tokens...)
	return p.Finish(false)
}

func TestParserEndToEnd(t *testing.T) {
	binding, problems := resolve(t, buildParams(t), "foo", "-c", "3")

	require.Empty(t, problems)
	want := map[string]any{"name": "foo", "count": 3, "dry-run": false}
	if diff := cmp.Diff(want, binding.Map()); diff != "" {
		t.Errorf("binding mismatch (-want +got):\n%s", diff)
	}
}

func TestParserBoolFlagPresenceMeansTrue(t *testing.T) {
	binding, problems := resolve(t, buildParams(t), "foo", "--dry-run")

	require.Empty(t, problems)
	assert.True(t, binding.Bool("dry-run", false))
}

func TestParserBoolFlagExplicitFalse(t *testing.T) {
	binding, problems := resolve(t, buildParams(t), "foo", "--dry-run=false")

	require.Empty(t, problems)
	assert.False(t, binding.Bool("dry-run", true))
}

func TestParserLongFlagValueForms(t *testing.T) {
	separate, problems := resolve(t, buildParams(t), "foo", "--count", "5")
	require.Empty(t, problems)

	inline, problems := resolve(t, buildParams(t), "foo", "--count=5")
	require.Empty(t, problems)

	if diff := cmp.Diff(separate.Map(), inline.Map()); diff != "" {
		t.Errorf("--count 5 and --count=5 disagree (-separate +inline):\n%s", diff)
	}
	assert.Equal(t, 5, inline.Int("count", 0))
}

func TestParserShortClusterEqualsSeparateFlags(t *testing.T) {
	params := func() *ParamSet {
		return NewParams().
			Flag("all", Bool()).Short('a').Default(false).Done().
			Flag("brief", Bool()).Short('b').Default(false).Done()
	}

	clustered, problems := resolve(t, params(), "-ab")
	require.Empty(t, problems)

	separate, problems := resolve(t, params(), "-a", "-b")
	require.Empty(t, problems)

	if diff := cmp.Diff(separate.Map(), clustered.Map()); diff != "" {
		t.Errorf("-ab and -a -b disagree (-separate +clustered):\n%s", diff)
	}
	assert.True(t, clustered.Bool("all", false))
	assert.True(t, clustered.Bool("brief", false))
}

func TestParserShortClusterNonBoolMiddle(t *testing.T) {
	params := NewParams().
		Flag("count", Int()).Short('c').Default(1).Done().
		Flag("dry-run", Bool()).Short('d').Default(false).Done()

	// 'c' is not boolean, so it cannot sit in the middle of a cluster.
	_, problems := resolve(t, params, "-cd")

	require.Len(t, problems, 1)
	assert.Equal(t, "Missing value for `-c`", problems[0])
}

func TestParserShortFlagInlineValue(t *testing.T) {
	binding, problems := resolve(t, buildParams(t), "foo", "-c=7")

	require.Empty(t, problems)
	assert.Equal(t, 7, binding.Int("count", 0))
}

func TestParserVariadicAccumulates(t *testing.T) {
	params := NewParams().
		Positional("files", String()).Variadic().Done()

	binding, problems := resolve(t, params, "a.txt", "b.txt", "c.txt")

	require.Empty(t, problems)
	files, ok := binding.Strings("files")
	require.True(t, ok)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, files)
}

func TestParserVariadicSingleValueStillBindsSlice(t *testing.T) {
	params := NewParams().
		Positional("files", String()).Variadic().Done()

	binding, problems := resolve(t, params, "only.txt")

	require.Empty(t, problems)
	files, ok := binding.Values("files")
	require.True(t, ok)
	assert.Equal(t, []any{"only.txt"}, files)
}

func TestParserDoubleDashFreezesFlags(t *testing.T) {
	params := NewParams().
		Positional("name", String()).Done().
		Positional("extra", String()).Default("").Done().
		Flag("dry-run", Bool()).Default(false).Done()

	binding, problems := resolve(t, params, "--", "--dry-run")

	require.Empty(t, problems)
	assert.Equal(t, "--dry-run", binding.String("name", ""))
	assert.False(t, binding.Bool("dry-run", true))
}

func TestParserNegativeNumberIsPositional(t *testing.T) {
	params := NewParams().
		Positional("offset", Int()).Done()

	binding, problems := resolve(t, params, "-1")

	require.Empty(t, problems)
	assert.Equal(t, -1, binding.Int("offset", 0))
}

func TestParserMissingRequiredPositional(t *testing.T) {
	_, problems := resolve(t, buildParams(t))

	require.Len(t, problems, 1)
	assert.Equal(t, "Missing value for `name`", problems[0])
}

func TestParserTrailingFlagWithoutValue(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "foo", "--count")

	require.Len(t, problems, 1)
	assert.Equal(t, "Missing value for `count`", problems[0])
}

func TestParserTooManyValues(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "foo", "--count", "1", "--count", "2")

	require.Len(t, problems, 1)
	assert.Equal(t, "Too many values for `count`", problems[0])
}

func TestParserCoercionFailure(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "foo", "--count=bar")

	require.Len(t, problems, 1)
	assert.Equal(t, "Invalid value for `count`: `bar` is not a valid integer number", problems[0])
}

func TestParserUnknownFlag(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "foo", "--bogus", "value")

	require.Len(t, problems, 1)
	assert.Equal(t, "Unexpected value `value`", problems[0])
}

func TestParserUnknownFlagWithoutValue(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "foo", "--bogus")

	require.Len(t, problems, 1)
	assert.Equal(t, "Missing value for `bogus`", problems[0])
}

func TestParserOverflowPositional(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "foo", "spare")

	require.Len(t, problems, 1)
	assert.Equal(t, "Unexpected value `spare`", problems[0])
}

func TestParserAccumulatesAllProblems(t *testing.T) {
	_, problems := resolve(t, buildParams(t), "--count=bar", "extra")

	// Missing positional, bad count, and the overflow token all report.
	require.Len(t, problems, 3)
	assert.Contains(t, problems, "Missing value for `name`")
	assert.Contains(t, problems, "Invalid value for `count`: `bar` is not a valid integer number")
	assert.Contains(t, problems, "Unexpected value `extra`")
}

func TestParserAllowMissingLeavesParamsAbsent(t *testing.T) {
	p := NewParser(buildParams(t))
	binding, problems := p.Finish(true)

	require.Empty(t, problems)
	assert.False(t, binding.Has("name"))
	// Defaults still apply even when missing values are tolerated.
	assert.Equal(t, 1, binding.Int("count", 0))
	assert.False(t, binding.Bool("dry-run", true))
}

func TestParserBindingKeyOverride(t *testing.T) {
	params := NewParams().
		Flag("output-dir", String()).BindAs("out").Default(".").Done()

	binding, problems := resolve(t, params, "--output-dir", "/tmp")

	require.Empty(t, problems)
	assert.Equal(t, "/tmp", binding.String("out", ""))
	assert.False(t, binding.Has("output-dir"))
}

func TestParserOptionalWithNilDefault(t *testing.T) {
	params := NewParams().
		Positional("target", Optional(String())).Default(nil).Done()

	binding, problems := resolve(t, params)

	require.Empty(t, problems)
	v, ok := binding.Get("target")
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestSplitLongFlag(t *testing.T) {
	tests := []struct {
		token    string
		name     string
		value    string
		hasValue bool
		ok       bool
	}{
		{"--count", "count", "", false, true},
		{"--count=5", "count", "5", true, true},
		{"--dry-run", "dry-run", "", false, true},
		{"--x=a=b", "x", "a=b", true, true},
		{"--", "", "", false, false},
		{"--=5", "", "", false, false},
		{"-c", "", "", false, false},
		{"plain", "", "", false, false},
		{"--bad name", "", "", false, false},
	}

	for _, tt := range tests {
		name, value, hasValue, ok := splitLongFlag(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		if tt.ok {
			assert.Equal(t, tt.name, name, "token %q", tt.token)
			assert.Equal(t, tt.value, value, "token %q", tt.token)
			assert.Equal(t, tt.hasValue, hasValue, "token %q", tt.token)
		}
	}
}

func TestSplitShortFlags(t *testing.T) {
	letters, value, hasValue, ok := splitShortFlags("-abc=x")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, letters)
	assert.Equal(t, "x", value)
	assert.True(t, hasValue)

	// Digits make it a value, not a flag cluster.
	_, _, _, ok = splitShortFlags("-1")
	assert.False(t, ok)

	_, _, _, ok = splitShortFlags("--long")
	assert.False(t, ok)

	_, _, _, ok = splitShortFlags("-")
	assert.False(t, ok)
}
