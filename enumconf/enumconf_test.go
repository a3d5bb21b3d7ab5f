package enumconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dcshock/enumreg/enum"
)

func newRegistry(t *testing.T) *enum.Registry {
	t.Helper()
	reg := enum.New()
	require.NoError(t, reg.Init())
	return reg
}

type recordingStore struct {
	lines map[string][]string
}

func (s *recordingStore) StoreLine(appType, line string) {
	if s.lines == nil {
		s.lines = make(map[string][]string)
	}
	s.lines[appType] = append(s.lines[appType], line)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key          string
		major, minor uint
		ok           bool
	}{
		{"1:2", 1, 2, true},
		{"0:0", 0, 0, true},
		{"12:31", 12, 31, true},
		{"colors", 0, 0, false},
		{"1:", 0, 0, false},
		{":2", 0, 0, false},
		{"1:2x", 0, 0, false},
		{"1:2:3", 0, 0, false},
		{"-1:2", 0, 0, false},
		{"+1:2", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		major, minor, ok := ParseKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.major, major, tt.key)
		assert.Equal(t, tt.minor, minor, tt.key)
	}
}

func TestScanPair(t *testing.T) {
	tests := []struct {
		tok   string
		value int
		label string
		ok    bool
	}{
		{"10:alpha", 10, "alpha", true},
		{"-3:neg", -3, "neg", true},
		{"+4:pos", 4, "pos", true},
		{"7:a:b:c", 7, "a:b:c", true},
		{"8:", 8, "", true},
		{"badtoken", 0, "", false},
		{"10", 0, "", false},
		{":x", 0, "", false},
		{"1x:y", 0, "", false},
		{"99999999999999999999:big", 0, "", false},
	}
	for _, tt := range tests {
		value, label, ok := scanPair(tt.tok)
		assert.Equal(t, tt.ok, ok, tt.tok)
		assert.Equal(t, tt.value, value, tt.tok)
		assert.Equal(t, tt.label, label, tt.tok)
	}
}

func TestNextWord(t *testing.T) {
	word, rest := nextWord("  abc  def ghi")
	assert.Equal(t, "abc", word)
	assert.Equal(t, "def ghi", rest)

	word, rest = nextWord(`"1:two words" next`)
	assert.Equal(t, "1:two words", word)
	assert.Equal(t, "next", rest)

	word, rest = nextWord(`'say \'hi\''`)
	assert.Equal(t, "say 'hi'", word)
	assert.Empty(t, rest)

	word, rest = nextWord(`"unterminated`)
	assert.Equal(t, "unterminated", word)
	assert.Empty(t, rest)

	word, rest = nextWord("   ")
	assert.Empty(t, word)
	assert.Empty(t, rest)
}

func TestParseDirective_IndexedTruncates(t *testing.T) {
	reg := newRegistry(t)

	res := ParseDirective(reg, "1:2 10:alpha 20:beta badtoken 30:gamma")

	require.True(t, res.Indexed)
	require.True(t, res.Truncated)
	require.Equal(t, 2, res.Added)
	require.Equal(t, []enum.Pair{{Label: "alpha", Value: 10}, {Label: "beta", Value: 20}},
		reg.Indexed().List(1, 2).Pairs())
	_, ok := reg.Indexed().FindValue(1, 2, "gamma")
	require.False(t, ok)
}

func TestParseDirective_Named(t *testing.T) {
	reg := newRegistry(t)

	res := ParseDirective(reg, "colors 1:red 2:green 3:url:http")

	require.False(t, res.Indexed)
	require.Equal(t, "colors", res.Key)
	require.Equal(t, 3, res.Added)
	label, ok := reg.Named().FindLabel("colors", 3)
	require.True(t, ok)
	require.Equal(t, "url:http", label)
	require.Empty(t, reg.Indexed().Keys())
}

func TestParseDirective_RejectedInsertsContinue(t *testing.T) {
	reg := newRegistry(t)

	res := ParseDirective(reg, "colors 1:red 1:crimson 2:green")

	require.Equal(t, 2, res.Added)
	require.Equal(t, 1, res.Rejected)
	require.False(t, res.Truncated)
	label, _ := reg.Named().FindLabel("colors", 1)
	require.Equal(t, "red", label)
}

func TestParseDirective_OutOfBoundsKey(t *testing.T) {
	reg := newRegistry(t)

	res := ParseDirective(reg, "99:0 1:a 2:b")

	require.True(t, res.Indexed)
	require.Zero(t, res.Added)
	require.Equal(t, 2, res.Rejected)
	require.Empty(t, reg.Indexed().Keys())
	require.Empty(t, reg.Named().Names(), "indexed-looking keys never fall back to names")
}

func TestParseDirective_KeyOnly(t *testing.T) {
	reg := newRegistry(t)

	res := ParseDirective(reg, "colors")
	require.Zero(t, res.Added)
	res = ParseDirective(reg, "")
	require.Empty(t, res.Key)

	require.Empty(t, reg.Named().Names())
}

func TestHandler(t *testing.T) {
	reg := newRegistry(t)
	h := Handler(reg)

	require.NoError(t, h(Keyword, "2:5 1:up 2:down junk"))

	v, ok := reg.Indexed().FindValue(2, 5, "down")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestEmit_Single(t *testing.T) {
	var l enum.List
	require.NoError(t, l.Add("up", 1))
	require.NoError(t, l.Add("down", 2))

	require.Equal(t, []string{"enum 1:2 1:up 2:down"}, Emit(&l, "1:2", 0))
}

func TestEmit_Empty(t *testing.T) {
	require.Equal(t, []string{"enum colors"}, Emit(nil, "colors", 0))
}

func TestEmit_Wraps(t *testing.T) {
	var l enum.List
	require.NoError(t, l.Add("aaaa", 1))
	require.NoError(t, l.Add("bbbb", 2))
	require.NoError(t, l.Add("cccc", 3))

	lines := Emit(&l, "k", 20)

	require.Equal(t, []string{"enum k 1:aaaa 2:bbbb", "enum k 3:cccc"}, lines)
	for _, line := range lines {
		require.LessOrEqual(t, len(line), 20)
	}
}

func TestEmit_OverwideTokenKeptWhole(t *testing.T) {
	var l enum.List
	require.NoError(t, l.Add("abcdefghijk", 1))
	require.NoError(t, l.Add("b", 2))
	require.NoError(t, l.Add("c", 3))

	lines := Emit(&l, "k", 10)

	require.Equal(t, []string{"enum k 1:abcdefghijk", "enum k 2:b", "enum k 3:c"}, lines)
}

func TestEmit_QuotesWhitespace(t *testing.T) {
	var l enum.List
	require.NoError(t, l.Add("two words", 1))

	require.Equal(t, []string{`enum "my list" "1:two words"`}, Emit(&l, "my list", 0))
}

func TestStoreIndexedAndNamed(t *testing.T) {
	reg := newRegistry(t)
	require.NoError(t, reg.Indexed().Add(1, 2, "up", 1))
	require.NoError(t, reg.Named().Add("colors", "red", 1))
	store := &recordingStore{}

	StoreIndexed(store, "snmp", reg.Indexed(), 1, 2, 0)
	StoreNamed(store, "snmp", reg.Named(), "colors", 0)

	require.Equal(t, []string{"enum 1:2 1:up", "enum colors 1:red"}, store.lines["snmp"])
}

func TestStoreAll_Order(t *testing.T) {
	reg := newRegistry(t)
	require.NoError(t, reg.Named().Add("sizes", "small", 1))
	require.NoError(t, reg.Indexed().Add(2, 0, "b", 1))
	require.NoError(t, reg.Indexed().Add(0, 3, "a", 1))
	require.NoError(t, reg.Named().Add("colors", "red", 1))
	store := &recordingStore{}

	StoreAll(store, "app", reg, 0)

	require.Equal(t, []string{
		"enum 0:3 1:a",
		"enum 2:0 1:b",
		"enum sizes 1:small",
		"enum colors 1:red",
	}, store.lines["app"])
}

func TestEmitParse_RoundTrip(t *testing.T) {
	src := newRegistry(t)
	for _, p := range []enum.Pair{{Label: "up", Value: 1}, {Label: "down", Value: 2}, {Label: "testing", Value: 3}} {
		require.NoError(t, src.Indexed().Add(1, 4, p.Label, p.Value))
	}

	dst := newRegistry(t)
	for _, line := range Emit(src.Indexed().List(1, 4), "1:4", 0) {
		rest, ok := strings.CutPrefix(line, Keyword+" ")
		require.True(t, ok)
		ParseDirective(dst, rest)
	}

	require.Equal(t, src.Indexed().List(1, 4).Pairs(), dst.Indexed().List(1, 4).Pairs())
}

func TestEmitParse_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var src enum.List
		n := rapid.IntRange(1, 40).Draw(t, "n")
		for i := 0; i < n; i++ {
			label := rapid.StringMatching(`[a-zA-Z0-9:_ -]{0,12}`).Draw(t, "label")
			value := rapid.IntRange(-1000, 1000).Draw(t, "value")
			_ = src.Add(label, value)
		}
		name := rapid.StringMatching(`[a-z][a-z0-9_]{0,10}`).Draw(t, "name")
		width := rapid.IntRange(16, 256).Draw(t, "width")

		dst := enum.New()
		for _, line := range Emit(&src, name, width) {
			rest, ok := strings.CutPrefix(line, Keyword+" ")
			if !ok {
				t.Fatalf("line %q lacks prefix", line)
			}
			ParseDirective(dst, rest)
		}

		got := dst.Named().List(name).Pairs()
		want := src.Pairs()
		if len(got) != len(want) {
			t.Fatalf("got %d pairs, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pair %d: got %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}
