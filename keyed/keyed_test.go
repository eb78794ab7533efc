package keyed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seqtrie "github.com/forestrie/go-seqtrie"
)

func TestSplitStrings(t *testing.T) {
	tr := SplitStrings[string]("/")
	tr.Set("usr/local/bin/ruby", "executable")
	tr.Set("usr/local/etc/nginx", "config")
	tr.Set("bin/bash", "executable")

	v, ok := tr.Get("usr/local/bin/ruby")
	require.True(t, ok)
	require.Equal(t, "executable", v)

	require.Equal(t, 2, tr.CountPrefix("usr/local"))
	require.True(t, tr.HasPrefix("usr"))
	require.Equal(t, 3, tr.Count())

	_, ok = tr.Get("usr/local")
	require.False(t, ok)

	// enumeration decodes paths back into delimited keys
	got := map[string]string{}
	for k, v := range tr.DepthFirst() {
		got[k] = v
	}
	require.Equal(t, map[string]string{
		"usr/local/bin/ruby":  "executable",
		"usr/local/etc/nginx": "config",
		"bin/bash":            "executable",
	}, got)

	// breadth-first yields the shallowest key first
	for k := range tr.BreadthFirst() {
		assert.Equal(t, "bin/bash", k)
		break
	}
}

func TestSubTrieSharesCodec(t *testing.T) {
	tr := SplitStrings[string]("/")
	tr.Set("usr/local/bin/ruby", "executable")

	sub, ok := tr.SubTrie("usr/local")
	require.True(t, ok)

	sub.Set("bin/fish", "shell")
	v, ok := tr.Get("usr/local/bin/fish")
	require.True(t, ok)
	require.Equal(t, "shell", v)

	// keys yielded by the subtrie are relative to its own root
	var keys []string
	for k := range sub.DepthFirst() {
		keys = append(keys, k)
	}
	require.ElementsMatch(t, []string{"bin/ruby", "bin/fish"}, keys)

	_, ok = tr.SubTrie("var")
	require.False(t, ok)
}

func TestGraftDelegates(t *testing.T) {
	tr := Identity[string, int]()
	other := Identity[string, int]()
	other.Set([]string{"x"}, 1)

	require.ErrorIs(t, tr.Graft(nil, other), seqtrie.ErrEmptyPath)
	require.ErrorIs(t, tr.Graft([]string{"a"}, nil), seqtrie.ErrNilTrie)

	require.NoError(t, tr.Graft([]string{"a"}, other))
	v, ok := tr.Get([]string{"a", "x"})
	require.True(t, ok)
	require.Equal(t, 1, v)

	// aliasing passes through the wrapper
	other.Set([]string{"y"}, 2)
	require.True(t, tr.Has([]string{"a", "y"}))
}

func TestRunes(t *testing.T) {
	tr := Runes[int]()
	tr.Set("tea", 1)
	tr.Set("ten", 2)
	tr.Set("t", 3)

	require.Equal(t, 3, tr.CountPrefix("t"))
	require.Equal(t, 2, tr.CountPrefix("te"))
	require.True(t, tr.HasPrefix("te"))
	require.False(t, tr.Has("te"))

	// depth-first yields the shorter key before its extensions
	var keys []string
	for k := range tr.DepthFirst() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"t", "tea", "ten"}, keys)
}

func TestEngineIsAliased(t *testing.T) {
	tr := SplitStrings[int]("/")
	tr.Set("a/b", 1)

	tr.Engine().Set([]string{"a", "c"}, 2)
	v, ok := tr.Get("a/c")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
