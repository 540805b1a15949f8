// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/plist"
	"code.hybscloud.com/plist/structeq"
)

func TestConstructCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	l := plist.New(src)
	src[0] = 99

	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, 3, l.Count())
	assert.False(t, l.IsEmpty())
}

func TestFromSeq(t *testing.T) {
	l := plist.FromSeq(slices.Values([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, l.ToSlice())
}

func TestZeroListIsEmpty(t *testing.T) {
	var l plist.List[[]int]

	assert.True(t, l.IsEmpty())
	_, ok := l.Head()
	assert.False(t, ok)
	_, ok = l.Tail()
	assert.False(t, ok)
	assert.Equal(t, "[]", l.String())

	grown := l.Append([]int{1}, []int{2})
	assert.Equal(t, 2, grown.Count())
	assert.True(t, grown.Equal(plist.NewFunc(nil, [][]int{{1}, {2}})))
	assert.True(t, l.IsEmpty())
}

func TestHeadTail(t *testing.T) {
	l := plist.Of(1, 2, 3)

	h, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, 1, h)
	assert.Equal(t, 1, l.MustHead())

	tail, ok := l.Tail()
	require.True(t, ok)
	assert.Equal(t, []int{2, 3}, tail.ToSlice())
	assert.True(t, l.MustTail().Equal(tail))

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last)
	init, ok := l.Init()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, init.ToSlice())
}

func TestEmptyAccess(t *testing.T) {
	l := plist.Of[int]()

	_, ok := l.Head()
	assert.False(t, ok)
	tail, ok := l.Tail()
	assert.False(t, ok)
	assert.True(t, tail.IsEmpty())
	_, ok = l.Last()
	assert.False(t, ok)
	_, ok = l.Init()
	assert.False(t, ok)

	assert.PanicsWithError(t, "MustHead: plist: empty list", func() { l.MustHead() })
	assert.PanicsWithError(t, "MustTail: plist: empty list", func() { l.MustTail() })
}

func TestElementAt(t *testing.T) {
	l := plist.Of("a", "b", "c")
	s, _ := l.Slice(1)

	v, ok := s.ElementAt(0)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	v, ok = s.ElementAt(1)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	for _, i := range []int{-1, 2, 100} {
		_, ok = s.ElementAt(i)
		assert.False(t, ok, "ElementAt(%d)", i)
	}
}

func TestSlice(t *testing.T) {
	l := plist.Of(1, 2, 3)

	for i := range 4 {
		s, err := l.Slice(i)
		require.NoError(t, err)
		assert.Equal(t, 3-i, s.Count())
	}
	s, err := l.Slice(3)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	for _, i := range []int{-1, 4, 5} {
		s, err := l.Slice(i)
		assert.ErrorIs(t, err, plist.ErrOutOfRange, "Slice(%d)", i)
		assert.True(t, s.IsEmpty())
	}
}

func TestSliceN(t *testing.T) {
	l := plist.Of(1, 2, 3, 4, 5)

	s, err := l.SliceN(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, s.ToSlice())

	inner, err := s.SliceN(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, inner.ToSlice())

	empty, err := l.SliceN(5, 0)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	cases := [][2]int{{-1, 1}, {0, 6}, {4, 2}, {1, -1}, {6, 0}}
	for _, c := range cases {
		_, err := l.SliceN(c[0], c[1])
		assert.ErrorIs(t, err, plist.ErrOutOfRange, "SliceN(%d, %d)", c[0], c[1])
	}

	// A window never reaches outside its parent, even if the store is longer.
	_, err = s.SliceN(2, 2)
	assert.ErrorIs(t, err, plist.ErrOutOfRange)
}

func TestTakeSkip(t *testing.T) {
	l := plist.Of(1, 2, 3)

	assert.Equal(t, []int{1, 2}, l.Take(2).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, l.Take(10).ToSlice())
	assert.True(t, l.Take(-1).IsEmpty())
	assert.Equal(t, []int{3}, l.Skip(2).ToSlice())
	assert.True(t, l.Skip(10).IsEmpty())
	assert.Equal(t, []int{1, 2, 3}, l.Skip(-1).ToSlice())
}

func TestAppendIsolation(t *testing.T) {
	v0 := plist.Of(1, 2, 3)
	v1 := v0.Append(4)

	assert.Equal(t, 3, v0.Count())
	v, ok := v0.ElementAt(2)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = v0.ElementAt(3)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, v1.ToSlice())
}

func TestAppendBehindTipForks(t *testing.T) {
	v0 := plist.Of(1, 2, 3)
	v1 := v0.Append(4)
	v2 := v0.Append(5)

	assert.Equal(t, []int{1, 2, 3}, v0.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, v1.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 5}, v2.ToSlice())

	// A prefix of the tip is also behind it.
	head := v1.Take(2)
	assert.Equal(t, []int{1, 2, 9}, head.Append(9).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, v1.ToSlice())
}

func TestAppendFromSlicedTip(t *testing.T) {
	v := plist.Of(1, 2, 3)
	tail := v.MustTail()
	grown := tail.Append(4, 5)

	assert.Equal(t, []int{2, 3, 4, 5}, grown.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
}

func TestAppendVariants(t *testing.T) {
	l := plist.Of(1)

	assert.True(t, l.Append().Equal(l))
	assert.Equal(t, []int{1, 2, 3}, l.AppendSeq(slices.Values([]int{2, 3})).ToSlice())
	assert.Equal(t, []int{1, 1}, l.AppendList(l).ToSlice())

	// Draining a sequence over the same lineage before locking.
	grown := l.Append(2)
	again := grown.AppendSeq(grown.All())
	assert.Equal(t, []int{1, 2, 1, 2}, again.ToSlice())
}

func TestPrepend(t *testing.T) {
	v0 := plist.Of(3, 4)
	v1 := v0.Prepend(1, 2)
	v2 := v0.PrependSeq(slices.Values([]int{0}))

	assert.Equal(t, []int{1, 2, 3, 4}, v1.ToSlice())
	assert.Equal(t, []int{0, 3, 4}, v2.ToSlice())
	assert.Equal(t, []int{3, 4}, v0.ToSlice())
	assert.True(t, v0.Prepend().Equal(v0))

	// The prepended list has its own store: appending to it leaves v0's
	// tip free.
	_ = v1.Append(5)
	assert.Equal(t, []int{3, 4, 6}, v0.Append(6).ToSlice())
}

func TestEqualAcrossStores(t *testing.T) {
	a := plist.Of(1, 2, 3)
	b := plist.Of(1, 2, 3)
	c, _ := plist.Of(0, 1, 2, 3, 4).SliceN(1, 3)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.True(t, c.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), c.Hash())

	assert.False(t, a.Equal(plist.Of(1, 2)))
	assert.False(t, a.Equal(plist.Of(1, 2, 4)))
	assert.NotEqual(t, a.Hash(), plist.Of(3, 2, 1).Hash())

	assert.True(t, a.EqualSeq(slices.Values([]int{1, 2, 3})))
	assert.False(t, a.EqualSeq(slices.Values([]int{1, 2, 3, 4})))
	assert.False(t, a.EqualSeq(slices.Values([]int{1, 2})))
	assert.True(t, plist.Of[int]().Equal(plist.Of[int]()))
}

func TestCustomEquality(t *testing.T) {
	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	hash := func(s string) uint64 {
		var h uint64
		for _, r := range strings.ToLower(s) {
			h = h*31 + uint64(r)
		}
		return h
	}
	a := plist.New([]string{"Go", "LIST"}, plist.WithEqual(fold), plist.WithHasher(hash))
	b := plist.New([]string{"go", "list"}, plist.WithEqual(fold), plist.WithHasher(hash))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, plist.Of("Go", "LIST").Equal(plist.Of("go", "list")))

	// Views derived from a keep its equality.
	assert.True(t, a.MustTail().Append("x").Equal(plist.Of("list", "X")))
}

func TestNewFuncStructural(t *testing.T) {
	a := plist.NewFunc(nil, [][]int{{1, 2}, {3}})
	b := plist.NewFunc(nil, [][]int{{1, 2}, {3}})
	c := plist.NewFunc(slices.Equal[[]int], [][]int{{1, 2}, {3}}, plist.WithHasher(structeq.Default[[]int]))

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(plist.NewFunc(nil, [][]int{{1}, {2, 3}})))
}

func TestHashAcrossConstructionPaths(t *testing.T) {
	want := plist.Of(1, 2, 3)

	var zero plist.List[int]
	var decoded plist.List[int]
	require.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), &decoded))
	filtered := plist.Of(0, 1, 2, 3).Filter(func(v int) bool { return v > 0 })
	mapped := plist.Map(plist.Of(0, 1, 2), func(v int) int { return v + 1 })
	funced := plist.NewFunc(nil, []int{1, 2, 3})

	paths := map[string]plist.List[int]{
		"zero append": zero.Append(1, 2, 3),
		"json":        decoded,
		"filter":      filtered,
		"map":         mapped,
		"new func":    funced,
		"prepend":     plist.Of(3).Prepend(1, 2),
		"from seq":    plist.FromSeq(slices.Values([]int{1, 2, 3})),
	}
	for name, l := range paths {
		t.Run(name, func(t *testing.T) {
			require.True(t, l.Equal(want))
			require.True(t, want.Equal(l))
			assert.Equal(t, want.Hash(), l.Hash())
		})
	}
}

func TestCustomEqualityWithoutHasher(t *testing.T) {
	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	a := plist.New([]string{"Go", "LIST"}, plist.WithEqual(fold))
	b := plist.New([]string{"go", "list"}, plist.WithEqual(fold))

	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	pairs := plist.MapFunc(plist.Of("Go"), func(s string) string { return s }, fold)
	assert.Equal(t, pairs.Hash(), plist.MapFunc(plist.Of("gO"), func(s string) string { return s }, fold).Hash())
}

func TestEqualConsultsEqualityOnSameView(t *testing.T) {
	nan := plist.Of(math.NaN())
	assert.False(t, nan.Equal(nan))
	assert.False(t, nan.Equal(plist.Of(math.NaN())))

	l := plist.Of(1, 2)
	assert.True(t, l.Equal(l))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", plist.Of(1, 2, 3).String())
	assert.Equal(t, "[]", plist.Of[int]().String())
}
