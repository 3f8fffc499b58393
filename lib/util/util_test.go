package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsteward/mysqldiff/lib/util"
)

func TestOrderedMap(t *testing.T) {
	m := util.NewOrderedMapOfSize[string, int](2)
	m.Insert("b", 1).Insert("a", 2).Insert("b", 3)
	assert.True(t, m.InsertIfAbsent("c", 4))
	assert.False(t, m.InsertIfAbsent("a", 5))

	keys := []string{}
	vals := []int{}
	m.ForEach(func(i int, key string, val int) {
		assert.Equal(t, len(keys), i)
		keys = append(keys, key)
		vals = append(vals, val)
	})
	assert.Equal(t, []string{"b", "a", "c"}, keys)
	assert.Equal(t, []int{3, 2, 4}, vals)
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("z"))
	assert.Equal(t, 0, m.Get("z"))
}

func TestSet(t *testing.T) {
	type item struct{ id, label string }
	byID := func(i item) string { return i.id }

	s := util.NewSetFrom[item, string](byID, []item{{"1", "one"}, {"2", "two"}})
	assert.True(t, s.Has(item{"2", "something else"}))
	assert.False(t, s.Has(item{"3", "three"}))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "x", util.MaybeStr(true, "x"))
	assert.Equal(t, "", util.MaybeStr(false, "x"))
	assert.Equal(t, "b", util.CoalesceStr("", "b", "c"))
	assert.Equal(t, "", util.CoalesceStr())

	assert.Equal(t, []string{"a", "b"}, util.SplitTrimTrailing("a,b,,", ","))
	assert.Equal(t, []string{"", "a"}, util.SplitTrimTrailing(",a", ","))
	assert.Equal(t, []string{}, util.SplitTrimTrailing("", ","))
}

func TestIsDir(t *testing.T) {
	assert.True(t, util.IsDir(t.TempDir()))
	assert.False(t, util.IsDir("/does/not/exist"))
}
