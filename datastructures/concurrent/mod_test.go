package concurrent_test

import (
	"sync"
	"testing"

	"github.com/minotor-team/socialsim/datastructures/concurrent"
	"github.com/stretchr/testify/require"
)

func Test_Set_Add_Is_Idempotent(t *testing.T) {
	s := concurrent.NewSet[string]()
	require.True(t, s.Add("alice"))
	require.False(t, s.Add("alice"))
	require.Equal(t, uint(1), s.Size())
	require.True(t, s.Contains("alice"))
}

func Test_Set_Remove_Reports_Membership(t *testing.T) {
	s := concurrent.NewSet[string]()
	require.False(t, s.Remove("bob"))
	s.Add("bob")
	require.True(t, s.Remove("bob"))
	require.False(t, s.Contains("bob"))
}

func Test_Set_Values_Is_A_Snapshot(t *testing.T) {
	s := concurrent.NewSet[int]()
	s.Add(1)
	s.Add(2)
	values := s.Values()
	s.Add(3)
	require.Equal(t, 2, values.Size())
	require.True(t, values.Contains(1))
	require.False(t, values.Contains(3))
}

func Test_Slice_Keeps_Order(t *testing.T) {
	slice := concurrent.NewSlice[string]()
	slice.Append("a")
	slice.Append("b")
	slice.Append("a")
	require.Equal(t, []string{"a", "b", "a"}, slice.Elements())
	require.Equal(t, 3, slice.Len())
	require.Equal(t, "b", slice.Get(1))

	found, ok := slice.Find(func(s string) bool { return s == "b" })
	require.True(t, ok)
	require.Equal(t, "b", found)

	_, ok = slice.Find(func(s string) bool { return s == "c" })
	require.False(t, ok)
}

func Test_Slice_Concurrent_Append(t *testing.T) {
	slice := concurrent.NewSlice[int]()
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			slice.Append(v)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, slice.Len())
}

func Test_Map_AddIfAbsent(t *testing.T) {
	m := concurrent.NewMap[string, int]()
	require.True(t, m.AddIfAbsent("x", 1))
	require.False(t, m.AddIfAbsent("x", 2))
	v, ok := m.Get("x")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, map[string]int{"x": 1}, m.Entries())
	require.True(t, m.Delete("x"))
	require.False(t, m.Delete("x"))
	require.Equal(t, 0, m.Len())
}
