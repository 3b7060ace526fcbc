package list_test

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"strconv"
	"testing"

	"github.com/sagernet/sing-collections/list"

	"github.com/stretchr/testify/require"
	"lukechampine.com/blake3"
)

func TestEqual(t *testing.T) {
	t.Parallel()
	x := list.New[int]()
	y := list.New[int]()
	for i := 0; i < 10; i++ {
		x.PushBack(i)
		y.PushBack(i)
	}
	require.True(t, list.Equal(x, y))

	z := list.New[int]()
	for i := 1; i < 11; i++ {
		z.PushBack(i)
	}
	require.False(t, list.Equal(x, z))
	require.Equal(t, -1, list.Compare(x, z))
	require.Equal(t, 1, list.Compare(z, x))
	require.Equal(t, 0, list.Compare(x, y))
}

func TestEqualLengthFastPath(t *testing.T) {
	t.Parallel()
	x := list.Of(1, 2, 3)
	y := list.Of(1, 2)
	require.False(t, list.Equal(x, y))
	require.True(t, list.Equal(list.New[int](), list.New[int]()))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()
	x := list.Of(1, 2, 3)
	y := list.Of("1", "2", "3")
	require.True(t, list.EqualFunc(x, y, func(i int, s string) bool {
		return strconv.Itoa(i) == s
	}))
	require.False(t, list.EqualFunc(x, list.Of("1", "2", "4"), func(i int, s string) bool {
		return strconv.Itoa(i) == s
	}))
}

func TestComparePrefix(t *testing.T) {
	t.Parallel()
	short := list.Of(1, 2)
	long := list.Of(1, 2, 3)
	require.Equal(t, -1, list.Compare(short, long))
	require.Equal(t, 1, list.Compare(long, short))
	require.Equal(t, 0, list.Compare(list.New[string](), list.New[string]()))
}

func TestCompareNaN(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	x := list.Of(nan, 1.0)
	y := list.Of(nan, 2.0)
	require.Equal(t, -1, list.Compare(x, y))
	require.Equal(t, 0, list.Compare(list.Of(nan), list.Of(nan)))
	require.Equal(t, -1, list.Compare(list.Of(nan), list.Of(0.0)))
	require.Equal(t, 1, list.Compare(list.Of(0.0), list.Of(nan)))
}

func TestCompareFunc(t *testing.T) {
	t.Parallel()
	x := list.Of("b", "a")
	y := list.Of("B", "C")
	order := list.CompareFunc(x, y, func(a, b string) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	})
	require.Equal(t, 1, order)
}

func hashInt(h hash.Hash, value int) {
	var buffer [8]byte
	binary.BigEndian.PutUint64(buffer[:], uint64(value))
	h.Write(buffer[:])
}

func sumFNV(l *list.List[int]) uint64 {
	h := fnv.New64a()
	list.Hash(h, l, hashInt)
	return h.Sum64()
}

func sumBLAKE3(l *list.List[int]) [32]byte {
	h := blake3.New(32, nil)
	list.Hash(h, l, hashInt)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

func TestHashStability(t *testing.T) {
	t.Parallel()
	x := list.New[int]()
	y := list.New[int]()
	for i := 0; i < 10; i++ {
		x.PushBack(i)
		y.PushBack(i)
	}
	require.Equal(t, sumFNV(x), sumFNV(y))
	require.Equal(t, sumBLAKE3(x), sumBLAKE3(y))

	z := x.Clone()
	z.PushBack(10)
	require.NotEqual(t, sumFNV(x), sumFNV(z))
	require.NotEqual(t, sumBLAKE3(x), sumBLAKE3(z))
}

func TestHashLengthPrefix(t *testing.T) {
	t.Parallel()
	// [0] and [] diverge on the length prefix alone, the empty list
	// contributes no element bytes of its own.
	zero := list.Of(0)
	empty := list.New[int]()
	require.NotEqual(t, sumFNV(zero), sumFNV(empty))

	// Same elements, different order: the element feed decides.
	require.NotEqual(t, sumFNV(list.Of(1, 2)), sumFNV(list.Of(2, 1)))
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()
	source := list.Of(1, 2, 3)
	clone := source.Clone()
	require.True(t, list.Equal(source, clone))

	clone.PushBack(4)
	*clone.FrontMut() = -1
	require.Equal(t, []int{1, 2, 3}, source.Array())
	require.Equal(t, []int{-1, 2, 3, 4}, clone.Array())

	empty := list.New[int]().Clone()
	require.True(t, empty.IsEmpty())
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "[]", list.New[int]().String())
	require.Equal(t, "[0 1 2]", list.Of(0, 1, 2).String())
	require.Equal(t, "[a b]", list.Of("a", "b").String())
}
