package intint

import "testing"
import "github.com/stretchr/testify/assert"

func TestSerializeOrder(t *testing.T) {
	x := assert.New(t)
	for _, i := range []int32{-5, -1, 0, 1, 7, 1 << 20} {
		x.Equal(i, DeserializeInt32(SerializeInt32(i)))
	}
	a := SerializeInt32(-1)
	b := SerializeInt32(3)
	x.True(string(a) < string(b))
}

func TestLabelIndex(t *testing.T) {
	x := assert.New(t)
	b, err := AnonBpTree()
	x.Nil(err)
	defer b.Delete()
	x.Nil(b.Add(2, 10))
	x.Nil(b.Add(1, 11))
	x.Nil(b.Add(2, 12))
	x.Nil(b.Add(-3, 13))
	x.Equal(4, b.Size())

	ids := make([]int32, 0)
	x.Nil(b.DoFind(2, func(label, id int32) error {
		x.Equal(int32(2), label)
		ids = append(ids, id)
		return nil
	}))
	x.ElementsMatch([]int32{10, 12}, ids)

	c, err := b.Count(2)
	x.Nil(err)
	x.Equal(2, c)
	has, err := b.Has(5)
	x.Nil(err)
	x.False(has)

	labels := make([]int32, 0)
	x.Nil(DoKey(b.Labels, func(l int32) error {
		if len(labels) == 0 || labels[len(labels)-1] != l {
			labels = append(labels, l)
		}
		return nil
	}))
	x.Equal([]int32{-3, 1, 2}, labels)

	x.Nil(b.Remove(2, func(id int32) bool { return id == 10 }))
	c, err = b.Count(2)
	x.Nil(err)
	x.Equal(1, c)
}
