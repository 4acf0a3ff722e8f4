package graph

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// LabelIndex answers "which vertices carry this label". The default lives in
// memory; stores/intint provides one backed by a B+ tree file.
type LabelIndex interface {
	Add(label, id int32) error
	DoFind(label int32, do func(label, id int32) error) error
	Close() error
}

type IndexFactory func() (LabelIndex, error)

type memIndex struct {
	labels *hashtable.LinearHash // types.Int ==> *set.SortedSet
}

func MemoryIndex() (LabelIndex, error) {
	return &memIndex{labels: hashtable.NewLinearHash()}, nil
}

func (m *memIndex) Add(label, id int32) error {
	key := types.Int(label)
	if !m.labels.Has(key) {
		if err := m.labels.Put(key, set.NewSortedSet(10)); err != nil {
			return err
		}
	}
	o, err := m.labels.Get(key)
	if err != nil {
		return err
	}
	return o.(*set.SortedSet).Add(types.Int(id))
}

func (m *memIndex) DoFind(label int32, do func(label, id int32) error) error {
	key := types.Int(label)
	if !m.labels.Has(key) {
		return nil
	}
	o, err := m.labels.Get(key)
	if err != nil {
		return err
	}
	for v, next := o.(*set.SortedSet).Items()(); next != nil; v, next = next() {
		if err := do(label, int32(v.(types.Int))); err != nil {
			return err
		}
	}
	return nil
}

func (m *memIndex) Close() error {
	return nil
}
