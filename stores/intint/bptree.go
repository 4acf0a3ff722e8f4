package intint

import (
	"sync"
)

import (
	"github.com/timtadh/fs2"
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// MultiMap maps a vertex label onto the ids of the host vertices carrying it.
type MultiMap interface {
	Labels() (KeyIterator, error)
	Find(label int32) (Iterator, error)
	DoFind(label int32, do func(label, id int32) error) error
	Has(label int32) (bool, error)
	Count(label int32) (int, error)
	Add(label, id int32) error
	Remove(label int32, where func(id int32) bool) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (int32, int32, error, Iterator)
type KeyIterator func() (int32, error, KeyIterator)

func Do(run func() (Iterator, error), do func(label, id int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var label, id int32
	for label, id, err, kvi = kvi(); kvi != nil; label, id, err, kvi = kvi() {
		e := do(label, id)
		if e != nil {
			return e
		}
	}
	return err
}

func DoKey(run func() (KeyIterator, error), do func(int32) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var item int32
	for item, err, it = it(); it != nil; item, err, it = it() {
		e := do(item)
		if e != nil {
			return e
		}
	}
	return err
}

// BpTree is a MultiMap kept in an fs2 B+ tree, either anonymous (memory
// mapped, no backing file) or in a file that is removed by Delete.
type BpTree struct {
	bf    *fmap.BlockFile
	bpt   *bptree.BpTree
	mutex sync.Mutex
}

func AnonBpTree() (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func NewBpTree(path string) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func newBpTree(bf *fmap.BlockFile) (*BpTree, error) {
	bpt, err := bptree.New(bf, 4, 4)
	if err != nil {
		return nil, err
	}
	return &BpTree{bf: bf, bpt: bpt}, nil
}

func (b *BpTree) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bf.Close()
}

func (b *BpTree) Delete() error {
	err := b.Close()
	if err != nil {
		return err
	}
	if b.bf.Path() != "" {
		return b.bf.Remove()
	}
	return nil
}

func (b *BpTree) Size() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Size()
}

func (b *BpTree) Add(label, id int32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Add(SerializeInt32(label), SerializeInt32(id))
}

func (b *BpTree) Count(label int32) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Count(SerializeInt32(label))
}

func (b *BpTree) Has(label int32) (bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Has(SerializeInt32(label))
}

func (b *BpTree) kvIter(kvi fs2.Iterator) (it Iterator) {
	it = func() (label, id int32, err error, _ Iterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k, v []byte
		k, v, err, kvi = kvi()
		if err != nil {
			return 0, 0, err, nil
		}
		if kvi == nil {
			return 0, 0, nil, nil
		}
		return DeserializeInt32(k), DeserializeInt32(v), nil, it
	}
	return it
}

func (b *BpTree) keyIter(raw fs2.ItemIterator) (it KeyIterator) {
	it = func() (label int32, err error, _ KeyIterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k []byte
		k, err, raw = raw()
		if err != nil {
			return 0, err, nil
		}
		if raw == nil {
			return 0, nil, nil
		}
		return DeserializeInt32(k), nil, it
	}
	return it
}

// Labels iterates the distinct labels in ascending order.
func (b *BpTree) Labels() (it KeyIterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Keys()
	if err != nil {
		return nil, err
	}
	return b.keyIter(raw), nil
}

func (b *BpTree) Find(label int32) (it Iterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Find(SerializeInt32(label))
	if err != nil {
		return nil, err
	}
	return b.kvIter(raw), nil
}

func (b *BpTree) DoFind(label int32, do func(label, id int32) error) error {
	return Do(func() (Iterator, error) { return b.Find(label) }, do)
}

func (b *BpTree) Remove(label int32, where func(id int32) bool) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Remove(SerializeInt32(label), func(bytes []byte) bool {
		return where(DeserializeInt32(bytes))
	})
}
