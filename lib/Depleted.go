package lib

import (
	"encoding/binary"
	"encoding/hex"
	"log"

	"github.com/timshannon/badgerhold/v4"
	"golang.org/x/crypto/sha3"
)

// Fingerprint digests a symmetry-class state. The width is part of the
// key, so one depleted set can safely serve boards of different sizes.
func Fingerprint(width int, queens []int) string {
	hash := sha3.New256()
	buf := make([]byte, 8)

	binary.BigEndian.PutUint64(buf, uint64(width))
	hash.Write(buf)
	for _, q := range queens {
		binary.BigEndian.PutUint64(buf, uint64(q))
		hash.Write(buf)
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// DepletedSet records queen configurations proven to admit no completion.
// Membership can only prune the search, never change reachability, since
// dead states are recorded under all four rotations of their class.
type DepletedSet interface {
	Contains(width int, queens []int) bool
	Record(width int, queens []int)
	Reset()
}

type void int

const empty = void(0)

// MemoryDepletedSet keeps fingerprints for the lifetime of its owner.
type MemoryDepletedSet struct {
	data map[string]void
}

func NewMemoryDepletedSet() *MemoryDepletedSet {
	return &MemoryDepletedSet{data: map[string]void{}}
}

func (m *MemoryDepletedSet) Contains(width int, queens []int) bool {
	_, ok := m.data[Fingerprint(width, queens)]
	return ok
}

func (m *MemoryDepletedSet) Record(width int, queens []int) {
	m.data[Fingerprint(width, queens)] = empty
}

func (m *MemoryDepletedSet) Reset() {
	m.data = map[string]void{}
}

func (m *MemoryDepletedSet) Len() int {
	return len(m.data)
}

// DepletedRecord is the stored form of a dead symmetry-class state.
type DepletedRecord struct {
	Key    string `badgerhold:"key"`
	Width  int
	Queens []int
}

// BadgerDepletedSet persists dead states across runs. Store failures are
// logged and degrade to cache misses; the search itself never fails on
// cache trouble.
type BadgerDepletedSet struct {
	store *badgerhold.Store
}

func OpenBadgerDepletedSet(dir string) (*BadgerDepletedSet, error) {
	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, err
	}

	return &BadgerDepletedSet{store: store}, nil
}

func (b *BadgerDepletedSet) Contains(width int, queens []int) bool {
	record := DepletedRecord{}
	err := b.store.Get(Fingerprint(width, queens), &record)
	if err == badgerhold.ErrNotFound {
		return false
	}
	if err != nil {
		log.Printf("depleted store read: %v", err)
		return false
	}
	return true
}

func (b *BadgerDepletedSet) Record(width int, queens []int) {
	key := Fingerprint(width, queens)
	record := DepletedRecord{
		Key:    key,
		Width:  width,
		Queens: append([]int(nil), queens...),
	}
	if err := b.store.Upsert(key, &record); err != nil {
		log.Printf("depleted store write: %v", err)
	}
}

func (b *BadgerDepletedSet) Reset() {
	if err := b.store.Badger().DropAll(); err != nil {
		log.Printf("depleted store reset: %v", err)
	}
}

func (b *BadgerDepletedSet) Close() error {
	return b.store.Close()
}
