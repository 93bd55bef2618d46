package lib

import "sort"

// IndexSet is a sorted, duplicate-free set of board indices.
type IndexSet struct {
	Data []int
}

func (s *IndexSet) Contains(value int) bool {
	idx := sort.SearchInts(s.Data, value)
	return idx < len(s.Data) && s.Data[idx] == value
}

func (s *IndexSet) Add(value int) {
	if !s.Contains(value) {
		s.Data = append(s.Data, value)
		sort.Ints(s.Data)
	}
}

func (s *IndexSet) Remove(value int) {
	idx := sort.SearchInts(s.Data, value)
	length := len(s.Data)
	if idx < length && s.Data[idx] == value {
		s.Data[idx] = s.Data[length-1]
		s.Data = s.Data[:length-1]
		sort.Ints(s.Data)
	}
}

func (s *IndexSet) Len() int {
	return len(s.Data)
}

func (s *IndexSet) Values() []int {
	d := make([]int, len(s.Data))
	copy(d, s.Data)
	return d
}

func (s *IndexSet) Clear() {
	s.Data = s.Data[:0]
}
