package heap

import stdheap "container/heap"

// vacancies is a min-heap of vacant slot indices. It gives Allocate the
// "lowest-index vacant slot" policy in O(log n) instead of a linear scan.
type vacancies []int

func (v vacancies) Len() int            { return len(v) }
func (v vacancies) Less(i, j int) bool  { return v[i] < v[j] }
func (v vacancies) Swap(i, j int)       { v[i], v[j] = v[j], v[i] }
func (v *vacancies) Push(x interface{}) { *v = append(*v, x.(int)) }
func (v *vacancies) Pop() interface{} {
	old := *v
	n := len(old)
	x := old[n-1]
	*v = old[:n-1]
	return x
}

func (v *vacancies) push(i int) { stdheap.Push(v, i) }
func (v *vacancies) pop() int   { return stdheap.Pop(v).(int) }
