package kk

import "fmt"

// Residue returns the Karmarkar–Karp residue of nums.
// The input slice is left untouched.
//
// Contract:
//   - len(nums) ≥ 1 (else ErrEmptyInstance).
//   - every element ≥ 0 (else ErrNegativeWeight); zeros are allowed.
//
// Complexity: O(n log n) time, O(n) space.
func Residue(nums []int64) (int64, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInstance
	}
	buf := make([]int64, len(nums))
	copy(buf, nums)

	return ReduceInPlace(buf)
}

// ReduceInPlace is Residue without the defensive copy: nums is used as heap
// storage and its contents are unspecified afterwards. Meant for hot paths
// that own a scratch buffer (e.g. prepartitioned scoring).
//
// Complexity: O(n log n) time, O(1) extra space.
func ReduceInPlace(nums []int64) (int64, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInstance
	}

	var i int
	for i = range nums {
		if nums[i] < 0 {
			return 0, fmt.Errorf("%w: index %d value %d", ErrNegativeWeight, i, nums[i])
		}
	}

	pq := NewMaxHeap(nums)

	var a, b int64
	for pq.Len() > 1 {
		// Two largest values a ≥ b; the heap guarantees the order.
		a, _ = pq.ExtractMax()
		b, _ = pq.ExtractMax()
		pq.Insert(a - b)
	}

	last, _ := pq.ExtractMax()

	return last, nil
}
