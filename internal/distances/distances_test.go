// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package distances

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncreaseDistanceAgreesWithFlat(t *testing.T) {
	a := assert.New(t)

	d := New[int](3) // capacity 4
	flat := make([]int, d.Capacity())

	rng := rand.New(rand.NewSource(0))
	for i := 0; i < d.Capacity(); i++ {
		v := rng.Intn(1000)
		d.IncreaseDistance(i, v)
		flat[i] += v
	}

	a.Equal(flat, d.toFlat())
	for i := 0; i < d.Capacity(); i++ {
		a.Equal(flat[i], d.Distance(i))
	}
}

func TestFromFlatRoundTrip(t *testing.T) {
	a := assert.New(t)

	d := New[int](4) // capacity 8
	for i := 0; i < d.Capacity(); i++ {
		d.IncreaseDistance(i, i+1)
	}

	flat := d.toFlat()
	d2 := New[int](4)
	d2.fromFlat(flat)

	a.Equal(d.g, d2.g)
}

func TestSpliceLaw(t *testing.T) {
	a := assert.New(t)

	// Only the first half is occupied, leaving enough trailing zero
	// slack for an insertion at position 2 not to push out real data.
	d := New[int](4) // capacity 8
	for i := 0; i < d.Capacity()/2; i++ {
		d.IncreaseDistance(i, i+1)
	}
	before := append([]int(nil), d.toFlat()...)

	const n = 3
	d.Splice(2, 2, n)   // insert n zeros at 2
	d.Splice(2, 2+n, 0) // remove them again

	a.Equal(before, d.toFlat())
}

func TestSpliceHalves(t *testing.T) {
	a := assert.New(t)

	const capacity = 4
	ones := New[int](3)
	for i := 0; i < capacity; i++ {
		ones.IncreaseDistance(i, 1)
	}

	firstHalf := make([]int, capacity)
	for i := 0; i < capacity/2; i++ {
		firstHalf[i] = 1
	}

	secondHalf := make([]int, capacity)
	for i := capacity / 2; i < capacity; i++ {
		secondHalf[i] = 1
	}

	d := New[int](3)
	for i := 0; i < capacity; i++ {
		d.IncreaseDistance(i, 1)
	}
	d.Splice(0, capacity/2, 0)
	a.Equal(firstHalf, d.toFlat())

	d = New[int](3)
	for i := 0; i < capacity; i++ {
		d.IncreaseDistance(i, 1)
	}
	d.Splice(0, capacity/2, capacity/2)
	a.Equal(secondHalf, d.toFlat())

	d = New[int](3)
	for i := 0; i < capacity; i++ {
		d.IncreaseDistance(i, 1)
	}
	d.Splice(capacity/2, capacity, 0)
	a.Equal(firstHalf, d.toFlat())
}

func TestLengthIsSumOfGaps(t *testing.T) {
	a := assert.New(t)

	d := New[int](3)
	total := 0
	for i := 0; i < d.Capacity(); i++ {
		d.IncreaseDistance(i, i+2)
		total += i + 2
	}
	a.Equal(total, d.Length())
}

func TestPositionIsPrefixSum(t *testing.T) {
	a := assert.New(t)

	d := New[int](4)
	gaps := []int{4, 2, 3, 1, 5, 2, 7, 1}
	for i, g := range gaps {
		d.IncreaseDistance(i, g)
	}

	sum := 0
	for i := 0; i <= len(gaps); i++ {
		a.Equal(sum, d.Position(i))
		if i < len(gaps) {
			sum += gaps[i]
		}
	}
}

func TestRemoveShiftsGapsLeft(t *testing.T) {
	a := assert.New(t)

	d := New[int](3)
	for i, g := range []int{1, 2, 3, 4} {
		d.IncreaseDistance(i, g)
	}

	d.Remove(1) // drop gap at index 1 (value 2)

	a.Equal(1, d.Distance(0))
	a.Equal(3, d.Distance(1))
	a.Equal(4, d.Distance(2))
	a.Equal(0, d.Distance(3))
}
