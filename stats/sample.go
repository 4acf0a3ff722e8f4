package stats

import (
	"log"
	"math/rand"
)

func Srange(size int) []int {
	sample := make([]int, 0, size)
	for i := 0; i < size; i++ {
		sample = append(sample, i)
	}
	return sample
}

// Pick removes a uniformly chosen item from items. The order of the
// remaining items is not preserved.
func Pick(rnd *rand.Rand, items []int) ([]int, int) {
	i := rnd.Intn(len(items))
	item := items[i]
	items[i] = items[len(items)-1]
	return items[:len(items)-1], item
}

func Min(items []int, f func(item int) float64) (arg int, min float64) {
	arg = -1
	for _, i := range items {
		d := f(i)
		if d < min || arg < 0 {
			min = d
			arg = i
		}
	}
	return arg, min
}

// Max returns the first item with the largest f(item).
func Max(items []int, f func(item int) float64) (arg int, max float64) {
	arg = -1
	for _, i := range items {
		d := f(i)
		if d > max || arg < 0 {
			max = d
			arg = i
		}
	}
	if arg < 0 {
		log.Panic("arg < 0")
	}
	return arg, max
}
