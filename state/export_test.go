package state

import "math/rand"

func SetRand(f func() *rand.Rand) func() {
	previous := newRand
	newRand = f
	return func() {
		newRand = previous
	}
}
