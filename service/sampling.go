package service

import (
	"math/rand"

	"outfit-assistant/models"
)

// ShuffleFunc has the signature of rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// MaxOutfits is the largest number of outfits sampled or shown per request
const MaxOutfits = 3

func defaultShuffle(shuffle ShuffleFunc) ShuffleFunc {
	if shuffle == nil {
		return rand.Shuffle
	}
	return shuffle
}

// sampleOutfits draws up to k records uniformly at random without replacement.
// The input slice is not modified.
func sampleOutfits(records []models.OutfitRecord, k int, shuffle ShuffleFunc) []models.OutfitRecord {
	pool := make([]models.OutfitRecord, len(records))
	copy(pool, records)
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if k < len(pool) {
		pool = pool[:k]
	}
	return pool
}
