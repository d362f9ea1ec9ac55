package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
	"outfit-assistant/utils"
)

// OutfitMatcher selects catalog rows for a query with a relaxation cascade
// Implements OutfitMatcherInterface
type OutfitMatcher struct {
	loader  CatalogLoaderInterface
	shuffle ShuffleFunc
}

// NewOutfitMatcher creates a new OutfitMatcher. A nil shuffle uses the unseeded global source.
func NewOutfitMatcher(loader CatalogLoaderInterface, shuffle ShuffleFunc) *OutfitMatcher {
	return &OutfitMatcher{
		loader:  loader,
		shuffle: defaultShuffle(shuffle),
	}
}

// Ensure OutfitMatcher implements OutfitMatcherInterface
var _ OutfitMatcherInterface = (*OutfitMatcher)(nil)

type outfitPredicate func(models.OutfitRecord) bool

// cascade returns the predicates from strictest to loosest.
// Absent gender or skin only matches records whose field is empty too.
func cascade(q models.FilterQuery) []outfitPredicate {
	event := utils.NormalizeFilterValue(q.Event)
	season := utils.NormalizeFilterValue(q.Season)
	gender := utils.NormalizeFilterValue(q.Gender)
	skin := utils.NormalizeFilterValue(q.Skin)

	return []outfitPredicate{
		func(r models.OutfitRecord) bool {
			return r.Event == event && r.Season == season && r.Gender == gender && r.Skin == skin
		},
		func(r models.OutfitRecord) bool {
			return r.Event == event && r.Season == season && r.Gender == gender
		},
		func(r models.OutfitRecord) bool {
			return r.Event == event && r.Season == season
		},
		func(r models.OutfitRecord) bool {
			return r.Event == event
		},
	}
}

// Match returns the first non-empty cascade level for query. When no level
// matches, up to MaxOutfits random records of the catalog are returned.
// An empty catalog always yields an empty result.
func (m *OutfitMatcher) Match(query models.FilterQuery, catalog []models.OutfitRecord) (matches []models.OutfitRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = models.NewFailure(models.ReasonMatchingFailed, fmt.Errorf("panic while matching: %v", r))
		}
	}()

	if len(catalog) == 0 {
		return []models.OutfitRecord{}, nil
	}

	for _, pred := range cascade(query) {
		var found []models.OutfitRecord
		for _, rec := range catalog {
			if pred(rec) {
				found = append(found, rec)
			}
		}
		if len(found) > 0 {
			return found, nil
		}
	}

	return sampleOutfits(catalog, MaxOutfits, m.shuffle), nil
}

// MatchOrEmpty is the fail-open form of Match
func (m *OutfitMatcher) MatchOrEmpty(ctx context.Context, query models.FilterQuery, catalog []models.OutfitRecord) []models.OutfitRecord {
	matches, err := m.Match(query, catalog)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("❌ Matching error")
		return []models.OutfitRecord{}
	}
	return matches
}

// FindOutfits loads a fresh catalog and matches query against it
func (m *OutfitMatcher) FindOutfits(ctx context.Context, query models.FilterQuery) []models.OutfitRecord {
	catalog := m.loader.LoadOrEmpty(ctx)
	matches := m.MatchOrEmpty(ctx, query, catalog)
	zerolog.Ctx(ctx).Debug().
		Int("catalog_size", len(catalog)).
		Int("matches", len(matches)).
		Msg("🔍 Outfit matching finished")
	return matches
}
