package models

// Canonical catalog column names
const (
	FieldEvent       = "event"
	FieldSeason      = "season"
	FieldGender      = "gender"
	FieldSkin        = "skin"
	FieldTopwear     = "topwear"
	FieldBottomwear  = "bottomwear"
	FieldFootwear    = "footwear"
	FieldAccessories = "accessories"
)

// Season buckets
const (
	SeasonSummer = "summer"
	SeasonWinter = "winter"
	SeasonRainy  = "rainy"
)

// ImageFields lists the image slots of an outfit in display order
var ImageFields = []string{FieldTopwear, FieldBottomwear, FieldFootwear, FieldAccessories}

// OutfitRecord represents one catalog entry after canonicalization.
// Filter fields are lowercased; image fields hold normalized URLs.
// Columns that do not map to a canonical key are kept in Extra.
type OutfitRecord struct {
	Event       string            `json:"event"`
	Season      string            `json:"season"`
	Gender      string            `json:"gender"`
	Skin        string            `json:"skin"`
	Topwear     string            `json:"topwear"`
	Bottomwear  string            `json:"bottomwear"`
	Footwear    string            `json:"footwear"`
	Accessories string            `json:"accessories"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// Set assigns a value by canonical key, unknown keys go to Extra
func (r *OutfitRecord) Set(key, value string) {
	switch key {
	case FieldEvent:
		r.Event = value
	case FieldSeason:
		r.Season = value
	case FieldGender:
		r.Gender = value
	case FieldSkin:
		r.Skin = value
	case FieldTopwear:
		r.Topwear = value
	case FieldBottomwear:
		r.Bottomwear = value
	case FieldFootwear:
		r.Footwear = value
	case FieldAccessories:
		r.Accessories = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[key] = value
	}
}

// Get returns the value stored under a canonical or derived key
func (r OutfitRecord) Get(key string) string {
	switch key {
	case FieldEvent:
		return r.Event
	case FieldSeason:
		return r.Season
	case FieldGender:
		return r.Gender
	case FieldSkin:
		return r.Skin
	case FieldTopwear:
		return r.Topwear
	case FieldBottomwear:
		return r.Bottomwear
	case FieldFootwear:
		return r.Footwear
	case FieldAccessories:
		return r.Accessories
	default:
		return r.Extra[key]
	}
}

// FilterQuery holds the matcher filters. An empty string means the filter was not given.
type FilterQuery struct {
	Event  string
	Season string
	Gender string
	Skin   string
}

// CatalogTable is the raw tabular form of a catalog source
type CatalogTable struct {
	Header []string
	Rows   [][]string
}
