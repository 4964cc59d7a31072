package models

// Category is the fixed equipment taxonomy.
type Category string

const (
	CategoryAudio        Category = "audio"
	CategoryVideo        Category = "video"
	CategoryLighting     Category = "lighting"
	CategoryPresentation Category = "presentation"
	CategoryCables       Category = "cables_accessories"
	CategoryOther        Category = "other"
)

var Categories = []Category{
	CategoryAudio,
	CategoryVideo,
	CategoryLighting,
	CategoryPresentation,
	CategoryCables,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
