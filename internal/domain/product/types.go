package product

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryAromatic   Category = "aromatic"
	CategoryDecorative Category = "decorative"
	CategoryArtisanal  Category = "artisanal"
	CategorySeasonal   Category = "seasonal"
	CategoryGiftSet    Category = "gift_set"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryAromatic, CategoryDecorative, CategoryArtisanal, CategorySeasonal, CategoryGiftSet:
		return true
	default:
		return false
	}
}

func Categories() []Category {
	return []Category{CategoryAromatic, CategoryDecorative, CategoryArtisanal, CategorySeasonal, CategoryGiftSet}
}

type Fragrance string

const (
	FragranceVanilla    Fragrance = "vanilla"
	FragranceLavender   Fragrance = "lavender"
	FragranceCinnamon   Fragrance = "cinnamon"
	FragranceSandalwood Fragrance = "sandalwood"
	FragranceCitrus     Fragrance = "citrus"
	FragranceJasmine    Fragrance = "jasmine"
	FragranceEucalyptus Fragrance = "eucalyptus"
	FragranceUnscented  Fragrance = "unscented"
)

func (f Fragrance) String() string {
	return string(f)
}

func (f Fragrance) IsValid() bool {
	switch f {
	case FragranceVanilla, FragranceLavender, FragranceCinnamon, FragranceSandalwood,
		FragranceCitrus, FragranceJasmine, FragranceEucalyptus, FragranceUnscented:
		return true
	default:
		return false
	}
}

func Fragrances() []Fragrance {
	return []Fragrance{
		FragranceVanilla, FragranceLavender, FragranceCinnamon, FragranceSandalwood,
		FragranceCitrus, FragranceJasmine, FragranceEucalyptus, FragranceUnscented,
	}
}
