package content

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	staticFirstNames = []string{"Camila", "Santiago", "Valentina", "Mateo", "Isabella", "Sebastian", "Lucia", "Andres", "Mariana", "Daniel"}
	staticLastNames  = []string{"Garcia", "Rodriguez", "Martinez", "Lopez", "Hernandez", "Gonzalez", "Perez", "Ramirez", "Torres", "Castro"}
	staticCompanies  = []string{"Luz del Valle", "Cera Andina", "Aromas del Sur", "Velas Bogota", "Casa Fragante", "Monte Cirio"}
	staticAdjectives = []string{"Amber", "Golden", "Quiet", "Warm", "Midnight", "Coastal", "Rustic", "Velvet"}
	staticStreets    = []string{"Calle 45 #12-30", "Carrera 7 #85-14", "Avenida Caracas #60-22", "Calle 100 #15-41", "Carrera 50 #26-08"}
	staticCities     = []string{"Bogota", "Medellin", "Cali", "Barranquilla", "Bucaramanga", "Pereira"}
	staticRegions    = []string{"Cundinamarca", "Antioquia", "Valle del Cauca", "Atlantico", "Santander", "Risaralda"}

	staticGoodReviews = []string{
		"Lovely scent that fills the whole room.",
		"Burns evenly and lasts far longer than expected.",
		"Beautiful packaging, made a great gift.",
	}
	staticMidReviews = []string{
		"Decent candle, though the scent fades quickly.",
		"Fine for the price, nothing remarkable.",
	}
	staticBadReviews = []string{
		"The fragrance was much weaker than described.",
		"Arrived with a cracked jar, disappointing.",
	}
)

// StaticProvider composes content from fixed wordlists. It needs no external
// data and is the deterministic fallback for tests.
type StaticProvider struct {
	rng *rand.Rand
}

func NewStaticProvider(seed uint64) *StaticProvider {
	return &StaticProvider{rng: rand.New(rand.NewPCG(seed, 0x5eed))}
}

func (p *StaticProvider) pick(list []string) string {
	return list[p.rng.IntN(len(list))]
}

func (p *StaticProvider) PersonName() string {
	return p.pick(staticFirstNames) + " " + p.pick(staticLastNames)
}

func (p *StaticProvider) CompanyName() string {
	return p.pick(staticCompanies)
}

func (p *StaticProvider) Email(name string, n int) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@example.com", local, n)
}

func (p *StaticProvider) Phone() string {
	return fmt.Sprintf("+57 3%02d %03d %04d", p.rng.IntN(100), p.rng.IntN(1000), p.rng.IntN(10000))
}

func (p *StaticProvider) ProductName(category, fragrance string) string {
	return fmt.Sprintf("%s %s %s", p.pick(staticAdjectives), title(fragrance), title(category))
}

func (p *StaticProvider) ProductDescription(category, fragrance string) string {
	return fmt.Sprintf("Hand-poured %s candle with a %s finish.", strings.ReplaceAll(category, "_", " "), fragrance)
}

func (p *StaticProvider) Street() string {
	return p.pick(staticStreets)
}

func (p *StaticProvider) City() string {
	return p.pick(staticCities)
}

func (p *StaticProvider) Region() string {
	return p.pick(staticRegions)
}

func (p *StaticProvider) PostalCode() string {
	return fmt.Sprintf("%06d", p.rng.IntN(1000000))
}

func (p *StaticProvider) ReviewText(rating int) string {
	switch {
	case rating >= 4:
		return p.pick(staticGoodReviews)
	case rating == 3:
		return p.pick(staticMidReviews)
	default:
		return p.pick(staticBadReviews)
	}
}
