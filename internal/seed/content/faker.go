package content

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// FakerProvider draws names, addresses and review copy from gofakeit with a
// fixed seed, so runs stay reproducible.
type FakerProvider struct {
	f *gofakeit.Faker
}

func NewFakerProvider(seed uint64) *FakerProvider {
	return &FakerProvider{f: gofakeit.New(seed)}
}

func (p *FakerProvider) PersonName() string {
	return p.f.Name()
}

func (p *FakerProvider) CompanyName() string {
	return p.f.Company()
}

func (p *FakerProvider) Email(name string, n int) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", local, n, p.f.DomainName())
}

func (p *FakerProvider) Phone() string {
	return p.f.Phone()
}

func (p *FakerProvider) ProductName(category, fragrance string) string {
	return fmt.Sprintf("%s %s %s", title(fragrance), p.f.AdjectiveDescriptive(), title(category))
}

func (p *FakerProvider) ProductDescription(category, fragrance string) string {
	return fmt.Sprintf("A %s %s candle with notes of %s. %s",
		p.f.AdjectiveDescriptive(), category, fragrance, p.f.Sentence(8))
}

func (p *FakerProvider) Street() string {
	return p.f.Street()
}

func (p *FakerProvider) City() string {
	return p.f.City()
}

func (p *FakerProvider) Region() string {
	return p.f.State()
}

func (p *FakerProvider) PostalCode() string {
	return p.f.Zip()
}

func (p *FakerProvider) ReviewText(rating int) string {
	switch {
	case rating >= 4:
		return fmt.Sprintf("%s %s", p.f.Sentence(6), "Would buy again.")
	case rating == 3:
		return p.f.Sentence(8)
	default:
		return fmt.Sprintf("%s %s", p.f.Sentence(6), "Not what I expected.")
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
