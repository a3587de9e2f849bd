package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

// Index is the in-memory phone catalog. It is populated once at startup and
// read-only afterwards, so unsynchronized concurrent reads are safe.
type Index struct {
	phones []domain.Phone
}

func NewIndex(phones []domain.Phone) *Index {
	return &Index{phones: phones}
}

// LoadFile reads catalog records from a JSON file. Callers are expected to
// degrade to an empty catalog on error rather than fail startup.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var phones []domain.Phone
	if err := json.Unmarshal(data, &phones); err != nil {
		return nil, fmt.Errorf("decoding catalog file: %w", err)
	}

	return NewIndex(phones), nil
}

func (i *Index) Len() int {
	return len(i.phones)
}

// All returns every phone in catalog order.
func (i *Index) All() []domain.Phone {
	out := make([]domain.Phone, len(i.phones))
	copy(out, i.phones)
	return out
}

// Names returns every catalog phone name in catalog order.
func (i *Index) Names() []string {
	names := make([]string, len(i.phones))
	for n, p := range i.phones {
		names[n] = p.Name
	}
	return names
}

// SearchByBrand matches brand by case-insensitive equality.
func (i *Index) SearchByBrand(brand string) []domain.Phone {
	var out []domain.Phone
	for _, p := range i.phones {
		if strings.EqualFold(p.Brand, brand) {
			out = append(out, p)
		}
	}
	return out
}

// SearchByMaxPrice returns phones with a known price at or below the ceiling.
func (i *Index) SearchByMaxPrice(maxPrice int) []domain.Phone {
	var out []domain.Phone
	for _, p := range i.phones {
		if p.Price != nil && *p.Price <= maxPrice {
			out = append(out, p)
		}
	}
	return out
}

// SearchByFeature matches phones whose feature list contains the given term
// as a case-insensitive substring.
func (i *Index) SearchByFeature(feature string) []domain.Phone {
	needle := strings.ToLower(feature)
	var out []domain.Phone
	for _, p := range i.phones {
		for _, f := range p.Features {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// SearchByName matches phones whose name contains the given text as a
// case-insensitive substring.
func (i *Index) SearchByName(name string) []domain.Phone {
	needle := strings.ToLower(name)
	var out []domain.Phone
	for _, p := range i.phones {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FindManyByName returns the phones whose names equal (case-insensitively)
// any of the given names, preserving catalog order.
func (i *Index) FindManyByName(names []string) []domain.Phone {
	var out []domain.Phone
	for _, p := range i.phones {
		for _, name := range names {
			if strings.EqualFold(p.Name, name) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
