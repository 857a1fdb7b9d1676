package catalog

import (
	"embed"
	"fmt"

	"github.com/goccy/go-json"
)

//go:embed data/*.json
var bundled embed.FS

// LoadBundled decodes the seed and tip catalogs compiled into the binary.
// Tips carry no id in the data files, they are numbered in file order.
func LoadBundled() (Bundle, error) {
	var b Bundle

	raw, err := bundled.ReadFile("data/seeds.json")
	if err != nil {
		return b, fmt.Errorf("read seeds: %w", err)
	}
	if err := json.Unmarshal(raw, &b.Seeds); err != nil {
		return b, fmt.Errorf("decode seeds: %w", err)
	}

	raw, err = bundled.ReadFile("data/tips.json")
	if err != nil {
		return b, fmt.Errorf("read tips: %w", err)
	}
	if err := json.Unmarshal(raw, &b.Tips); err != nil {
		return b, fmt.Errorf("decode tips: %w", err)
	}
	for i := range b.Tips {
		b.Tips[i].ID = i + 1
	}

	return b, nil
}
