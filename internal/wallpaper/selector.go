package wallpaper

import (
	"errors"
	"math/rand/v2"

	"github.com/bingwall-go/bingwall/internal/config"
)

// ErrNoImages is returned when a selection is attempted on an empty catalog.
var ErrNoImages = errors.New("no images tracked yet; run \"bingwall update\" first")

// Pick chooses a weighted-random image file name from the catalog, skipping
// the current image when any alternative exists. Weights are positional over
// the date-ascending candidate list, starting at 1, so newer images are
// proportionally more likely. The catalog is not mutated; the caller decides
// whether to persist the result as the new current image.
func Pick(c *Catalog, cfg *config.Config, current string) (string, error) {
	if len(c.Images) == 0 {
		return "", ErrNoImages
	}

	all := make([]string, 0, len(c.Images))
	candidates := make([]string, 0, len(c.Images))
	for _, img := range c.Sorted() {
		name := img.FileName(cfg)
		all = append(all, name)
		if name != current {
			candidates = append(candidates, name)
		}
	}

	// A singleton catalog whose only image is already current must still
	// yield a result instead of failing.
	if len(candidates) == 0 {
		candidates = all
	}

	n := len(candidates)
	draw := rand.IntN(n * (n + 1) / 2)
	for i, name := range candidates {
		draw -= i + 1
		if draw < 0 {
			return name, nil
		}
	}
	return candidates[n-1], nil
}
