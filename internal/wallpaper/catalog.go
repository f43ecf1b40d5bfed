package wallpaper

import (
	"slices"
)

// Catalog is the deduplicated set of known images. The JSON shape matches
// the archive response body, so the same type decodes remote metadata and
// round-trips through the state file. Insertion order is not meaningful;
// consumers sort by date when order matters.
type Catalog struct {
	Images []Image `json:"images"`
}

// Contains reports whether an identity-equal record is already present.
func (c *Catalog) Contains(img Image) bool {
	key := img.identity()
	for _, existing := range c.Images {
		if existing.identity() == key {
			return true
		}
	}
	return false
}

// Insert adds img unless an identity-equal record already exists. The first
// record wins; a later duplicate is discarded, not overwritten. Reports
// whether the record was added.
func (c *Catalog) Insert(img Image) bool {
	if c.Contains(img) {
		return false
	}
	c.Images = append(c.Images, img)
	return true
}

// Sorted returns a copy of the images ordered by start date, ascending.
func (c *Catalog) Sorted() []Image {
	sorted := slices.Clone(c.Images)
	slices.SortFunc(sorted, func(a, b Image) int {
		return a.FullStartDate.Compare(b.FullStartDate.Time)
	})
	return sorted
}

// Latest returns the most recently started image, if any.
func (c *Catalog) Latest() (Image, bool) {
	if len(c.Images) == 0 {
		return Image{}, false
	}
	latest := c.Images[0]
	for _, img := range c.Images[1:] {
		if img.FullStartDate.After(latest.FullStartDate.Time) {
			latest = img
		}
	}
	return latest, true
}
