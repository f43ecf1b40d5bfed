// Package wallpaper implements the image catalog, its persisted state and
// the sync/selection logic on top of it.
package wallpaper

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/bingwall-go/bingwall/internal/config"
)

const (
	stampLayout = "200601021504"
	dateLayout  = "20060102"
)

// Stamp is a minute-resolution timestamp using the archive's YYYYMMDDHHmm
// wire format, interpreted in the local time zone.
type Stamp struct {
	time.Time
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Format(stampLayout))
}

func (s *Stamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.ParseInLocation(stampLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	s.Time = t
	return nil
}

// Date is a day-resolution timestamp using the archive's YYYYMMDD wire
// format, interpreted in the local time zone.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

// Image is one day's wallpaper metadata as delivered by the archive. The
// same JSON shape is used in the persisted state file.
type Image struct {
	FullStartDate Stamp  `json:"fullstartdate"`
	EndDate       Date   `json:"enddate"`
	Hash          string `json:"hsh"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	URLBase       string `json:"urlbase"`
	Copyright     string `json:"copyright"`
	CopyrightLink string `json:"copyrightlink"`
}

// identity is the deduplication key. The date fields are deliberately left
// out: the archive may report shifted timestamps for the same image near day
// boundaries.
type identity struct {
	hash          string
	title         string
	url           string
	urlBase       string
	copyright     string
	copyrightLink string
}

func (img Image) identity() identity {
	return identity{
		hash:          img.Hash,
		title:         img.Title,
		url:           img.URL,
		urlBase:       img.URLBase,
		copyright:     img.Copyright,
		copyrightLink: img.CopyrightLink,
	}
}

// DownloadURL derives the full image URL for the configured size and
// extension. Nothing is cached; changing size/ext between runs just changes
// what gets derived.
func (img Image) DownloadURL(cfg *config.Config) string {
	return fmt.Sprintf("%s%s_%s.%s", cfg.Host, img.URLBase, cfg.Size, cfg.Ext)
}

// FileName derives the local file name: the image hash joined with the "id"
// query parameter of the download URL. The archive always includes an id
// parameter; its absence means the API changed shape underneath us, which is
// a programming-model failure rather than a runtime condition, so this
// panics.
func (img Image) FileName(cfg *config.Config) string {
	raw := img.DownloadURL(cfg)
	u, err := url.Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("wallpaper: unparseable image URL %q: %v", raw, err))
	}
	id := u.Query().Get("id")
	if id == "" {
		panic(fmt.Sprintf("wallpaper: image URL %q has no id parameter", raw))
	}
	return img.Hash + "_" + id
}
