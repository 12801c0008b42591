// Package gallery holds the image sets shown by the slider and loads them
// from catalog files.
package gallery

// Item is a single image in a section. Items are immutable once loaded.
type Item struct {
	ID           int    `toml:"id" yaml:"id"`
	ImageURL     string `toml:"image_url" yaml:"image_url"`
	Photographer string `toml:"photographer" yaml:"photographer"`
	Category     string `toml:"category" yaml:"category"`
}

// Section is a titled, ordered set of items.
type Section struct {
	Title string `toml:"title" yaml:"title"`
	Items []Item `toml:"items" yaml:"items"`
}

// Lead returns the section's first item, which names the photographer and
// category shown in the header. ok is false for an empty section.
func (s Section) Lead() (item Item, ok bool) {
	if len(s.Items) == 0 {
		return Item{}, false
	}
	return s.Items[0], true
}

// Catalog is the ordered list of sections supplied to the slider at startup.
type Catalog struct {
	Sections []Section `toml:"sections" yaml:"sections"`
}

// Titles returns the section titles in order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		titles[i] = s.Title
	}
	return titles
}

// URLs returns every image URL of a section, in order.
func (s Section) URLs() []string {
	urls := make([]string, len(s.Items))
	for i, it := range s.Items {
		urls[i] = it.ImageURL
	}
	return urls
}
