// Package content implements the custom-section content model: a tagged union
// of five section shapes, validated from untrusted JSON and rendered
// polymorphically on the public page.
package content

import (
	"encoding/json"
	"errors"
)

// Type tags the shape a section's stored content must conform to.
type Type string

const (
	TypeText     Type = "text"
	TypeGallery  Type = "gallery"
	TypeTimeline Type = "timeline"
	TypeSkills   Type = "skills"
	TypeCustom   Type = "custom"
)

// Types lists every recognized tag.
var Types = []Type{TypeText, TypeGallery, TypeTimeline, TypeSkills, TypeCustom}

// Valid reports whether t is a recognized tag.
func (t Type) Valid() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// ErrInvalid is the single rejection indicator: any parse or shape failure
// collapses into it. Callers log it once and show a placeholder; it never
// carries decoder detail.
var ErrInvalid = errors.New("invalid section content")

// Value is the validated, tagged content of a section. The unexported marker
// seals the set of implementations to the five types below; Render's type
// switch is exhaustive over them.
type Value interface {
	ContentType() Type
	sectionContent()
}

// Block is one rich-text block of a text section. Children stays opaque; the
// renderer extracts plain text from it best-effort.
type Block struct {
	Kind     string          `json:"_type"`
	Children json.RawMessage `json:"children"`
}

// Text is an ordered sequence of rich-text blocks.
type Text []Block

// GalleryItem is one image tile.
type GalleryItem struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Gallery is an ordered sequence of image tiles.
type Gallery []GalleryItem

// TimelineEntry is one dated milestone.
type TimelineEntry struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Timeline is an ordered sequence of milestones.
type Timeline []TimelineEntry

// SkillItem is one named proficiency. Level is not range-checked here.
type SkillItem struct {
	Name     string  `json:"name"`
	Level    float64 `json:"level"`
	Category string  `json:"category"`
}

// Skills is an ordered sequence of proficiencies.
type Skills []SkillItem

// Custom is pre-escaped markup authored by the portfolio owner. It is emitted
// verbatim at render time; see Render for the trust boundary.
type Custom string

func (Text) ContentType() Type     { return TypeText }
func (Gallery) ContentType() Type  { return TypeGallery }
func (Timeline) ContentType() Type { return TypeTimeline }
func (Skills) ContentType() Type   { return TypeSkills }
func (Custom) ContentType() Type   { return TypeCustom }

func (Text) sectionContent()     {}
func (Gallery) sectionContent()  {}
func (Timeline) sectionContent() {}
func (Skills) sectionContent()   {}
func (Custom) sectionContent()   {}
