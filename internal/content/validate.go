package content

import (
	"bytes"
	"encoding/json"
)

// Validate checks untrusted raw content against the shape declared by typ and
// returns the tagged value. Every failure path (unknown tag, JSON parse
// error, missing or mistyped required field on any element) returns
// ErrInvalid; nothing panics and no decoder error escapes.
//
// Raw content that is itself a JSON-encoded string is unwrapped first: for
// structured types the inner string is parsed as JSON, for the custom type it
// is the value.
func Validate(typ Type, raw []byte) (Value, error) {
	if !typ.Valid() || len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrInvalid
	}

	if typ == TypeCustom {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, ErrInvalid
		}
		return Custom(s), nil
	}

	// Double-encoded payload: a string holding the real JSON.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = []byte(inner)
	}

	switch typ {
	case TypeText:
		return validateText(raw)
	case TypeGallery:
		return validateGallery(raw)
	case TypeTimeline:
		return validateTimeline(raw)
	case TypeSkills:
		return validateSkills(raw)
	}
	return nil, ErrInvalid
}

func validateText(raw []byte) (Value, error) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, ErrInvalid
	}
	out := make(Text, 0, len(elems))
	for _, el := range elems {
		kindRaw, ok := el["_type"]
		if !ok {
			return nil, ErrInvalid
		}
		var kind string
		if err := json.Unmarshal(kindRaw, &kind); err != nil {
			return nil, ErrInvalid
		}
		children, ok := el["children"]
		if !ok {
			return nil, ErrInvalid
		}
		out = append(out, Block{Kind: kind, Children: children})
	}
	return out, nil
}

func validateGallery(raw []byte) (Value, error) {
	var elems []struct {
		URL   *string `json:"url"`
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, ErrInvalid
	}
	out := make(Gallery, 0, len(elems))
	for _, el := range elems {
		if el.URL == nil || el.Title == nil {
			return nil, ErrInvalid
		}
		out = append(out, GalleryItem{URL: *el.URL, Title: *el.Title})
	}
	return out, nil
}

func validateTimeline(raw []byte) (Value, error) {
	var elems []struct {
		Date        *string `json:"date"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, ErrInvalid
	}
	out := make(Timeline, 0, len(elems))
	for _, el := range elems {
		if el.Date == nil || el.Title == nil || el.Description == nil {
			return nil, ErrInvalid
		}
		out = append(out, TimelineEntry{Date: *el.Date, Title: *el.Title, Description: *el.Description})
	}
	return out, nil
}

func validateSkills(raw []byte) (Value, error) {
	var elems []struct {
		Name     *string  `json:"name"`
		Level    *float64 `json:"level"`
		Category *string  `json:"category"`
	}
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, ErrInvalid
	}
	out := make(Skills, 0, len(elems))
	for _, el := range elems {
		if el.Name == nil || el.Level == nil || el.Category == nil {
			return nil, ErrInvalid
		}
		out = append(out, SkillItem{Name: *el.Name, Level: *el.Level, Category: *el.Category})
	}
	return out, nil
}
