package content

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// Render dispatches on the concrete content type and produces the HTML
// fragment for the public page. The switch is exhaustive over the sealed
// Value set; the default branch is unreachable as long as Validate is the
// only producer, and renders a notice rather than failing if that ever
// changes.
//
// Custom content is emitted verbatim. That is a deliberate trust boundary:
// the string is only writable through the owner-authenticated section
// endpoints, and the product treats it as owner-authored markup. Do not
// escape it here without a product decision.
func Render(v Value) template.HTML {
	switch c := v.(type) {
	case Text:
		return renderText(c)
	case Gallery:
		return renderGallery(c)
	case Timeline:
		return renderTimeline(c)
	case Skills:
		return renderSkills(c)
	case Custom:
		return template.HTML(c)
	default:
		return `<div class="section-unknown">Unknown section type</div>`
	}
}

// Placeholder is shown when Validate rejected a section's content. The
// section title is still displayed by the surrounding template.
func Placeholder() template.HTML {
	return `<div class="section-invalid">Invalid content for this section</div>`
}

func renderText(blocks Text) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="section-text">`)
	for _, blk := range blocks {
		tag := "p"
		switch blk.Kind {
		case "h1", "h2", "h3", "h4", "blockquote":
			tag = blk.Kind
		}
		fmt.Fprintf(&b, "<%s>%s</%s>", tag, template.HTMLEscapeString(plainText(blk.Children)), tag)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// plainText collects every "text" string reachable in a rich-text children
// tree. Unknown structure degrades to an empty string, never an error.
func plainText(raw json.RawMessage) string {
	var node any
	if err := json.Unmarshal(raw, &node); err != nil {
		return ""
	}
	var b strings.Builder
	collectText(node, &b)
	return b.String()
}

func collectText(node any, b *strings.Builder) {
	switch n := node.(type) {
	case string:
		b.WriteString(n)
	case []any:
		for _, el := range n {
			collectText(el, b)
		}
	case map[string]any:
		if s, ok := n["text"].(string); ok {
			b.WriteString(s)
			return
		}
		if ch, ok := n["children"]; ok {
			collectText(ch, b)
		}
	}
}

func renderGallery(items Gallery) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="section-gallery">`)
	for _, it := range items {
		fmt.Fprintf(&b,
			`<figure class="gallery-tile"><img src="%s" alt="%s"><figcaption>%s</figcaption></figure>`,
			template.HTMLEscapeString(it.URL),
			template.HTMLEscapeString(it.Title),
			template.HTMLEscapeString(it.Title),
		)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func renderTimeline(entries Timeline) template.HTML {
	var b strings.Builder
	b.WriteString(`<ul class="section-timeline">`)
	for _, e := range entries {
		fmt.Fprintf(&b,
			`<li><time>%s</time><h4>%s</h4><p>%s</p></li>`,
			template.HTMLEscapeString(e.Date),
			template.HTMLEscapeString(e.Title),
			template.HTMLEscapeString(e.Description),
		)
	}
	b.WriteString(`</ul>`)
	return template.HTML(b.String())
}

func renderSkills(items Skills) template.HTML {
	// Group under category headings, preserving first-seen category order.
	order := []string{}
	grouped := map[string]Skills{}
	for _, it := range items {
		if _, ok := grouped[it.Category]; !ok {
			order = append(order, it.Category)
		}
		grouped[it.Category] = append(grouped[it.Category], it)
	}

	var b strings.Builder
	b.WriteString(`<div class="section-skills">`)
	for _, cat := range order {
		fmt.Fprintf(&b, `<h4>%s</h4><ul>`, template.HTMLEscapeString(cat))
		for _, it := range grouped[cat] {
			fmt.Fprintf(&b,
				`<li><span>%s</span><div class="skill-bar"><div class="skill-level" style="width: %.0f%%"></div></div></li>`,
				template.HTMLEscapeString(it.Name), it.Level,
			)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
