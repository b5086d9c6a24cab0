package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsAllShapes(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		raw  string
	}{
		{"text", TypeText, `[{"_type":"block","children":[{"text":"hello"}]}]`},
		{"gallery", TypeGallery, `[{"url":"a.jpg","title":"A"}]`},
		{"timeline", TypeTimeline, `[{"date":"2020","title":"Started","description":"First job"}]`},
		{"skills", TypeSkills, `[{"name":"Go","level":80,"category":"Languages"}]`},
		{"custom", TypeCustom, `"<div>hi</div>"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Validate(tc.typ, []byte(tc.raw))
			require.NoError(t, err)
			require.Equal(t, tc.typ, v.ContentType())
		})
	}
}

func TestValidateEmptySequenceIsValid(t *testing.T) {
	v, err := Validate(TypeGallery, []byte(`[]`))
	require.NoError(t, err)
	require.Len(t, v.(Gallery), 0)
}

func TestValidateUnwrapsDoubleEncodedPayload(t *testing.T) {
	raw := `"[{\"url\":\"a.jpg\",\"title\":\"A\"}]"`
	v, err := Validate(TypeGallery, []byte(raw))
	require.NoError(t, err)
	require.Equal(t, Gallery{{URL: "a.jpg", Title: "A"}}, v)
}

func TestValidateRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		raw  string
	}{
		{"not json", TypeGallery, `not json at all`},
		{"wrong container", TypeGallery, `{"url":"a.jpg"}`},
		{"missing title", TypeGallery, `[{"url":"a.jpg"}]`},
		{"wrong url type", TypeGallery, `[{"url":7,"title":"A"}]`},
		{"timeline missing fields", TypeTimeline, `[{"date":"2020"}]`},
		{"skills level not numeric", TypeSkills, `[{"name":"Go","level":"high","category":"Languages"}]`},
		{"skills missing category", TypeSkills, `[{"name":"Go","level":80}]`},
		{"text missing discriminator", TypeText, `[{"children":[]}]`},
		{"text missing children", TypeText, `[{"_type":"block"}]`},
		{"custom not a string", TypeCustom, `[1,2,3]`},
		{"null payload", TypeSkills, `null`},
		{"empty payload", TypeText, ``},
		{"unknown tag", Type("video"), `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Validate(tc.typ, []byte(tc.raw))
			require.ErrorIs(t, err, ErrInvalid)
			require.Nil(t, v)
		})
	}
}

func TestValidateDoesNotRangeCheckLevels(t *testing.T) {
	v, err := Validate(TypeSkills, []byte(`[{"name":"Go","level":250,"category":"Languages"}]`))
	require.NoError(t, err)
	require.Equal(t, 250.0, v.(Skills)[0].Level)
}

func TestRenderGalleryTile(t *testing.T) {
	v, err := Validate(TypeGallery, []byte(`[{"url":"a.jpg","title":"A"}]`))
	require.NoError(t, err)
	html := string(Render(v))
	require.Contains(t, html, `src="a.jpg"`)
	require.Contains(t, html, `<figcaption>A</figcaption>`)
}

func TestRenderSkillsGroupsByCategory(t *testing.T) {
	v, err := Validate(TypeSkills, []byte(`[{"name":"Go","level":80,"category":"Languages"},{"name":"Postgres","level":70,"category":"Databases"}]`))
	require.NoError(t, err)
	html := string(Render(v))
	require.Contains(t, html, "<h4>Languages</h4>")
	require.Contains(t, html, "<h4>Databases</h4>")
	require.Contains(t, html, "width: 80%")
	require.True(t, strings.Index(html, "Languages") < strings.Index(html, "Databases"))
}

func TestRenderTextEscapesAndKeepsBlocks(t *testing.T) {
	v, err := Validate(TypeText, []byte(`[{"_type":"h2","children":[{"text":"Title"}]},{"_type":"block","children":[{"text":"<script>"}]}]`))
	require.NoError(t, err)
	html := string(Render(v))
	require.Contains(t, html, "<h2>Title</h2>")
	require.Contains(t, html, "&lt;script&gt;")
	require.NotContains(t, html, "<script>")
}

func TestRenderCustomIsVerbatim(t *testing.T) {
	v, err := Validate(TypeCustom, []byte(`"<marquee>owner markup</marquee>"`))
	require.NoError(t, err)
	require.Equal(t, "<marquee>owner markup</marquee>", string(Render(v)))
}

func TestRenderTimelineRoundTrip(t *testing.T) {
	v, err := Validate(TypeTimeline, []byte(`[{"date":"2020","title":"Started","description":"First job"}]`))
	require.NoError(t, err)
	html := string(Render(v))
	require.Contains(t, html, "<time>2020</time>")
	require.Contains(t, html, "<h4>Started</h4>")
	require.Contains(t, html, "<p>First job</p>")
}

// A sixth implementation of Value cannot exist outside this package (the
// marker method is unexported), so Render's switch covers every producible
// value. This pins the five concrete types.
func TestValueSetIsSealed(t *testing.T) {
	for _, v := range []Value{Text{}, Gallery{}, Timeline{}, Skills{}, Custom("")} {
		require.True(t, v.ContentType().Valid())
		require.NotEqual(t, `<div class="section-unknown">Unknown section type</div>`, string(Render(v)))
	}
}
