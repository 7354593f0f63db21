package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractTitle_FromSelectorText(t *testing.T) {
	html := `<div class="job-card-container">
		<h3 class="job-card-list__title">Senior Go Developer</h3>
		<a href="/jobs/view/123">View</a>
	</div>`
	got := extractTitle(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "Senior Go Developer", got)
}

func TestExtractTitle_FromSelectorAttrs(t *testing.T) {
	html := `<div class="job-card-container">
		<a class="job-card-list__title" aria-label="Backend Engineer at Acme"></a>
	</div>`
	got := extractTitle(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "Backend Engineer at Acme", got)
}

func TestExtractTitle_FromAnchors(t *testing.T) {
	html := `<div><a href="/something">Platform Engineer</a></div>`
	got := extractTitle(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "Platform Engineer", got)
}

func TestExtractTitle_FromHeadings(t *testing.T) {
	html := `<div><h2 class="unknown-variant">Data Engineer</h2></div>`
	got := extractTitle(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "Data Engineer", got)
}

func TestExtractTitle_FromFrameAttributes(t *testing.T) {
	html := `<div><iframe title="DevOps Engineer posting"></iframe></div>`
	got := extractTitle(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "DevOps Engineer posting", got)
}

func TestExtractTitle_TextHeuristicSkipsMetadata(t *testing.T) {
	html := "<div><span>3 days ago</span>\n<span>120 applicants</span>\n<span>Site Reliability Engineer</span></div>"
	got := titleFromTextHeuristic(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "Site Reliability Engineer", got)
}

func TestExtractTitle_TextHeuristicSkipsCompanyAndLocationLines(t *testing.T) {
	html := "<div><span>Acme Company</span>\n<span>Location: Berlin</span>\n<span>Backend Engineer</span></div>"
	got := titleFromTextHeuristic(docFrom(t, html), DefaultSelectors())
	assert.Equal(t, "Backend Engineer", got)
}

func TestExtractTitle_NoTitle(t *testing.T) {
	got := extractTitle(docFrom(t, `<div><span>ad</span></div>`), DefaultSelectors())
	assert.Empty(t, got)
}

func TestParseCard_FullCard(t *testing.T) {
	html := `<div class="job-card-container">
		<h3 class="job-card-list__title">Full Stack Developer</h3>
		<span class="job-card-container__company-name">Tech Corp</span>
		<li class="job-card-container__metadata-item">Islamabad, Pakistan</li>
	</div>`

	fields, err := parseCard(html, DefaultSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Full Stack Developer", fields.Title)
	assert.Equal(t, "Tech Corp", fields.Company)
	assert.Equal(t, "Islamabad, Pakistan", fields.Location)
}

func TestParseCard_MissingTitleIsError(t *testing.T) {
	_, err := parseCard(`<div><span class="job-card-container__company-name">Acme</span></div>`, DefaultSelectors())
	assert.Error(t, err)
}

func TestParseCard_MissingCompanyAndLocationAreEmpty(t *testing.T) {
	fields, err := parseCard(`<div><h3 class="job-card-list__title">Engineer Role</h3></div>`, DefaultSelectors())
	require.NoError(t, err)
	assert.Empty(t, fields.Company)
	assert.Empty(t, fields.Location)
}

func TestParseCard_NormalizesWhitespace(t *testing.T) {
	html := `<div><h3 class="job-card-list__title">
		Senior
		Go    Developer
	</h3></div>`
	fields, err := parseCard(html, DefaultSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Developer", fields.Title)
}

func TestFirstSelectorText_CascadeOrder(t *testing.T) {
	html := `<div>
		<span class="base-search-card__subtitle">Fallback Co</span>
		<span class="job-card-container__company-name">Primary Co</span>
	</div>`
	got := firstSelectorText(docFrom(t, html), DefaultSelectors().Company)
	assert.Equal(t, "Primary Co", got)
}
