package grader_test

import (
	"grader/internal/grader"
	"grader/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>Sample</title></head>
<body>
  <h1>Heading</h1>
  <h2 class="title">Subtitle</h2>
  <div class="content"><p>First <span>inner</span></p></div>
  <footer id="footer"><a href="/about">About</a></footer>
</body>
</html>`

func TestEvaluate(t *testing.T) {
	doc, err := grader.ParseDocument(strings.NewReader(sampleHTML), "")
	require.NoError(t, err)

	report, err := grader.Evaluate(doc, []domain.Check{"h1", "h2.title", "#missing"})
	require.NoError(t, err)
	require.Equal(t, []domain.Result{
		{Selector: "#missing", Present: false},
		{Selector: "h1", Present: true},
		{Selector: "h2.title", Present: true},
	}, report.Results())
}

func TestEvaluate_MatchesDirectQuery(t *testing.T) {
	doc, err := grader.ParseDocument(strings.NewReader(sampleHTML), "")
	require.NoError(t, err)

	checks := []domain.Check{
		"#footer a", "div > p", "div.content span", "p:contains(First)",
		"a[href='/about']", "table", "footer a", "div > p", "title",
	}
	report, err := grader.Evaluate(doc, checks)
	require.NoError(t, err)
	require.Equal(t, len(grader.Normalize(checks)), report.Len())

	for _, res := range report.Results() {
		require.Equal(t, doc.Find(string(res.Selector)).Length() > 0, res.Present, res.Selector)
	}
}

func TestEvaluate_InvalidSelector(t *testing.T) {
	doc, err := grader.ParseDocument(strings.NewReader(sampleHTML), "")
	require.NoError(t, err)

	_, err = grader.Evaluate(doc, []domain.Check{"h1", "div[["})
	require.ErrorIs(t, err, grader.ErrInvalidSelector)
}

func TestEvaluate_BlankSelector(t *testing.T) {
	doc, err := grader.ParseDocument(strings.NewReader(sampleHTML), "")
	require.NoError(t, err)

	report, err := grader.Evaluate(doc, []domain.Check{"", "  "})
	require.NoError(t, err)
	require.Equal(t, []domain.Result{
		{Selector: "", Present: false},
		{Selector: "  ", Present: false},
	}, report.Results())
}

func TestNormalize(t *testing.T) {
	require.Equal(t,
		[]domain.Check{"#a", ".b", "B", "a", "a b"},
		grader.Normalize([]domain.Check{"a", "B", "a b", ".b", "#a", "a"}))
}

func TestParseDocument_Charset(t *testing.T) {
	// "café" in ISO-8859-1
	body := "<p class=\"caf\xe9\">x</p>"

	doc, err := grader.ParseDocument(strings.NewReader(body), "text/html; charset=iso-8859-1")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("p.café").Length())
}
