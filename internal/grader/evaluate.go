package grader

import (
	"grader/pkg/domain"
	"grader/pkg/serrors"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/samber/lo"
)

// Normalize returns the distinct checks in lexicographic order.
func Normalize(checks []domain.Check) []domain.Check {
	out := lo.Uniq(checks)
	slices.Sort(out)

	return out
}

// Evaluate queries doc for every distinct check in sorted order and records
// whether it matched at least one element. A blank selector matches nothing.
func Evaluate(doc *goquery.Document, checks []domain.Check) (*domain.Report, error) {
	report := &domain.Report{}
	for _, check := range Normalize(checks) {
		if strings.TrimSpace(string(check)) == "" {
			report.Set(check, false)

			continue
		}

		sel, err := cascadia.Compile(string(check))
		if err != nil {
			return nil, serrors.Wrap(ErrInvalidSelector, err, "invalid selector %q", string(check))
		}
		report.Set(check, doc.FindMatcher(sel).Length() > 0)
	}

	return report, nil
}
