// Package phrase implements the natural-language parsing capability the
// pipeline delegates expression recognition to. Recognition is layered:
// strict absolute layouts are tried first so unambiguous timestamps
// never reach the heuristic rules, then the when engine handles
// relative and casual phrases ("in 2 hours", "next friday at 8pm").
package phrase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/hvpaiva/tardis-cli/internal/core"
)

var (
	dateOnlyRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockOnlyRe = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)
)

// datetimeLayouts are tried in order for absolute expressions carrying a
// date and a time but no offset; they are interpreted in the anchor's
// zone.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Parser recognizes date/time expressions. Safe for reuse across calls;
// each Parse is independent.
type Parser struct {
	engine *when.Parser
}

// New builds a Parser with the English and common rule sets loaded.
func New() *Parser {
	engine := when.New(nil)
	engine.Add(en.All...)
	engine.Add(common.All...)
	return &Parser{engine: engine}
}

// Parse resolves an expression into an absolute instant, using anchor as
// "now" for relative phrases. The instant is expressed in the anchor's
// location unless the expression carries its own offset. A natural
// language match must cover the whole expression; partial matches are
// failures.
func (p *Parser) Parse(expression string, anchor time.Time) (time.Time, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return time.Time{}, errors.New("empty expression")
	}

	if t, ok := parseAbsolute(expression, anchor); ok {
		return t, nil
	}

	result, err := p.engine.Parse(expression, anchor)
	switch {
	case err != nil:
		return time.Time{}, fmt.Errorf("parse %q: %w", expression, err)
	case result == nil:
		return time.Time{}, fmt.Errorf("unrecognized expression %q", expression)
	case result.Index != 0 || len(result.Text) != len(expression):
		return time.Time{}, fmt.Errorf("expression %q only partially recognized", expression)
	}
	return result.Time, nil
}

// parseAbsolute handles the unambiguous layouts: a bare date resolves to
// midnight in the anchor's zone, a bare clock time to that time on the
// anchor's date, RFC 3339 keeps its own offset.
func parseAbsolute(expression string, anchor time.Time) (time.Time, bool) {
	if dateOnlyRe.MatchString(expression) {
		if t, err := time.ParseInLocation("2006-01-02", expression, anchor.Location()); err == nil {
			return t, true
		}
	}

	if clockOnlyRe.MatchString(expression) {
		for _, layout := range []string{"15:04:05", "15:04"} {
			t, err := time.Parse(layout, expression)
			if err != nil {
				continue
			}
			return time.Date(
				anchor.Year(), anchor.Month(), anchor.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, anchor.Location(),
			), true
		}
	}

	if t, err := time.Parse(time.RFC3339, expression); err == nil {
		return t, true
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, expression, anchor.Location()); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

var _ core.Parser = (*Parser)(nil)
