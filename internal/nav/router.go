// Package nav resolves sign identifiers into the page the browser should show.
package nav

import (
	"log/slog"
	"strings"

	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
)

// Page is a top level screen that can be navigated to.
type Page int

const (
	PageHome Page = iota
	PageDetail
	PageSigns
	PageHelp
	PageSettings
)

func (p Page) String() string {
	switch p {
	case PageDetail:
		return "detail"
	case PageSigns:
		return "signs"
	case PageHelp:
		return "help"
	case PageSettings:
		return "settings"
	case PageHome:
		fallthrough
	default:
		return "home"
	}
}

const detailPrefix = "zodiac/"

// Route is a resolved navigation target. Sign is only set for PageDetail.
type Route struct {
	Page Page
	Sign zodiac.Sign
}

// Home is the fallback route for anything that cannot be resolved.
var Home = Route{Page: PageHome}

type Router struct {
	signs zodiac.Lookup
}

func NewRouter(signs zodiac.Lookup) Router {
	return Router{signs: signs}
}

// Resolve maps an identifier to a detail route, matching english names case-insensitively. Unknown
// or empty identifiers go home instead of failing.
func (r Router) Resolve(identifier string) Route {
	if strings.TrimSpace(identifier) == "" {
		return Home
	}

	sign, errFind := r.signs.Find(identifier)
	if errFind != nil {
		slog.Debug("Unresolved sign, redirecting home", slog.String("identifier", identifier))

		return Home
	}

	return Route{Page: PageDetail, Sign: sign}
}

// Parse resolves a path using the route table: "" is home, zodiac/:zodiac is a detail page and
// everything else redirects home.
func (r Router) Parse(path string) Route {
	path = strings.Trim(strings.TrimSpace(path), "/")

	switch {
	case path == "":
		return Home
	case strings.HasPrefix(strings.ToLower(path), detailPrefix):
		name := path[len(detailPrefix):]
		if strings.Contains(name, "/") {
			return Home
		}

		return r.Resolve(name)
	default:
		return Home
	}
}

// Path renders the route back into its path form.
func (r Router) Path(route Route) string {
	if route.Page != PageDetail {
		return "/"
	}

	return "/" + detailPrefix + route.Sign.Slug()
}
