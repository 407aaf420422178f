// Package nav parses the literal route strings used to move between pages,
// e.g. "/tasks?editId=abc&field=name" or "/projects/42".
package nav

import (
	"net/url"
	"strings"
)

// Page identifies a top-level view.
type Page int

const (
	PageDashboard Page = iota
	PageTasks
	PageProjects
	PageCalendar
)

// Route is a parsed navigation target.
type Route struct {
	Page Page

	// ProjectID is set for "/projects/<id>" routes.
	ProjectID string

	// EditID and EditField arm the tasks page's inline edit session
	// when present ("/tasks?editId=<id>&field=<field>").
	EditID    string
	EditField string
}

// Parse interprets a route path. The second return value is false for
// unknown routes, which callers ignore (the current view stays put).
func Parse(path string) (Route, bool) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{}, false
	}

	segments := splitPath(u.Path)
	query := u.Query()

	switch {
	case len(segments) == 0:
		return Route{Page: PageDashboard}, true

	case segments[0] == "tasks" && len(segments) == 1:
		return Route{
			Page:      PageTasks,
			EditID:    query.Get("editId"),
			EditField: query.Get("field"),
		}, true

	case segments[0] == "projects" && len(segments) == 1:
		return Route{Page: PageProjects}, true

	case segments[0] == "projects" && len(segments) == 2:
		return Route{Page: PageProjects, ProjectID: segments[1]}, true

	case segments[0] == "calendar" && len(segments) == 1:
		return Route{Page: PageCalendar}, true
	}

	return Route{}, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
