package hub

import (
	"strconv"
	"strings"
)

// Page identifies which of the five views is on screen.
type Page int

const (
	PageHome Page = iota
	PageScripts
	PageProfile
	PageForum
	PageCommunity
)

var pageTags = map[Page]string{
	PageHome:      "home",
	PageScripts:   "scripts",
	PageProfile:   "profile",
	PageForum:     "forum",
	PageCommunity: "community",
}

var pageTitles = map[Page]string{
	PageHome:      "Home",
	PageScripts:   "Scripts",
	PageProfile:   "Profile",
	PageForum:     "Forum",
	PageCommunity: "Community",
}

// Pages returns every page in navigation bar order.
func Pages() []Page {
	return []Page{PageHome, PageScripts, PageForum, PageCommunity, PageProfile}
}

func (p Page) Valid() bool {
	_, ok := pageTags[p]
	return ok
}

func (p Page) String() string {
	if tag, ok := pageTags[p]; ok {
		return tag
	}
	return "page(" + strconv.Itoa(int(p)) + ")"
}

// Title is the label shown on the navigation button.
func (p Page) Title() string {
	return pageTitles[p]
}

// Index returns the position of p in Pages(), or -1.
func (p Page) Index() int {
	for i, candidate := range Pages() {
		if candidate == p {
			return i
		}
	}
	return -1
}

// ParsePage converts a page tag such as "forum" into a Page.
func ParsePage(tag string) (Page, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for p, t := range pageTags {
		if t == tag {
			return p, nil
		}
	}
	return PageHome, &PageError{Tag: tag}
}

// PageError reports a tag outside the closed page set.
type PageError struct {
	Tag string
}

func (e *PageError) Error() string {
	return "unknown page: " + e.Tag
}
