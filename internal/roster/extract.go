package roster

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoPlayers indicates the page parsed cleanly but contained no player
// entries after filtering. Callers treat this as "team page exists but has
// no published roster", not as a transport failure.
var ErrNoPlayers = errors.New("no players found on page")

// playerLinkPattern matches the bio link the stats site attaches to every
// rostered player. Links that don't follow this shape are navigation.
var playerLinkPattern = regexp.MustCompile(`/player/\d+/bio`)

// markdownPlayerPattern pulls player names out of markdown-rendered pages,
// where bio links survive as [Name](.../player/123/bio).
var markdownPlayerPattern = regexp.MustCompile(`\[([^\]\[]+)\]\([^)]*/player/\d+/bio[^)]*\)`)

// nameRule is one strategy for locating the team name on a page. Rules run
// in order; the first one yielding a plausible name wins.
type nameRule struct {
	name    string
	extract func(doc *html.Node, raw string) string
}

var nameRules = []nameRule{
	{name: "heading", extract: extractHeadingName},
	{name: "markdown-heading", extract: extractMarkdownName},
	{name: "title", extract: extractTitleName},
}

// Extract parses a team page and returns its roster. The team name may be
// empty when no rule matched; the page title on the stats site is often a
// generic placeholder rather than the team.
func Extract(page string) (*Roster, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, errors.New("parse page: " + err.Error())
	}

	var teamName string
	for _, rule := range nameRules {
		if candidate := rule.extract(doc, page); plausibleTeamName(candidate) {
			teamName = candidate
			break
		}
	}

	players := filterPlayers(collectPlayerNames(doc, page))
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	return &Roster{TeamName: teamName, Players: players}, nil
}

// plausibleTeamName rejects the placeholders the stats site serves on pages
// that haven't loaded team data.
func plausibleTeamName(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	if lower == "stats" || strings.Contains(lower, "ontario baseball") {
		return false
	}
	return true
}

func extractHeadingName(doc *html.Node, _ string) string {
	node := findElement(doc, "h1")
	if node == nil {
		return ""
	}
	return collapseSpace(nodeText(node))
}

func extractMarkdownName(_ *html.Node, raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
			return collapseSpace(rest)
		}
	}
	return ""
}

func extractTitleName(doc *html.Node, _ string) string {
	node := findElement(doc, "title")
	if node == nil {
		return ""
	}
	title := collapseSpace(nodeText(node))
	// Page titles carry a site suffix; only the team part is useful.
	if base, _, found := strings.Cut(title, " - "); found {
		return base
	}
	return title
}

func collectPlayerNames(doc *html.Node, raw string) []string {
	var names []string
	walkElements(doc, "a", func(node *html.Node) {
		if playerLinkPattern.MatchString(attrValue(node, "href")) {
			names = append(names, collapseSpace(nodeText(node)))
		}
	})
	for _, match := range markdownPlayerPattern.FindAllStringSubmatch(raw, -1) {
		names = append(names, collapseSpace(match[1]))
	}
	return names
}

func findElement(node *html.Node, tag string) *html.Node {
	if node.Type == html.ElementNode && node.Data == tag {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func walkElements(node *html.Node, tag string, visit func(*html.Node)) {
	if node.Type == html.ElementNode && node.Data == tag {
		visit(node)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkElements(child, tag, visit)
	}
}

func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(node *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return builder.String()
}

func collapseSpace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
