// Package element renders resolved icons as HTML image elements.
package element

import (
	"context"
	"maps"
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default badge element size in pixels.
const DefaultBadgeSize = 16

// Element is an <img> element pointing at a resolved icon file.
type Element struct {
	node *html.Node
}

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Src returns the file URL of the icon.
func (e *Element) Src() string {
	src, _ := e.Attr("src")
	return src
}

// String renders the element as HTML.
func (e *Element) String() string {
	var sb strings.Builder
	_ = html.Render(&sb, e.node)
	return sb.String()
}

// Builder builds image elements from icons resolved by an IconResolver.
type Builder struct {
	resolver ports.IconResolver
}

// NewBuilder creates a Builder over resolver.
func NewBuilder(resolver ports.IconResolver) *Builder {
	return &Builder{resolver: resolver}
}

// Icon builds an element for the named icon with the given attributes.
// Attribute names are case-insensitive. The src attribute is always the
// resolved path; a caller-supplied src is ignored.
func (b *Builder) Icon(ctx context.Context, name string, attrs map[string]string) (*Element, error) {
	path, err := b.resolver.ResolvePath(ctx, name)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindElementConstructionFailed, Key: name, Cause: err}
	}
	return newElement(path, normalizeAttrs(nil, attrs)), nil
}

// Badge builds an element for the badge icon of count. attrs override the
// badge defaults key by key, ignoring case. As with Icon, a caller-supplied
// src is ignored.
func (b *Builder) Badge(ctx context.Context, count int, attrs map[string]string) (*Element, error) {
	path, err := b.resolver.ResolveBadgePath(ctx, count)
	if err != nil {
		return nil, &domain.Error{
			Kind:  domain.KindElementConstructionFailed,
			Key:   domain.BadgeKey(count).String(),
			Count: count,
			Cause: err,
		}
	}

	return newElement(path, normalizeAttrs(BadgeDefaults(count), attrs)), nil
}

// BadgeDefaults returns the attributes every badge element starts from.
func BadgeDefaults(count int) map[string]string {
	n := strconv.Itoa(count)
	title := n + " notifications"
	if count == 1 {
		title = n + " notification"
	}
	size := strconv.Itoa(DefaultBadgeSize)
	return map[string]string{
		"alt":    "Badge " + n,
		"title":  title,
		"width":  size,
		"height": size,
		"style":  "display: inline-block; vertical-align: middle;",
	}
}

// ParseAttrs parses key=value pairs into an attribute map.
// Later pairs override earlier ones.
func ParseAttrs(pairs []string) (map[string]string, error) {
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, zerr.With(domain.ErrInvalidAttribute, "attr", pair)
		}
		attrs[strings.ToLower(k)] = v
	}
	return attrs, nil
}

// normalizeAttrs copies attrs into base under lowercased names. Names that
// differ only in case collapse to one; the lowercase spelling wins.
func normalizeAttrs(base, attrs map[string]string) map[string]string {
	if base == nil {
		base = make(map[string]string, len(attrs))
	}
	keys := slices.Sorted(maps.Keys(attrs))
	for _, k := range keys {
		base[strings.ToLower(k)] = attrs[k]
	}
	return base
}

func newElement(path string, attrs map[string]string) *Element {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "src" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     atom.Img.String(),
		Attr:     make([]html.Attribute, 0, len(keys)+1),
	}
	node.Attr = append(node.Attr, html.Attribute{Key: "src", Val: FileURL(path)})
	for _, k := range keys {
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}
	return &Element{node: node}
}

// FileURL converts a host file path to a file:// URL.
func FileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
