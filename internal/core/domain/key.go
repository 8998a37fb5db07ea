// Package domain holds the core types of iconkit: resource keys, bridge
// commands, resolver errors and filesystem layout.
package domain

import "strconv"

// KeyKind distinguishes icon keys from badge keys.
type KeyKind uint8

const (
	// KeyIcon identifies an icon by name.
	KeyIcon KeyKind = iota + 1
	// KeyBadge identifies a badge icon by count.
	KeyBadge
)

// ResourceKey identifies a cached resolution. It is comparable and safe to use as a map key.
// Badge keys never equal icon keys, whatever the icon name.
type ResourceKey struct {
	kind  KeyKind
	name  string
	count int
}

// IconKey returns the key for the icon with the given name.
func IconKey(name string) ResourceKey {
	return ResourceKey{kind: KeyIcon, name: name}
}

// BadgeKey returns the key for the badge icon of the given count.
func BadgeKey(count int) ResourceKey {
	return ResourceKey{kind: KeyBadge, count: count}
}

// Kind returns the key kind.
func (k ResourceKey) Kind() KeyKind {
	return k.kind
}

// Name returns the icon name, or "" for badge keys.
func (k ResourceKey) Name() string {
	return k.name
}

// Count returns the badge count, or 0 for icon keys.
func (k ResourceKey) Count() int {
	return k.count
}

// String renders the key as reported to users: the icon name, or badge_<count>.
func (k ResourceKey) String() string {
	if k.kind == KeyBadge {
		return "badge_" + strconv.Itoa(k.count)
	}
	return k.name
}
