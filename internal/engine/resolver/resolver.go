// Package resolver implements the cached icon resolution façade over the host bridge.
package resolver

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	_ ports.IconResolver = (*Resolver)(nil)
	_ ports.BadgeSetter  = (*Resolver)(nil)
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithPreloadIcons appends icons to every preload, after the caller's names.
func WithPreloadIcons(names ...string) Option {
	return func(r *Resolver) {
		r.extraPreload = append(r.extraPreload, names...)
	}
}

// WithPreloadConcurrency bounds the number of concurrent resolutions during a preload.
// Values below 1 are ignored.
func WithPreloadConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// Resolver resolves icon and badge paths through the host bridge and memoizes
// the results until ClearCache is called.
//
// Concurrent resolutions of the same key share one bridge call. A ClearCache
// issued while a call is in flight does not let that call repopulate the cache.
type Resolver struct {
	capability   ports.Capability
	log          ports.Logger
	extraPreload []string
	concurrency  int

	flights singleflight.Group

	mu           sync.RWMutex
	generation   uint64
	paths        map[domain.ResourceKey]string
	available    []string
	hasAvailable bool
}

// New creates a Resolver over capability. The capability is fixed for the
// lifetime of the Resolver.
func New(capability ports.Capability, log ports.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		capability:  capability,
		log:         log,
		concurrency: domain.DefaultPreloadConcurrency,
		paths:       make(map[domain.ResourceKey]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Capability returns the bridge capability the Resolver was built with.
func (r *Resolver) Capability() ports.Capability {
	return r.capability
}

// ResolvePath returns the file path of the named icon.
func (r *Resolver) ResolvePath(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", &domain.Error{Kind: domain.KindInvalidArgument, Detail: "icon name must not be empty"}
	}
	return r.resolve(ctx, domain.IconKey(name), domain.CmdGetIconPath, map[string]any{
		domain.ArgIconName: name,
	})
}

// ResolveBadgePath returns the file path of the badge icon for count.
// count must be greater than zero.
func (r *Resolver) ResolveBadgePath(ctx context.Context, count int) (string, error) {
	if count <= 0 {
		return "", &domain.Error{
			Kind:   domain.KindInvalidArgument,
			Count:  count,
			Detail: "badge count must be greater than 0",
		}
	}
	return r.resolve(ctx, domain.BadgeKey(count), domain.CmdGetBadgeIconPath, map[string]any{
		domain.ArgCount: count,
	})
}

func (r *Resolver) resolve(ctx context.Context, key domain.ResourceKey, command string, args map[string]any) (string, error) {
	if !r.capability.Available() {
		return "", &domain.Error{Kind: domain.KindBridgeUnavailable}
	}

	r.mu.RLock()
	path, ok := r.paths[key]
	gen := r.generation
	r.mu.RUnlock()
	if ok {
		return path, nil
	}

	ch := r.flights.DoChan(flightKey(gen, key), func() (any, error) {
		result, err := r.capability.Bridge.Invoke(context.WithoutCancel(ctx), command, args)
		if err != nil {
			return nil, err
		}
		path, ok := result.(string)
		if !ok || path == "" {
			return nil, zerr.With(domain.ErrUnexpectedResult, "result", fmt.Sprintf("%T", result))
		}

		r.mu.Lock()
		if r.generation == gen {
			r.paths[key] = path
		}
		r.mu.Unlock()
		return path, nil
	})

	select {
	case <-ctx.Done():
		return "", resolutionFailed(key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", resolutionFailed(key, res.Err)
		}
		return res.Val.(string), nil
	}
}

func resolutionFailed(key domain.ResourceKey, cause error) error {
	return &domain.Error{
		Kind:  domain.KindResolutionFailed,
		Key:   key.String(),
		Count: key.Count(),
		Cause: cause,
	}
}

// flightKey includes the generation so calls started after a ClearCache never
// join a flight that started before it.
func flightKey(gen uint64, key domain.ResourceKey) string {
	return strconv.FormatUint(gen, 10) + "/" + strconv.Itoa(int(key.Kind())) + "/" + key.String()
}

// ListAvailable returns the names of all icons the host knows, in host order.
// The list is fetched once and served from memory until ClearCache.
func (r *Resolver) ListAvailable(ctx context.Context) ([]string, error) {
	if !r.capability.Available() {
		return nil, &domain.Error{Kind: domain.KindBridgeUnavailable}
	}

	r.mu.RLock()
	if r.hasAvailable {
		names := slices.Clone(r.available)
		r.mu.RUnlock()
		return names, nil
	}
	gen := r.generation
	r.mu.RUnlock()

	ch := r.flights.DoChan(strconv.FormatUint(gen, 10)+"/list", func() (any, error) {
		result, err := r.capability.Bridge.Invoke(context.WithoutCancel(ctx), domain.CmdListAvailableIcons, nil)
		if err != nil {
			return nil, err
		}
		names, err := toNames(result)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		if r.generation == gen {
			r.available = names
			r.hasAvailable = true
		}
		r.mu.Unlock()
		return names, nil
	})

	select {
	case <-ctx.Done():
		return nil, &domain.Error{Kind: domain.KindListFailed, Cause: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, &domain.Error{Kind: domain.KindListFailed, Cause: res.Err}
		}
		return slices.Clone(res.Val.([]string)), nil
	}
}

func toNames(result any) ([]string, error) {
	switch v := result.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return slices.Clone(v), nil
	case []any:
		names := make([]string, 0, len(v))
		for i, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, zerr.With(zerr.With(domain.ErrUnexpectedResult, "index", i), "item", fmt.Sprintf("%T", item))
			}
			names = append(names, name)
		}
		return names, nil
	default:
		return nil, zerr.With(domain.ErrUnexpectedResult, "result", fmt.Sprintf("%T", result))
	}
}

// ClearCache forgets every resolved path and the available-icons list.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	r.paths = make(map[domain.ResourceKey]string)
	r.available = nil
	r.hasAvailable = false
}

// Preload resolves the default icons, names and the configured extra icons
// concurrently. It waits for every resolution to settle and never fails:
// failures are logged at debug level and recorded in the report.
func (r *Resolver) Preload(ctx context.Context, names ...string) domain.PreloadReport {
	keys := r.preloadKeys(names)
	outcomes := make([]domain.Outcome, len(keys))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, name := range keys {
		g.Go(func() error {
			path, err := r.ResolvePath(ctx, name)
			if err != nil {
				r.log.Debug("preload failed", "icon", name, "error", err.Error())
			}
			outcomes[i] = domain.Outcome{Key: name, Path: path, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return domain.PreloadReport{Outcomes: outcomes}
}

func (r *Resolver) preloadKeys(names []string) []string {
	defaults := domain.DefaultPreloadIcons()
	all := make([]string, 0, len(defaults)+len(names)+len(r.extraPreload))
	all = append(all, defaults...)
	all = append(all, names...)
	all = append(all, r.extraPreload...)

	seen := make(map[string]struct{}, len(all))
	keys := all[:0]
	for _, name := range all {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		keys = append(keys, name)
	}
	return keys
}

// SetBadge shows count on the host taskbar badge. Zero clears the badge.
func (r *Resolver) SetBadge(ctx context.Context, count int) error {
	if count < 0 {
		return &domain.Error{
			Kind:   domain.KindInvalidArgument,
			Count:  count,
			Detail: "badge count must not be negative",
		}
	}
	if !r.capability.Available() {
		return &domain.Error{Kind: domain.KindBridgeUnavailable}
	}

	if _, err := r.capability.Bridge.Invoke(ctx, domain.CmdSetBadge, map[string]any{
		domain.ArgCount: count,
	}); err != nil {
		return &domain.Error{Kind: domain.KindSetBadgeFailed, Count: count, Cause: err}
	}
	return nil
}
