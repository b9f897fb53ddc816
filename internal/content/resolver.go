// Package content turns content-service responses into render-ready page
// data, falling back to bundled defaults field by field.
package content

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bpo-website/internal/cms"
)

// Fetcher is the read side of the content client.
type Fetcher interface {
	Get(ctx context.Context, req cms.Request) *cms.Payload
}

type Resolver struct {
	cms         Fetcher
	mediaBase   string
	placeholder string
	log         *zap.Logger
}

func NewResolver(f Fetcher, mediaBase string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		cms:         f,
		mediaBase:   mediaBase,
		placeholder: PlaceholderImage,
		log:         log.Named("content"),
	}
}

// Resolved is a single-record section. Live reports whether the content
// service answered the primary request at all.
type Resolved[T any] struct {
	Value T    `json:"data"`
	Live  bool `json:"live"`
}

type ListState int

const (
	// ListFallback means the service was unavailable; Items are defaults.
	ListFallback ListState = iota
	// ListEmpty means the service answered with zero records.
	ListEmpty
	// ListLive means Items came from the service.
	ListLive
	// ListDefaulted means the service answered with zero records and the
	// section shows its defaults instead.
	ListDefaulted
)

func (s ListState) String() string {
	switch s {
	case ListEmpty:
		return "empty"
	case ListLive:
		return "cms"
	case ListDefaulted:
		return "default"
	default:
		return "fallback"
	}
}

type List[T any] struct {
	Items []T
	State ListState
}

func (l List[T]) Live() bool  { return l.State != ListFallback }
func (l List[T]) Empty() bool { return l.State == ListEmpty }

// EmptyPolicy decides what a reachable-but-empty collection renders as.
type EmptyPolicy int

const (
	// ShowEmptyState keeps an empty collection empty so the page can say so.
	ShowEmptyState EmptyPolicy = iota
	// UseDefaultsWhenEmpty substitutes the default items.
	UseDefaultsWhenEmpty
)

// ResolveOne resolves a single-record section.
func ResolveOne[T Schema[T]](ctx context.Context, r *Resolver, req cms.Request, def T) (out Resolved[T]) {
	p := r.cms.Get(ctx, req)
	out = Resolved[T]{Value: def.withImages(r.mediaBase, r.placeholder), Live: p != nil}
	if p.IsEmpty() {
		return out
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("merge panicked, using defaults",
				zap.String("collection", req.Collection), zap.String("panic", fmt.Sprint(rec)))
			out = Resolved[T]{Value: def.withImages(r.mediaBase, r.placeholder), Live: true}
		}
	}()

	var live T
	if err := decodeRecord(p.Records()[0], &live); err != nil {
		r.log.Warn("malformed record, using defaults", zap.String("collection", req.Collection), zap.Error(err))
		return out
	}
	if !live.valid() {
		r.log.Warn("invalid record, using defaults", zap.String("collection", req.Collection))
		return out
	}

	out.Value = live.mergeOver(def).withImages(r.mediaBase, r.placeholder)
	return out
}

// ResolveList resolves a collection section. Malformed records are dropped;
// if every record is malformed the defaults are shown.
func ResolveList[T Schema[T]](ctx context.Context, r *Resolver, req cms.Request, def []T, policy EmptyPolicy) (out List[T]) {
	fallback := func() List[T] {
		items := make([]T, len(def))
		for i, d := range def {
			items[i] = d.withImages(r.mediaBase, r.placeholder)
		}
		return List[T]{Items: items, State: ListFallback}
	}

	p := r.cms.Get(ctx, req)
	if p == nil {
		return fallback()
	}
	if p.IsEmpty() {
		if policy == UseDefaultsWhenEmpty {
			l := fallback()
			l.State = ListDefaulted
			return l
		}
		return List[T]{Items: []T{}, State: ListEmpty}
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("merge panicked, using defaults",
				zap.String("collection", req.Collection), zap.String("panic", fmt.Sprint(rec)))
			out = fallback()
		}
	}()

	var zero T
	records := p.Records()
	items := make([]T, 0, len(records))
	for _, raw := range records {
		var live T
		if err := decodeRecord(raw, &live); err != nil || !live.valid() {
			r.log.Warn("dropping malformed record", zap.String("collection", req.Collection))
			continue
		}
		items = append(items, live.mergeOver(zero).withImages(r.mediaBase, r.placeholder))
	}

	if len(items) == 0 {
		r.log.Warn("no valid records, using defaults", zap.String("collection", req.Collection))
		return fallback()
	}
	return List[T]{Items: items, State: ListLive}
}

// Parallel runs independent section fetches concurrently and waits for all
// of them. Sections never fail, so one slow fetch cannot cancel another.
func Parallel(ctx context.Context, fns ...func(ctx context.Context)) {
	var g errgroup.Group
	for _, fn := range fns {
		g.Go(func() error {
			fn(ctx)
			return nil
		})
	}
	g.Wait()
}
