package reload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"inventory-levels/core/inventory"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Coordinator serializes reloads and publishes their results to a Store.
type Coordinator struct {
	mu sync.Mutex

	store       *inventory.Store
	logger      *zap.Logger
	full        []FullSource
	perLocation LocationSource
	recorder    Recorder

	state atomic.Int32
	last  atomic.Pointer[Report]
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithFullSources registers sources used by full reloads. Order matters: when two sources
// return the same location id, the later source wins.
func WithFullSources(sources ...FullSource) Option {
	return func(c *Coordinator) {
		c.full = append(c.full, sources...)
	}
}

// WithLocationSource sets the source used by partial reloads.
func WithLocationSource(source LocationSource) Option {
	return func(c *Coordinator) {
		c.perLocation = source
	}
}

// WithRecorder sets the recorder notified about every finished reload.
func WithRecorder(r Recorder) Option {
	return func(c *Coordinator) {
		if r != nil {
			c.recorder = r
		}
	}
}

// NewCoordinator creates a coordinator publishing to store.
func NewCoordinator(store *inventory.Store, logger *zap.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Coordinator{
		store:    store,
		logger:   logger,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// LastReport returns the report of the last finished reload, or nil before the first one.
func (c *Coordinator) LastReport() *Report {
	return c.last.Load()
}

// SourceNames lists the registered full sources in merge order.
func (c *Coordinator) SourceNames() []string {
	names := make([]string, 0, len(c.full))
	for _, src := range c.full {
		names = append(names, src.Name())
	}
	return names
}

// FullReload replaces all locations with the merged output of every full source.
// It waits for a running reload to finish first.
func (c *Coordinator) FullReload(ctx context.Context) (*Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fullReload(ctx)
}

// TryFullReload is FullReload without waiting: it returns inventory.ErrReloadInProgress
// when another reload holds the lock.
func (c *Coordinator) TryFullReload(ctx context.Context) (*Report, error) {
	if !c.mu.TryLock() {
		return nil, inventory.ErrReloadInProgress
	}
	defer c.mu.Unlock()
	return c.fullReload(ctx)
}

// PartialReload refetches the given locations and publishes a snapshot holding exactly
// those locations. Every location outside ids is dropped from the store.
// The first failed fetch aborts the reload.
func (c *Coordinator) PartialReload(ctx context.Context, ids []string) (*Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.partialReload(ctx, ids)
}

func (c *Coordinator) fullReload(ctx context.Context) (*Report, error) {
	report := &Report{Kind: KindFull, StartedAt: time.Now()}
	if len(c.full) == 0 {
		return c.fail(report, ErrNoSources)
	}
	c.logger.Debug("Starting reload of all locations", zap.Strings("sources", c.SourceNames()))

	c.setState(StateFetching)
	defer c.setState(StateIdle)

	batches := make([][]*inventory.Location, len(c.full))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range c.full {
		g.Go(func() error {
			locs, err := src.FetchAll(gctx)
			if err != nil {
				// Sources cut short by another source's failure are not failures of their own.
				if gctx.Err() == nil || !errors.Is(err, context.Canceled) {
					c.recorder.SourceFailed(src.Name())
				}
				return fmt.Errorf("fetch %s: %w", src.Name(), err)
			}
			c.logger.Debug("Fetched source", zap.String("source", src.Name()), zap.Int("locations", len(locs)))
			batches[i] = locs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.fail(report, err)
	}

	c.setState(StateMerging)
	merged := make(map[string]*inventory.Location)
	for i, batch := range batches {
		for _, loc := range batch {
			if loc == nil {
				continue
			}
			if prev, ok := merged[loc.ID]; ok {
				c.logger.Warn("Location returned by more than one source",
					zap.String("location", loc.ID),
					zap.String("previous", prev.BaseStore.String()),
					zap.String("source", c.full[i].Name()))
			}
			merged[loc.ID] = loc
		}
	}

	return c.buildAndPublish(report, merged), nil
}

func (c *Coordinator) partialReload(ctx context.Context, ids []string) (*Report, error) {
	ids = cloneIDs(ids)
	report := &Report{Kind: KindPartial, Requested: ids, StartedAt: time.Now()}
	if c.perLocation == nil {
		return c.fail(report, ErrNoLocationSource)
	}
	if len(ids) == 0 {
		return c.fail(report, ErrNoLocations)
	}
	c.logger.Debug("Starting reload of locations", zap.Strings("locations", ids))

	c.setState(StateFetching)
	defer c.setState(StateIdle)

	fetched := make([]*inventory.Location, 0, len(ids))
	for _, id := range ids {
		loc, err := c.perLocation.FetchLocation(ctx, id)
		if err != nil {
			c.recorder.SourceFailed(c.perLocation.Name())
			return c.fail(report, fmt.Errorf("fetch location %s from %s: %w", id, c.perLocation.Name(), err))
		}
		if loc == nil {
			c.recorder.SourceFailed(c.perLocation.Name())
			return c.fail(report, &inventory.MalformedRecordError{
				Origin: c.perLocation.Name(), Reason: fmt.Sprintf("no location returned for %s", id),
			})
		}
		if loc.ID != id {
			c.recorder.SourceFailed(c.perLocation.Name())
			return c.fail(report, &inventory.MalformedRecordError{
				Origin: c.perLocation.Name(), Reason: fmt.Sprintf("requested location %s, got %s", id, loc.ID),
			})
		}
		c.logger.Debug("Loaded location", zap.Stringer("location", loc))
		fetched = append(fetched, loc)
	}

	c.setState(StateMerging)
	candidate := c.store.Snapshot().Locations()
	for _, loc := range fetched {
		candidate[loc.ID] = loc
	}
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	for id := range candidate {
		if _, ok := keep[id]; !ok {
			delete(candidate, id)
		}
	}

	return c.buildAndPublish(report, candidate), nil
}

func (c *Coordinator) buildAndPublish(report *Report, locations map[string]*inventory.Location) *Report {
	c.setState(StateBuilding)
	snap := inventory.Build(locations)

	c.setState(StatePublishing)
	prev := c.store.Publish(snap)

	report.Locations = snap.LocationCount()
	report.Items = snap.ItemCount()
	report.Levels = snap.LevelCount()
	diff := inventory.Compare(prev, snap)
	report.Added, report.Removed, report.Changed = len(diff.Added), len(diff.Removed), len(diff.Changed)
	c.finish(report)
	if len(diff.Removed) > 0 {
		c.logger.Debug("Locations removed from inventory", zap.Strings("locations", diff.Removed))
	}
	c.recorder.ReloadFinished(string(report.Kind), nil, snap, report.Duration)

	c.logger.Info(fmt.Sprintf("Finished %s reload", report.Kind),
		zap.Int("locations", report.Locations),
		zap.Int("items", report.Items),
		zap.Int("levels", report.Levels),
		zap.Int("added", report.Added),
		zap.Int("removed", report.Removed),
		zap.Int("changed", report.Changed),
		zap.Duration("duration", report.Duration))
	return report
}

func (c *Coordinator) fail(report *Report, err error) (*Report, error) {
	report.Error = err.Error()
	c.finish(report)
	c.recorder.ReloadFinished(string(report.Kind), err, nil, report.Duration)
	c.logger.Error(fmt.Sprintf("Failed %s reload", report.Kind),
		zap.Error(err),
		zap.Duration("duration", report.Duration))
	return report, err
}

func (c *Coordinator) finish(report *Report) {
	report.Duration = time.Since(report.StartedAt)
	report.DurationMS = report.Duration.Milliseconds()
	c.last.Store(report)
}

func (c *Coordinator) setState(s State) {
	c.state.Store(int32(s))
}

// cloneIDs copies ids so the report does not alias caller memory such as request buffers.
func cloneIDs(ids []string) []string {
	if len(ids) == 0 {
		return ids
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strings.Clone(id)
	}
	return out
}
