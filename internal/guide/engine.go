// Package guide provides the high-level orchestration for resolving a
// service request into a complete service profile.
package guide

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/compose"
	"github.com/wanjiru/huduma-guide/internal/db"
	"github.com/wanjiru/huduma-guide/internal/eligibility"
	"github.com/wanjiru/huduma-guide/internal/narrative"
	"github.com/wanjiru/huduma-guide/internal/normalize"
	"github.com/wanjiru/huduma-guide/internal/portal"
	"github.com/wanjiru/huduma-guide/internal/types"
)

// ProgressEvent represents a progress update during resolution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called as resolution stages complete
type ProgressCallback func(event ProgressEvent)

// Resolution stages reported through the progress callback.
const (
	StageProfile   = "profile"
	StageNarrative = "narrative"
)

// Engine resolves service requests. The rule-based stages (normalize,
// evaluate, compose) are synchronous and never fail for unknown inputs;
// the narrative stage is best-effort and degrades to baseline guidance.
type Engine struct {
	catalog   *catalog.Catalog
	generator *narrative.Generator
	portals   *portal.Snapshotter
	database  *db.DB
	verbose   bool
}

// Options configures an Engine. Generator, Portals and Database are all
// optional; a zero Options still yields a fully working rule-based engine.
type Options struct {
	Generator *narrative.Generator
	Portals   *portal.Snapshotter
	Database  *db.DB
	Verbose   bool
}

// NewEngine creates an engine over the given catalog.
func NewEngine(cat *catalog.Catalog, opts Options) *Engine {
	return &Engine{
		catalog:   cat,
		generator: opts.Generator,
		portals:   opts.Portals,
		database:  opts.Database,
		verbose:   opts.Verbose,
	}
}

// Result is the outcome of one resolution.
type Result struct {
	Request *types.ServiceRequest `json:"request"`
	Profile *types.ServiceProfile `json:"profile"`
}

// Resolve turns a loose request into a complete service profile. The
// profile is composed entirely from the rules engine before any network
// or model call happens; narrative enrichment and audit persistence run
// concurrently afterwards and their failures never surface to the caller.
func (e *Engine) Resolve(ctx context.Context, loose *normalize.LooseRequest, onProgress ProgressCallback) *Result {
	req := normalize.Request(loose)
	entry := e.catalog.Entry(req.Service)
	verdict := eligibility.Evaluate(req.Service, req.AgeBracket, req.Residency)
	profile := compose.Compose(req, verdict, entry, e.catalog.Offices())

	emit(onProgress, StageProfile, "Resolved service profile", profile)

	var portalText string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if e.portals != nil {
			portalText = e.portals.Text(gctx, entry.PortalURL)
		}
		return nil
	})
	g.Go(func() error {
		if e.database != nil {
			_, err := e.database.SaveResolution(gctx,
				string(req.Service), string(req.County), string(verdict.Status),
				req, profile, e.generator != nil)
			if err != nil && e.verbose {
				log.Printf("[GUIDE] audit save failed: %v", err)
			}
		}
		return nil
	})
	_ = g.Wait() // both goroutines are best-effort and return nil

	// The guidance section keeps the catalog baseline when generation is
	// disabled or fails; its IsAIGenerated marker is set at compose time
	// and never depends on whether the model actually ran.
	if e.generator != nil {
		if text, generated := e.generator.Narrative(ctx, profile, req, portalText); generated {
			profile.Guidance.Explanation = text
		}
	}

	emit(onProgress, StageNarrative, "Narrative guidance ready", profile.Guidance)

	return &Result{Request: req, Profile: profile}
}

// Catalog exposes the engine's catalog for listing endpoints.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ChatReply produces a conversational answer for a free-text query that
// has already been resolved into a profile.
func (e *Engine) ChatReply(ctx context.Context, profile *types.ServiceProfile, query string) (string, bool) {
	if e.generator == nil {
		return narrative.FallbackReply, false
	}
	return e.generator.ChatReply(ctx, profile, query)
}

// Database returns the configured database, or nil.
func (e *Engine) Database() *db.DB {
	return e.database
}

// Generator returns the configured narrative generator, or nil.
func (e *Engine) Generator() *narrative.Generator {
	return e.generator
}

func emit(cb ProgressCallback, stage, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Stage: stage, Message: message, Content: content})
	}
}
