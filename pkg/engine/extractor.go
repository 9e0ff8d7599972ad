package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dscforge/dscforge/pkg/config"
	"github.com/dscforge/dscforge/pkg/dsc"
	"github.com/dscforge/dscforge/pkg/stores"
	"github.com/dscforge/dscforge/pkg/telemetry"
)

// Extractor runs extractions described by a manifest.
type Extractor struct {
	logger  *telemetry.Logger
	metrics *telemetry.Metrics
	store   stores.Store
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Extractor) { e.metrics = m }
}

// WithStore attaches a run store. The store must be initialized and
// migrated by the caller.
func WithStore(s stores.Store) Option {
	return func(e *Extractor) { e.store = s }
}

// NewExtractor creates an extractor with the given logger.
func NewExtractor(logger *telemetry.Logger, opts ...Option) *Extractor {
	e := &Extractor{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one extraction. Rendering is pure; persistence failures
// are reported as classified errors but the rendered result is returned
// alongside them so output is never lost to a store outage.
func (e *Extractor) Run(ctx context.Context, m *config.Manifest) (*Result, error) {
	start := time.Now()
	if e.metrics != nil {
		e.metrics.RecordRunStarted(m.Name)
	}

	log := e.logger.WithField("manifest", m.Name)
	log.Infof("starting extraction of %d resources", len(m.Resources))

	registry := dsc.NewRegistry()
	refs := newReferenceSet()
	blocks := make([]RenderedBlock, 0, len(m.Resources))
	for _, r := range m.Resources {
		block, err := e.renderResource(r, registry, refs)
		if err != nil {
			e.recordCompletion(string(stores.RunStatusFailed), start)
			return nil, err
		}
		blocks = append(blocks, block)
	}

	e.applyPromotions(m.Promotions, blocks)

	credentials := refs.sorted()
	result := &Result{
		Document:    assembleDocument(m.Name, credentials, blocks),
		Data:        renderData(m.Data),
		Blocks:      blocks,
		Credentials: credentials,
	}

	if err := e.persist(ctx, m, result); err != nil {
		e.recordCompletion(string(stores.RunStatusFailed), start)
		return result, err
	}

	e.recordCompletion(string(stores.RunStatusCompleted), start)
	log.WithRunID(result.RunID).Infof("extraction completed in %s", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// renderResource classifies the instance's parameters and renders its
// block.
func (e *Extractor) renderResource(r config.ResourceInstance, registry *dsc.Registry, refs *referenceSet) (RenderedBlock, error) {
	log := e.logger.WithResource(r.Type, r.Name)

	credentials := toSet(r.Credentials)
	noEscape := toSet(r.NoEscape)
	allowVariables := toSet(r.AllowVariables)

	params := make([]dsc.Parameter, 0, len(r.Parameters))
	for _, name := range sortedKeys(r.Parameters) {
		raw := r.Parameters[name]

		var value dsc.Value
		if credentials[name] {
			username, ok := raw.(string)
			if !ok {
				return RenderedBlock{}, NewValidationError(
					"credential parameter must be a username string",
					fmt.Errorf("got %T", raw),
				).WithResource(r.Name).WithParameter(name)
			}
			value = dsc.CredentialValue(username)
			// The param block must declare the exact variable the block
			// line renders. Values that already carry the reference
			// prefix are not usernames and stay out of the registry.
			refs.add(dsc.CredentialReference(username))
			if !strings.HasPrefix(username, dsc.ReferencePrefix) {
				registry.Save(username)
			}
			if e.metrics != nil {
				e.metrics.RecordCredentialRegistered()
			}
		} else {
			var ok bool
			value, ok = dsc.Classify(raw)
			if !ok {
				// Numbers and other scalar types render verbatim.
				value = dsc.RawValue(fmt.Sprint(raw))
			}
		}

		if e.metrics != nil {
			e.metrics.RecordParameterFormatted(value.Kind().String())
		}
		params = append(params, dsc.Parameter{
			Name:           name,
			Value:          value,
			NoEscape:       noEscape[name],
			AllowVariables: allowVariables[name],
			Comment:        r.Comments[name],
		})
	}

	resolver, err := buildResolver(r)
	if err != nil {
		return RenderedBlock{}, err
	}

	if e.metrics != nil {
		for _, p := range params {
			if p.Value.Kind() != dsc.KindNull {
				continue
			}
			if _, ok := resolver.ResolveKind(r.Type, p.Name); !ok {
				e.metrics.RecordParameterDropped(r.Type)
			}
		}
	}

	text := dsc.RenderResourceBlock(r.Type, r.Name, params, resolver)
	if e.metrics != nil {
		e.metrics.RecordBlockRendered(r.Type)
	}
	log.Debugf("rendered block with %d parameters", len(params))

	return RenderedBlock{ResourceType: r.Type, InstanceName: r.Name, Text: text}, nil
}

// buildResolver turns the instance's declared kinds into a resolver
// keyed by the resource type.
func buildResolver(r config.ResourceInstance) (dsc.StaticResolver, error) {
	if len(r.Types) == 0 {
		return nil, nil
	}
	resolver := make(dsc.StaticResolver, len(r.Types))
	for param, name := range r.Types {
		kind, ok := dsc.ParseKind(name)
		if !ok {
			return nil, NewValidationError(
				"unknown kind name",
				fmt.Errorf("kind %q", name),
			).WithResource(r.Name).WithParameter(param)
		}
		resolver[r.Type+"/"+param] = kind
	}
	return resolver, nil
}

// applyPromotions rewrites the quote boundaries of promoted parameters
// in place.
func (e *Extractor) applyPromotions(promotions []config.Promotion, blocks []RenderedBlock) {
	for _, p := range promotions {
		for i := range blocks {
			if blocks[i].InstanceName != p.Resource {
				continue
			}
			rewritten := dsc.StripQuotes(blocks[i].Text, p.Parameter, p.ArrayLike, p.ObjectLike)
			outcome := "unchanged"
			if rewritten != blocks[i].Text {
				outcome = "rewritten"
				blocks[i].Text = rewritten
			}
			if e.metrics != nil {
				e.metrics.RecordQuoteRewrite(outcome)
			}
			e.logger.WithResource(blocks[i].ResourceType, p.Resource).
				WithParameter(p.Parameter).
				Debugf("quote promotion %s", outcome)
		}
	}
}

// renderData renders the manifest's data section, if any.
func renderData(data map[string]map[string]any) string {
	if len(data) == 0 {
		return ""
	}
	cd := dsc.NewConfigurationData()
	for _, node := range sortedKeys(data) {
		entries := data[node]
		for _, key := range sortedKeys(entries) {
			cd.Set(node, key, entries[key], "")
		}
	}
	return cd.Render()
}

// persist records the run and its artifacts when a store is attached.
func (e *Extractor) persist(ctx context.Context, m *config.Manifest, result *Result) error {
	if e.store == nil {
		return nil
	}

	now := time.Now()
	run := &stores.Run{
		ID:            uuid.New().String(),
		ManifestName:  m.Name,
		Status:        stores.RunStatusRunning,
		StartedAt:     now,
		ResourceCount: len(result.Blocks),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.store.CreateRun(ctx, run); err != nil {
		return NewPersistenceError("failed to record run", err)
	}
	result.RunID = run.ID

	artifacts := []*stores.Artifact{
		{Kind: stores.ArtifactDocument, Name: m.Name + ".ps1", Content: result.Document},
	}
	if result.Data != "" {
		artifacts = append(artifacts, &stores.Artifact{
			Kind: stores.ArtifactData, Name: m.Name + ".psd1", Content: result.Data,
		})
	}
	for _, block := range result.Blocks {
		artifacts = append(artifacts, &stores.Artifact{
			Kind:    stores.ArtifactBlock,
			Name:    block.ResourceType + "/" + block.InstanceName,
			Content: block.Text,
		})
	}

	for _, a := range artifacts {
		a.ID = uuid.New().String()
		a.RunID = run.ID
		a.CreatedAt = time.Now()
		if err := e.store.CreateArtifact(ctx, a); err != nil {
			msg := err.Error()
			_ = e.store.UpdateRunStatus(ctx, run.ID, stores.RunStatusFailed, &msg)
			return NewPersistenceError("failed to record artifact", err)
		}
	}

	if err := e.store.UpdateRunStatus(ctx, run.ID, stores.RunStatusCompleted, nil); err != nil {
		return NewPersistenceError("failed to complete run", err)
	}
	return nil
}

func (e *Extractor) recordCompletion(status string, start time.Time) {
	if e.metrics != nil {
		e.metrics.RecordRunCompleted(status, time.Since(start))
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
