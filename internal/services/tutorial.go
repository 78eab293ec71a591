package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/neurobridge-tutorials/internal/config"
	"github.com/yungbote/neurobridge-tutorials/internal/modules/tutorial"
	"github.com/yungbote/neurobridge-tutorials/internal/modules/tutorial/catalog"
	"github.com/yungbote/neurobridge-tutorials/internal/observability"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/apierr"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

type GenerateTutorialInput struct {
	LanguageID   string `json:"languageId" yaml:"languageId"`
	LanguageName string `json:"languageName,omitempty" yaml:"languageName,omitempty"`
	Icon         string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
}

type TutorialMeta struct {
	LanguageID   string            `json:"languageId"`
	Category     types.Category    `json:"category"`
	Provider     types.ProviderKey `json:"provider"`
	SectionCount int               `json:"sectionCount"`
}

type Classification struct {
	LanguageID string            `json:"languageId"`
	Category   types.Category    `json:"category"`
	Provider   types.ProviderKey `json:"provider"`
}

type ProviderSummary struct {
	Key      types.ProviderKey `json:"key"`
	Category types.Category    `json:"category"`
	Lessons  int               `json:"lessons"`
}

type TutorialService interface {
	Generate(ctx context.Context, in GenerateTutorialInput) (*types.Tutorial, *TutorialMeta, error)
	// GenerateBatch keeps input order; the first failing item aborts the batch.
	GenerateBatch(ctx context.Context, items []GenerateTutorialInput) ([]*types.Tutorial, error)
	// Section returns one section by its 1-based id.
	Section(ctx context.Context, in GenerateTutorialInput, sectionID string) (*types.TutorialSection, error)
	Classify(ctx context.Context, languageID string) Classification
	Catalog(ctx context.Context) []ProviderSummary
}

type tutorialService struct {
	log     *logger.Logger
	gen     *tutorial.Generator
	catalog *catalog.Catalog
	metrics *observability.Metrics
	cfg     config.TutorialConfig
}

func NewTutorialService(
	baseLog *logger.Logger,
	cat *catalog.Catalog,
	metrics *observability.Metrics,
	cfg config.TutorialConfig,
) TutorialService {
	if cat == nil {
		cat = catalog.Default(baseLog)
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	return &tutorialService{
		log:     baseLog.With("service", "TutorialService"),
		gen:     tutorial.New(cat),
		catalog: cat,
		metrics: metrics,
		cfg:     cfg,
	}
}

func (s *tutorialService) Generate(ctx context.Context, in GenerateTutorialInput) (*types.Tutorial, *TutorialMeta, error) {
	id := strings.TrimSpace(in.LanguageID)
	if id == "" {
		return nil, nil, apierr.BadRequest("missing_language_id", "languageId is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	name := in.LanguageName
	if strings.TrimSpace(name) == "" {
		name = id
	}

	ctx, span := observability.Tracer().Start(ctx, "tutorial.generate",
		trace.WithAttributes(attribute.String("tutorial.language_id", id)),
	)
	defer span.End()

	start := time.Now()
	tut, cls := s.gen.GenerateClassified(in.LanguageID, name, in.Icon, in.Description)
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.String("tutorial.category", cls.Category.String()),
		attribute.String("tutorial.provider", cls.Provider.String()),
		attribute.Int("tutorial.sections", len(tut.Sections)),
	)
	s.metrics.ObserveTutorial(cls.Category.String(), cls.Provider.String(), len(tut.Sections), elapsed)

	fields := append(ctxutil.TraceFields(ctx),
		"language_id", id,
		"category", cls.Category,
		"provider", cls.Provider,
		"sections", len(tut.Sections),
	)
	s.log.Debug("tutorial generated", fields...)

	return &tut, &TutorialMeta{
		LanguageID:   id,
		Category:     cls.Category,
		Provider:     cls.Provider,
		SectionCount: len(tut.Sections),
	}, nil
}

func (s *tutorialService) GenerateBatch(ctx context.Context, items []GenerateTutorialInput) ([]*types.Tutorial, error) {
	if len(items) == 0 {
		return nil, apierr.BadRequest("empty_batch", "batch has no items")
	}
	if s.cfg.MaxBatchSize > 0 && len(items) > s.cfg.MaxBatchSize {
		s.metrics.ObserveBatch(len(items), "rejected")
		return nil, apierr.BadRequest("batch_too_large", "batch of %d exceeds the limit of %d", len(items), s.cfg.MaxBatchSize)
	}

	ctx, span := observability.Tracer().Start(ctx, "tutorial.generate_batch",
		trace.WithAttributes(attribute.Int("tutorial.batch_size", len(items))),
	)
	defer span.End()

	out := make([]*types.Tutorial, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tut, _, err := s.Generate(gctx, item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = tut
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch failed")
		s.metrics.ObserveBatch(len(items), "error")
		s.log.Warn("tutorial batch failed", append(ctxutil.TraceFields(ctx), "items", len(items), "error", err)...)
		return nil, err
	}
	s.metrics.ObserveBatch(len(items), "ok")
	return out, nil
}

func (s *tutorialService) Section(ctx context.Context, in GenerateTutorialInput, sectionID string) (*types.TutorialSection, error) {
	tut, _, err := s.Generate(ctx, in)
	if err != nil {
		return nil, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(sectionID))
	if convErr != nil || n < 1 || n > len(tut.Sections) {
		return nil, apierr.NotFound("section_not_found", "section %q not found in %s tutorial", sectionID, strings.TrimSpace(in.LanguageID))
	}
	section := tut.Sections[n-1]
	return &section, nil
}

func (s *tutorialService) Classify(ctx context.Context, languageID string) Classification {
	cls := tutorial.Resolve(languageID)
	return Classification{
		LanguageID: strings.TrimSpace(languageID),
		Category:   cls.Category,
		Provider:   cls.Provider,
	}
}

func (s *tutorialService) Catalog(ctx context.Context) []ProviderSummary {
	keys := s.catalog.Keys()
	out := make([]ProviderSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, ProviderSummary{
			Key:      key,
			Category: key.Category(),
			Lessons:  s.catalog.Count(key),
		})
	}
	return out
}
