package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/yungbote/neurobridge-tutorials/internal/config"
	"github.com/yungbote/neurobridge-tutorials/internal/modules/tutorial/catalog"
	"github.com/yungbote/neurobridge-tutorials/internal/observability"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/apierr"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

func newTestService(t *testing.T, cfg config.TutorialConfig) (TutorialService, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load catalog: %v", err)
	}
	return NewTutorialService(logger.Nop(), cat, observability.NewMetrics(), cfg), cat
}

func requireAPIErr(t *testing.T, err error, status int, code string) {
	t.Helper()
	ae, ok := apierr.As(err)
	if !ok {
		t.Fatalf("expected apierr, got %v", err)
	}
	if ae.Status != status || ae.Code != code {
		t.Fatalf("unexpected apierr: got=%d/%s want=%d/%s", ae.Status, ae.Code, status, code)
	}
}

func TestGenerateFillsMeta(t *testing.T) {
	svc, cat := newTestService(t, config.TutorialConfig{MaxBatchSize: 10, BatchConcurrency: 2})
	tut, meta, err := svc.Generate(context.Background(), GenerateTutorialInput{
		LanguageID:   "react-native",
		LanguageName: "React Native",
		Icon:         "phone",
		Description:  "Learn mobile dev",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if meta.Category != types.CategoryMobile || meta.Provider != types.ProviderMobileReactNative {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if want := cat.Count(types.ProviderMobileReactNative); meta.SectionCount != want || len(tut.Sections) != want {
		t.Fatalf("unexpected section count: meta=%d sections=%d want=%d", meta.SectionCount, len(tut.Sections), want)
	}
	if tut.Description != "Learn mobile dev" || tut.Icon != "phone" {
		t.Fatalf("inputs not passed through: %+v", tut)
	}
}

func TestGenerateDefaultsNameToID(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{})
	tut, _, err := svc.Generate(context.Background(), GenerateTutorialInput{LanguageID: " elixir "})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if tut.Title != "Master elixir" {
		t.Fatalf("unexpected title: got=%q", tut.Title)
	}
}

func TestGenerateRejectsBlankID(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{})
	_, _, err := svc.Generate(context.Background(), GenerateTutorialInput{LanguageID: "   "})
	requireAPIErr(t, err, http.StatusBadRequest, "missing_language_id")
}

func TestGenerateHonorsCancelledContext(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := svc.Generate(ctx, GenerateTutorialInput{LanguageID: "go"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateBatchKeepsOrder(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{MaxBatchSize: 20, BatchConcurrency: 3})
	ids := []string{"css", "html", "react", "python", "go", "mysql", "docker", "unity", "zzz"}
	items := make([]GenerateTutorialInput, len(ids))
	for i, id := range ids {
		items[i] = GenerateTutorialInput{LanguageID: id, LanguageName: "Lang" + strconv.Itoa(i)}
	}

	got, err := svc.GenerateBatch(context.Background(), items)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("unexpected result count: got=%d want=%d", len(got), len(items))
	}
	for i, tut := range got {
		if want := "Master Lang" + strconv.Itoa(i); tut.Title != want {
			t.Fatalf("result %d out of order: got=%q want=%q", i, tut.Title, want)
		}
	}
}

func TestGenerateBatchLimits(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{MaxBatchSize: 2, BatchConcurrency: 1})

	_, err := svc.GenerateBatch(context.Background(), nil)
	requireAPIErr(t, err, http.StatusBadRequest, "empty_batch")

	items := []GenerateTutorialInput{{LanguageID: "a"}, {LanguageID: "b"}, {LanguageID: "c"}}
	_, err = svc.GenerateBatch(context.Background(), items)
	requireAPIErr(t, err, http.StatusBadRequest, "batch_too_large")
}

func TestGenerateBatchSurfacesItemError(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{MaxBatchSize: 5, BatchConcurrency: 2})
	_, err := svc.GenerateBatch(context.Background(), []GenerateTutorialInput{{LanguageID: "css"}, {LanguageID: ""}})
	requireAPIErr(t, err, http.StatusBadRequest, "missing_language_id")
}

func TestSectionLookup(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{})
	in := GenerateTutorialInput{LanguageID: "css", LanguageName: "CSS"}

	section, err := svc.Section(context.Background(), in, "1")
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if section.ID != "1" || section.Title != "CSS HOME" {
		t.Fatalf("unexpected section: %+v", section)
	}

	for _, id := range []string{"0", "-1", "abc", "999"} {
		_, err := svc.Section(context.Background(), in, id)
		requireAPIErr(t, err, http.StatusNotFound, "section_not_found")
	}
}

func TestClassifyAndCatalog(t *testing.T) {
	svc, _ := newTestService(t, config.TutorialConfig{})
	cls := svc.Classify(context.Background(), " Flutter ")
	if cls.LanguageID != "Flutter" || cls.Category != types.CategoryMobile || cls.Provider != types.ProviderMobileFlutter {
		t.Fatalf("unexpected classification: %+v", cls)
	}

	summaries := svc.Catalog(context.Background())
	if len(summaries) != len(types.AllProviderKeys()) {
		t.Fatalf("unexpected provider count: got=%d want=%d", len(summaries), len(types.AllProviderKeys()))
	}
	for _, s := range summaries {
		if s.Lessons == 0 || s.Category != s.Key.Category() {
			t.Fatalf("bad summary: %+v", s)
		}
	}
}
