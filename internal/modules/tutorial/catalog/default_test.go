package catalog

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

func TestDefaultIgnoresCatalogDirEnv(t *testing.T) {
	t.Setenv("TUTORIAL_CATALOG_DIR", t.TempDir())
	embedded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := Default(nil)
	if got.Count(types.ProviderGeneral) != embedded.Count(types.ProviderGeneral) {
		t.Fatalf("Default should serve the embedded catalog: got=%d want=%d",
			got.Count(types.ProviderGeneral), embedded.Count(types.ProviderGeneral))
	}
}

func TestDefaultLoaderWarnsOnce(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	calls := 0
	d := &defaultLoader{load: func() (*Catalog, error) {
		calls++
		return nil, errors.New("broken catalog")
	}}
	for i := 0; i < 3; i++ {
		c := d.get(log)
		if c == nil || c.Count(types.ProviderGeneral) != len(fallbackLessons) {
			t.Fatalf("expected fallback catalog")
		}
	}
	d.get(nil)
	if calls != 1 {
		t.Fatalf("load calls: got=%d want=1", calls)
	}
	if n := logs.FilterMessage("tutorial catalog load failed; using fallback").Len(); n != 1 {
		t.Fatalf("warnings: got=%d want=1", n)
	}
}
