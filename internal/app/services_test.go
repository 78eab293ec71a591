package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	cat, fallback, err := loadCatalog(logger.Nop(), "")
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if fallback || cat == nil {
		t.Fatalf("embedded catalog should load without fallback")
	}
}

func TestLoadCatalogBrokenDirFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "general.yaml"), []byte("catalog: nope\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := loadCatalog(logger.Nop(), dir); err == nil {
		t.Fatalf("expected error for a broken catalog directory")
	}
}
