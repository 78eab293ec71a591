package app

import (
	"fmt"

	"github.com/yungbote/neurobridge-tutorials/internal/config"
	"github.com/yungbote/neurobridge-tutorials/internal/modules/tutorial/catalog"
	"github.com/yungbote/neurobridge-tutorials/internal/observability"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
	"github.com/yungbote/neurobridge-tutorials/internal/services"
)

type Services struct {
	Catalog   *catalog.Catalog
	// Fallback is set when the compiled-in lessons are served instead of the catalog.
	Fallback  bool
	Tutorials services.TutorialService
}

func wireServices(log *logger.Logger, cfg *config.Config, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	cat, fallback, err := loadCatalog(log, cfg.Tutorials.CatalogDir)
	if err != nil {
		return Services{}, err
	}
	metrics.SetCatalog(len(cat.Keys()), fallback)

	return Services{
		Catalog:   cat,
		Fallback:  fallback,
		Tutorials: services.NewTutorialService(log, cat, metrics, cfg.Tutorials),
	}, nil
}

// loadCatalog fails hard on a broken operator-supplied directory. A broken embedded
// catalog degrades to the fallback lessons so the API stays up.
func loadCatalog(log *logger.Logger, dir string) (*catalog.Catalog, bool, error) {
	cat, err := catalog.Load(dir)
	if err == nil {
		log.Info("tutorial catalog loaded", "dir", dir, "providers", len(cat.Keys()))
		return cat, false, nil
	}
	if dir != "" {
		return nil, false, fmt.Errorf("load catalog %s: %w", dir, err)
	}
	log.Error("embedded tutorial catalog invalid; serving fallback lessons", "error", err)
	return catalog.Fallback(), true, nil
}
