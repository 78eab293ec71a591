package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/neurobridge-tutorials/internal/config"
	"github.com/yungbote/neurobridge-tutorials/internal/modules/tutorial/catalog"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/envutil"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/shutdown"
	"github.com/yungbote/neurobridge-tutorials/internal/services"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }
func (l *idList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

type options struct {
	ids          idList
	name         string
	icon         string
	description  string
	format       string
	catalogDir   string
	categoryOnly bool
	concurrency  int
}

func main() {
	var opts options
	flag.Var(&opts.ids, "id", "language identifier to export (repeatable)")
	flag.StringVar(&opts.name, "name", "", "display name (single -id only; defaults to the id)")
	flag.StringVar(&opts.icon, "icon", "", "icon passed through to the tutorial")
	flag.StringVar(&opts.description, "description", "", "tutorial description (blank uses the default)")
	flag.StringVar(&opts.format, "format", "json", "output format: json, yaml or markdown")
	flag.StringVar(&opts.catalogDir, "catalog", envutil.String(config.CatalogDirEnv, ""), "directory of catalog *.yaml files (default: embedded)")
	flag.BoolVar(&opts.categoryOnly, "category-only", false, "print the category and provider instead of the tutorial")
	flag.IntVar(&opts.concurrency, "concurrency", 4, "tutorials generated in parallel")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	if err := run(ctx, log, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tutorial_export: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, opts options, out io.Writer) error {
	if len(opts.ids) == 0 {
		return fmt.Errorf("at least one -id is required")
	}
	if opts.name != "" && len(opts.ids) > 1 {
		return fmt.Errorf("-name applies to a single -id")
	}
	cat, err := catalog.Load(opts.catalogDir)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	svc := services.NewTutorialService(log, cat, nil, config.TutorialConfig{
		MaxBatchSize:     len(opts.ids),
		BatchConcurrency: opts.concurrency,
	})

	if opts.categoryOnly {
		for _, id := range opts.ids {
			cls := svc.Classify(ctx, id)
			if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", cls.LanguageID, cls.Category, cls.Provider); err != nil {
				return err
			}
		}
		return nil
	}

	items := make([]services.GenerateTutorialInput, 0, len(opts.ids))
	for _, id := range opts.ids {
		items = append(items, services.GenerateTutorialInput{
			LanguageID:   id,
			LanguageName: opts.name,
			Icon:         opts.icon,
			Description:  opts.description,
		})
	}
	tutorials, err := svc.GenerateBatch(ctx, items)
	if err != nil {
		return err
	}
	return write(out, opts.format, tutorials)
}

func write(out io.Writer, format string, tutorials []*types.Tutorial) error {
	var payload any = tutorials
	if len(tutorials) == 1 {
		payload = tutorials[0]
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return err
		}
		return enc.Close()
	case "markdown", "md":
		for i, t := range tutorials {
			if i > 0 {
				if _, err := io.WriteString(out, "\n---\n\n"); err != nil {
					return err
				}
			}
			if err := writeMarkdown(out, t); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeMarkdown(out io.Writer, t *types.Tutorial) error {
	if _, err := fmt.Fprintf(out, "<!-- %s: %s -->\n\n", t.Title, t.Description); err != nil {
		return err
	}
	for _, s := range t.Sections {
		if _, err := fmt.Fprintf(out, "%s\n\n", s.Content); err != nil {
			return err
		}
	}
	return nil
}
