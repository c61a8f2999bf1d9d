package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"vacmetrics-engine/internal/analyze"
	"vacmetrics-engine/internal/charts"
	"vacmetrics-engine/internal/config"
	"vacmetrics-engine/internal/ingest"
	"vacmetrics-engine/internal/rates"
	"vacmetrics-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("VACMETRICS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vres := config.NormalizeAndValidate(cfg)
	for _, w := range vres.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !vres.OK() {
		log.Fatalf("config invalid: %s", strings.Join(vres.Errors, "; "))
	}

	// charts and run history share the data dir; one run at a time
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another analysis is already running in %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	db, err := store.Open(filepath.Join(dataDir, "vacmetrics.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background(), cfg, dataDir, db); err != nil {
		log.Fatal(err)
	}
}

// run is the whole pipeline: load -> normalize -> filter -> enrich ->
// report -> charts. Aborts on the first fatal error; the rate fetch is
// the only recoverable failure.
func run(ctx context.Context, cfg config.Config, dataDir string, db *store.DB) error {
	started := time.Now()

	vacs, err := ingest.LoadVacancies(cfg.Input.File)
	if err != nil {
		return fmt.Errorf("load vacancies: %w", err)
	}
	log.Printf("[ingest] loaded %d rows from %s", len(vacs), cfg.Input.File)

	vacs = ingest.CleanSalaries(vacs)
	log.Printf("[ingest] %d rows after salary cleanup", len(vacs))

	matched, err := analyze.FilterByKeywords(vacs, cfg.Input.Keywords)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		fmt.Println("Нет вакансий, соответствующих критериям")
		return nil
	}

	// One fetch per run; the calculator gets the table explicitly.
	provider := rates.New(cfg.Rates.URL, cfg.RatesTimeout())
	fctx, cancel := context.WithTimeout(ctx, cfg.RatesTimeout())
	defer cancel()

	ratesSource := "live"
	table, err := provider.Fetch(fctx)
	if err != nil {
		ratesSource = "fallback"
		log.Printf("[rates] fetch failed, using fallback table: %v", err)
	}

	recs := analyze.Enrich(matched, table)
	sum := analyze.Summarize(recs)

	fmt.Printf("Найдено %d вакансий за период %d-%d\n", sum.Vacancies, sum.MinYear, sum.MaxYear)
	fmt.Printf("Средняя зарплата: %s руб\n", sum.Mean.StringFixed(2))
	fmt.Printf("Медианная зарплата: %s руб\n", sum.Median.StringFixed(2))

	gen := charts.New(filepath.Join(dataDir, cfg.App.OutputDir), cfg.Charts.TopCities, cfg.Charts.TopSkills)
	if err := gen.RenderAll(recs); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	// History is best-effort; a storage hiccup shouldn't fail the run.
	sctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	rec := store.Run{
		ID:           uuid.NewString(),
		StartedAt:    started,
		Keywords:     cfg.Input.Keywords,
		Vacancies:    sum.Vacancies,
		MinYear:      sum.MinYear,
		MaxYear:      sum.MaxYear,
		MeanSalary:   sum.Mean.StringFixed(2),
		MedianSalary: sum.Median.StringFixed(2),
		RatesSource:  ratesSource,
	}
	if err := store.InsertRun(sctx, db.Pool, rec); err != nil {
		log.Printf("[store] record run failed: %v", err)
	}

	return nil
}
