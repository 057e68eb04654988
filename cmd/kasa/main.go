package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmcorreia/kasa/internal/config"
	"github.com/dmcorreia/kasa/internal/ledger"
	ledgerStore "github.com/dmcorreia/kasa/internal/ledger/store"
	"github.com/dmcorreia/kasa/internal/source"
	"github.com/dmcorreia/kasa/internal/statement"
	"github.com/dmcorreia/kasa/internal/suggest"
	suggestStore "github.com/dmcorreia/kasa/internal/suggest/store"
	"github.com/dmcorreia/kasa/internal/vocab"
)

// kasa imports bank statement exports into the ledger. Every argument is
// a <source name>=<statement file> pair; with no arguments the ledger is
// only loaded and summarized.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	home, err := time.LoadLocation(cfg.Home.Timezone)
	if err != nil {
		slog.Error("invalid home timezone", "timezone", cfg.Home.Timezone, "error", err)
		os.Exit(1)
	}

	sources := source.NewRegistry(cfg.SourcesPath())
	if err := sources.Load(); err != nil {
		slog.Error("failed to load sources", "error", err)
		os.Exit(1)
	}

	vocabulary := vocab.NewRegistry(cfg.VocabularyPath())
	if err := vocabulary.Load(); err != nil {
		slog.Error("failed to load vocabulary", "error", err)
		os.Exit(1)
	}

	st := ledgerStore.New(cfg.LedgerPath())
	if err := st.Load(); err != nil {
		slog.Error("failed to load ledger", "error", err)
		os.Exit(1)
	}

	mappings := suggestStore.New(cfg.MappingsPath())
	if err := mappings.Load(); err != nil {
		slog.Error("failed to load category mappings", "error", err)
		os.Exit(1)
	}

	var (
		engine     = ledger.NewService(st, sources, vocabulary, home)
		categories = suggest.NewService(mappings)
		normalizer = statement.NewNormalizer(home)
	)

	imported := 0

	for _, arg := range os.Args[1:] {
		name, path, ok := strings.Cut(arg, "=")
		if !ok {
			slog.Error("arguments must be <source>=<statement file>", "arg", arg)
			os.Exit(2)
		}

		src, ok := sources.Get(name)
		if !ok {
			slog.Error("unknown source", "name", name)
			os.Exit(2)
		}

		recs, err := parseStatement(normalizer, src, path)
		if err != nil {
			slog.Error("failed to parse statement", "path", path, "error", err)
			os.Exit(1)
		}

		for _, r := range recs {
			if cat, err := categories.Suggest(r.Desc); err == nil && cat != "" {
				r.Category = vocabulary.CanonicalCategory(cat)
			}
		}

		engine.AddBulk(recs)
		imported += len(recs)

		slog.Info("imported statement", "source", src.Name, "records", len(recs))
	}

	if imported > 0 {
		if err := engine.Save(); err != nil {
			slog.Error("failed to save ledger", "error", err)
			os.Exit(1)
		}

		if err := vocabulary.Save(); err != nil {
			slog.Error("failed to save vocabulary", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("ledger ready", "records", engine.Len(), "imported", imported)
}

func parseStatement(n *statement.Normalizer, src *source.Source, path string) ([]*ledger.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return n.Parse(src, f)
}
