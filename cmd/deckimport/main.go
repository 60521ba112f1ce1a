// Command deckimport imports and maintains saved decks from the command line.
//
// Usage:
//
//	deckimport import deck.txt --title "Kenrith"
//	deckimport import exports/*.csv --offline
//	deckimport parse deck.json
//	deckimport list
//	deckimport export 6f1c... --display
//	deckimport refresh 6f1c...
//	deckimport delete 6f1c...
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Malotkya/CapstoneProject/internal/config"
	"github.com/Malotkya/CapstoneProject/internal/db"
	"github.com/Malotkya/CapstoneProject/internal/decklist"
	"github.com/Malotkya/CapstoneProject/internal/importer"
	"github.com/Malotkya/CapstoneProject/internal/provider/scryfall"
	"github.com/Malotkya/CapstoneProject/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "deckimport",
		Short:        "Deck import and enrichment CLI",
		SilenceUsage: true,
	}

	root.AddCommand(importCmd())
	root.AddCommand(parseCmd())
	root.AddCommand(listCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(refreshCmd())
	root.AddCommand(deleteCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every store-backed command runs against.
type env struct {
	store    store.Store
	pipeline *importer.Pipeline
}

// run loads configuration, opens the deck store and builds the pipeline. With
// offline set the pipeline never calls Scryfall.
func run(offline bool, fn func(ctx context.Context, e *env) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	cls, err := cfg.Classifier()
	if err != nil {
		return fmt.Errorf("load classifier: %w", err)
	}

	st, err := db.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	var enricher importer.Enricher
	if !offline {
		enricher = scryfall.NewClient(cfg.ScryfallBaseURL, cfg.ScryfallUserAgent,
			cfg.ScryfallRateLimit, cfg.ScryfallTimeout, logger)
	}

	return fn(ctx, &env{store: st, pipeline: importer.New(enricher, cls, logger)})
}

// --------------------------------------------------------------------------
// import command
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	var title, image string
	var offline bool
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import deck list files (bulk JSON, CSV or text) as new decks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title != "" && len(args) > 1 {
				return fmt.Errorf("--title can only be used with a single file")
			}
			return run(offline, func(ctx context.Context, e *env) error {
				start := time.Now()
				var total importer.Result
				failed := 0

				for _, path := range args {
					name := title
					if name == "" {
						name = titleFromPath(path)
					}
					item, result, err := importFile(ctx, e, path, name, image, offline)
					if err != nil {
						failed++
						logger.Error("import failed", "file", path, "error", err)
						continue
					}
					total.Add(result)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ID, item.Title)
				}

				logger.Info("Import finished",
					"files", len(args), "failed", failed,
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", total.Summary())
				if failed > 0 {
					return fmt.Errorf("%d of %d files failed", failed, len(args))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Deck title (defaults to the file name)")
	cmd.Flags().StringVar(&image, "image", "", "Deck image url")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip Scryfall enrichment")
	return cmd
}

func importFile(ctx context.Context, e *env, path, title, image string, offline bool) (*store.Item, importer.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, importer.Result{}, err
	}

	item := store.NewItem(title, string(raw))
	item.Image = image

	result, err := e.pipeline.Insert(item)
	if err != nil {
		return nil, result, err
	}
	if !offline {
		if result, err = e.pipeline.Update(ctx, item); err != nil {
			return nil, result, err
		}
	}
	if err := e.store.Create(ctx, item); err != nil {
		return nil, result, fmt.Errorf("save deck: %w", err)
	}
	return item, result, nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// --------------------------------------------------------------------------
// parse command
// --------------------------------------------------------------------------

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print a deck list file in canonical form without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			p := importer.New(nil, nil, logger)
			item := store.NewItem(titleFromPath(args[0]), string(raw))
			result, err := p.Insert(item)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), decklist.ToText(p.Cache(item), p.Classifier()))
			logger.Info("Parsed deck list", "file", args[0], "summary", result.Summary())
			return nil
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// list / export / refresh / delete commands
// --------------------------------------------------------------------------

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(ctx context.Context, e *env) error {
				decks, err := e.store.List(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tCOLORS\tUPDATED")
				for _, d := range decks {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Title, d.Colors, d.UpdatedAt.Local().Format(time.DateTime))
				}
				return tw.Flush()
			})
		},
	}
}

func exportCmd() *cobra.Command {
	var display bool
	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Print the deck list of a saved deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(ctx context.Context, e *env) error {
				item, err := e.store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !display {
					fmt.Fprint(out, item.DeckList)
					return nil
				}
				for _, line := range decklist.DisplayList(e.pipeline.Cache(item), e.pipeline.Classifier()) {
					fmt.Fprintln(out, line)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&display, "display", false, "Print plain \"count name\" lines for purchase sites")
	return cmd
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh ID...",
		Short: "Look up cards still missing Scryfall data in saved decks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(ctx context.Context, e *env) error {
				var total importer.Result
				for _, id := range args {
					item, err := e.store.Get(ctx, id)
					if err != nil {
						return fmt.Errorf("deck %s: %w", id, err)
					}
					result, err := e.pipeline.Refresh(ctx, item)
					if err != nil {
						return fmt.Errorf("deck %s: %w", id, err)
					}
					if err := e.store.Update(ctx, item); err != nil {
						return fmt.Errorf("save deck %s: %w", id, err)
					}
					total.Add(result)
				}
				logger.Info("Refresh finished", "decks", len(args), "summary", total.Summary())
				return nil
			})
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete saved decks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(ctx context.Context, e *env) error {
				for _, id := range args {
					if err := e.store.Delete(ctx, id); err != nil {
						return fmt.Errorf("deck %s: %w", id, err)
					}
					logger.Info("Deck deleted", "id", id)
				}
				return nil
			})
		},
	}
}
