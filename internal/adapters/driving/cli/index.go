package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/GaureshArt/docsy/internal/adapters/driven/config/file"
	"github.com/GaureshArt/docsy/internal/adapters/driven/storage/sqlite"
	"github.com/GaureshArt/docsy/internal/connectors/github"
	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
	"github.com/GaureshArt/docsy/internal/core/ports/driving"
	"github.com/GaureshArt/docsy/internal/core/services"
	"github.com/GaureshArt/docsy/internal/pipeline/chunker"
	"github.com/GaureshArt/docsy/internal/pipeline/normalizer"
	"github.com/GaureshArt/docsy/internal/pipeline/ranker"
	"github.com/GaureshArt/docsy/internal/pipeline/selector"
)

var (
	indexRefFlag    string
	indexDBFlag     string
	indexTokenFlag  string
	indexDryRunFlag bool
)

// ingestor is swapped by tests; when nil the command wires the real
// pipeline from flags and configuration.
var ingestor driving.Ingestor

var indexCmd = &cobra.Command{
	Use:   "index <owner/repo>",
	Short: "Ingest a repository's documentation",
	Long: `Runs the full ingestion pipeline against a GitHub repository:
tree listing, candidate selection, importance ranking, content
normalisation and structural chunking. Chunks are persisted to a
local sqlite database unless --dry-run is given.

The repository may be given as owner/repo, owner/repo@ref, or a
github.com URL. An API token is read from --token or GITHUB_TOKEN;
without one, access is anonymous and rate-limited.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexRefFlag, "ref", "",
		"branch, tag or commit to ingest (default: the default branch)")
	indexCmd.Flags().StringVar(&indexDBFlag, "db", "",
		"data directory for the chunk database (default: ~/.docsy/data)")
	indexCmd.Flags().StringVar(&indexTokenFlag, "token", "",
		"GitHub API token (default: GITHUB_TOKEN)")
	indexCmd.Flags().BoolVar(&indexDryRunFlag, "dry-run", false,
		"run the pipeline without persisting chunks")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ref, err := domain.ParseRepoRef(args[0])
	if err != nil {
		return err
	}
	if indexRefFlag != "" {
		ref.Ref = indexRefFlag
	}

	ctx := context.Background()

	ing := ingestor
	if ing == nil {
		var closeStore func() error
		ing, closeStore, err = buildIngestor(ctx)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore() //nolint:errcheck
		}
	}

	cmd.Printf("Ingesting %s...\n", ref.String())

	report, err := ing.Ingest(ctx, ref)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	printReport(cmd, report)
	return nil
}

// buildIngestor wires the concrete pipeline from flags and stored
// configuration. The returned closer is nil for dry runs.
func buildIngestor(ctx context.Context) (driving.Ingestor, func() error, error) {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	token := indexTokenFlag
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	transport := github.New(ctx, token)

	var (
		store      *sqlite.Store
		closeStore func() error
	)
	if !indexDryRunFlag {
		store, err = sqlite.NewStore(indexDBFlag)
		if err != nil {
			return nil, nil, fmt.Errorf("open chunk store: %w", err)
		}
		closeStore = store.Close
	}

	svc := services.NewIngestService(
		transport,
		selector.New(configfile.SelectorOptions(cfg)...),
		ranker.New(configfile.RankerOptions(cfg)...),
		normalizer.New(configfile.NormalizerOptions(cfg)...),
		chunker.New(configfile.ChunkerOptions(cfg)...),
		storeOrNil(store),
	)
	return svc, closeStore, nil
}

// storeOrNil avoids handing the service a typed nil interface.
func storeOrNil(store *sqlite.Store) driven.ChunkStore {
	if store == nil {
		return nil
	}
	return store
}

func printReport(cmd *cobra.Command, report *driving.Report) {
	cmd.Printf("Run %s finished in %s\n", report.RunID, report.Duration.Round(time.Millisecond))
	cmd.Printf("  tree entries:  %d\n", report.TreeEntries)
	cmd.Printf("  candidates:    %d\n", report.Candidates)
	cmd.Printf("  ranked:        %d", report.Ranked)
	if report.TruncatedByLimit > 0 {
		cmd.Printf(" (%d dropped by capacity limit)", report.TruncatedByLimit)
	}
	cmd.Println()
	cmd.Printf("  fetched:       %d\n", report.Fetched)
	for _, failure := range report.FetchFailures {
		cmd.Printf("    skipped: %s\n", failure)
	}
	cmd.Printf("  normalised:    %d\n", report.Normalized)
	cmd.Printf("  chunks:        %d\n", report.Chunks)
	if indexDryRunFlag {
		cmd.Println("  (dry run, nothing persisted)")
	}
}
