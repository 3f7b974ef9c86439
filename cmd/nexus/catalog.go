package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/filter"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/infrastructure/catalog"
	"github.com/researchnexus/nexus/internal/infrastructure/db/mongo"
	"github.com/researchnexus/nexus/internal/pkg/config"
	"github.com/researchnexus/nexus/pkg/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and load the research catalog",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the configured catalog as YAML",
	Long: `Export reads the catalog from the configured CATALOG_BACKEND and writes it in
the YAML layout accepted by CATALOG_BACKEND=file and "catalog seed --file".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadConfiguredCatalog(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return catalog.Encode(out, records)
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the MongoDB catalog with the built-in records or a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := catalog.SeedRecords()
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			loaded, err := catalog.NewFile(path).Load(cmd.Context())
			if err != nil {
				return err
			}
			records = loaded
		}

		client, db, err := mongo.Connect(cmd.Context(), mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = mongo.Disconnect(client) }()

		repo := mongo.NewCatalogRepository(db)
		if err := repo.EnsureIndexes(cmd.Context()); err != nil {
			return fmt.Errorf("catalog indexes: %w", err)
		}
		n, err := repo.Seed(cmd.Context(), records)
		if err != nil {
			return err
		}
		log := logger.Get()
		log.Info().Int("records", n).Str("database", cfg.Mongo.Database).Msg("catalog seeded")
		return nil
	},
}

// newCatalogQueryCmd builds the query command with its own flag set.
func newCatalogQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter the configured catalog and print the matches as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}
			records, err := loadConfiguredCatalog(cmd)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(filter.Apply(records, f))
		},
	}

	cmd.Flags().String("search", "", "case-insensitive text over title, abstract, author and tags")
	cmd.Flags().String("field", "", "exact research field")
	cmd.Flags().StringSlice("tags", nil, "match any of these tags (comma-separated)")
	cmd.Flags().String("date", "", "order by upload date: newest or oldest")
	cmd.Flags().String("premium", "", "true for premium only, false for free only")
	return cmd
}

func init() {
	catalogExportCmd.Flags().String("out", "", "write to this file instead of stdout")

	catalogSeedCmd.Flags().String("file", "", "YAML catalog to load instead of the built-in records")

	catalogCmd.AddCommand(catalogExportCmd, catalogSeedCmd, newCatalogQueryCmd())
	rootCmd.AddCommand(catalogCmd)
}

func filterFromFlags(cmd *cobra.Command) (domain.Filter, error) {
	search, _ := cmd.Flags().GetString("search")
	field, _ := cmd.Flags().GetString("field")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	rawDate, _ := cmd.Flags().GetString("date")
	rawPremium, _ := cmd.Flags().GetString("premium")

	date, err := domain.ParseDateOrder(rawDate)
	if err != nil {
		return domain.Filter{}, err
	}
	f := domain.Filter{Search: search, Field: field, Tags: tags, Date: date}
	if rawPremium != "" {
		premium, err := strconv.ParseBool(rawPremium)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("%w: premium must be true or false", domain.ErrInvalidFilter)
		}
		f.Premium = &premium
	}
	return f, nil
}

// loadConfiguredCatalog reads the catalog from CATALOG_BACKEND without
// starting any other backend.
func loadConfiguredCatalog(cmd *cobra.Command) ([]domain.Research, error) {
	var source ports.CatalogSource
	switch cfg.CatalogBackend {
	case config.CatalogFile:
		source = catalog.NewFile(cfg.CatalogFile)
	case config.CatalogMongo:
		client, db, err := mongo.Connect(cmd.Context(), mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		defer func() { _ = mongo.Disconnect(client) }()
		source = mongo.NewCatalogRepository(db)
	default:
		source = catalog.NewSeed(0)
	}
	return source.Load(cmd.Context())
}
