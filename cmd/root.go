// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/audiobook-curator/internal/ai"
	"github.com/jdfalk/audiobook-curator/internal/cache"
	"github.com/jdfalk/audiobook-curator/internal/config"
	"github.com/jdfalk/audiobook-curator/internal/covers"
	"github.com/jdfalk/audiobook-curator/internal/metrics"
	"github.com/jdfalk/audiobook-curator/internal/models"
	"github.com/jdfalk/audiobook-curator/internal/progress"
	"github.com/jdfalk/audiobook-curator/internal/reconcile"
	"github.com/jdfalk/audiobook-curator/internal/scanner"
	"github.com/jdfalk/audiobook-curator/internal/sidecar"
	"github.com/jdfalk/audiobook-curator/internal/sources"
	"github.com/jdfalk/audiobook-curator/internal/tagcodec"
)

var cfgFile string
var rootDir string
var cachePath string
var workers int
var backup bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audiobook-curator",
	Short: "Curate audiobook metadata and write it back into file tags",
	Long: `Audiobook Curator scans folders of audio files, reconciles their
bibliographic metadata from embedded tags, book catalogs, retailer lookups
and an optional AI pass, and writes the result back into each file's native
tag structure.`,
}

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the library and list discovered book groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := scanGroups()
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%-10s %-40s %d file(s) [%s]\n", g.Type, g.Name, len(g.Files), g.State)
		}
		fmt.Printf("Found %d book groups\n", len(groups))
		return nil
	},
}

// curateCmd represents the curate command
var curateCmd = &cobra.Command{
	Use:   "curate",
	Short: "Reconcile metadata for every book group",
	Long: `Reconcile each group's metadata from embedded tags, catalog and
retailer sources and the optional AI pass, then save a sidecar record per
group. File tags are not modified; use "write" for that.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := scanGroups()
		if err != nil {
			return err
		}
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		r := newReconciler(store)
		bar := progress.NewBar(len(groups), "Reconciling")
		failed, err := reconcile.ReconcileAll(cmd.Context(), r, groups, config.AppConfig.Workers, bar)
		if err != nil {
			return err
		}

		saved := 0
		for _, g := range groups {
			if g.State != models.StateReconciled {
				continue
			}
			if err := sidecar.Save(g.Dir, &g.Metadata); err != nil {
				fmt.Printf("Warning: could not save sidecar for %s: %v\n", g.Name, err)
				continue
			}
			saved++
		}
		fmt.Printf("Reconciled %d groups (%d failed), %d sidecars saved\n",
			len(groups)-failed, failed, saved)
		return nil
	},
}

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write reconciled metadata into audio file tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := scanGroups()
		if err != nil {
			return err
		}
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		// Groups without a sidecar record have nothing trustworthy to write.
		var ready []*models.BookGroup
		for _, g := range groups {
			if g.State == models.StateLoadedFromFile {
				ready = append(ready, g)
			}
		}
		if len(ready) == 0 {
			fmt.Println("No reconciled groups found; run \"curate\" first")
			return nil
		}

		result, err := runBatchWrite(cmd.Context(), store, ready)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote tags: %d succeeded, %d failed\n", result.Succeeded, result.Failed)
		for _, f := range result.Failures {
			fmt.Printf("  FAILED %s: %s\n", f.Path, f.Reason)
		}
		return nil
	},
}

// organizeCmd runs the complete pipeline
var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Run the complete curation pipeline",
	Long:  `Scan the library, reconcile every group's metadata, and write tags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := scanGroups()
		if err != nil {
			return err
		}
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Printf("Found %d book groups\n", len(groups))

		r := newReconciler(store)
		bar := progress.NewBar(len(groups), "Reconciling")
		failed, err := reconcile.ReconcileAll(cmd.Context(), r, groups, config.AppConfig.Workers, bar)
		if err != nil {
			return err
		}
		fmt.Printf("Reconciled %d groups (%d failed)\n", len(groups)-failed, failed)

		var ready []*models.BookGroup
		for _, g := range groups {
			if g.State == models.StateReconciled || g.State == models.StateLoadedFromFile {
				ready = append(ready, g)
				if g.State == models.StateReconciled {
					if err := sidecar.Save(g.Dir, &g.Metadata); err != nil {
						fmt.Printf("Warning: could not save sidecar for %s: %v\n", g.Name, err)
					}
				}
			}
		}

		result, err := runBatchWrite(cmd.Context(), store, ready)
		if err != nil {
			return err
		}
		fmt.Printf("\nCuration complete: %d files written, %d failed\n",
			result.Succeeded, result.Failed)
		for _, f := range result.Failures {
			fmt.Printf("  FAILED %s: %s\n", f.Path, f.Reason)
		}
		return nil
	},
}

// cacheClearCmd represents the cache clear command
var cacheClearCmd = &cobra.Command{
	Use:   "cache-clear",
	Short: "Clear the reconciliation cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Println("Cache cleared")
		return nil
	},
}

// aiTestCmd verifies AI connectivity
var aiTestCmd = &cobra.Command{
	Use:   "ai-test",
	Short: "Verify the AI enhancement connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		enhancer := ai.NewEnhancer(config.AppConfig.OpenAI.APIKey, config.AppConfig.OpenAI.Enabled)
		if err := enhancer.TestConnection(cmd.Context()); err != nil {
			return fmt.Errorf("AI connection test failed: %w", err)
		}
		fmt.Println("AI connection OK")
		return nil
	},
}

func scanGroups() ([]*models.BookGroup, error) {
	if config.AppConfig.RootDir == "" {
		return nil, fmt.Errorf("root directory not specified")
	}
	fmt.Printf("Scanning directory: %s\n", config.AppConfig.RootDir)
	s := scanner.New(config.AppConfig.SupportedExtensions)
	return s.Scan(config.AppConfig.RootDir)
}

func openCache() (cache.Store, error) {
	path := config.AppConfig.CachePath
	if path == "" {
		path = "curator-cache.pebble"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	store, err := cache.Open(path)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Using cache: %s\n", path)
	return store, nil
}

func newReconciler(store cache.Store) *reconcile.Reconciler {
	timeout := time.Duration(config.AppConfig.SourceTimeoutSeconds) * time.Second
	return &reconcile.Reconciler{
		Tags:     sources.FileTagReader{},
		Catalog:  sources.NewGoogleBooksClient(timeout),
		Retailer: sources.NewAudibleClient(timeout),
		Enhancer: ai.NewEnhancer(config.AppConfig.OpenAI.APIKey, config.AppConfig.OpenAI.Enabled),
		Cache:    store,
	}
}

// runBatchWrite writes tags for the given groups, caching each group's
// cover bytes at most once per group.
func runBatchWrite(ctx context.Context, store cache.Store, groups []*models.BookGroup) (models.BatchResult, error) {
	writer := tagcodec.NewWriter(config.AppConfig.Backup)
	writer.KeepBackup = config.AppConfig.KeepBackups

	fetcher := covers.NewFetcher(time.Duration(config.AppConfig.SourceTimeoutSeconds) * time.Second)
	total := 0
	for _, g := range groups {
		total += len(g.Files)
	}
	batch := &tagcodec.Batch{
		Writer:   writer,
		Workers:  config.AppConfig.Workers,
		Progress: progress.NewBar(total, "Writing tags"),
		OnGroup: func(_ context.Context, g *models.BookGroup) error {
			if g.Metadata.CoverURL == "" {
				return nil
			}
			data, mime, err := fetcher.Fetch(g.Metadata.CoverURL)
			if err != nil {
				return err
			}
			key := cache.CoverKey(g.ID)
			if err := store.Set(key, data); err != nil {
				return err
			}
			g.Metadata.CoverCacheKey = key
			g.Metadata.CoverMIMEType = mime
			return nil
		},
	}
	return batch.Run(ctx, groups)
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.audiobook-curator.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "root directory containing audiobooks")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "curator-cache.pebble", "path to the reconciliation cache")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 10, "number of concurrent workers")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", true, "back up files before writing tags")

	viper.BindPFlag("root_dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("cache_path", rootCmd.PersistentFlags().Lookup("cache"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("backup", rootCmd.PersistentFlags().Lookup("backup"))

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(curateCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(aiTestCmd)

	metrics.Register()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".audiobook-curator")
	}

	viper.SetEnvPrefix("AUDIOBOOK_CURATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
