package cmd

import (
	"context"
	"os"
	"time"

	"github.com/AzielCF/az-drive/config"
	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainFile "github.com/AzielCF/az-drive/domains/file"
	domainResource "github.com/AzielCF/az-drive/domains/resource"
	domainSheet "github.com/AzielCF/az-drive/domains/sheet"
	"github.com/AzielCF/az-drive/infrastructure/gdrive"
	"github.com/AzielCF/az-drive/pkg/utils"
	"github.com/AzielCF/az-drive/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Usecase
	cacheUsecase    domainCache.ICacheUsecase
	resourceUsecase domainResource.IResourceUsecase
	documentUsecase domainDocument.IDocumentUsecase
	sheetUsecase    domainSheet.ISheetUsecase
	fileUsecase     domainFile.IFileUsecase

	appCancel context.CancelFunc
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "az-drive",
	Short: "Google Drive document server for AI agents",
	Long: `az-drive exposes Google Drive, Docs and Sheets content to AI agents over
MCP and REST. Large documents are cached in memory and read back through
bounded gdrive:// chunk addresses instead of full payloads.`,
}

func init() {
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig loads configuration from environment variables
func initEnvConfig() {
	if envPort := viper.GetString("app_port"); envPort != "" {
		config.AppPort = envPort
	}
	if envDebug := viper.GetBool("app_debug"); envDebug {
		config.AppDebug = envDebug
	}
	if envHost := viper.GetString("mcp_host"); envHost != "" {
		config.McpHost = envHost
	}
	if envPort := viper.GetString("mcp_port"); envPort != "" {
		config.McpPort = envPort
	}
	if viper.IsSet("cache_ttl_mins") {
		if n := viper.GetInt("cache_ttl_mins"); n > 0 {
			config.CacheTTLMins = n
		}
	}
	if viper.IsSet("cache_sweep_interval_mins") {
		if n := viper.GetInt("cache_sweep_interval_mins"); n >= 0 {
			config.CacheSweepIntervalMins = n
		}
	}
	if viper.IsSet("truncate_limit") {
		if n := viper.GetInt("truncate_limit"); n > 0 {
			config.TruncateLimit = n
		}
	}
	if envToken := viper.GetString("gdrive_access_token"); envToken != "" {
		config.GdriveAccessToken = envToken
	}
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&config.AppPort,
		"port", "p",
		config.AppPort,
		"REST server port --port <number> | example: --port=3000",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&config.AppDebug,
		"debug", "d",
		config.AppDebug,
		"enable debug logging --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().IntVarP(
		&config.CacheTTLMins,
		"cache-ttl", "",
		config.CacheTTLMins,
		"cache entry TTL in minutes --cache-ttl <number> | example: --cache-ttl=30",
	)
	rootCmd.PersistentFlags().IntVarP(
		&config.CacheSweepIntervalMins,
		"cache-sweep-interval", "",
		config.CacheSweepIntervalMins,
		"active cache sweep interval in minutes, 0 disables the sweep --cache-sweep-interval <number> | example: --cache-sweep-interval=5",
	)
	rootCmd.PersistentFlags().IntVarP(
		&config.TruncateLimit,
		"truncate-limit", "",
		config.TruncateLimit,
		"maximum characters per full response --truncate-limit <number> | example: --truncate-limit=25000",
	)
}

func initApp() {
	if config.AppDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var ctx context.Context
	ctx, appCancel = context.WithCancel(context.Background())

	driveClient := gdrive.NewClient()

	// 1. Cache first: every ingest service stores through it.
	cacheUsecase = usecase.NewCacheService(
		time.Duration(config.CacheTTLMins)*time.Minute,
		time.Duration(config.CacheSweepIntervalMins)*time.Minute,
		nil,
	)
	cacheUsecase.StartBackgroundSweep(ctx)

	// 2. Resolver over the cache.
	resourceUsecase = usecase.NewResourceService(cacheUsecase)

	// 3. Ingest and forwarding services.
	documentUsecase = usecase.NewDocumentService(driveClient, cacheUsecase)
	sheetUsecase = usecase.NewSheetService(driveClient, cacheUsecase)
	fileUsecase = usecase.NewFileService(driveClient, cacheUsecase)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp performs a clean shutdown of background workers.
func StopApp() {
	logrus.Info("[APP] Stopping application...")

	if appCancel != nil {
		appCancel()
	}

	logrus.Info("[APP] Application stopped cleanly.")
}
