// Command datagen runs a single generation end to end without the service
// stack: no database, no Redis, no scheduler. Useful for local dataset runs
// and smoke-testing prompt changes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-synth-datagen/internal/generator/config"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/repository"
	"golang-synth-datagen/internal/generator/service"
	"golang-synth-datagen/pkg/logger"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var (
	configPath  string
	domain      string
	datasetType string
	numRecords  int
	format      string
	startDate   string
	endDate     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one synthetic dataset and exit",
	Run:   runGenerate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available domains and dataset types",
	Run:   runList,
}

func runGenerate(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
	}
	aiRepo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
	}

	generatorSvc, err := service.NewGeneratorService(cfg, appLogger, aiRepo)
	if err != nil {
		appLogger.Fatal("Failed to initialize generator service", logger.ErrorField(err))
	}

	result, err := generatorSvc.GenerateDataset(ctx, &dto.GenerationRequest{
		Domain:      domain,
		DatasetType: datasetType,
		NumRecords:  numRecords,
		StartDate:   startDate,
		EndDate:     endDate,
		Format:      format,
	})
	if err != nil {
		appLogger.Fatal("Generation failed", logger.ErrorField(err))
	}

	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Records: %d/%d\n", result.GeneratedRecords, result.RequestedRecords)
	if result.OutputPath != "" {
		fmt.Printf("Output: %s\n", result.OutputPath)
	}
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewNop()
	generatorSvc, err := service.NewGeneratorService(cfg, appLogger, nil)
	if err != nil {
		log.Fatalf("Failed to initialize generator service: %v", err)
	}

	for _, info := range generatorSvc.Domains() {
		fmt.Printf("%s: %s\n", info.Domain, info.Description)
		for _, t := range info.DatasetTypes {
			fmt.Printf("  - %s\n", t)
		}
	}
}

func main() {
	rootCmd := &cobra.Command{Use: "datagen"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-generator.yaml", "Path to the configuration file")

	generateCmd.Flags().StringVar(&domain, "domain", "", "Generation domain, e.g. \"Capital Markets\"")
	generateCmd.Flags().StringVar(&datasetType, "dataset-type", "", "Dataset type, e.g. \"Stock Prices\"")
	generateCmd.Flags().IntVar(&numRecords, "records", 100, "Number of records to generate")
	generateCmd.Flags().StringVar(&format, "format", "csv", "Export format (csv, json, xml, parquet, excel)")
	generateCmd.Flags().StringVar(&startDate, "start-date", "", "Start of the date range (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&endDate, "end-date", "", "End of the date range (YYYY-MM-DD)")

	rootCmd.AddCommand(generateCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing datagen CLI: %s\n", err)
		os.Exit(1)
	}
}
