// Package service implements the generation pipeline and the surrounding job
// orchestration.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/config"
	"golang-synth-datagen/internal/generator/dataset"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/export"
	"golang-synth-datagen/internal/generator/metrics"
	"golang-synth-datagen/internal/generator/repository"
	"golang-synth-datagen/internal/generator/strategy"
	"golang-synth-datagen/internal/generator/validator"
	"golang-synth-datagen/pkg/logger"
	"golang-synth-datagen/pkg/utils"
)

// GeneratorName identifies this generator in dataset provenance columns and
// export metadata.
const GeneratorName = "golang-synth-datagen"

// MinRecords is the smallest accepted request size.
const MinRecords = 10

const filenameTimeLayout = "20060102_150405"

// GeneratorService runs the batched generation pipeline: prompt, generate,
// validate, assemble, measure, export.
type GeneratorService struct {
	cfg        *config.Config
	logger     *logger.Logger
	aiRepo     repository.AIRepository
	validator  *validator.Validator
	calculator *metrics.Calculator
	exporter   *export.Exporter
	strategies map[string]strategy.DatasetStrategy
	now        func() time.Time
}

// NewGeneratorService wires the pipeline together. The output directory must
// already be usable (config.Validate creates it).
func NewGeneratorService(cfg *config.Config, log *logger.Logger, aiRepo repository.AIRepository) (*GeneratorService, error) {
	exporter, err := export.New(cfg.Generator.OutputDir, log)
	if err != nil {
		return nil, err
	}

	strategies := make(map[string]strategy.DatasetStrategy)
	for _, s := range strategy.All() {
		strategies[strings.ToLower(s.Domain())] = s
	}

	return &GeneratorService{
		cfg:        cfg,
		logger:     log,
		aiRepo:     aiRepo,
		validator:  validator.New(log),
		calculator: metrics.NewCalculator(),
		exporter:   exporter,
		strategies: strategies,
		now:        time.Now,
	}, nil
}

// Domains returns the generation catalog: every domain with its dataset
// types, for discovery endpoints and CLI listings.
func (s *GeneratorService) Domains() []dto.DomainInfo {
	all := strategy.All()
	infos := make([]dto.DomainInfo, 0, len(all))
	for _, st := range all {
		infos = append(infos, dto.DomainInfo{
			Domain:       st.Domain(),
			Description:  st.Description(),
			DatasetTypes: st.DatasetTypes(),
		})
	}
	return infos
}

// ValidateRequest checks a request before any generation work starts and
// fills in the default trailing-year date range when dates are omitted.
// Invalid requests are rejected here; they never become failed runs.
func (s *GeneratorService) ValidateRequest(req *dto.GenerationRequest) error {
	st, ok := s.strategies[strings.ToLower(req.Domain)]
	if !ok {
		return fmt.Errorf("unknown domain %q", req.Domain)
	}
	if _, err := st.BuildPrompt(req.DatasetType, 1, "", ""); err != nil {
		return fmt.Errorf("unknown dataset type %q for domain %q", req.DatasetType, st.Domain())
	}

	if req.NumRecords < MinRecords {
		return fmt.Errorf("num_records must be at least %d, got %d", MinRecords, req.NumRecords)
	}
	if req.NumRecords > s.cfg.Generator.MaxRecords {
		return fmt.Errorf("num_records must be at most %d, got %d", s.cfg.Generator.MaxRecords, req.NumRecords)
	}

	if !export.SupportedFormat(req.Format) {
		return fmt.Errorf("unsupported export format %q", req.Format)
	}

	if req.StartDate == "" && req.EndDate == "" {
		req.StartDate, req.EndDate = utils.DefaultDateRange(s.now())
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", req.StartDate, err)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q: %w", req.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %q is before start_date %q", req.EndDate, req.StartDate)
	}
	return nil
}

// PlanBatches splits a request into batch sizes. Every batch is batchSize
// records except a smaller final remainder; the sizes always sum to total.
func PlanBatches(total, batchSize int) []int {
	if total <= 0 || batchSize <= 0 {
		return nil
	}
	numBatches := (total + batchSize - 1) / batchSize
	sizes := make([]int, 0, numBatches)
	remaining := total
	for remaining > 0 {
		n := batchSize
		if remaining < n {
			n = remaining
		}
		sizes = append(sizes, n)
		remaining -= n
	}
	return sizes
}

// GenerateDataset runs the full pipeline for one validated request. A batch
// whose generation or parsing fails is skipped, not retried at this level and
// never fatal to the run; only a run yielding zero valid records ends without
// an export. The returned error is reserved for request validation and export
// failures.
func (s *GeneratorService) GenerateDataset(ctx context.Context, req *dto.GenerationRequest) (*dto.GenerationResult, error) {
	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	st := s.strategies[strings.ToLower(req.Domain)]

	sizes := PlanBatches(req.NumRecords, s.cfg.Generator.BatchSize)
	s.logger.Info("Starting dataset generation",
		logger.StringField("domain", st.Domain()),
		logger.StringField("dataset_type", req.DatasetType),
		logger.IntField("num_records", req.NumRecords),
		logger.IntField("batches", len(sizes)),
	)

	var records []entity.Record
	failedBatches := 0
	for i, size := range sizes {
		prompt, err := st.BuildPrompt(req.DatasetType, size, req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}

		batch, err := s.aiRepo.GenerateJSON(ctx, prompt, s.cfg.Generator.Temperature)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failedBatches++
			s.logger.Warn("Batch failed, skipping",
				logger.IntField("batch", i+1),
				logger.IntField("batch_size", size),
				logger.ErrorField(err),
			)
			continue
		}

		valid := s.validator.Filter(batch)
		s.logger.Info("Batch completed",
			logger.IntField("batch", i+1),
			logger.IntField("total_batches", len(sizes)),
			logger.IntField("generated", len(batch)),
			logger.IntField("valid", len(valid)),
		)
		records = append(records, valid...)
	}

	result := &dto.GenerationResult{
		RequestedRecords: req.NumRecords,
		GeneratedRecords: len(records),
	}
	if len(records) == 0 {
		s.logger.Warn("Generation produced no valid records",
			logger.IntField("failed_batches", failedBatches),
		)
		result.Status = entity.JobStatusCompletedEmpty
		return result, nil
	}

	ds := dataset.FromRecords(records)
	ds.AddMetadata(st.MetadataTags(req.DatasetType), GeneratorName, s.now())

	report := s.calculator.CalculateAll(ds)
	for _, col := range s.calculator.FlagLowUniqueness(ds, report) {
		s.logger.Warn("Low uniqueness on identifier-like column",
			logger.StringField("column", col),
		)
	}

	outputPath, err := s.exporter.ExportWithMetadata(ds, s.filename(st, req), req.Format, s.exportMetadata(st, req, ds, failedBatches))
	if err != nil {
		return nil, fmt.Errorf("failed to export dataset: %w", err)
	}

	result.Status = entity.JobStatusCompleted
	result.OutputPath = outputPath
	result.Report = report

	s.logger.Info("Dataset generation completed",
		logger.StringField("output", outputPath),
		logger.IntField("records", len(records)),
		logger.IntField("failed_batches", failedBatches),
		logger.Float64Field("completeness_pct", report.Completeness.OverallCompletenessPct),
	)
	return result, nil
}

func (s *GeneratorService) filename(st strategy.DatasetStrategy, req *dto.GenerationRequest) string {
	return fmt.Sprintf("%s_%s_%s", slugify(st.Domain()), slugify(req.DatasetType), s.now().Format(filenameTimeLayout))
}

func (s *GeneratorService) exportMetadata(st strategy.DatasetStrategy, req *dto.GenerationRequest, ds *dataset.Dataset, failedBatches int) map[string]any {
	return map[string]any{
		"generator":      GeneratorName,
		"domain":         st.Domain(),
		"dataset_type":   req.DatasetType,
		"requested":      req.NumRecords,
		"generated":      ds.NumRows(),
		"failed_batches": failedBatches,
		"start_date":     req.StartDate,
		"end_date":       req.EndDate,
		"generated_at":   s.now().Format(time.RFC3339),
	}
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
