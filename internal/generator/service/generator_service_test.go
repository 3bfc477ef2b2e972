package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"testing"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/config"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAIRepository returns scripted batch outcomes in call order.
type fakeAIRepository struct {
	calls   int
	respond func(call int) ([]entity.Record, error)
	prompts []string
}

func (f *fakeAIRepository) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	return "", errors.New("not used in tests")
}

func (f *fakeAIRepository) GenerateJSON(ctx context.Context, prompt string, temperature float64) ([]entity.Record, error) {
	call := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.respond(call)
}

func makeRecords(n int, offset int) []entity.Record {
	records := make([]entity.Record, n)
	for i := 0; i < n; i++ {
		records[i] = entity.Record{
			"customer_id": fmt.Sprintf("c%04d", offset+i),
			"amount":      float64(100 + offset + i),
			"event_date":  "2024-02-01",
		}
	}
	return records
}

func newTestService(t *testing.T, ai *fakeAIRepository, batchSize int) *GeneratorService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Generator.MaxRecords = 100000
	cfg.Generator.BatchSize = batchSize
	cfg.Generator.Temperature = 0.7

	svc, err := NewGeneratorService(cfg, logger.NewNop(), ai)
	require.NoError(t, err)
	return svc
}

func TestPlanBatches(t *testing.T) {
	assert.Equal(t, []int{100, 100, 50}, PlanBatches(250, 100))
	assert.Equal(t, []int{100}, PlanBatches(100, 100))
	assert.Equal(t, []int{10}, PlanBatches(10, 100))
	assert.Nil(t, PlanBatches(0, 100))
	assert.Nil(t, PlanBatches(100, 0))
}

func TestPlanBatches_SizesAlwaysSumToTotal(t *testing.T) {
	for _, total := range []int{10, 99, 100, 101, 999, 100000} {
		sizes := PlanBatches(total, 100)
		sum := 0
		for _, s := range sizes {
			assert.LessOrEqual(t, s, 100)
			assert.Greater(t, s, 0)
			sum += s
		}
		assert.Equal(t, total, sum)
		assert.Len(t, sizes, (total+99)/100)
	}
}

func TestValidateRequest(t *testing.T) {
	svc := newTestService(t, &fakeAIRepository{}, 100)

	base := func() *dto.GenerationRequest {
		return &dto.GenerationRequest{
			Domain:      "Capital Markets",
			DatasetType: "Stock Prices",
			NumRecords:  100,
			StartDate:   "2024-01-01",
			EndDate:     "2024-12-31",
			Format:      "csv",
		}
	}

	assert.NoError(t, svc.ValidateRequest(base()))

	req := base()
	req.Domain = "Astrology"
	assert.Error(t, svc.ValidateRequest(req))

	req = base()
	req.DatasetType = "Weather Data"
	assert.Error(t, svc.ValidateRequest(req))

	req = base()
	req.NumRecords = 5
	assert.Error(t, svc.ValidateRequest(req))

	req = base()
	req.NumRecords = 100001
	assert.Error(t, svc.ValidateRequest(req))

	req = base()
	req.Format = "yaml"
	assert.Error(t, svc.ValidateRequest(req))

	req = base()
	req.StartDate = "2024-12-31"
	req.EndDate = "2024-01-01"
	assert.Error(t, svc.ValidateRequest(req))

	req = base()
	req.StartDate = "January 1st"
	assert.Error(t, svc.ValidateRequest(req))
}

func TestValidateRequest_DomainIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t, &fakeAIRepository{}, 100)
	req := &dto.GenerationRequest{
		Domain:      "banking",
		DatasetType: "Credit Scores",
		NumRecords:  50,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Format:      "json",
	}
	assert.NoError(t, svc.ValidateRequest(req))
}

func TestValidateRequest_DefaultsDateRange(t *testing.T) {
	svc := newTestService(t, &fakeAIRepository{}, 100)
	req := &dto.GenerationRequest{
		Domain:      "Banking",
		DatasetType: "Transactions",
		NumRecords:  50,
		Format:      "csv",
	}
	require.NoError(t, svc.ValidateRequest(req))
	assert.NotEmpty(t, req.StartDate)
	assert.NotEmpty(t, req.EndDate)
}

func TestGenerateDataset_EndToEnd(t *testing.T) {
	ai := &fakeAIRepository{
		respond: func(call int) ([]entity.Record, error) {
			sizes := []int{10, 10, 5}
			return makeRecords(sizes[call], call*10), nil
		},
	}
	svc := newTestService(t, ai, 10)

	result, err := svc.GenerateDataset(context.Background(), &dto.GenerationRequest{
		Domain:      "Capital Markets",
		DatasetType: "Stock Prices",
		NumRecords:  25,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Format:      "csv",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.JobStatusCompleted, result.Status)
	assert.Equal(t, 25, result.RequestedRecords)
	assert.Equal(t, 25, result.GeneratedRecords)
	assert.Equal(t, 3, ai.calls)
	require.NotNil(t, result.Report)
	assert.Equal(t, 100.0, result.Report.Completeness.OverallCompletenessPct)
	assert.Equal(t, 25, result.Report.Basic.TotalRecords)

	f, err := os.Open(result.OutputPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 26)
	assert.Contains(t, rows[0], "_meta_is_synthetic")
	assert.Contains(t, rows[0], "_meta_domain")
	assert.Contains(t, rows[0], "_generated_at")
	assert.Contains(t, rows[0], "_generator")
}

func TestGenerateDataset_SkipsFailedBatches(t *testing.T) {
	ai := &fakeAIRepository{
		respond: func(call int) ([]entity.Record, error) {
			if call == 1 {
				return nil, errors.New("model returned garbage")
			}
			return makeRecords(10, call*10), nil
		},
	}
	svc := newTestService(t, ai, 10)

	result, err := svc.GenerateDataset(context.Background(), &dto.GenerationRequest{
		Domain:      "Private Equity",
		DatasetType: "Fund Information",
		NumRecords:  30,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Format:      "csv",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.JobStatusCompleted, result.Status)
	assert.Equal(t, 20, result.GeneratedRecords)
	assert.Equal(t, 3, ai.calls)
}

func TestGenerateDataset_AllBatchesFail(t *testing.T) {
	ai := &fakeAIRepository{
		respond: func(call int) ([]entity.Record, error) {
			return nil, errors.New("model unavailable")
		},
	}
	svc := newTestService(t, ai, 10)

	result, err := svc.GenerateDataset(context.Background(), &dto.GenerationRequest{
		Domain:      "Venture Capital",
		DatasetType: "Startup Profiles",
		NumRecords:  30,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Format:      "csv",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.JobStatusCompletedEmpty, result.Status)
	assert.Equal(t, 0, result.GeneratedRecords)
	assert.Empty(t, result.OutputPath)
	assert.Nil(t, result.Report)
}

func TestGenerateDataset_InvalidRequestIsErrorNotEmptyRun(t *testing.T) {
	ai := &fakeAIRepository{
		respond: func(call int) ([]entity.Record, error) {
			return makeRecords(5, 0), nil
		},
	}
	svc := newTestService(t, ai, 10)

	_, err := svc.GenerateDataset(context.Background(), &dto.GenerationRequest{
		Domain:      "Banking",
		DatasetType: "Transactions",
		NumRecords:  5,
		Format:      "csv",
	})
	require.Error(t, err)
	assert.Equal(t, 0, ai.calls)
}

func TestGenerateDataset_ValidatorDropsInconsistentRecords(t *testing.T) {
	ai := &fakeAIRepository{
		respond: func(call int) ([]entity.Record, error) {
			records := makeRecords(10, 0)
			// Two records come back missing a field.
			delete(records[3], "amount")
			delete(records[7], "amount")
			return records, nil
		},
	}
	svc := newTestService(t, ai, 10)

	result, err := svc.GenerateDataset(context.Background(), &dto.GenerationRequest{
		Domain:      "Banking",
		DatasetType: "Credit Scores",
		NumRecords:  10,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Format:      "json",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusCompleted, result.Status)
	assert.Equal(t, 8, result.GeneratedRecords)
}

func TestGenerateDataset_PromptCarriesBatchSize(t *testing.T) {
	ai := &fakeAIRepository{
		respond: func(call int) ([]entity.Record, error) {
			return makeRecords(10, call*10), nil
		},
	}
	svc := newTestService(t, ai, 10)

	_, err := svc.GenerateDataset(context.Background(), &dto.GenerationRequest{
		Domain:      "Capital Markets",
		DatasetType: "Trading Volumes",
		NumRecords:  20,
		StartDate:   "2024-01-01",
		EndDate:     "2024-06-30",
		Format:      "csv",
	})
	require.NoError(t, err)
	require.Len(t, ai.prompts, 2)
	assert.Contains(t, ai.prompts[0], "Generate 10 ")
	assert.Contains(t, ai.prompts[0], "2024-01-01")
	assert.Contains(t, ai.prompts[0], "2024-06-30")
}

func TestDomains_CatalogComplete(t *testing.T) {
	svc := newTestService(t, &fakeAIRepository{}, 100)
	infos := svc.Domains()
	require.Len(t, infos, 4)
	for _, info := range infos {
		assert.Len(t, info.DatasetTypes, 5)
	}
}
