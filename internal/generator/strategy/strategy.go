// Package strategy defines the per-domain dataset generation strategies:
// which dataset types a domain offers, how their prompts are built, and which
// provenance tags each dataset carries.
package strategy

import (
	"fmt"
	"sort"
)

// promptBuilder renders the prompt for one batch. numRecords is the batch's
// record count, not the whole request's.
type promptBuilder func(numRecords int, startDate, endDate string) string

// DatasetStrategy defines the interface for a domain's dataset generation.
type DatasetStrategy interface {
	// Domain returns the display name, e.g. "Capital Markets".
	Domain() string
	// Description summarizes what the domain generates.
	Description() string
	// DatasetTypes lists the dataset types this domain offers.
	DatasetTypes() []string
	// BuildPrompt renders the generation prompt for one batch of the given
	// dataset type. Unknown dataset types are an error.
	BuildPrompt(datasetType string, numRecords int, startDate, endDate string) (string, error)
	// MetadataTags returns the provenance tags stamped onto the assembled
	// dataset. Every strategy tags is_synthetic=true.
	MetadataTags(datasetType string) map[string]any
}

// baseStrategy carries the shared prompt-map plumbing.
type baseStrategy struct {
	domain      string
	description string
	slug        string
	prompts     map[string]promptBuilder
}

func (b *baseStrategy) Domain() string      { return b.domain }
func (b *baseStrategy) Description() string { return b.description }

func (b *baseStrategy) DatasetTypes() []string {
	types := make([]string, 0, len(b.prompts))
	for t := range b.prompts {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (b *baseStrategy) BuildPrompt(datasetType string, numRecords int, startDate, endDate string) (string, error) {
	builder, ok := b.prompts[datasetType]
	if !ok {
		return "", fmt.Errorf("unknown dataset type %q for domain %q", datasetType, b.domain)
	}
	return systemPreamble + "\n\n" + builder(numRecords, startDate, endDate), nil
}

func (b *baseStrategy) MetadataTags(string) map[string]any {
	return map[string]any{
		"is_synthetic": true,
		"domain":       b.slug,
	}
}

// All returns every available domain strategy.
func All() []DatasetStrategy {
	return []DatasetStrategy{
		NewCapitalMarketsStrategy(),
		NewPrivateEquityStrategy(),
		NewVentureCapitalStrategy(),
		NewBankingStrategy(),
	}
}
