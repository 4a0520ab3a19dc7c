package searchdb

import (
	"fmt"
	"sort"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
)

const indexingBatchSize = 100

const (
	FieldDegree            = "degree"
	FieldCity              = "city"
	FieldYearsOfExperience = "yearsOfExperience"
)

// BleveDB aggregates facet counts over a record set. Every call builds a private in-memory index,
// so concurrent callers share nothing.
type BleveDB struct {
	logger logger.Logger
}

func New(logger logger.Logger) *BleveDB {
	return &BleveDB{logger: logger}
}

func (b *BleveDB) Facets(advocates []models.Advocate, termFields []string, rangeField string, ranges []Range) (*FacetResponse, error) {
	index, err := bleve.NewMemOnly(createIndexMapping())
	if err != nil {
		b.logger.Error("could not create in-memory index", "err", err.Error())
		return nil, fmt.Errorf("could not create in-memory index: %w", err)
	}
	defer index.Close()

	if err := b.buildIndex(index, advocates); err != nil {
		return nil, err
	}

	searchRequest := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), 0, 0, false)
	facetSize := max(1, len(advocates))
	for _, field := range termFields {
		searchRequest.AddFacet(field, bleve.NewFacetRequest(field, facetSize))
	}
	if len(ranges) > 0 {
		rangeFacet := bleve.NewFacetRequest(rangeField, len(ranges))
		for _, r := range ranges {
			rangeFacet.AddNumericRange(r.Name, r.Min, r.Max)
		}
		searchRequest.AddFacet(rangeField, rangeFacet)
	}

	searchResult, err := index.Search(searchRequest)
	if err != nil {
		b.logger.Error("facet search failed", "err", err.Error())
		return nil, fmt.Errorf("facet search failed: %w", err)
	}

	response := &FacetResponse{
		Terms:  make(map[string][]models.FacetCount, len(termFields)),
		Ranges: make(map[string][]models.FacetCount, 1),
		Total:  searchResult.Total,
	}

	for _, field := range termFields {
		counts := make([]models.FacetCount, 0)
		if facet, ok := searchResult.Facets[field]; ok && facet.Terms != nil {
			for _, term := range facet.Terms.Terms() {
				counts = append(counts, models.FacetCount{Value: term.Term, Count: term.Count})
			}
		}
		sort.Slice(counts, func(i, j int) bool { return counts[i].Value < counts[j].Value })
		response.Terms[field] = counts
	}

	if len(ranges) > 0 {
		byName := make(map[string]int)
		if facet, ok := searchResult.Facets[rangeField]; ok {
			for _, numericRange := range facet.NumericRanges {
				byName[numericRange.Name] = numericRange.Count
			}
		}
		// keep the caller's range order, including empty buckets
		counts := make([]models.FacetCount, 0, len(ranges))
		for _, r := range ranges {
			counts = append(counts, models.FacetCount{Value: r.Name, Count: byName[r.Name]})
		}
		response.Ranges[rangeField] = counts
	}

	return response, nil
}

func (b *BleveDB) buildIndex(index bleve.Index, advocates []models.Advocate) error {
	batch := index.NewBatch()

	for i, advocate := range advocates {
		doc := map[string]interface{}{
			FieldDegree:            advocate.Degree,
			FieldCity:              advocate.City,
			FieldYearsOfExperience: float64(advocate.YearsOfExperience),
		}

		if err := batch.Index(fmt.Sprintf("%d", i), doc); err != nil {
			b.logger.Error("could not index advocate", "err", err.Error())
			return err
		}

		// Execute batch when it reaches the batch size
		if (i+1)%indexingBatchSize == 0 {
			if err := index.Batch(batch); err != nil {
				return err
			}
			batch = index.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			b.logger.Error("could not index advocates", "err", err.Error())
			return err
		}
	}

	return nil
}

func createIndexMapping() mapping.IndexMapping {

	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	// Degree and city facet on their exact values
	degreeFieldMapping := bleve.NewTextFieldMapping()
	degreeFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt(FieldDegree, degreeFieldMapping)

	cityFieldMapping := bleve.NewTextFieldMapping()
	cityFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt(FieldCity, cityFieldMapping)

	experienceFieldMapping := bleve.NewNumericFieldMapping()
	docMapping.AddFieldMappingsAt(FieldYearsOfExperience, experienceFieldMapping)

	indexMapping.DefaultMapping = docMapping

	return indexMapping
}
