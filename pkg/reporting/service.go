package reporting

import (
	"context"
	"fmt"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/lead"
	entsource "github.com/jordanlanch/calltracker/ent/leadsource"
	"github.com/jordanlanch/calltracker/pkg/leadsource"
)

// Service computes lead aggregates for the dashboard
type Service struct {
	db *ent.Client
}

// NewService creates a new reporting service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// sourceCount is one row of the lead count grouped by source
type sourceCount struct {
	LeadSourceID int `json:"lead_source_id"`
	Count        int `json:"count"`
}

// cityCount is one row of the lead count grouped by city
type cityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// LeadsPerSource counts leads per lead source, keyed by the source name or
// its incoming number when the name is blank. Sources without leads are
// absent and sources sharing a label are summed.
func (s *Service) LeadsPerSource(ctx context.Context) (map[string]int, error) {
	var rows []sourceCount
	err := s.db.Lead.
		Query().
		GroupBy(lead.FieldLeadSourceID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by source: %w", err)
	}

	result := make(map[string]int, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.LeadSourceID)
	}

	sources, err := s.db.LeadSource.
		Query().
		Where(entsource.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead sources: %w", err)
	}

	labels := make(map[int]string, len(sources))
	for _, src := range sources {
		labels[src.ID] = leadsource.Label(src)
	}

	for _, r := range rows {
		result[labels[r.LeadSourceID]] += r.Count
	}
	return result, nil
}

// LeadsPerCity counts leads per caller city as reported by the provider.
// Leads without a city are counted under the empty string.
func (s *Service) LeadsPerCity(ctx context.Context) (map[string]int, error) {
	var rows []cityCount
	err := s.db.Lead.
		Query().
		GroupBy(lead.FieldCity).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by city: %w", err)
	}

	result := make(map[string]int, len(rows))
	for _, r := range rows {
		result[r.City] += r.Count
	}
	return result, nil
}
