package store

import (
	"context"
	"fmt"

	"paralympics-api-go/pkg/model"
)

// GetRegion looks up a region by NOC code. Exactly one row must match:
// zero rows yields ErrNotFound, more than one ErrAmbiguous.
func (s *Session) GetRegion(ctx context.Context, noc string) (*model.Region, error) {
	rows, err := s.tx.QueryxContext(ctx,
		s.tx.Rebind("SELECT noc, region, notes FROM regions WHERE noc = ?"), noc)
	if err != nil {
		return nil, fmt.Errorf("get region: %w", err)
	}
	defer rows.Close()

	var region *model.Region
	for rows.Next() {
		if region != nil {
			return nil, ErrAmbiguous
		}
		var r model.Region
		if err := rows.StructScan(&r); err != nil {
			return nil, fmt.Errorf("get region: %w", err)
		}
		region = &r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get region: %w", err)
	}
	if region == nil {
		return nil, ErrNotFound
	}
	return region, nil
}

// GetRegionOptional looks up a region by NOC code, reporting absence as an
// explicit false rather than an error. Used by the update path.
func (s *Session) GetRegionOptional(ctx context.Context, noc string) (*model.Region, bool, error) {
	region, err := s.GetRegion(ctx, noc)
	if err == ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return region, true, nil
}

// ListRegions returns all regions. The scan re-runs on every call.
func (s *Session) ListRegions(ctx context.Context) ([]model.Region, error) {
	regions := []model.Region{}
	err := s.tx.SelectContext(ctx, &regions, "SELECT noc, region, notes FROM regions")
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

// InsertRegion stages a new region
func (s *Session) InsertRegion(ctx context.Context, region *model.Region) error {
	_, err := s.tx.ExecContext(ctx,
		s.tx.Rebind("INSERT INTO regions (noc, region, notes) VALUES (?, ?, ?)"),
		region.NOC, region.Region, region.Notes)
	if err != nil {
		return fmt.Errorf("insert region: %w", err)
	}
	return nil
}

// UpdateRegion stages a full-row update of the region identified by its NOC code
func (s *Session) UpdateRegion(ctx context.Context, region *model.Region) error {
	_, err := s.tx.ExecContext(ctx,
		s.tx.Rebind("UPDATE regions SET region = ?, notes = ? WHERE noc = ?"),
		region.Region, region.Notes, region.NOC)
	if err != nil {
		return fmt.Errorf("update region: %w", err)
	}
	return nil
}

// DeleteRegion stages deletion of the region with the given NOC code
func (s *Session) DeleteRegion(ctx context.Context, noc string) error {
	_, err := s.tx.ExecContext(ctx,
		s.tx.Rebind("DELETE FROM regions WHERE noc = ?"), noc)
	if err != nil {
		return fmt.Errorf("delete region: %w", err)
	}
	return nil
}
