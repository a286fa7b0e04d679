package catalog

import (
	"context"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
)

// fetchPageFunc fetches one page of records and returns them with total page count.
type fetchPageFunc func(ctx context.Context, page int) ([]models.RawRecord, int, error)

// Pager drives a paginated endpoint to exhaustion with an ordinary loop.
type Pager struct {
	fetch      fetchPageFunc
	nextPage   int
	totalPages int
}

// NewPager returns new Pager starting at the first page.
func NewPager(fetch fetchPageFunc) *Pager {
	return &Pager{
		fetch:      fetch,
		nextPage:   1,
		totalPages: 1,
	}
}

// HasNext reports whether there are pages left to fetch.
func (p *Pager) HasNext() bool {
	return p.nextPage <= p.totalPages
}

// Next fetches the next page of records.
func (p *Pager) Next(ctx context.Context) ([]models.RawRecord, error) {
	records, totalPages, err := p.fetch(ctx, p.nextPage)
	if err != nil {
		return nil, err
	}

	if totalPages > 0 {
		p.totalPages = totalPages
	}
	p.nextPage++

	return records, nil
}
