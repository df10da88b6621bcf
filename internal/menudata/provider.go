package menudata

import (
	"context"
	"strings"
	"time"

	"smart-menu/internal/config"
	"smart-menu/internal/domain"
)

// Provider is the stand-in for a real directory backend. Lookups take
// a simulated delay and are not coalesced: two concurrent calls both
// run to completion.
type Provider struct {
	venues          []domain.Venue
	restaurantDelay time.Duration
	tableDelay      time.Duration
}

func NewProvider(cfg config.ProviderConfig) *Provider {
	return &Provider{
		venues:          Venues(),
		restaurantDelay: time.Duration(cfg.RestaurantDelayMS) * time.Millisecond,
		tableDelay:      time.Duration(cfg.TableDelayMS) * time.Millisecond,
	}
}

func (p *Provider) RestaurantByID(ctx context.Context, id string) (domain.Venue, error) {
	if err := wait(ctx, p.restaurantDelay); err != nil {
		return nil, err
	}
	for _, v := range p.venues {
		if v.VenueID() == id {
			return v, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "restaurant", Key: id}
}

func (p *Provider) TableByQRCode(ctx context.Context, token string) (domain.Table, error) {
	if err := wait(ctx, p.tableDelay); err != nil {
		return domain.Table{}, err
	}
	for _, v := range p.venues {
		for _, t := range v.VenueTables() {
			if t.QRCode == token {
				return t, nil
			}
		}
	}
	return domain.Table{}, &domain.NotFoundError{Entity: "table", Key: token}
}

// SearchRestaurants matches venue names and descriptions; an empty
// query returns the whole directory.
func (p *Provider) SearchRestaurants(ctx context.Context, query string) ([]domain.Venue, error) {
	if err := wait(ctx, p.restaurantDelay); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return p.venues, nil
	}
	var out []domain.Venue
	for _, v := range p.venues {
		name := strings.ToLower(v.VenueName())
		desc := ""
		if r, ok := v.(domain.Restaurant); ok {
			desc = strings.ToLower(r.Description)
		}
		if strings.Contains(name, q) || strings.Contains(desc, q) {
			out = append(out, v)
		}
	}
	return out, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
