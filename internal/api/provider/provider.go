package provider

import (
	"context"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// Client is the contract both lookup providers implement. Every method
// fails soft: missing credentials, transport errors and unparsable
// responses are logged by the client and surface as an empty result
// (or nil details), never as an error to the caller.
type Client interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Configured reports whether credentials are present. Diagnostic
	// only; an unconfigured client already yields empty results.
	Configured() bool
	// SearchNear returns cocktail bars around a coordinate, capped at
	// the provider's native page size (about 20).
	SearchNear(ctx context.Context, lat, lng float64, radiusMeters int) []types.Bar
	// GetDetails fetches richer fields (hours, contact, reviews) for
	// one record, or nil when the provider has nothing for the id.
	GetDetails(ctx context.Context, id string) *types.BarDetails
}
