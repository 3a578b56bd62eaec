package bars

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ggggzj/la-cocktail-finder/internal/api/provider"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

var (
	_ provider.Client = (*MockProviderClient)(nil)
	_ provider.Client = panickyClient{}
)

type MockProviderClient struct {
	mock.Mock
	name string
}

func (m *MockProviderClient) Name() string { return m.name }

func (m *MockProviderClient) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockProviderClient) SearchNear(ctx context.Context, lat, lng float64, radiusMeters int) []types.Bar {
	args := m.Called(ctx, lat, lng, radiusMeters)
	if v := args.Get(0); v != nil {
		return v.([]types.Bar)
	}
	return nil
}

func (m *MockProviderClient) GetDetails(ctx context.Context, id string) *types.BarDetails {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*types.BarDetails)
	}
	return nil
}

// panickyClient simulates a provider whose search path blows up instead
// of soft-failing.
type panickyClient struct{ name string }

func (p panickyClient) Name() string     { return p.name }
func (p panickyClient) Configured() bool { return true }
func (p panickyClient) SearchNear(context.Context, float64, float64, int) []types.Bar {
	panic("provider exploded")
}
func (p panickyClient) GetDetails(context.Context, string) *types.BarDetails {
	panic("provider exploded")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func namedBar(id, name string, rating float64) types.Bar {
	return types.Bar{ID: id, Name: name, Rating: rating}
}

func TestFetchBarsNearMergesPreferringGoogle(t *testing.T) {
	ctx := context.Background()
	google := &MockProviderClient{name: "google"}
	yelp := &MockProviderClient{name: "yelp"}

	google.On("SearchNear", mock.Anything, 34.05, -118.24, 5000).Return([]types.Bar{
		namedBar("google-1", "The Varnish", 4.6),
		namedBar("google-2", "Apotheke", 4.2),
	})
	yelp.On("SearchNear", mock.Anything, 34.05, -118.24, 5000).Return([]types.Bar{
		namedBar("yelp-1", "THE VARNISH", 4.4), // same name, different case
		namedBar("yelp-2", "Thunderbolt", 4.7),
	})

	svc := NewServiceImpl(google, yelp, testLogger())
	bars := svc.FetchBarsNear(ctx, 34.05, -118.24, 5000)

	require.Len(t, bars, 3)
	// Sorted by rating descending; the Varnish entry is Google's.
	assert.Equal(t, "yelp-2", bars[0].ID)
	assert.Equal(t, "google-1", bars[1].ID)
	assert.Equal(t, "google-2", bars[2].ID)

	google.AssertExpectations(t)
	yelp.AssertExpectations(t)
}

func TestFetchBarsNearCapsResults(t *testing.T) {
	ctx := context.Background()
	google := &MockProviderClient{name: "google"}
	yelp := &MockProviderClient{name: "yelp"}

	many := make([]types.Bar, 0, 30)
	for i := 0; i < 30; i++ {
		many = append(many, namedBar("g", "Bar "+string(rune('A'+i)), float64(i)))
	}
	google.On("SearchNear", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(many)
	yelp.On("SearchNear", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewServiceImpl(google, yelp, testLogger())
	bars := svc.FetchBarsNear(ctx, 0, 0, 1000)

	require.Len(t, bars, maxResults)
	// Highest rated first after the cap.
	assert.Equal(t, float64(29), bars[0].Rating)
}

func TestFetchBarsNearFallsBackToSampleData(t *testing.T) {
	ctx := context.Background()
	google := &MockProviderClient{name: "google"}
	yelp := &MockProviderClient{name: "yelp"}

	google.On("SearchNear", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	yelp.On("SearchNear", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewServiceImpl(google, yelp, testLogger())
	bars := svc.FetchBarsNear(ctx, 0, 0, 1000)

	require.Len(t, bars, len(SampleBars))
	for i := 1; i < len(bars); i++ {
		assert.GreaterOrEqual(t, bars[i-1].Rating, bars[i].Rating)
	}
}

func TestFetchBarsNearSurvivesProviderPanic(t *testing.T) {
	ctx := context.Background()
	yelp := &MockProviderClient{name: "yelp"}
	yelp.On("SearchNear", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]types.Bar{
		namedBar("yelp-1", "Thunderbolt", 4.7),
	})

	svc := NewServiceImpl(panickyClient{name: "google"}, yelp, testLogger())
	bars := svc.FetchBarsNear(ctx, 0, 0, 1000)

	require.Len(t, bars, 1)
	assert.Equal(t, "yelp-1", bars[0].ID)
}

func TestFetchBarsNearBothPanicServesFallback(t *testing.T) {
	svc := NewServiceImpl(panickyClient{name: "google"}, panickyClient{name: "yelp"}, testLogger())
	bars := svc.FetchBarsNear(context.Background(), 0, 0, 1000)
	assert.Len(t, bars, len(SampleBars))
}

func TestMergeByName(t *testing.T) {
	primary := []types.Bar{
		namedBar("a1", "Alpha", 4.0),
		namedBar("a2", "Beta", 4.1),
	}
	secondary := []types.Bar{
		namedBar("b1", "beta", 3.9), // dropped, name collision
		namedBar("b2", "Gamma", 4.2),
	}

	merged := mergeByName(primary, secondary)

	require.Len(t, merged, 3)
	assert.Equal(t, "a1", merged[0].ID)
	assert.Equal(t, "a2", merged[1].ID)
	assert.Equal(t, "b2", merged[2].ID)
}

func TestEnrichWithDetailsLayersPatches(t *testing.T) {
	ctx := context.Background()
	google := &MockProviderClient{name: "google"}
	yelp := &MockProviderClient{name: "yelp"}

	googleHours := types.WeekSchedule{"friday": {Open: "18:00", Close: "02:00"}}
	google.On("GetDetails", mock.Anything, "bar-1").Return(&types.BarDetails{
		PhoneNumber: "(213) 555-0100",
		Website:     "https://google.example",
		OpenHours:   googleHours,
	})
	yelp.On("GetDetails", mock.Anything, "bar-1").Return(&types.BarDetails{
		Website: "https://yelp.example",
		Reviews: []types.Review{{ID: "r1", UserName: "Sam", Rating: 5}},
	})

	svc := NewServiceImpl(google, yelp, testLogger())
	enriched := svc.EnrichWithDetails(ctx, types.Bar{ID: "bar-1", Name: "Bar One"})

	// Google fills the gaps, Yelp overrides where both answered.
	assert.Equal(t, "(213) 555-0100", enriched.PhoneNumber)
	assert.Equal(t, "https://yelp.example", enriched.Website)
	assert.Equal(t, googleHours, enriched.OpenHours)
	require.Len(t, enriched.Reviews, 1)
	assert.Equal(t, "r1", enriched.Reviews[0].ID)
}

func TestEnrichWithDetailsNoPatchesReturnsInput(t *testing.T) {
	ctx := context.Background()
	google := &MockProviderClient{name: "google"}
	yelp := &MockProviderClient{name: "yelp"}

	google.On("GetDetails", mock.Anything, "bar-1").Return(nil)
	yelp.On("GetDetails", mock.Anything, "bar-1").Return(nil)

	original := types.Bar{ID: "bar-1", Name: "Bar One", PhoneNumber: "(213) 555-0199"}
	svc := NewServiceImpl(google, yelp, testLogger())

	assert.Equal(t, original, svc.EnrichWithDetails(ctx, original))
}

func TestProviderStatus(t *testing.T) {
	google := &MockProviderClient{name: "google"}
	yelp := &MockProviderClient{name: "yelp"}
	google.On("Configured").Return(true)
	yelp.On("Configured").Return(false)

	svc := NewServiceImpl(google, yelp, testLogger())
	status := svc.ProviderStatus()

	assert.True(t, status.Google)
	assert.False(t, status.Yelp)
}
