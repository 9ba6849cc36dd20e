package market

import "context"

//go:generate mockgen -destination=mock/provider.go -package=mock . ChartProvider,NewsProvider,RecommendationProvider,PredictionProvider

// ChartProvider fetches price history and current prices.
type ChartProvider interface {
	History(ctx context.Context, symbol string, period Period) (*Series, error)
	Quote(ctx context.Context, symbol string) (*Quote, error)
}

// NewsProvider returns the current headlines, newest first.
type NewsProvider interface {
	Fetch(ctx context.Context) ([]NewsItem, error)
	Name() string
}

// RecommendationProvider returns today's top gainers and losers.
type RecommendationProvider interface {
	Gainers(ctx context.Context) ([]Recommendation, error)
	Losers(ctx context.Context) ([]Recommendation, error)
}

// PredictionProvider estimates the next closing price of a symbol.
type PredictionProvider interface {
	Predict(ctx context.Context, symbol string) (*Prediction, error)
}
