package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hugohenrick/stock-assistant/internal/adapter/repository"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
	"github.com/hugohenrick/stock-assistant/pkg/market/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	charts  *mock.MockChartProvider
	news    *mock.MockNewsProvider
	recs    *mock.MockRecommendationProvider
	manager *IntentManager
	session *chat.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		charts: mock.NewMockChartProvider(ctrl),
		news:   mock.NewMockNewsProvider(ctrl),
		recs:   mock.NewMockRecommendationProvider(ctrl),
	}
	f.news.EXPECT().Name().Return("test-news").AnyTimes()
	f.manager = NewDefaultManager(logger.Nop(), Providers{
		Charts:          f.charts,
		News:            f.news,
		Recommendations: f.recs,
	})
	f.session = chat.NewSession("session-1", repository.NewMemoryChatRepository())
	return f
}

func (f *fixture) turn(t *testing.T, message string) *ActionResult {
	t.Helper()
	result, err := f.manager.ProcessMessage(context.Background(), f.session, message)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func (f *fixture) log(t *testing.T) []chat.Message {
	t.Helper()
	entries, err := f.session.Entries(context.Background(), 0, 0)
	require.NoError(t, err)
	return entries
}

func series(symbol string) *market.Series {
	return &market.Series{
		Symbol: symbol + ".NS",
		Period: market.PeriodMonth,
		Points: []market.PricePoint{{Close: 100}},
	}
}

func TestChartRendersFirstValidCandidate(t *testing.T) {
	f := newFixture(t)
	ctx := gomock.Any()

	gomock.InOrder(
		f.charts.EXPECT().History(ctx, "WHAT", market.PeriodMonth).Return(nil, market.ErrSymbolNotFound),
		f.charts.EXPECT().History(ctx, "IS", market.PeriodMonth).Return(&market.Series{}, nil),
		f.charts.EXPECT().History(ctx, "TCS", market.PeriodMonth).Return(series("TCS"), nil),
	)

	result := f.turn(t, "What is the price of TCS? INFY")

	assert.Equal(t, KindChart, result.Intent)
	assert.True(t, result.Success)
	assert.Equal(t, "Here's the chart for TCS (1mo). Check the chart panel.", result.Message)
	assert.Equal(t, "TCS.NS", result.Chart.Symbol)
	assert.Equal(t, result.Chart, f.session.Chart())
	assert.NotEmpty(t, result.OperationID)

	log := f.log(t)
	require.Len(t, log, 2)
	assert.Equal(t, chat.RoleUser, log[0].Role)
	assert.Equal(t, "What is the price of TCS? INFY", log[0].Content)
	assert.Equal(t, chat.RoleAssistant, log[1].Role)
	assert.Equal(t, result.Message, log[1].Content)
}

func TestChartStopwordsAreNotRendered(t *testing.T) {
	f := newFixture(t)
	f.charts.EXPECT().History(gomock.Any(), "RELIANCE", market.PeriodMonth).Return(series("RELIANCE"), nil).Times(1)

	result := f.turn(t, "Show RELIANCE chart")
	assert.True(t, result.Success)
}

func TestChartNoValidSymbol(t *testing.T) {
	f := newFixture(t)
	f.charts.EXPECT().History(gomock.Any(), "XYZ", market.PeriodMonth).Return(nil, market.ErrSymbolNotFound)

	result := f.turn(t, "show me xyz chart")

	assert.False(t, result.Success)
	assert.Equal(t, noSymbolMessage, result.Message)
	assert.Equal(t, "invalid_symbol", result.Reason)
	assert.Nil(t, f.session.Chart())
	assert.Len(t, f.log(t), 2)
}

func TestChartWithoutCandidates(t *testing.T) {
	f := newFixture(t)

	result := f.turn(t, "show me the chart")
	assert.Equal(t, noSymbolMessage, result.Message)
}

func TestChartProviderDown(t *testing.T) {
	f := newFixture(t)
	f.charts.EXPECT().History(gomock.Any(), "TCS", market.PeriodMonth).Return(nil, errors.New("connection refused"))

	result := f.turn(t, "TCS price")
	assert.Equal(t, noSymbolMessage, result.Message)
	assert.Equal(t, "provider_unavailable", result.Reason)
}

func TestBuyListsGainers(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Gainers(gomock.Any()).Return([]market.Recommendation{
		{Symbol: "Tata Motors", Reason: "+3.40%"},
		{Symbol: "Infosys"},
	}, nil)

	result := f.turn(t, "Which stocks should I buy today?")

	assert.Equal(t, KindBuy, result.Intent)
	assert.True(t, result.Success)
	assert.Equal(t, []Notice{
		{Level: NoticeSuccess, Text: "Tata Motors"},
		{Level: NoticeSuccess, Text: "Infosys"},
	}, result.Notices)
	assert.Equal(t, "Here are today's top picks:\n\n- Tata Motors\n- Infosys", result.Message)
}

func TestBuyEmpty(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Gainers(gomock.Any()).Return(nil, nil)

	result := f.turn(t, "top picks")
	assert.False(t, result.Success)
	assert.Equal(t, noBuyPicksMessage, result.Message)
	assert.Equal(t, "no_match_found", result.Reason)
	assert.Empty(t, result.Notices)
}

func TestBuyProviderDown(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Gainers(gomock.Any()).Return(nil, errors.New("429"))

	result := f.turn(t, "recommend something")
	assert.Equal(t, noBuyPicksMessage, result.Message)
	assert.Equal(t, "provider_unavailable", result.Reason)
}

func TestSellListsLosersAsWarnings(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Losers(gomock.Any()).Return([]market.Recommendation{{Symbol: "Wipro"}}, nil)

	result := f.turn(t, "what to avoid")

	assert.Equal(t, KindSell, result.Intent)
	assert.Equal(t, []Notice{{Level: NoticeWarning, Text: "Wipro"}}, result.Notices)
	assert.Equal(t, "Stocks showing weakness today:\n\n- Wipro", result.Message)
}

func TestSellEmpty(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Losers(gomock.Any()).Return([]market.Recommendation{}, nil)

	result := f.turn(t, "sell")
	assert.Equal(t, noSellPicksMessage, result.Message)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Gainers(gomock.Any()).Return([]market.Recommendation{
		{Symbol: "Tata Motors", Reason: "+3.40% at ₹950.30"},
		{Symbol: "Infosys"},
	}, nil)
	f.recs.EXPECT().Losers(gomock.Any()).Return(nil, nil)

	result := f.turn(t, "Give me the market summary")

	want := "📊 **Market Summary Today:**\n\n" +
		"**Top Gainers:**\n" +
		"- Tata Motors – +3.40% at ₹950.30\n" +
		"- Infosys\n" +
		"\n" +
		"No losers reported.\n"
	assert.Equal(t, KindSummary, result.Intent)
	assert.True(t, result.Success)
	assert.Equal(t, want, result.Message)
}

func TestSummaryBothEmptyOrFailing(t *testing.T) {
	f := newFixture(t)
	f.recs.EXPECT().Gainers(gomock.Any()).Return(nil, errors.New("boom"))
	f.recs.EXPECT().Losers(gomock.Any()).Return(nil, nil)

	result := f.turn(t, "what's the trend")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "No gainers reported.")
	assert.Contains(t, result.Message, "No losers reported.")
	assert.Equal(t, "provider_unavailable", result.Reason)
}

func headlines(n int) []market.NewsItem {
	items := make([]market.NewsItem, n)
	for i := range items {
		items[i] = market.NewsItem{
			Title: fmt.Sprintf("Market update %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return items
}

func TestNewsCapsAtFive(t *testing.T) {
	f := newFixture(t)
	f.news.EXPECT().Fetch(gomock.Any()).Return(headlines(8), nil)

	result := f.turn(t, "latest market news")

	assert.Equal(t, KindNews, result.Intent)
	assert.True(t, result.Success)
	assert.Equal(t, 5, strings.Count(result.Message, "\n- "))
	assert.Contains(t, result.Message, "- Market update 0 (https://example.com/0)")
	assert.NotContains(t, result.Message, "Market update 5")
}

func TestNewsNoMatch(t *testing.T) {
	f := newFixture(t)
	f.news.EXPECT().Fetch(gomock.Any()).Return([]market.NewsItem{{Title: "Gold steady"}}, nil)

	result := f.turn(t, "news")
	assert.Equal(t, noNewsMessage, result.Message)
	assert.Equal(t, "no_match_found", result.Reason)
}

func TestNewsProviderDown(t *testing.T) {
	f := newFixture(t)
	f.news.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("timeout"))

	result := f.turn(t, "latest")
	assert.Equal(t, noNewsMessage, result.Message)
	assert.Equal(t, "provider_unavailable", result.Reason)
}

func TestFallbackCapsAtThree(t *testing.T) {
	f := newFixture(t)
	f.news.EXPECT().Fetch(gomock.Any()).Return(headlines(8), nil)

	result := f.turn(t, "tell me about market")

	assert.Equal(t, KindFallback, result.Intent)
	assert.True(t, strings.HasPrefix(result.Message, "Here's what I found related to your query:"))
	assert.Equal(t, 3, strings.Count(result.Message, "\n- "))
}

func TestFallbackHelp(t *testing.T) {
	f := newFixture(t)
	f.news.EXPECT().Fetch(gomock.Any()).Return(headlines(2), nil)

	result := f.turn(t, "hello")
	assert.Equal(t, HelpMessage, result.Message)
}

func TestEveryInputGetsAReply(t *testing.T) {
	f := newFixture(t)
	f.charts.EXPECT().History(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, market.ErrSymbolNotFound).AnyTimes()
	f.recs.EXPECT().Gainers(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	f.recs.EXPECT().Losers(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	f.news.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()

	inputs := []string{"", " ", "chart", "buy", "sell", "market today", "news", "???", "\x00\xff", "价格"}
	for _, in := range inputs {
		result, err := f.manager.ProcessMessage(context.Background(), f.session, in)
		require.NoError(t, err, in)
		assert.NotEmpty(t, result.Message, in)
	}

	log := f.log(t)
	require.Len(t, log, 2*len(inputs))
	for i := range inputs {
		assert.Equal(t, chat.RoleUser, log[2*i].Role)
		assert.Equal(t, inputs[i], log[2*i].Content)
		assert.Equal(t, chat.RoleAssistant, log[2*i+1].Role)
	}
}

type failingHandler struct{}

func (failingHandler) Kind() Kind { return KindFallback }

func (failingHandler) Extract(message string) (*Intent, error) {
	return &Intent{Kind: KindFallback, OriginalMessage: message}, nil
}

func (failingHandler) Execute(context.Context, *chat.Session, *Intent) (*ActionResult, error) {
	return nil, errors.New("unexpected")
}

func TestHandlerErrorIsNotPropagated(t *testing.T) {
	m := NewIntentManager(logger.Nop())
	m.RegisterHandler(failingHandler{})
	sess := chat.NewSession("s", repository.NewMemoryChatRepository())

	result, err := m.ProcessMessage(context.Background(), sess, "hello")
	require.NoError(t, err)
	assert.Equal(t, handlerFailedMessage, result.Message)
	assert.False(t, result.Success)
}

func TestDefaultManagerRegistersEveryKind(t *testing.T) {
	f := newFixture(t)

	for _, kind := range []Kind{KindChart, KindBuy, KindSell, KindSummary, KindNews, KindFallback} {
		h, ok := f.manager.Handler(kind)
		require.True(t, ok, kind)
		assert.Equal(t, kind, h.Kind())
	}

	_, ok := NewIntentManager(logger.Nop()).Handler(KindChart)
	assert.False(t, ok)
}

func TestRegisterHandlerReplacesSameKind(t *testing.T) {
	m := NewIntentManager(logger.Nop())
	m.RegisterHandler(NewFallbackIntentHandler(logger.Nop(), nil))
	m.RegisterHandler(failingHandler{})

	h, ok := m.Handler(KindFallback)
	require.True(t, ok)
	assert.IsType(t, failingHandler{}, h)
}

func TestMissingHandlerFallsBackToHelp(t *testing.T) {
	m := NewIntentManager(logger.Nop())
	sess := chat.NewSession("s", repository.NewMemoryChatRepository())

	result, err := m.ProcessMessage(context.Background(), sess, "show TCS chart")
	require.NoError(t, err)
	assert.Equal(t, KindChart, result.Intent)
	assert.Equal(t, HelpMessage, result.Message)
}

type brokenRepo struct{ chat.Repository }

func (brokenRepo) SaveMessage(context.Context, *chat.Message) error {
	return errors.New("disk full")
}

func TestLogFailureIsReturned(t *testing.T) {
	m := NewIntentManager(logger.Nop())
	sess := chat.NewSession("s", brokenRepo{})

	_, err := m.ProcessMessage(context.Background(), sess, "hello")
	assert.Error(t, err)
}
