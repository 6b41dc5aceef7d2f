package domain

// TimestampLayout is the wire format for every timestamp written to snapshots.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout keys daily news buckets.
const DateLayout = "2006-01-02"

// DateHourLayout keys hourly social buckets.
const DateHourLayout = "2006-01-02 15"

type AssetType string

const (
	AssetTypeEquity AssetType = "equity"
	AssetTypeCrypto AssetType = "crypto"
)

// Instrument identifies one tradeable asset. Immutable once constructed.
type Instrument struct {
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"asset_type"`
}

// ProviderSymbol returns the identifier the price-history provider expects.
// Crypto tickers carry a USD quote-currency suffix.
func (i Instrument) ProviderSymbol() string {
	if i.AssetType == AssetTypeCrypto {
		return i.Symbol + "-USD"
	}
	return i.Symbol
}

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// LabelForCompound derives the tri-state label from a compound score.
// Boundary values 0.05 and -0.05 are positive and negative respectively.
func LabelForCompound(compound float64) string {
	switch {
	case compound >= 0.05:
		return LabelPositive
	case compound <= -0.05:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

type SentimentScore struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Label    string  `json:"label"`
}

// PricePoint is one OHLCV bar. Nil readings are absent values coming from
// non-finite provider data; the derived 5-period fields only appear once the
// trailing window is filled.
type PricePoint struct {
	Timestamp    string   `json:"timestamp"`
	Open         *float64 `json:"open"`
	High         *float64 `json:"high"`
	Low          *float64 `json:"low"`
	Close        *float64 `json:"close"`
	Volume       *int64   `json:"volume"`
	Volatility5  *float64 `json:"volatility_5period,omitempty"`
	Momentum5    *float64 `json:"momentum_5period,omitempty"`
	VolumeRatio5 *float64 `json:"volume_ratio_5period,omitempty"`
}

type PriceMetadata struct {
	Period      string `json:"period"`
	DataPoints  int    `json:"data_points"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	CollectedAt string `json:"collected_at"`
}

type PriceDocument struct {
	Ticker    string        `json:"ticker"`
	AssetType AssetType     `json:"asset_type"`
	Interval  string        `json:"interval"`
	Points    []PricePoint  `json:"price_data"`
	Metadata  PriceMetadata `json:"metadata"`
}

type NewsArticle struct {
	Source      string         `json:"source"`
	Title       string         `json:"title"`
	PublishedAt string         `json:"published_at"`
	URL         string         `json:"url"`
	Sentiment   SentimentScore `json:"sentiment"`
}

type DailyAggregate struct {
	Date          string  `json:"date"`
	ArticlesCount int     `json:"articles_count"`
	AvgSentiment  float64 `json:"avg_sentiment"`
	PositiveRatio float64 `json:"positive_ratio"`
	NegativeRatio float64 `json:"negative_ratio"`
	NeutralRatio  float64 `json:"neutral_ratio"`
}

// NewsBundle holds scored articles and, on the primary path only, their daily
// aggregates. The fallback path leaves DailyAverages empty: title-only text is
// too sparse to aggregate.
type NewsBundle struct {
	DailyAverages []DailyAggregate `json:"daily_averages,omitempty"`
	Articles      []NewsArticle    `json:"articles"`
}

type NewsMetadata struct {
	TotalArticles int    `json:"total_articles,omitempty"`
	PeriodDays    int    `json:"period_days,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	Note          string `json:"note,omitempty"`
	CollectedAt   string `json:"collected_at"`
}

type NewsDocument struct {
	Ticker    string       `json:"ticker"`
	AssetType AssetType    `json:"asset_type,omitempty"`
	Status    string       `json:"status,omitempty"`
	News      *NewsBundle  `json:"news_sentiment,omitempty"`
	Metadata  NewsMetadata `json:"metadata"`
}

type SocialPost struct {
	ID              string         `json:"id"`
	CreatedAt       string         `json:"created_at"`
	Text            string         `json:"text"`
	AuthorFollowers int            `json:"author_followers"`
	RepostCount     int            `json:"repost_count"`
	LikeCount       int            `json:"like_count"`
	Sentiment       SentimentScore `json:"sentiment"`
}

type HourlyAggregate struct {
	DateHour          string  `json:"date_hour"`
	PostsCount        int     `json:"posts_count"`
	AvgSentiment      float64 `json:"avg_sentiment"`
	WeightedSentiment float64 `json:"weighted_sentiment"`
	PositiveRatio     float64 `json:"positive_ratio"`
	NegativeRatio     float64 `json:"negative_ratio"`
	NeutralRatio      float64 `json:"neutral_ratio"`
}

// SocialBundle caps the embedded post list at 100 entries while hourly
// aggregates cover the full fetched set.
type SocialBundle struct {
	HourlyAverages []HourlyAggregate `json:"hourly_averages"`
	Posts          []SocialPost      `json:"posts"`
}

type SocialMetadata struct {
	TotalPosts  int    `json:"total_posts,omitempty"`
	PeriodDays  int    `json:"period_days,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	CollectedAt string `json:"collected_at"`
}

type SocialDocument struct {
	Ticker    string         `json:"ticker"`
	AssetType AssetType      `json:"asset_type,omitempty"`
	Status    string         `json:"status,omitempty"`
	Social    *SocialBundle  `json:"social_sentiment,omitempty"`
	Metadata  SocialMetadata `json:"metadata"`
}

type Category string

const (
	CategoryPrice  Category = "price"
	CategoryNews   Category = "news"
	CategorySocial Category = "social"
)

// InstrumentResult accumulates per-category outcomes for one instrument.
// For each category exactly one of the payload / error fields is set.
type InstrumentResult struct {
	Price       *PriceDocument  `json:"price,omitempty"`
	PriceError  string          `json:"price_error,omitempty"`
	News        *NewsDocument   `json:"news,omitempty"`
	NewsError   string          `json:"news_error,omitempty"`
	Social      *SocialDocument `json:"social,omitempty"`
	SocialError string          `json:"social_error,omitempty"`
}

type BatchResult map[string]*InstrumentResult
