package notify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tickerpulse/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// sender is the telebot surface the notifier needs; tests swap it out.
type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramNotifier pushes a one-message summary of a finished batch run to a
// fixed chat. It is strictly fire-and-forget; a send failure is returned but
// never retried.
type TelegramNotifier struct {
	bot    sender
	chatID int64
}

// NewTelegramNotifier returns nil without error when token or chatID is
// missing; callers then skip notification entirely.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: b, chatID: chatID}, nil
}

func (n *TelegramNotifier) SendBatchSummary(result domain.BatchResult, elapsed time.Duration) error {
	_, err := n.bot.Send(&tele.Chat{ID: n.chatID}, FormatBatchSummary(result, elapsed))
	if err != nil {
		return fmt.Errorf("send batch summary: %w", err)
	}
	return nil
}

// FormatBatchSummary renders a per-instrument ok/error line per category plus
// run totals.
func FormatBatchSummary(result domain.BatchResult, elapsed time.Duration) string {
	symbols := make([]string, 0, len(result))
	for symbol := range result {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var b strings.Builder
	ok, failed := 0, 0
	fmt.Fprintf(&b, "Sentiment batch finished in %s\n", elapsed.Round(time.Second))
	for _, symbol := range symbols {
		entry := result[symbol]
		var parts []string
		appendPart := func(category domain.Category, present bool, errMsg string) {
			switch {
			case errMsg != "":
				parts = append(parts, string(category)+": error")
				failed++
			case present:
				parts = append(parts, string(category)+": ok")
				ok++
			}
		}
		appendPart(domain.CategoryPrice, entry.Price != nil, entry.PriceError)
		appendPart(domain.CategoryNews, entry.News != nil, entry.NewsError)
		appendPart(domain.CategorySocial, entry.Social != nil, entry.SocialError)
		fmt.Fprintf(&b, "%s  %s\n", symbol, strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "Totals: %d ok, %d failed", ok, failed)
	return b.String()
}
