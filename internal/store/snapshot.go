package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tickerpulse/internal/domain"
)

// categoryDirs maps each collection category to its subdirectory under the
// store root. combined_data is reserved for merged batch outputs.
var categoryDirs = map[domain.Category]string{
	domain.CategoryPrice:  "price_data",
	domain.CategoryNews:   "news_sentiment",
	domain.CategorySocial: "social_sentiment",
}

const combinedDir = "combined_data"

// SnapshotStore persists collection snapshots as indented JSON files, one per
// instrument and category, overwriting the previous run's file.
type SnapshotStore struct {
	root string
}

// NewSnapshotStore creates the category subdirectories under root up front so
// a batch run never races directory creation across workers.
func NewSnapshotStore(root string) (*SnapshotStore, error) {
	dirs := []string{combinedDir}
	for _, dir := range categoryDirs {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir %s: %w", dir, err)
		}
	}
	return &SnapshotStore{root: root}, nil
}

func (s *SnapshotStore) SavePrice(symbol string, doc *domain.PriceDocument) error {
	return s.save(domain.CategoryPrice, symbol, doc)
}

func (s *SnapshotStore) SaveNews(symbol string, doc *domain.NewsDocument) error {
	return s.save(domain.CategoryNews, symbol, doc)
}

func (s *SnapshotStore) SaveSocial(symbol string, doc *domain.SocialDocument) error {
	return s.save(domain.CategorySocial, symbol, doc)
}

// SaveCombined writes the whole batch result map as one document.
func (s *SnapshotStore) SaveCombined(name string, result domain.BatchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal combined snapshot: %w", err)
	}
	path := filepath.Join(s.root, combinedDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write combined snapshot: %w", err)
	}
	return nil
}

// Load reads one instrument's raw snapshot for a category.
func (s *SnapshotStore) Load(category domain.Category, symbol string) ([]byte, error) {
	dir, ok := categoryDirs[category]
	if !ok {
		return nil, fmt.Errorf("unknown snapshot category %q", category)
	}
	data, err := os.ReadFile(filepath.Join(s.root, dir, fileName(category, symbol)))
	if err != nil {
		return nil, fmt.Errorf("read %s snapshot for %s: %w", category, symbol, err)
	}
	return data, nil
}

// List returns the symbols with a stored snapshot for a category, sorted.
func (s *SnapshotStore) List(category domain.Category) ([]string, error) {
	dir, ok := categoryDirs[category]
	if !ok {
		return nil, fmt.Errorf("unknown snapshot category %q", category)
	}
	entries, err := os.ReadDir(filepath.Join(s.root, dir))
	if err != nil {
		return nil, fmt.Errorf("list %s snapshots: %w", category, err)
	}

	suffix := "_" + string(category) + ".json"
	symbols := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		symbols = append(symbols, strings.TrimSuffix(entry.Name(), suffix))
	}
	sort.Strings(symbols)
	return symbols, nil
}

func (s *SnapshotStore) save(category domain.Category, symbol string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s snapshot for %s: %w", category, symbol, err)
	}
	path := filepath.Join(s.root, categoryDirs[category], fileName(category, symbol))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s snapshot for %s: %w", category, symbol, err)
	}
	return nil
}

func fileName(category domain.Category, symbol string) string {
	return fmt.Sprintf("%s_%s.json", strings.ToUpper(symbol), category)
}
