package quest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/validation"
)

const (
	catalogCacheKey = "catalog"
	catalogCacheTTL = time.Minute
	catalogCacheCap = 4
)

// CatalogConfig is the on-disk quest catalog file.
type CatalogConfig struct {
	Version string         `json:"version"`
	Quests  []domain.Quest `json:"quests"`
}

// Catalog serves quest definitions from the JSON catalog file. The file is
// schema-validated on every load and served through a TTL cache, so edits
// are picked up within a minute without a restart.
type Catalog struct {
	path       string
	schemaPath string
	validator  validation.SchemaValidator
	cache      *expirable.LRU[string, []domain.Quest]
	titler     cases.Caser
}

// NewCatalog creates a catalog backed by the given config and schema files.
func NewCatalog(path, schemaPath string) *Catalog {
	return &Catalog{
		path:       path,
		schemaPath: schemaPath,
		validator:  validation.NewSchemaValidator(),
		cache:      expirable.NewLRU[string, []domain.Quest](catalogCacheCap, nil, catalogCacheTTL),
		titler:     cases.Title(language.English),
	}
}

// Quests returns every quest in the catalog.
func (c *Catalog) Quests() ([]domain.Quest, error) {
	if quests, ok := c.cache.Get(catalogCacheKey); ok {
		return quests, nil
	}

	quests, err := c.load()
	if err != nil {
		return nil, err
	}

	c.cache.Add(catalogCacheKey, quests)
	return quests, nil
}

// ActiveQuests returns the quests currently eligible for evaluation.
func (c *Catalog) ActiveQuests() ([]domain.Quest, error) {
	quests, err := c.Quests()
	if err != nil {
		return nil, err
	}

	active := make([]domain.Quest, 0, len(quests))
	for _, q := range quests {
		if q.IsActive {
			active = append(active, q)
		}
	}
	return active, nil
}

// GetQuest looks a quest up by ID.
func (c *Catalog) GetQuest(questID int) (*domain.Quest, error) {
	quests, err := c.Quests()
	if err != nil {
		return nil, err
	}

	for i := range quests {
		if quests[i].QuestID == questID {
			return &quests[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrQuestNotFound, questID)
}

func (c *Catalog) load() ([]domain.Quest, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest catalog: %w", err)
	}

	if err := c.validator.ValidateBytes(data, c.schemaPath); err != nil {
		return nil, fmt.Errorf("quest catalog failed schema validation: %w", err)
	}

	var cfg CatalogConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse quest catalog: %w", err)
	}

	for i := range cfg.Quests {
		if cfg.Quests[i].Title == "" {
			cfg.Quests[i].Title = c.displayTitle(cfg.Quests[i])
		}
	}

	return cfg.Quests, nil
}

// displayTitle derives a presentable title from the quest's identifiers,
// e.g. type play_games for game seven becomes "Play Games (Seven)".
func (c *Catalog) displayTitle(q domain.Quest) string {
	title := c.titler.String(strings.ReplaceAll(string(q.Type), "_", " "))
	if q.Config.GameID != "" {
		title = fmt.Sprintf("%s (%s)", title, c.titler.String(q.Config.GameID))
	}
	return title
}
