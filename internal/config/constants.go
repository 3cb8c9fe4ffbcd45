package config

// Service defaults
const (
	DefaultServiceName           = "playquest"
	DefaultRankRecomputeInterval = "15m"
	DefaultDeadLetterPath        = "logs/dead_letter_events.jsonl"
)

// Config file paths
const (
	ConfigPathQuestCatalog = "configs/quests.json"
	ConfigPathQuestSchema  = "configs/schemas/quest_catalog.schema.json"
)
