package domain

// Pushover holds per-alert Pushover credentials.
type Pushover struct {
	UserKey  string `koanf:"user_key"`
	APIToken string `koanf:"api_token"`
}

// Telegram holds an optional per-alert Telegram target.
type Telegram struct {
	BotToken string `koanf:"bot_token"`
	ChatID   int64  `koanf:"chat_id"`
}

// Alert is one configured availability watch. Alerts are loaded once at
// startup and never mutated for the life of the run.
type Alert struct {
	Name          string    `koanf:"name"`
	StartDate     string    `koanf:"start_date"`
	EndDate       string    `koanf:"end_date"`
	RoomType      string    `koanf:"room_type"`
	ExcludeNonWDW bool      `koanf:"exclude_non_wdw"`
	ResortNames   []string  `koanf:"resort_names"`
	Pushover      *Pushover `koanf:"pushover"`
	Telegram      *Telegram `koanf:"telegram"`
}

// State is the persisted last-notified result for one alert. At most one
// row exists per alert name; rows are overwritten, never appended.
type State struct {
	AlertName  string `gorm:"column:alert_name;primaryKey"`
	LastResult string `gorm:"column:last_result;type:text"`
}

func (State) TableName() string { return "alerts" }
