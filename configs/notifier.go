package configs

type Notifier struct {
	Token            string `env:"TELEGRAM_NOTIFIER_BOT_TOKEN"`
	ModeratorsChatID int64  `env:"TELEGRAM_MODERATORS_CHAT_ID"`
	LeadsChatID      int64  `env:"TELEGRAM_LEADS_CHAT_ID"`
}
