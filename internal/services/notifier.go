package services

import (
	"fmt"

	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/policy"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier delivers the notification events a lifecycle transition
// produced. Delivery is best effort: a failed message is logged and
// never rolls back the transition that caused it.
type Notifier interface {
	Dispatch(notifications []policy.Notification)
}

type telegramNotifier struct {
	bot            *tgbotapi.BotAPI
	config         configsNotifier
	userRepository repositories.UserRepository
	logger         *zap.SugaredLogger
}

// configsNotifier narrows the config to what delivery needs.
type configsNotifier struct {
	ModeratorsChatID int64
	LeadsChatID      int64
}

func NewTelegramNotifier(
	token string,
	moderatorsChatID, leadsChatID int64,
	userRepository repositories.UserRepository,
	logger *zap.SugaredLogger,
) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &telegramNotifier{
		bot: bot,
		config: configsNotifier{
			ModeratorsChatID: moderatorsChatID,
			LeadsChatID:      leadsChatID,
		},
		userRepository: userRepository,
		logger:         logger,
	}, nil
}

func (n *telegramNotifier) Dispatch(notifications []policy.Notification) {
	for _, notification := range notifications {
		text := messageText(notification)

		if chatID := n.chatIDForRole(notification.Role); chatID != 0 {
			n.send(tgbotapi.NewMessage(chatID, text))
		}

		for _, userID := range notification.UserIDs {
			user, err := n.userRepository.GetOneByID(userID)
			if err != nil {
				n.logger.Errorw("could not get user", "userID", userID, "error", err)
				continue
			}
			if user.TelegramID == 0 {
				continue
			}

			n.send(tgbotapi.NewMessage(user.TelegramID, text))
		}
	}
}

func (n *telegramNotifier) chatIDForRole(role models.UserRole) int64 {
	switch role {
	case models.UserRoleModerator:
		return n.config.ModeratorsChatID
	case models.UserRoleLead:
		return n.config.LeadsChatID
	}
	return 0
}

func (n *telegramNotifier) send(message tgbotapi.MessageConfig) {
	message.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(message); err != nil {
		n.logger.Errorw("could not send message", "chatID", message.ChatID, "error", err)
	}
}

func messageText(notification policy.Notification) string {
	return fmt.Sprintf("*%s*\n\n%s", notification.Context["policy"], notification.Context["description"])
}
