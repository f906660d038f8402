package notify

import (
	"log/slog"

	"github.com/conectahub/conecta/internal/model"
)

// Notifier is the outbound email boundary. The real sender lives outside this
// service; the default implementation only records what would be sent.
type Notifier interface {
	ApplicationReceived(a *model.Application)
	ApplicationApproved(a *model.Application, inviteLink string)
	ApplicationRejected(a *model.Application)
	MemberJoined(m *model.Member)
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: slog.With("logger", "mailer")}
}

func (n *LogNotifier) ApplicationReceived(a *model.Application) {
	n.logger.Info("email: candidatura recebida",
		slog.String("to", a.Email),
		slog.String("application", a.ID))
}

func (n *LogNotifier) ApplicationApproved(a *model.Application, inviteLink string) {
	n.logger.Info("email: candidatura aprovada",
		slog.String("to", a.Email),
		slog.String("application", a.ID),
		slog.String("invite_link", inviteLink))
}

func (n *LogNotifier) ApplicationRejected(a *model.Application) {
	n.logger.Info("email: candidatura rejeitada",
		slog.String("to", a.Email),
		slog.String("application", a.ID))
}

func (n *LogNotifier) MemberJoined(m *model.Member) {
	n.logger.Info("email: bem-vindo",
		slog.String("to", m.Email),
		slog.String("member", m.ID))
}
