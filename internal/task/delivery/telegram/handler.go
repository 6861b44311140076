package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"nl-task-parser/internal/task"
	pkgLog "nl-task-parser/pkg/log"
	pkgResponse "nl-task-parser/pkg/response"
	pkgTelegram "nl-task-parser/pkg/telegram"
)

const (
	parseModeMarkdown = "Markdown"

	startMessage = "👋 Welcome to *Task Parser*!\n\n" +
		"Send me one task per message and I will split it into its parts:\n" +
		"• priority and status\n• due and scheduled dates\n• recurrence and time estimate\n• #tags, @contexts and +projects\n\n" +
		"_Example: \"Practice guitar 30 minutes every day high priority tomorrow\"_"

	helpMessage = "*How to use:*\n\n" +
		"Write the task the way you would say it, e.g.\n" +
		"`Submit report due friday #work urgent`\n" +
		"`Gießen jeden 2 Tage 10 Minuten`\n\n" +
		"Keywords are read in the language of your Telegram app."
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and replies from a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestID(ctx)

	go func() {
		// Detach from the request context, which is cancelled after the response.
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch commandName(text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startMessage, parseModeMarkdown)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpMessage, parseModeMarkdown)
	}

	var lang string
	if msg.From != nil {
		lang = msg.From.LanguageCode
	}

	output, err := h.uc.Parse(ctx, task.ParseInput{Text: text, Language: lang})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Parse failed: %v", err)
		return h.reply(ctx, msg, errorMessage(err))
	}

	return h.reply(ctx, msg, formatTask(output))
}

func (h *handler) reply(ctx context.Context, msg *pkgTelegram.Message, text string) error {
	return h.bot.Send(ctx, pkgTelegram.SendMessageRequest{
		ChatID:           msg.Chat.ID,
		Text:             text,
		ParseMode:        parseModeMarkdown,
		ReplyToMessageID: msg.MessageID,
	})
}

// commandName strips arguments and a "@botname" suffix from a bot command.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

// formatTask renders the parsed task as a Markdown reply.
func formatTask(out task.ParseOutput) string {
	t := out.Task

	var b strings.Builder
	fmt.Fprintf(&b, "📝 *%s*\n", escapeMarkdown(t.Title))

	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "\n%s: %s", label, escapeMarkdown(value))
		}
	}
	line("Priority", t.Priority)
	line("Status", t.Status)
	if t.DueDate != nil {
		line("Due", t.DueDate.Format(pkgResponse.DateFormat))
	}
	if t.ScheduledDate != nil {
		line("Scheduled", t.ScheduledDate.Format(pkgResponse.DateFormat))
	}
	if t.EstimateMinutes != nil {
		line("Estimate", fmt.Sprintf("%d min", *t.EstimateMinutes))
	}
	line("Repeats", t.RecurrenceRule)
	line("Tags", prefixed("#", t.Tags))
	line("Contexts", prefixed("@", t.Contexts))
	line("Projects", prefixed("+", t.Projects))
	if t.IsCompleted {
		b.WriteString("\n✅ Completed")
	}

	fmt.Fprintf(&b, "\n\n_Language: %s_", out.Language.Name())
	return b.String()
}

func prefixed(prefix string, values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = prefix + v
	}
	return strings.Join(out, " ")
}

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
