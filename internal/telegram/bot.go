package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/linymin/nutriplan-365/internal/analysis"
	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/config"
	"github.com/linymin/nutriplan-365/internal/export"
	"github.com/linymin/nutriplan-365/internal/grocery"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API, plan generator, and repositories.
type Bot struct {
	api        *tgbotapi.BotAPI
	generator  *planner.Generator
	aggregator *grocery.Aggregator
	dishes     *catalog.DishCatalog
	planRepo   *planner.PlanRepository
	recordRepo *analysis.RecordRepository
	cfg        *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	generator *planner.Generator,
	aggregator *grocery.Aggregator,
	dishes *catalog.DishCatalog,
	planRepo *planner.PlanRepository,
	recordRepo *analysis.RecordRepository,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:        bot,
		generator:  generator,
		aggregator: aggregator,
		dishes:     dishes,
		planRepo:   planRepo,
		recordRepo: recordRepo,
		cfg:        cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.CallbackQuery != nil {
		if b.allowed(update.CallbackQuery.From.ID) {
			b.handleCallbackQuery(update.CallbackQuery)
		}
		return
	}

	if update.Message == nil {
		return
	}

	if !b.allowed(update.Message.From.ID) {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) allowed(userID int64) bool {
	if b.cfg.TelegramAllowUserID == 0 {
		return true
	}
	return userID == b.cfg.TelegramAllowUserID || userID == b.cfg.TelegramAdminID
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "/start":
		b.reply(msg.Chat.ID, "👋 *Welcome to NutriPlan!*\n\nCommands:\n/plan <muscle|fatloss|general> — generate this week's meal plan\n/grocery — shopping list for the current plan\n/analysis — weekly diet analysis")
	case "/plan":
		mode := nutrition.ModeGeneral
		if len(fields) > 1 {
			mode = nutrition.Mode(fields[1])
		}
		if !mode.Valid() {
			b.reply(msg.Chat.ID, "❌ Unknown mode. Use `muscle`, `fatloss` or `general`.")
			return
		}
		b.handlePlanRequest(msg, mode)
	case "/grocery":
		b.handleGroceryRequest(msg)
	case "/analysis":
		b.handleAnalysisRequest(msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Try /start.")
	}
}

func (b *Bot) handlePlanRequest(msg *tgbotapi.Message, mode nutrition.Mode) {
	ctx := context.Background()
	weekStart := planner.WeekStart(time.Now())

	statusText := "🧑‍🍳 *Cooking up your week...*"
	if exists, err := b.planRepo.ExistsForWeek(ctx, b.userID(), weekStart); err == nil && exists {
		statusText = "🔄 *Replacing this week's plan...*"
	}
	replyMsg := tgbotapi.NewMessage(msg.Chat.ID, statusText)
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	selection := b.dishes.Ingredients().All()

	plan := b.generator.GeneratePlan(mode, selection, weekStart)
	if err := b.planRepo.Save(ctx, b.userID(), plan); err != nil {
		log.Printf("Error saving plan: %v", err)
		b.editMessage(msg.Chat.ID, sentMsg.MessageID, "❌ Failed to save the generated plan.")
		return
	}

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, export.FormatWeeklyPlan(plan))
	edit.ParseMode = "Markdown"
	keyboard := adoptKeyboard(plan)
	edit.ReplyMarkup = &keyboard
	b.api.Send(edit)
}

func (b *Bot) handleGroceryRequest(msg *tgbotapi.Message) {
	ctx := context.Background()
	plan, err := b.planRepo.Load(ctx, b.userID(), planner.WeekStart(time.Now()))
	if err != nil {
		log.Printf("Error loading plan: %v", err)
		b.reply(msg.Chat.ID, "❌ Failed to load this week's plan.")
		return
	}
	if plan == nil {
		b.reply(msg.Chat.ID, "No plan for this week yet. Generate one with /plan first.")
		return
	}

	items := b.aggregator.FromPlan(plan)
	b.reply(msg.Chat.ID, export.FormatGroceryList(items))
}

func (b *Bot) handleAnalysisRequest(msg *tgbotapi.Message) {
	ctx := context.Background()
	weekStart := planner.WeekStart(time.Now())
	plan, err := b.planRepo.Load(ctx, b.userID(), weekStart)
	if err != nil {
		log.Printf("Error loading plan: %v", err)
		b.reply(msg.Chat.ID, "❌ Failed to load this week's plan.")
		return
	}
	if plan == nil {
		b.reply(msg.Chat.ID, "No plan for this week yet. Generate one with /plan first.")
		return
	}

	var previous *nutrition.Info
	if prev, err := b.recordRepo.GetByWeek(ctx, b.userID(), weekStart.AddDate(0, 0, -7)); err == nil && prev != nil {
		previous = &prev.ActualNutrition
	}

	a := analysis.Analyze(plan, previous)
	if err := b.recordRepo.Save(ctx, b.userID(), analysis.BuildRecord(plan, b.dishes)); err != nil {
		log.Printf("Warning: failed to save diet record: %v", err)
	}
	b.reply(msg.Chat.ID, export.FormatAnalysis(a))
}

// handleCallbackQuery toggles a day's adoption flag. Callback data is
// "adopt|<week>|<dayIndex>".
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx := context.Background()

	parts := strings.Split(query.Data, "|")
	if len(parts) != 3 || parts[0] != "adopt" {
		return
	}
	weekStart, err := time.Parse("2006-01-02", parts[1])
	if err != nil {
		return
	}
	dayIndex, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}

	b.api.Request(tgbotapi.NewCallback(query.ID, ""))

	plan, err := b.planRepo.Load(ctx, b.userID(), weekStart)
	if err != nil || plan == nil {
		return
	}

	updated := planner.ToggleDayAdoption(plan, dayIndex)
	if err := b.planRepo.Save(ctx, b.userID(), updated); err != nil {
		log.Printf("Error saving adoption toggle: %v", err)
		return
	}
	if err := b.recordRepo.Save(ctx, b.userID(), analysis.BuildRecord(updated, b.dishes)); err != nil {
		log.Printf("Warning: failed to save diet record: %v", err)
	}

	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, export.FormatWeeklyPlan(updated))
	edit.ParseMode = "Markdown"
	keyboard := adoptKeyboard(updated)
	edit.ReplyMarkup = &keyboard
	b.api.Send(edit)
}

// adoptKeyboard builds one button per day; tapping flips that day's adopted
// flag. Callback data stays well under Telegram's 64 byte limit.
func adoptKeyboard(plan *planner.WeeklyPlan) tgbotapi.InlineKeyboardMarkup {
	week := plan.WeekStart.Format("2006-01-02")
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, day := range plan.Days {
		label := day.DayName[:3]
		if day.Adopted {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("adopt|%s|%d", week, i)))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) userID() string {
	return b.cfg.UserID
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) editMessage(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}
