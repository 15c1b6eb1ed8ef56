package bot

import (
	"context"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meeras-quiz/internal/content"
	"meeras-quiz/internal/quiz"
)

// Bot runs the quiz flow over Telegram, one session per chat. Tapping an
// option selects and submits in a single step; a Next button advances.
type Bot struct {
	api   *tgbotapi.BotAPI
	store content.Store

	mu       sync.Mutex
	sessions map[int64]*quiz.Session
}

func New(token string, store content.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		store:    store,
		sessions: make(map[int64]*quiz.Session),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	log.Printf("authorized on account %s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.Message != nil && update.Message.IsCommand():
			b.handleCommand(ctx, update.Message)
		case update.CallbackQuery != nil:
			b.handleCallback(ctx, update.CallbackQuery)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "categories":
		b.sendCategories(ctx, message.Chat.ID)
	default:
		b.sendText(message.Chat.ID, "Unknown command. Use /start to pick a category.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	ack := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(ack); err != nil {
		log.Printf("error answering callback: %v", err)
	}

	switch {
	case strings.HasPrefix(data, "cat_"):
		b.startQuiz(ctx, chatID, strings.TrimPrefix(data, "cat_"))
	case strings.HasPrefix(data, "opt_"):
		b.answerQuestion(chatID, strings.TrimPrefix(data, "opt_"))
	case data == "next":
		b.advance(ctx, chatID)
	case data == "restart":
		b.dropSession(chatID)
		b.sendCategories(ctx, chatID)
	default:
		b.sendText(chatID, "Unknown action.")
	}
}

func (b *Bot) startQuiz(ctx context.Context, chatID int64, categoryID string) {
	categories, err := b.store.Categories(ctx)
	if err != nil {
		b.sendText(chatID, "Failed to load categories: "+err.Error())
		return
	}

	var category content.Category
	found := false
	for _, candidate := range categories {
		if candidate.ID == categoryID {
			category = candidate
			found = true
			break
		}
	}
	if !found {
		b.sendText(chatID, "That category no longer exists. Use /start.")
		return
	}

	questions, err := b.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		b.sendText(chatID, "Failed to load questions: "+err.Error())
		return
	}
	if len(questions) == 0 {
		b.sendText(chatID, "No questions available in this category yet. Use /start to pick another.")
		return
	}

	options, err := b.store.OptionsByQuestions(ctx, content.QuestionIDs(questions))
	if err != nil {
		b.sendText(chatID, "Failed to load options: "+err.Error())
		return
	}

	session, err := quiz.NewSession(category, questions, content.GroupOptions(options))
	if err != nil {
		b.sendText(chatID, "Could not start the quiz: "+err.Error())
		return
	}

	b.mu.Lock()
	b.sessions[chatID] = session
	b.mu.Unlock()

	b.sendCurrentQuestion(chatID, session)
}

func (b *Bot) answerQuestion(chatID int64, optionID string) {
	session, ok := b.session(chatID)
	if !ok {
		b.sendText(chatID, "No quiz in progress. Use /start.")
		return
	}

	if err := session.Select(optionID); err != nil {
		b.sendText(chatID, "That option is not part of the current question.")
		return
	}

	answer, err := session.Submit()
	if err != nil {
		// Revealed already; the stale tap is ignored.
		return
	}

	b.sendReveal(chatID, session, answer)
}

func (b *Bot) advance(ctx context.Context, chatID int64) {
	session, ok := b.session(chatID)
	if !ok {
		b.sendText(chatID, "No quiz in progress. Use /start.")
		return
	}

	done, err := session.Advance()
	if err != nil {
		b.sendText(chatID, "Answer the current question first.")
		return
	}

	if done {
		b.sendResults(ctx, chatID, session)
		b.dropSession(chatID)
		return
	}

	b.sendCurrentQuestion(chatID, session)
}

func (b *Bot) session(chatID int64) (*quiz.Session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	session, ok := b.sessions[chatID]
	return session, ok
}

func (b *Bot) dropSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, chatID)
}
