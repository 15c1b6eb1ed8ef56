package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meeras-quiz/internal/content"
	"meeras-quiz/internal/quiz"
)

func (b *Bot) sendCategories(ctx context.Context, chatID int64) {
	categories, err := b.store.Categories(ctx)
	if err != nil {
		b.sendText(chatID, "Failed to load categories: "+err.Error())
		return
	}
	if len(categories) == 0 {
		b.sendText(chatID, "No categories available yet.")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(category.Name, "cat_"+category.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "📚 Pick a category to start learning:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(msg)
}

func (b *Bot) sendCurrentQuestion(chatID int64, session *quiz.Session) {
	question, options := session.Current()
	number, total := session.Progress()

	var text strings.Builder
	fmt.Fprintf(&text, "%s\nQuestion %d of %d\n\n%s",
		session.Category().Name, number, total, question.QuestionText)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for idx, option := range options {
		label := fmt.Sprintf("%c. %s", 'A'+idx, option.OptionText)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "opt_"+option.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(msg)
}

func (b *Bot) sendReveal(chatID int64, session *quiz.Session, answer quiz.Answer) {
	question, options := session.Current()

	var text strings.Builder
	if answer.IsCorrect {
		text.WriteString("✅ Correct!\n")
	} else {
		text.WriteString("❌ Incorrect.\n")
		for _, option := range options {
			if option.IsCorrect {
				fmt.Fprintf(&text, "Correct answer: %s\n", option.OptionText)
				break
			}
		}
	}

	for _, option := range options {
		if option.ID == answer.SelectedOptionID && option.Explanation != "" {
			fmt.Fprintf(&text, "\n%s\n", option.Explanation)
		}
	}
	if question.Explanation != "" {
		fmt.Fprintf(&text, "\n%s", question.Explanation)
	}

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next ➡️", "next"),
		),
	)
	b.send(msg)
}

func (b *Bot) sendResults(ctx context.Context, chatID int64, session *quiz.Session) {
	answers := session.Answers()
	questionIDs := make([]string, 0, len(answers))
	for _, answer := range answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}

	questions, err := b.store.QuestionsByIDs(ctx, questionIDs)
	if err != nil {
		b.sendText(chatID, "Failed to load results: "+err.Error())
		return
	}
	options, err := b.store.OptionsByQuestions(ctx, questionIDs)
	if err != nil {
		b.sendText(chatID, "Failed to load results: "+err.Error())
		return
	}

	results, err := quiz.BuildResults(questions, content.GroupOptions(options), answers)
	if err != nil {
		b.sendText(chatID, "Results could not be reconciled: "+err.Error())
		return
	}
	summary := quiz.Summarize(results)

	var text strings.Builder
	fmt.Fprintf(&text, "🏁 Learning summary — %s\n\n", session.Category().Name)
	for idx, result := range results {
		mark := "❌"
		if result.IsCorrect {
			mark = "✅"
		}
		fmt.Fprintf(&text, "%s Q%d: %s\n", mark, idx+1, result.Question.QuestionText)
		if !result.IsCorrect {
			fmt.Fprintf(&text, "    Correct: %s\n", result.CorrectOption.OptionText)
		}
	}
	fmt.Fprintf(&text, "\nScore: %d/%d (%d%%)", summary.Correct, summary.Total, summary.Percentage)

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Try another category 🔄", "restart"),
		),
	)
	b.send(msg)
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("error sending message: %v", err)
	}
}
