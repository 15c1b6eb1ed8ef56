package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"meeras-quiz/internal/content"
	"meeras-quiz/internal/quiz"
)

const maxAttempts = 3

// Run drives one quiz from the terminal: pick a category, answer each
// question with a letter, read the explanations, then review the score.
func Run(ctx context.Context, in io.Reader, out io.Writer, store content.Store) error {
	reader := bufio.NewReader(in)

	category, err := chooseCategory(ctx, reader, out, store)
	if err != nil {
		return err
	}

	session, err := startSession(ctx, store, category)
	if errors.Is(err, quiz.ErrNoQuestions) {
		fmt.Fprintln(out, "No questions available in this category.")
		return nil
	}
	if err != nil {
		return err
	}

	for {
		question, options := session.Current()
		number, total := session.Progress()
		printQuestion(out, number, total, question, options)

		chosenIndex, ok := readAnswer(reader, out, len(options))
		fmt.Fprintln(out)
		if !ok {
			fmt.Fprintln(out, "No valid answer given. Quitting.")
			return nil
		}

		if err := session.Select(options[chosenIndex].ID); err != nil {
			return err
		}
		answer, err := session.Submit()
		if err != nil {
			return err
		}

		printReveal(out, question, options, answer)

		done, err := session.Advance()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	return printResults(ctx, out, store, session)
}

func chooseCategory(ctx context.Context, reader *bufio.Reader, out io.Writer, store content.Store) (content.Category, error) {
	categories, err := store.Categories(ctx)
	if err != nil {
		return content.Category{}, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) == 0 {
		return content.Category{}, errors.New("no categories available")
	}

	fmt.Fprintln(out, "Categories:")
	for idx, category := range categories {
		fmt.Fprintf(out, "  %d. %s — %s\n", idx+1, category.Name, category.Description)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprintf(out, "\nChoose a category (1-%d): ", len(categories))
		line, err := reader.ReadString('\n')
		if err != nil {
			return content.Category{}, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= len(categories) {
			return categories[choice-1], nil
		}
		if attempt < maxAttempts {
			fmt.Fprintln(out, "Invalid choice.")
		}
	}

	return content.Category{}, errors.New("no category chosen")
}

func startSession(ctx context.Context, store content.Store, category content.Category) (*quiz.Session, error) {
	questions, err := store.QuestionsByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, quiz.ErrNoQuestions
	}

	options, err := store.OptionsByQuestions(ctx, content.QuestionIDs(questions))
	if err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}

	return quiz.NewSession(category, questions, content.GroupOptions(options))
}

func printQuestion(out io.Writer, number, total int, question content.Question, options []content.Option) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Question %d of %d: %s\n\n", number, total, question.QuestionText)
	for idx, option := range options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+idx, option.OptionText)
	}
	fmt.Fprintln(out)
}

func readAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprintf(out, "Your answer (A-%c): ", maxLetter)
		line, err := reader.ReadString('\n')
		if err != nil {
			return -1, false
		}

		answer := strings.ToUpper(strings.TrimSpace(line))
		if len(answer) == 1 {
			letter := answer[0]
			if letter >= 'A' && letter <= maxLetter {
				return int(letter - 'A'), true
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
		}
	}

	return -1, false
}

func printReveal(out io.Writer, question content.Question, options []content.Option, answer quiz.Answer) {
	if answer.IsCorrect {
		fmt.Fprintln(out, "Correct!")
	} else {
		for _, option := range options {
			if option.IsCorrect {
				fmt.Fprintf(out, "Wrong. Correct answer was: %s\n", option.OptionText)
				break
			}
		}
	}

	for _, option := range options {
		if option.ID == answer.SelectedOptionID && option.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", option.Explanation)
		}
	}
	if question.Explanation != "" {
		fmt.Fprintf(out, "Detail: %s\n", question.Explanation)
	}
	fmt.Fprintln(out)
}

func printResults(ctx context.Context, out io.Writer, store content.Store, session *quiz.Session) error {
	answers := session.Answers()
	questionIDs := make([]string, 0, len(answers))
	for _, answer := range answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}

	questions, err := store.QuestionsByIDs(ctx, questionIDs)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	options, err := store.OptionsByQuestions(ctx, questionIDs)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	results, err := quiz.BuildResults(questions, content.GroupOptions(options), answers)
	if err != nil {
		return err
	}
	summary := quiz.Summarize(results)

	fmt.Fprintf(out, "\nLearning summary — %s\n", session.Category().Name)
	for idx, result := range results {
		mark := "✗"
		if result.IsCorrect {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s Q%d: %s\n", mark, idx+1, result.Question.QuestionText)
		fmt.Fprintf(out, "   Your answer: %s\n", result.SelectedOption.OptionText)
		if !result.IsCorrect {
			fmt.Fprintf(out, "   Correct answer: %s\n", result.CorrectOption.OptionText)
		}
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d (%d%%)\n", summary.Correct, summary.Total, summary.Percentage)
	return nil
}
