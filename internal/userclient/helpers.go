package userclient

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func printQuestion(out io.Writer, view QuestionView) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s] Question %d of %d\n\n%s\n\n",
		view.CategoryName, view.QuestionNumber, view.TotalQuestions, view.QuestionText)
	for idx, option := range view.Options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+idx, option.OptionText)
	}
	fmt.Fprintln(out)
}

func promptAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
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

func printReveal(out io.Writer, view SubmitView) {
	fmt.Fprintln(out)
	if view.IsCorrect {
		fmt.Fprintln(out, "Correct!")
	} else {
		for _, option := range view.Options {
			if option.IsCorrect != nil && *option.IsCorrect {
				fmt.Fprintf(out, "Wrong. Correct answer was: %s\n", option.OptionText)
				break
			}
		}
	}

	for _, option := range view.Options {
		if option.ID == view.SelectedOptionID && option.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", option.Explanation)
		}
	}
	if view.Explanation != "" {
		fmt.Fprintf(out, "Detail: %s\n", view.Explanation)
	}
	fmt.Fprintln(out)
}

func printResults(out io.Writer, results ResultsView) {
	fmt.Fprintf(out, "\nLearning summary — %s\n", results.CategoryName)
	for idx, result := range results.Results {
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
	fmt.Fprintf(out, "\nFinal score: %d/%d (%d%%)\n",
		results.Summary.Correct, results.Summary.Total, results.Summary.Percentage)
}
