package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"meeras-quiz/internal/content"
)

// Config describes the spreadsheet layout. Each row is one option together
// with its question and category; categories and questions are created on
// first sight and order indexes follow first-appearance order.
type Config struct {
	FilePath string

	CategoryColumn            string
	CategoryDescriptionColumn string
	QuestionColumn            string
	QuestionExplanationColumn string
	OptionColumn              string
	CorrectColumn             string
	OptionExplanationColumn   string

	SheetName string
	StartRow  int // 1-based; rows above it (headers) are skipped
}

func DefaultConfig() Config {
	return Config{
		CategoryColumn:            "A",
		CategoryDescriptionColumn: "B",
		QuestionColumn:            "C",
		QuestionExplanationColumn: "D",
		OptionColumn:              "E",
		CorrectColumn:             "F",
		OptionExplanationColumn:   "G",
		SheetName:                 "Sheet1",
		StartRow:                  2,
	}
}

// Result reports what one import run did. Row-level problems are collected
// instead of aborting the whole file.
type Result struct {
	TotalProcessed    int
	CategoriesCreated int
	QuestionsCreated  int
	OptionsCreated    int
	Skipped           int
	Errors            []string
}

// Writer is the upsert surface of the content store. The read-only
// content.Store interface deliberately excludes these.
type Writer interface {
	UpsertCategory(ctx context.Context, category content.Category) error
	UpsertQuestion(ctx context.Context, question content.Question) error
	UpsertOption(ctx context.Context, option content.Option) error
}

// Import loads categories, questions and options from an Excel workbook or a
// CSV file into the store.
func Import(ctx context.Context, store Writer, config Config) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var (
		rows [][]string
		err  error
	)
	if ext == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	return importRows(ctx, store, config, rows)
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

func importRows(ctx context.Context, store Writer, config Config, rows [][]string) (*Result, error) {
	result := &Result{Errors: make([]string, 0)}

	categoryIDs := make(map[string]string)        // category name -> id
	questionIDs := make(map[string]string)        // category id + question text -> id
	questionOrder := make(map[string]int)         // category id -> next question order index
	optionOrder := make(map[string]int)           // question id -> next option order index
	categoryOrder := 0

	startRow := config.StartRow
	if startRow < 1 {
		startRow = 1
	}

	for rowNumber, row := range rows {
		if rowNumber+1 < startRow {
			continue
		}
		result.TotalProcessed++

		categoryName := cellValue(row, config.CategoryColumn)
		questionText := cellValue(row, config.QuestionColumn)
		optionText := cellValue(row, config.OptionColumn)
		if categoryName == "" || questionText == "" || optionText == "" {
			result.Skipped++
			continue
		}

		categoryID, ok := categoryIDs[strings.ToLower(categoryName)]
		if !ok {
			categoryID = newID("cat")
			err := store.UpsertCategory(ctx, content.Category{
				ID:          categoryID,
				Name:        categoryName,
				Description: cellValue(row, config.CategoryDescriptionColumn),
				OrderIndex:  categoryOrder,
			})
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: category: %v", rowNumber+1, err))
				continue
			}
			categoryIDs[strings.ToLower(categoryName)] = categoryID
			categoryOrder++
			result.CategoriesCreated++
		}

		questionKey := categoryID + "|" + strings.ToLower(questionText)
		questionID, ok := questionIDs[questionKey]
		if !ok {
			questionID = newID("q")
			err := store.UpsertQuestion(ctx, content.Question{
				ID:           questionID,
				CategoryID:   categoryID,
				QuestionText: questionText,
				Explanation:  cellValue(row, config.QuestionExplanationColumn),
				OrderIndex:   questionOrder[categoryID],
			})
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: question: %v", rowNumber+1, err))
				continue
			}
			questionIDs[questionKey] = questionID
			questionOrder[categoryID]++
			result.QuestionsCreated++
		}

		err := store.UpsertOption(ctx, content.Option{
			ID:          newID("opt"),
			QuestionID:  questionID,
			OptionText:  optionText,
			IsCorrect:   parseBool(cellValue(row, config.CorrectColumn)),
			Explanation: cellValue(row, config.OptionExplanationColumn),
			OrderIndex:  optionOrder[questionID],
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: option: %v", rowNumber+1, err))
			continue
		}
		optionOrder[questionID]++
		result.OptionsCreated++
	}

	return result, nil
}

func cellValue(row []string, column string) string {
	index := columnIndex(column)
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// columnIndex turns a spreadsheet column letter ("A", "B", ... "AA") into a
// zero-based index.
func columnIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}

	index := 0
	for _, ch := range column {
		if ch < 'A' || ch > 'Z' {
			return -1
		}
		index = index*26 + int(ch-'A') + 1
	}
	return index - 1
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y", "x", "correct":
		return true
	}
	return false
}

func newID(prefix string) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 12

	var builder strings.Builder
	builder.Grow(len(prefix) + 1 + length)
	builder.WriteString(prefix)
	builder.WriteByte('_')
	for idx := 0; idx < length; idx++ {
		builder.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return builder.String()
}
