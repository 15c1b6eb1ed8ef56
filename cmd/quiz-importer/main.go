package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"meeras-quiz/internal/content/sqldb"
	"meeras-quiz/internal/importer"
)

func main() {
	_ = godotenv.Load()

	defaults := importer.DefaultConfig()

	file := flag.String("file", "", "path to the .xlsx or .csv content file")
	sheet := flag.String("sheet", defaults.SheetName, "worksheet name (Excel only)")
	startRow := flag.Int("start-row", defaults.StartRow, "1-based first data row")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	store, err := sqldb.OpenFromEnv()
	if err != nil {
		log.Fatalf("failed to open content store: %v", err)
	}
	defer store.Close()

	config := defaults
	config.FilePath = *file
	config.SheetName = *sheet
	config.StartRow = *startRow

	result, err := importer.Import(context.Background(), store, config)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("processed %d rows: %d categories, %d questions, %d options created; %d skipped\n",
		result.TotalProcessed, result.CategoriesCreated, result.QuestionsCreated,
		result.OptionsCreated, result.Skipped)
	for _, rowErr := range result.Errors {
		fmt.Println("  error:", rowErr)
	}
}
