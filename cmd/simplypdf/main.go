package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	simplypdf "github.com/MaxMyalkin/SimplyPDF"
)

func main() {
	var (
		inputFile  string
		outputFile string
		title      string
		header     string
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input text file path")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.StringVar(&title, "title", "", "Document title")
	flag.StringVar(&header, "header", "", "Header text repeated on every page")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	input, err := os.Open(inputFile)
	if err != nil {
		fmt.Printf("Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer input.Close()

	output, err := os.Create(outputFile)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer output.Close()

	opts := []simplypdf.Option{
		simplypdf.WithTitle(title),
		simplypdf.WithLineHeight(16),
		simplypdf.WithDebug(verbose),
	}
	if header != "" {
		opts = append(opts, simplypdf.WithModifier(&simplypdf.HeaderModifier{
			Text:      header,
			Paint:     simplypdf.TextPaint{Size: 10, Color: simplypdf.Black},
			Alignment: simplypdf.AlignCenter,
		}))
	}

	doc, err := simplypdf.NewDocument(output, opts...)
	if err != nil {
		fmt.Printf("Error creating document: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := doc.InsertEmptyLines(1); err != nil {
				fmt.Printf("Error composing document: %v\n", err)
				os.Exit(1)
			}
			continue
		}
		if err := doc.DrawText(line, simplypdf.TextProperties{Size: 12}); err != nil {
			fmt.Printf("Error composing document: %v\n", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading input file: %v\n", err)
		os.Exit(1)
	}

	if err := doc.Finish(); err != nil {
		fmt.Printf("Error writing PDF: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully converted %s to %s\n", inputFile, outputFile)
	}
}
