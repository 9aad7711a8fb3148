package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/artex"
)

// hybridEnvelope is the parsing metadata attached to successful responses.
// Field names are a compatibility contract with downstream consumers.
type hybridEnvelope struct {
	ParsingMethod       artex.ParsingMethod      `json:"parsingMethod"`
	StructuredDataScore int                      `json:"structuredDataScore"`
	ExtractionTime      int64                    `json:"extractionTime"`
	Confidence          int                      `json:"confidence"`
	ExtractionMethods   []artex.ExtractionMethod `json:"extractionMethods"`
}

// articleResponse is the success body: article fields plus the _hybrid
// metadata envelope.
type articleResponse struct {
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	URL           string           `json:"url"`
	Author        string           `json:"author,omitempty"`
	DatePublished *time.Time       `json:"date_published,omitempty"`
	Excerpt       string           `json:"excerpt,omitempty"`
	LeadImageURL  string           `json:"lead_image_url,omitempty"`
	WordCount     int              `json:"word_count"`
	Domain        string           `json:"domain"`
	Metadata      artex.ResultMeta `json:"metadata"`
	Hybrid        hybridEnvelope   `json:"_hybrid"`
}

// inaccessibleResponse is the error body an HTTP layer would serve with
// status 422.
type inaccessibleResponse struct {
	Error       string          `json:"error"`
	ErrorType   artex.ErrorType `json:"errorType"`
	Suggestions []string        `json:"suggestions"`
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	result, err := deps.Parser.ParseArticle(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", c.URL, err)
	}

	status := artex.Classify(result, deps.Config.Scoring)
	if !status.IsAccessible {
		body := inaccessibleResponse{
			Error:       status.Reason,
			ErrorType:   status.ErrorType,
			Suggestions: status.Suggestions,
		}
		if err := printJSON(deps, body); err != nil {
			return err
		}
		return fmt.Errorf("article not accessible: %s", status.Reason)
	}

	if c.Format == "markdown" {
		return c.printMarkdown(deps, result)
	}

	return printJSON(deps, articleResponse{
		Title:         result.Title,
		Content:       result.Content,
		URL:           result.URL,
		Author:        result.Author,
		DatePublished: result.DatePublished,
		Excerpt:       result.Excerpt,
		LeadImageURL:  result.LeadImageURL,
		WordCount:     result.WordCount,
		Domain:        result.Domain,
		Metadata:      result.Meta,
		Hybrid: hybridEnvelope{
			ParsingMethod:       result.Method,
			StructuredDataScore: result.StructuredScore,
			ExtractionTime:      result.ExtractionTime,
			Confidence:          result.Confidence,
			ExtractionMethods:   result.Methods,
		},
	})
}

func (c *ParseCmd) printMarkdown(deps *Dependencies, result *artex.Result) error {
	fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	if result.Author != "" {
		fmt.Fprintf(deps.Stdout, "By %s", result.Author)
		if result.DatePublished != nil {
			fmt.Fprintf(deps.Stdout, " · %s", result.DatePublished.Format("2006-01-02"))
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout)
	}

	if result.ContentHTML != "" {
		md, err := deps.Converter.Convert(result.ContentHTML)
		if err == nil {
			fmt.Fprintln(deps.Stdout, md)
			return nil
		}
	}

	fmt.Fprintln(deps.Stdout, result.Content)
	return nil
}

func printJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
