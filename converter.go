package artex

// Converter transforms extracted article HTML into Markdown for display.
type Converter interface {
	Convert(html string) (markdown string, err error)
}
