package service

// MarkdownRenderer converts post bodies to HTML for the read view.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}
