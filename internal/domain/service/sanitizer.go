package service

// TextSanitizer strips markup from user supplied text before it is stored.
type TextSanitizer interface {
	Sanitize(raw string) string
}
