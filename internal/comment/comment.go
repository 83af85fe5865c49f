package comment

const (
	InfoHeader string = "INFO"
	WarnHeader string = "WARN"
)

// Info reports an informational diagnostic about the source text at offset.
// The message is the main line, and additionalInfo is a list of optional
// lines that will be printed below the main one.
// A negative offset reports the diagnostic against the whole file.
func Info(offset int, message string, additionalInfo ...string) {
	printer.Add(offset, InfoHeader, message, additionalInfo...)
}

// Warn reports a diagnostic about source text that could not be handled
// faithfully, such as a node written as a placeholder.
func Warn(offset int, message string, additionalInfo ...string) {
	printer.Add(offset, WarnHeader, message, additionalInfo...)
}
