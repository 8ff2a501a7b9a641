package ft

import "fmt"

// SuccessMessage is the single console line reporting a completed update.
// target is the path as the operator typed it, sel the fields actually
// written, and timeFormat the layout for rendering an explicit instant.
func SuccessMessage(target string, sel Selection, src TimeSource, timeFormat string) string {
	if srcPath, ok := src.SourceFile(); ok {
		return fmt.Sprintf("Successfully changed %s timestamp(s) of '%s' to match '%s'.", sel, target, srcPath)
	}
	t, _ := src.Instant()
	return fmt.Sprintf("Successfully changed %s timestamp(s) of '%s' to %s.", sel, target, t.Format(timeFormat))
}
