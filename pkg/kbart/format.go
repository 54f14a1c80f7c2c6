package kbart

// formatString decorates a value with a prefix and suffix, or contributes
// nothing at all when the value is empty. Record rendering and the holdings
// formatter both lean on the empty case to drop absent parts without
// dangling separators.
func formatString(value, prefix, suffix string) string {
	if value == "" {
		return ""
	}
	return prefix + value + suffix
}
