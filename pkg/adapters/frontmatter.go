package adapters

import "strings"

// cursorHeader is prepended to every Cursor rule document
const cursorHeader = "---\nalwaysApply: true\n---\n"

// wrapCursor prepends the Cursor header unless it is already there
func wrapCursor(content string) string {
	if strings.HasPrefix(content, cursorHeader) {
		return content
	}
	return cursorHeader + content
}

// unwrapCursor strips the exact Cursor header if present
func unwrapCursor(content string) string {
	return strings.TrimPrefix(content, cursorHeader)
}

func toMDC(name string) string {
	if strings.HasSuffix(name, ".md") {
		return strings.TrimSuffix(name, ".md") + ".mdc"
	}
	return name
}

func fromMDC(name string) string {
	if strings.HasSuffix(name, ".mdc") {
		return strings.TrimSuffix(name, ".mdc") + ".md"
	}
	return name
}
