package model

import "strings"

// Each predicate inspects one line (or the remainder of one) and is
// independent of parser state.

// parsePackage matches `package a.b.c;`.
func parsePackage(line string) (string, bool) {
	rest, ok := cutKeyword(strings.TrimLeft(line, " \t"), "package")
	if !ok {
		return "", false
	}
	name, rest := takeWhile(rest, isQualifiedChar)
	if name == "" {
		return "", false
	}
	if !strings.HasPrefix(strings.TrimLeft(rest, " \t"), ";") {
		return "", false
	}
	return name, true
}

// parseClass matches the first `public class Name` anywhere on the line.
func parseClass(line string) (string, bool) {
	tokens := strings.Fields(line)
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i] != "public" || tokens[i+1] != "class" {
			continue
		}
		name, _ := takeWhile(tokens[i+2], isWordChar)
		if name != "" {
			return name, true
		}
	}
	return "", false
}

// parseField matches `private [@Nullable] Type name;` at line start.
func parseField(line string) (Field, bool) {
	rest, ok := cutKeyword(strings.TrimLeft(line, " \t"), "private")
	if !ok {
		return Field{}, false
	}
	if after, ok := cutKeyword(rest, "@Nullable"); ok {
		rest = after
	}
	typ, rest := takeWhile(rest, isTypeChar)
	if typ == "" || !startsWithSpace(rest) {
		return Field{}, false
	}
	name, rest := takeWhile(strings.TrimLeft(rest, " \t"), isWordChar)
	if name == "" {
		return Field{}, false
	}
	if !strings.HasPrefix(strings.TrimLeft(rest, " \t"), ";") {
		return Field{}, false
	}
	return Field{Type: typ, Name: name}, true
}

// parseWireName matches `@JsonProperty("wire")` and returns what follows it.
func parseWireName(line string) (wire, rest string, ok bool) {
	s := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(s, "@JsonProperty") {
		return "", "", false
	}
	s = strings.TrimLeft(strings.TrimPrefix(s, "@JsonProperty"), " \t")
	if !strings.HasPrefix(s, "(") {
		return "", "", false
	}
	s = strings.TrimLeft(s[1:], " \t")
	if !strings.HasPrefix(s, `"`) {
		return "", "", false
	}
	end := strings.IndexByte(s[1:], '"')
	if end <= 0 {
		return "", "", false
	}
	wire = s[1 : end+1]
	s = strings.TrimLeft(s[end+2:], " \t")
	if !strings.HasPrefix(s, ")") {
		return "", "", false
	}
	return wire, s[1:], true
}

// parseAccessor matches `public|protected Type name(` and returns name.
func parseAccessor(line string) (string, bool) {
	s := strings.TrimLeft(line, " \t")
	rest, ok := cutKeyword(s, "public")
	if !ok {
		if rest, ok = cutKeyword(s, "protected"); !ok {
			return "", false
		}
	}
	typ, rest := takeWhile(rest, isTypeChar)
	if typ == "" || !startsWithSpace(rest) {
		return "", false
	}
	name, rest := takeWhile(strings.TrimLeft(rest, " \t"), isWordChar)
	if name == "" {
		return "", false
	}
	if !strings.HasPrefix(strings.TrimLeft(rest, " \t"), "(") {
		return "", false
	}
	return name, true
}

// FieldNameForAccessor strips a get/is prefix and lower-cases the next
// character: getCreatedBy -> createdBy, isActive -> active.
func FieldNameForAccessor(accessor string) string {
	var core string
	switch {
	case strings.HasPrefix(accessor, "get") && len(accessor) > 3:
		core = accessor[3:]
	case strings.HasPrefix(accessor, "is") && len(accessor) > 2:
		core = accessor[2:]
	default:
		return accessor
	}
	return strings.ToLower(core[:1]) + core[1:]
}

// cutKeyword removes kw and the whitespace after it. The keyword must be
// followed by at least one space or tab.
func cutKeyword(s, kw string) (string, bool) {
	if !strings.HasPrefix(s, kw) {
		return "", false
	}
	rest := s[len(kw):]
	if !startsWithSpace(rest) {
		return "", false
	}
	return strings.TrimLeft(rest, " \t"), true
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

func takeWhile(s string, pred func(byte) bool) (string, string) {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isQualifiedChar(c byte) bool {
	return isWordChar(c) || c == '.'
}

func isTypeChar(c byte) bool {
	switch c {
	case '<', '>', '.', '[', ']':
		return true
	}
	return isWordChar(c)
}
