package main

import (
	"sort"
	"strings"
)

// filename takes a file group of the model (e.g. source_credentials) and returns
// the name of the generated Go file (e.g. api_source_credentials.go)
func filename(group string) string {
	return "api_" + strings.ToLower(group) + ".go"
}

// enumConstName takes an enum and one of its values (e.g. ComputeType and
// BUILD_GENERAL1_SMALL) and returns the name of the generated constant
// (e.g. ComputeTypeBuildGeneral1Small)
func enumConstName(enum, value string) string {

	output := enum

	for _, part := range strings.Split(value, "_") {
		if part == "" {
			continue
		}
		output += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}

	return output

}

// wrap formats text as a line comment at the given indent, breaking lines
// so that none is longer than 76 columns (tabs counted as 4).
func wrap(text, indent string) string {

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	width := 76 - len(strings.Replace(indent, "\t", "    ", -1))

	var out strings.Builder
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			out.WriteString(indent + "// " + line + "\n")
			line = word
			continue
		}
		line += " " + word
	}
	out.WriteString(indent + "// " + line + "\n")

	return out.String()

}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
