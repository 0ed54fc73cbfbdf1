package tpls

import (
	"strings"
)

const tablesTpl = `export enum Tables {
{Members}}`

func GenTablesFile(tables []string) string {
	r := strings.NewReplacer("{Members}", enumMembers(tables))
	return r.Replace(tablesTpl)
}

func enumMembers(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString("    ")
		sb.WriteString(memberName(name))
		sb.WriteString(" = ")
		sb.WriteString(quote(name))
		sb.WriteString(",\n")
	}
	return sb.String()
}

// memberName keeps identifiers as they are and quotes anything else, which
// TypeScript accepts as a string-named enum member.
func memberName(name string) string {
	if isIdentifier(name) {
		return name
	}
	return quote(name)
}

func quote(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `'`, `\'`, -1)
	s = strings.Replace(s, "\n", `\n`, -1)
	return "'" + s + "'"
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r > 0x7f:
			// non-ascii letters are valid identifier characters
		default:
			return false
		}
	}
	return true
}
