package tpls

import (
	"strings"

	"github.com/iancoleman/strcase"
)

const extendTpl = `export enum ID {
    // add ID key values here
}

export enum ColumnName {
{Members}}

class {ClassName} {
    constructor() {
    }
}

const {InstanceName} = new {ClassName}();
export default {InstanceName};`

// GenExtendFile renders the TypeScript scaffold for one table. Every column
// becomes a ColumnName member whose value is the column name itself.
func GenExtendFile(className string, columns []string) string {
	args := []string{
		"{ClassName}", className,
		"{InstanceName}", instanceName(className),
		"{Members}", enumMembers(columns),
	}
	r := strings.NewReplacer(args...)
	return r.Replace(extendTpl)
}

// instanceName is the lower camel form of the class name. The all lower case
// form is used when lower camel would clash with the class name or drop
// non-ascii characters.
func instanceName(className string) string {
	name := strcase.ToLowerCamel(className)
	if name == className || !isASCII(className) {
		return strings.ToLower(className)
	}
	return name
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
