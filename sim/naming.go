package sim

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nameElemPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*(\[[0-9]+\])*$`)

// NameMustBeValid panics if the name does not follow the naming convention.
// A valid name is a dot-separated list of capitalized CamelCase elements,
// each optionally followed by square-bracket indices, for example
// "Agent[0].Controller".
func NameMustBeValid(name string) {
	if name == "" {
		panic("name must not be empty")
	}

	for _, elem := range strings.Split(name, ".") {
		if !nameElemPattern.MatchString(elem) {
			panic(fmt.Sprintf("name %q is not valid: bad element %q",
				name, elem))
		}
	}
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name and an
// index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
