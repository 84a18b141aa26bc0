package scanner

import "slices"

// DefaultComponentNames are JSX components whose attributes describe a message.
var DefaultComponentNames = []string{"FormattedMessage"}

// DefaultFunctionNames are functions whose first argument declares messages.
var DefaultFunctionNames = []string{"defineMessage", "defineMessages"}

// Config controls which call sites are recognised and how values are cleaned.
type Config struct {
	ComponentNames     []string
	FunctionNames      []string
	PreserveWhitespace bool
	// Pragma is the comment tag (without '@') that carries key:value metadata.
	Pragma string
}

// DefaultConfig returns the configuration used when nothing is customised.
func DefaultConfig() Config {
	return Config{
		ComponentNames: slices.Clone(DefaultComponentNames),
		FunctionNames:  slices.Clone(DefaultFunctionNames),
	}
}

// WithAdditional returns a copy of c with extra component and function names.
// Duplicates and empty names are dropped.
func (c Config) WithAdditional(components, functions []string) Config {
	c.ComponentNames = mergeNames(c.ComponentNames, components)
	c.FunctionNames = mergeNames(c.FunctionNames, functions)
	return c
}

func mergeNames(base, extra []string) []string {
	out := slices.Clone(base)
	for _, n := range extra {
		if n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

func (c Config) isComponent(name string) bool {
	return slices.Contains(c.ComponentNames, name)
}

// isFunction: совпадение по полному пути (intl.formatMessage) или по
// последнему сегменту (formatMessage).
func (c Config) isFunction(full, last string) bool {
	if last == "formatMessage" || last == "$formatMessage" {
		return true
	}
	return slices.Contains(c.FunctionNames, full) || slices.Contains(c.FunctionNames, last)
}
