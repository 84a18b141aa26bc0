package ident

// Content returns the text hashed for [contenthash]: the default message,
// followed by "#description" when a description is present.
func Content(defaultMessage, description string, hasDescription bool) string {
	if hasDescription {
		return defaultMessage + "#" + description
	}
	return defaultMessage
}

// Assigner derives ids for descriptors that lack one.
type Assigner struct {
	pattern Pattern
}

// NewAssigner parses pattern; an empty pattern selects DefaultPattern.
func NewAssigner(pattern string) (*Assigner, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	p, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &Assigner{pattern: p}, nil
}

// Pattern returns the parsed pattern.
func (a *Assigner) Pattern() Pattern { return a.pattern }

// Assign returns id unchanged when it is non-empty and a generated id
// otherwise. The result depends only on the arguments and the pattern.
func (a *Assigner) Assign(id, defaultMessage, description string, hasDescription bool) string {
	if id != "" {
		return id
	}
	return a.pattern.Generate(Content(defaultMessage, description, hasDescription))
}
