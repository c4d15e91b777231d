package auth

// Principal is the shape of an authenticated identity. Attributes are
// resolved once at the provider boundary; callers ask for named attributes
// through the capability instead of inspecting the provider payload.
type Principal interface {
	// ID returns the stable provider-scoped identifier.
	ID() string

	// Attribute returns a named attribute and whether it is present.
	Attribute(name string) (string, bool)
}

// oauthPrincipal is a Principal backed by the attribute map of an OAuth
// user-info response.
type oauthPrincipal struct {
	id         string
	attributes map[string]string
}

func (p *oauthPrincipal) ID() string {
	return p.id
}

func (p *oauthPrincipal) Attribute(name string) (string, bool) {
	value, ok := p.attributes[name]
	return value, ok
}
