package java

// String renders the parameter as it appears in a declaration, with the
// type's package qualifiers dropped.
func (p ParameterModel) String() string {
	if p.Name != "" {
		return p.Type.SimpleString() + " " + p.Name
	}
	return p.Type.SimpleString()
}
