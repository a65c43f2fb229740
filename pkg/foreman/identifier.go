package foreman

// Identifier addresses a resource by exactly one of a numeric id or a
// set of lookup fields. A numeric id takes precedence by construction:
// an Identifier built with ByID never triggers a search.
type Identifier struct {
	id    int
	query *SearchQuery
	byID  bool
}

// ByID addresses a resource directly by its numeric id.
func ByID(id int) Identifier {
	return Identifier{id: id, byID: true}
}

// ByName addresses a resource by its name field.
func ByName(name string) Identifier {
	return Identifier{query: NewSearchQuery().Eq("name", name)}
}

// ByQuery addresses a resource by an arbitrary search query. The query
// must resolve to exactly one resource before any mutating operation
// proceeds.
func ByQuery(query *SearchQuery) Identifier {
	return Identifier{query: query}
}

// ID returns the numeric id and whether the identifier carries one.
func (i Identifier) ID() (int, bool) {
	return i.id, i.byID
}

// Query returns the lookup query, or nil for ByID identifiers.
func (i Identifier) Query() *SearchQuery {
	return i.query
}
