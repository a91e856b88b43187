package domain

// Brand identifies a fashion house to search news for. Brands are externally
// owned, read-only input; extra JSON fields in the source document are ignored.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Valid reports whether the brand carries the minimal shape required by the
// per-brand loop. Entries failing this check are skipped and counted.
func (b Brand) Valid() bool {
	return b.ID != "" && b.Name != ""
}
