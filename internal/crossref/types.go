// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

// Crossref API JSON structures. Only the fields the pipeline reads are
// declared; absent fields decode to zero values.
type listResponse struct {
	Message listMessage `json:"message"`
}

type listMessage struct {
	Items []Item `json:"items"`
}

type workResponse struct {
	Message Item `json:"message"`
}

// Item is one work as returned by the listing or single-work endpoint.
type Item struct {
	Title  []string `json:"title"`
	Author []Author `json:"author"`
	DOI    string   `json:"DOI"`
}

// Author is one entry of a work's ordered author list.
type Author struct {
	Given       string        `json:"given"`
	Family      string        `json:"family"`
	Affiliation []Affiliation `json:"affiliation"`
}

// Affiliation is one institutional association of an author. Name is nil
// when the entry has no name key.
type Affiliation struct {
	Name *string `json:"name"`
}

// FirstTitle returns the first title, or "" when the work has none.
func (it Item) FirstTitle() string {
	if len(it.Title) == 0 {
		return ""
	}
	return it.Title[0]
}

// FirstAuthor returns the first author, if any.
func (it Item) FirstAuthor() (Author, bool) {
	if len(it.Author) == 0 {
		return Author{}, false
	}
	return it.Author[0], true
}

// DisplayName joins family and given name with a single space. Either part
// may be empty; the separator is kept regardless.
func (a Author) DisplayName() string {
	return a.Family + " " + a.Given
}

// AffiliationNames returns the names of the entries carrying a name key, in
// order. An empty name is kept, so it still counts as an affiliation.
func (a Author) AffiliationNames() []string {
	var names []string
	for _, aff := range a.Affiliation {
		if aff.Name != nil {
			names = append(names, *aff.Name)
		}
	}
	return names
}
