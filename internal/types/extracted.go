package types

// ExtractedProfile is the result of parsing an uploaded resume document.
// Every field is nullable: absence encodes "not found in the document" and is
// never coerced to an empty string or empty list. List-valued atomic fields
// (skills, languages, links) are deduplicated by value during extraction.
type ExtractedProfile struct {
	Name           *string         `json:"name"`
	Email          *string         `json:"email"`
	Phone          *string         `json:"phone"`
	Address        *string         `json:"address"`
	Links          []string        `json:"links"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Languages      []string        `json:"languages"`
}

// Snapshot converts an ExtractedProfile into a ProfileSnapshot, mapping
// missing scalar fields to empty strings. The caller is expected to validate
// the snapshot before feeding it into synthesis.
func (e *ExtractedProfile) Snapshot() ProfileSnapshot {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	return ProfileSnapshot{
		Name:           deref(e.Name),
		Email:          deref(e.Email),
		Phone:          deref(e.Phone),
		Address:        deref(e.Address),
		Links:          e.Links,
		Education:      e.Education,
		Experience:     e.Experience,
		Skills:         e.Skills,
		Certifications: e.Certifications,
		Projects:       e.Projects,
		Languages:      e.Languages,
	}
}
