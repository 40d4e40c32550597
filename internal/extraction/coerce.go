package extraction

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// flexString tolerates string, number, and null JSON values. Models return
// years as either "2020" or 2020 depending on mood; both coerce to a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// rawProfile mirrors the JSON shape the extraction prompt demands.
type rawProfile struct {
	Name           *string            `json:"name"`
	Email          *string            `json:"email"`
	Phone          *string            `json:"phone"`
	Address        *string            `json:"address"`
	Links          []string           `json:"links"`
	Skills         []string           `json:"skills"`
	Languages      []string           `json:"languages"`
	Education      []rawEducation     `json:"education"`
	Experience     []rawExperience    `json:"experience"`
	Certifications []rawCertification `json:"certifications"`
	Projects       []rawProject       `json:"projects"`
}

type rawEducation struct {
	Degree     string     `json:"degree"`
	University string     `json:"university"`
	Year       flexString `json:"year"`
}

type rawExperience struct {
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	Years       flexString `json:"years"`
}

type rawCertification struct {
	Name   string     `json:"name"`
	Issuer string     `json:"issuer"`
	Year   flexString `json:"year"`
}

type rawProject struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Year        flexString `json:"year"`
}

// toExtractedProfile converts the raw shape into the domain type,
// deduplicating list-valued atomic fields and preserving nulls.
func (r *rawProfile) toExtractedProfile() *types.ExtractedProfile {
	profile := &types.ExtractedProfile{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Links:     dedupStrings(r.Links),
		Skills:    dedupStrings(r.Skills),
		Languages: dedupStrings(r.Languages),
	}

	if r.Education != nil {
		profile.Education = make([]types.Education, 0, len(r.Education))
		for _, e := range r.Education {
			profile.Education = append(profile.Education, types.Education{
				Degree:      e.Degree,
				Institution: e.University,
				Year:        string(e.Year),
			})
		}
	}

	if r.Experience != nil {
		profile.Experience = make([]types.Experience, 0, len(r.Experience))
		for _, e := range r.Experience {
			profile.Experience = append(profile.Experience, types.Experience{
				Role:        e.Role,
				Company:     e.Company,
				Description: e.Description,
				Years:       string(e.Years),
			})
		}
	}

	if r.Certifications != nil {
		profile.Certifications = make([]types.Certification, 0, len(r.Certifications))
		for _, c := range r.Certifications {
			profile.Certifications = append(profile.Certifications, types.Certification{
				Name:   c.Name,
				Issuer: c.Issuer,
				Year:   string(c.Year),
			})
		}
	}

	if r.Projects != nil {
		profile.Projects = make([]types.Project, 0, len(r.Projects))
		for _, p := range r.Projects {
			profile.Projects = append(profile.Projects, types.Project{
				Name:        p.Name,
				Description: p.Description,
				Year:        string(p.Year),
			})
		}
	}

	return profile
}
