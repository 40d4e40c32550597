package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractedProfile(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			name:    "empty object",
			json:    `{}`,
			wantErr: false,
		},
		{
			name:    "minimal profile",
			json:    `{"name": "Ada", "email": "ada@example.com", "skills": ["Go", "SQL"]}`,
			wantErr: false,
		},
		{
			name:    "explicit nulls",
			json:    `{"name": null, "phone": null, "skills": null}`,
			wantErr: false,
		},
		{
			name: "nested entries",
			json: `{
				"education": [{"degree": "BSc", "university": "UoL", "year": "1835"}],
				"experience": [{"role": "Analyst", "company": "Babbage & Co", "description": "Engines", "years": "1837-1843"}]
			}`,
			wantErr: false,
		},
		{
			name:    "numeric year tolerated",
			json:    `{"education": [{"degree": "BSc", "university": "UoL", "year": 1835}]}`,
			wantErr: false,
		},
		{
			name:    "skills as string rejected",
			json:    `{"skills": "Go"}`,
			wantErr: true,
		},
		{
			name:    "name as number rejected",
			json:    `{"name": 42}`,
			wantErr: true,
		},
		{
			name:    "links with non-string entry rejected",
			json:    `{"links": ["https://example.com", 7]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtractedProfile([]byte(tt.json))
			if tt.wantErr {
				var valErr *ValidationError
				require.True(t, errors.As(err, &valErr), "expected ValidationError, got %v", err)
				assert.NotEmpty(t, valErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExtractedProfile_MalformedJSON(t *testing.T) {
	err := ValidateExtractedProfile([]byte(`{not json`))
	require.Error(t, err)

	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr), "malformed JSON is not a field-level validation error")
}
