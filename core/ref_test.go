package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/openbattle/engine/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRef(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		module  string
		idType  string
		wantErr bool
	}{
		{
			name:    "valid identifier",
			value:   "thunderbolt",
			module:  "dex",
			idType:  "move",
			wantErr: false,
		},
		{
			name:    "empty value",
			value:   "",
			module:  "dex",
			idType:  "move",
			wantErr: true,
		},
		{
			name:    "empty module",
			value:   "thunderbolt",
			module:  "",
			idType:  "move",
			wantErr: true,
		},
		{
			name:    "empty type",
			value:   "thunderbolt",
			module:  "dex",
			idType:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := core.NewRef(core.RefInput{
				Module: tt.module,
				Type:   tt.idType,
				Value:  tt.value,
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, id.Value)
			assert.Equal(t, tt.module, id.Module)
			assert.Equal(t, tt.idType, id.Type)
		})
	}
}

func TestRef_String(t *testing.T) {
	id := core.MustNewRef(core.RefInput{Module: "dex", Type: "move", Value: "thunderbolt"})
	assert.Equal(t, "dex:move:thunderbolt", id.String())
}

func TestRef_Equals(t *testing.T) {
	id1 := core.MustNewRef(core.RefInput{Module: "dex", Type: "move", Value: "thunderbolt"})
	id2 := core.MustNewRef(core.RefInput{Module: "dex", Type: "move", Value: "thunderbolt"})
	id3 := core.MustNewRef(core.RefInput{Module: "dex", Type: "ability", Value: "thunderbolt"})
	id4 := core.MustNewRef(core.RefInput{Module: "dex", Type: "move", Value: "flamethrower"})

	assert.True(t, id1.Equals(id2), "identical refs should be equal")
	assert.False(t, id1.Equals(id3), "different types should not be equal")
	assert.False(t, id1.Equals(id4), "different values should not be equal")

	var nilID *core.Ref
	var nilID2 *core.Ref
	assert.False(t, id1.Equals(nilID), "non-nil should not equal nil")
	assert.True(t, nilID.Equals(nilID2), "nil should equal nil")
}

func TestRef_JSONMarshaling(t *testing.T) {
	original := core.MustNewRef(core.RefInput{Module: "dex", Type: "species", Value: "garchomp"})

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"dex:species:garchomp"`, string(data))

	var unmarshaled core.Ref
	err = json.Unmarshal(data, &unmarshaled)
	require.NoError(t, err)
	assert.True(t, original.Equals(&unmarshaled))
}

func TestRef_JSONUnmarshal_BackwardCompatibility(t *testing.T) {
	objectFormat := `{"module":"dex","type":"move","value":"thunderbolt"}`

	var id core.Ref
	err := json.Unmarshal([]byte(objectFormat), &id)
	require.NoError(t, err)

	assert.Equal(t, "thunderbolt", id.Value)
	assert.Equal(t, "dex", id.Module)
	assert.Equal(t, "move", id.Type)
}

func TestWithSourcedRef(t *testing.T) {
	id := core.MustNewRef(core.RefInput{Module: "dex", Type: "ability", Value: "huge_power"})
	withSource := core.NewWithSourcedRef(id, &core.Source{
		Category: core.SourceSpecies,
		Name:     "machamp",
	})

	assert.Equal(t, id, withSource.ID)
	assert.Equal(t, "species:machamp", withSource.Source.String())

	data, err := json.Marshal(withSource)
	require.NoError(t, err)

	var unmarshaled core.WithSourcedRef
	err = json.Unmarshal(data, &unmarshaled)
	require.NoError(t, err)

	assert.True(t, withSource.ID.Equals(unmarshaled.ID))
	assert.Equal(t, withSource.Source.String(), unmarshaled.Source.String())
}

func TestMustNewRef_Panics(t *testing.T) {
	assert.Panics(t, func() {
		core.MustNewRef(core.RefInput{Module: "dex", Type: "move", Value: ""})
	}, "MustNewRef should panic with invalid input")
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         *core.Ref
		wantErr      error
		wantErrMsg   string
		checkErrType bool
	}{
		{
			name:  "valid identifier",
			input: "dex:move:thunderbolt",
			want:  core.MustNewRef(core.RefInput{Module: "dex", Type: "move", Value: "thunderbolt"}),
		},
		{
			name:  "valid with underscores",
			input: "dex:ability:huge_power",
			want:  core.MustNewRef(core.RefInput{Module: "dex", Type: "ability", Value: "huge_power"}),
		},
		{
			name:  "valid with dashes",
			input: "third-party:move:custom-strike",
			want:  core.MustNewRef(core.RefInput{Module: "third-party", Type: "move", Value: "custom-strike"}),
		},
		{
			name:         "empty string",
			input:        "",
			wantErr:      core.ErrEmptyString,
			checkErrType: true,
		},
		{
			name:         "missing parts",
			input:        "dex:move",
			wantErr:      core.ErrTooFewSegments,
			wantErrMsg:   "expected 3 segments, got 2",
			checkErrType: true,
		},
		{
			name:         "too many parts",
			input:        "dex:move:thunderbolt:extra",
			wantErr:      core.ErrTooManySegments,
			wantErrMsg:   "expected 3 segments, got 4",
			checkErrType: true,
		},
		{
			name:         "empty module",
			input:        ":move:thunderbolt",
			wantErr:      core.ErrEmptyComponent,
			wantErrMsg:   "module",
			checkErrType: true,
		},
		{
			name:         "empty type",
			input:        "dex::thunderbolt",
			wantErr:      core.ErrEmptyComponent,
			wantErrMsg:   "type",
			checkErrType: true,
		},
		{
			name:         "empty value",
			input:        "dex:move:",
			wantErr:      core.ErrEmptyComponent,
			wantErrMsg:   "value",
			checkErrType: true,
		},
		{
			name:         "invalid characters - spaces",
			input:        "dex:move:thunder bolt",
			wantErr:      core.ErrInvalidCharacters,
			wantErrMsg:   "invalid characters",
			checkErrType: true,
		},
		{
			name:         "invalid characters - special chars",
			input:        "dex:move:thunderbolt!",
			wantErr:      core.ErrInvalidCharacters,
			wantErrMsg:   "invalid characters",
			checkErrType: true,
		},
		{
			name:         "invalid characters - dots",
			input:        "dex:move:thunder.bolt",
			wantErr:      core.ErrInvalidCharacters,
			wantErrMsg:   "invalid characters",
			checkErrType: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.ParseString(tt.input)

			if tt.wantErr != nil {
				assert.Error(t, err)

				if tt.checkErrType {
					assert.ErrorIs(t, err, tt.wantErr, "should match expected error type")
				}

				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}

				if core.IsParseError(err) {
					var parseErr *core.ParseError
					errors.As(err, &parseErr)
					assert.Equal(t, tt.input, parseErr.Input)
				} else if core.IsValidationError(err) {
					var valErr *core.ValidationError
					errors.As(err, &valErr)
					assert.NotEmpty(t, valErr.Field)
				}

				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.True(t, got.Equals(tt.want), "parsed Ref should equal expected")
			}
		})
	}
}
