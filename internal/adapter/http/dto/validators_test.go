package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func engine(t *testing.T) *validator.Validate {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestValidateMSISDN(t *testing.T) {
	v := engine(t)

	type payload struct {
		MSISDN string `binding:"msisdn"`
	}

	tests := []struct {
		name   string
		msisdn string
		valid  bool
	}{
		{"mtn local", "0244000000", true},
		{"vodafone local", "0203000000", true},
		{"airteltigo local", "0273000000", true},
		{"unassigned prefix still well-formed", "0299000000", true},
		{"too short", "024400000", false},
		{"too long", "02440000001", false},
		{"bad second digit", "0944000000", false},
		{"letters", "02440abcde", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(payload{MSISDN: tt.msisdn})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateSafeID(t *testing.T) {
	v := engine(t)

	type payload struct {
		ID string `binding:"safe_id"`
	}

	assert.NoError(t, v.Struct(payload{ID: "user-1.test_A"}))
	assert.Error(t, v.Struct(payload{ID: "user 1"}))
	assert.Error(t, v.Struct(payload{ID: "user;drop"}))
}

func TestSanitizeStruct(t *testing.T) {
	type payload struct {
		Name      string
		Narration *string
	}

	narration := "  <b>pay me</b>  "
	p := &payload{Name: "  Ama <script>  ", Narration: &narration}
	SanitizeStruct(p)

	assert.Equal(t, "Ama &lt;script&gt;", p.Name)
	assert.Equal(t, "&lt;b&gt;pay me&lt;/b&gt;", *p.Narration)
}
