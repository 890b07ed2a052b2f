package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "x+tag@sub.domain.org"}
	invalid := []string{"", "plain", "a@b", "@b.co", "a b@c.d", "a@b c.d"}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name     string
		typ      FieldType
		required bool
		value    string
		want     string
	}{
		{"required empty", FieldText, true, "", errRequired},
		{"required filled", FieldText, true, "x", ""},
		{"optional empty", FieldEmail, false, "", ""},
		{"bad email", FieldEmail, false, "nope", errEmail},
		{"required bad email", FieldEmail, true, "nope", errEmail},
		{"good email", FieldEmail, true, "a@b.co", ""},
		{"number", FieldNumber, false, "3.5", ""},
		{"not a number", FieldNumber, false, "three", errNumber},
		{"password", FieldPassword, true, "hunter2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateField(tt.typ, tt.required, tt.value))
		})
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "email", fieldName(FormField{Name: "email"}, 0))
	assert.Equal(t, "input_2", fieldName(FormField{}, 2))
	assert.Equal(t, "input_0", fieldName(FormField{Name: "  "}, 0))
}
