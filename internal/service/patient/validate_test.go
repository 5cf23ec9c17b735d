package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The name check runs before anything touches the database, so a
// zero-value service is enough to exercise the rejection path.
func TestCreateRejectsEmptyName(t *testing.T) {
	svc := &patientService{}
	viewer := Viewer{UserID: uuid.New(), SessionID: uuid.New()}

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), viewer, CreatePatientRequest{FullName: name})
		assert.ErrorIs(t, err, ErrNameRequired, "name %q", name)
	}
}

func TestValidateEnums(t *testing.T) {
	tests := []struct {
		name       string
		sex        *string
		bloodGroup *string
		typ        *string
		wantErr    bool
	}{
		{name: "all nil"},
		{name: "all empty", sex: strPtr(""), bloodGroup: strPtr(""), typ: strPtr("")},
		{name: "valid", sex: strPtr("F"), bloodGroup: strPtr("AB-"), typ: strPtr("vacationer")},
		{name: "bad sex", sex: strPtr("X"), wantErr: true},
		{name: "lowercase sex", sex: strPtr("m"), wantErr: true},
		{name: "bad blood group", bloodGroup: strPtr("C+"), wantErr: true},
		{name: "bad type", typ: strPtr("regular"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEnums(tt.sex, tt.bloodGroup, tt.typ)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
