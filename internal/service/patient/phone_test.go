package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizePhones(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		want    string
		wantErr bool
	}{
		{name: "national format", in: strPtr("0661234567"), want: "+212661234567"},
		{name: "already e164", in: strPtr("+212661234567"), want: "+212661234567"},
		{name: "foreign e164", in: strPtr("+33612345678"), want: "+33612345678"},
		{name: "surrounding spaces", in: strPtr("  0661234567 "), want: "+212661234567"},
		{name: "garbage", in: strPtr("not a number"), wantErr: true},
		{name: "too short", in: strPtr("12"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizePhones(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *tt.in)
		})
	}
}

func TestNormalizePhonesSkipsEmpty(t *testing.T) {
	empty := ""
	require.NoError(t, normalizePhones(nil, &empty))
	assert.Equal(t, "", empty)
}
