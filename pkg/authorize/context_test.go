package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// mockClaimsProvider implements ClaimsProvider for testing
type mockClaimsProvider struct {
	userID uuid.UUID
}

func (m *mockClaimsProvider) GetUserID() uuid.UUID {
	return m.userID
}

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{userID: validUUID}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims provider in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{userID: uuid.Nil}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	// Test panic case
	t.Run("panics when no claims", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	// Test success case
	t.Run("returns subject when claims exist", func(t *testing.T) {
		validUUID := uuid.New()
		cp := &mockClaimsProvider{userID: validUUID}
		ctx := WithClaimsProvider(context.Background(), cp)

		subject := MustSubjectFromContext(ctx)
		expected := GroupSubject(validUUID.String())
		if subject != expected {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, expected)
		}
	})
}

func TestUserIDFromContext(t *testing.T) {
	validUUID := uuid.New()

	t.Run("returns id when claims exist", func(t *testing.T) {
		ctx := WithClaimsProvider(context.Background(), &mockClaimsProvider{userID: validUUID})
		id, err := UserIDFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if id != validUUID {
			t.Errorf("UserIDFromContext() = %v, want %v", id, validUUID)
		}
	})

	t.Run("errors when missing", func(t *testing.T) {
		if _, err := UserIDFromContext(context.Background()); err == nil {
			t.Error("Expected error but got nil")
		}
	})
}
