package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAccountCreatedEmail(t *testing.T) {
	msg := BuildAccountCreatedEmail(AccountEmailData{
		Username: "nurse1",
		Email:    "nurse1@example.com",
		Role:     "user",
		LoginURL: "https://dialyse.example.com",
	})

	assert.Equal(t, []string{"nurse1@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "Dialyse")
	assert.Contains(t, msg.TextBody, "nurse1")
	assert.Contains(t, msg.TextBody, "https://dialyse.example.com")
	assert.Contains(t, msg.HTMLBody, "nurse1")
}

func TestBuildPasswordChangedEmail(t *testing.T) {
	msg := BuildPasswordChangedEmail(AccountEmailData{
		Username: "nurse1",
		Email:    "nurse1@example.com",
		AppName:  "Centre Nephro",
	})

	assert.Equal(t, []string{"nurse1@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "Centre Nephro")
	assert.Contains(t, msg.TextBody, "signed out")
}
