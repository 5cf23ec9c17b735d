package email

import (
	"fmt"
)

// AccountEmailData contains the data needed for account lifecycle emails.
type AccountEmailData struct {
	Username string
	Email    string
	Role     string
	AppName  string
	LoginURL string
}

// BuildAccountCreatedEmail notifies a staff member that an administrator
// created an account for them.
func BuildAccountCreatedEmail(data AccountEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Dialyse"
	}

	subject := fmt.Sprintf("Your %s account has been created", appName)

	textBody := fmt.Sprintf(`Hello %s,

An administrator has created a %s account for you.

Username: %s
Role: %s

Sign in here: %s

If you were not expecting this account, contact your administrator.

Thanks,
The %s Team`,
		data.Username, appName, data.Username, data.Role, data.LoginURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hello %s,</h2>
    <p>An administrator has created a %s account for you.</p>
    <p>Username: <strong>%s</strong><br>Role: <strong>%s</strong></p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign in</a>
    </p>
    <p style="color: #6b7280; font-size: 14px;">If you were not expecting this account, contact your administrator.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.Username, appName, data.Username, data.Role, data.LoginURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordChangedEmail notifies an account holder that their password
// was changed and all sessions were signed out.
func BuildPasswordChangedEmail(data AccountEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Dialyse"
	}

	subject := fmt.Sprintf("Your %s password was changed", appName)

	textBody := fmt.Sprintf(`Hello %s,

The password for your %s account was just changed and all active
sessions were signed out.

If this was not you, contact your administrator immediately.

Thanks,
The %s Team`,
		data.Username, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hello %s,</h2>
    <p>The password for your %s account was just changed and all active sessions were signed out.</p>
    <p style="color: #b91c1c;">If this was not you, contact your administrator immediately.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.Username, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
