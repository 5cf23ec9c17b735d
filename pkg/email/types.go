package email

// Message is a fully-built mail ready for the SMTP dialer. The template
// builders in this package produce these; services never assemble one
// by hand.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
