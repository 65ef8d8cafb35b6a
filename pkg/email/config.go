package email

// Config holds email transport configuration.
// The Postmark tokens are optional so development environments can run with
// the file-based sender instead; SenderEmail establishes the from identity
// for all outbound mail and is always required.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL"`
}
