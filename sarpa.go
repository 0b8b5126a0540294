package sarpa

import "embed"

// EmailFS holds the html and plaintext email templates, one directory per template.
//
//go:embed templates/emails
var EmailFS embed.FS
