package tamumu

import "embed"

// EmailFS holds the embedded email templates shipped with the binary.
//
//go:embed templates/emails
var EmailFS embed.FS
