package constvars

const (
	// Canonical 8-4-4-4-12 hyphenated lowercase-hex form. An identifier that
	// matches is treated as a submission id, anything else as a type name.
	RegexSubmissionID = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
)
