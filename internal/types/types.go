package types

// Status describes how far a successful revocation got.
type Status string

const (
	// StatusUnspecified is left by revokers that do not set a status; the
	// dispatcher treats it as StatusComplete.
	StatusUnspecified  Status = ""
	StatusComplete     Status = "complete"
	StatusActionNeeded Status = "action_needed"
)

// OutputFormat selects how CLI results are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// TypeID is the stable symbolic name of a token family.
type TypeID string

const (
	TypeHCBOAuth            TypeID = "hcb_oauth"
	TypeTheseusAPIKey       TypeID = "theseus_api_key"
	TypeTheseusPublicAPIKey TypeID = "theseus_public_api_key"
	TypeSlackXoxp           TypeID = "slack_xoxp"
	TypeSlackXoxc           TypeID = "slack_xoxc"
	TypeAirtablePAT         TypeID = "airtable_pat"
)

// AuxSlackCookie is the auxiliary key for the `d` cookie paired with xoxc tokens.
const AuxSlackCookie = "xoxd"
