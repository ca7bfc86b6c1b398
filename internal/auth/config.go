package auth

// Config holds auth configuration. Auth is off unless Enabled is set; when
// it is, Issuer and JWKSURL are required.
type Config struct {
	Enabled         bool
	Issuer          string
	JWKSURL         string
	Audience        string
	PermissionsFile string
}
