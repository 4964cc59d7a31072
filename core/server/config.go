package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AdminKey grants the admin role when sent as X-API-Key.
	AdminKey string `mapstructure:"admin_key" default:""`
	// MasterKey grants the master admin role when sent as X-API-Key.
	MasterKey string `mapstructure:"master_key" default:""`
	// ReturnRateLimit is the number of return attempts allowed per IP per minute.
	ReturnRateLimit int `mapstructure:"return_rate_limit" default:"10"`
	// BodyLimitBytes caps request bodies.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"65536"`
	// CorsOrigins is a comma separated allow list for the public catalog.
	CorsOrigins string `mapstructure:"cors_origins" default:"*"`
}

// Role identifies the kind of caller behind a request.
type Role string

const (
	RolePublic Role = "public"
	RoleAdmin  Role = "admin"
	RoleMaster Role = "master"
)

// ParseRole maps a textual role to a Role. Unknown values resolve to RolePublic.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleMaster:
		return RoleMaster
	default:
		return RolePublic
	}
}

func (r Role) rank() int {
	switch r {
	case RoleMaster:
		return 2
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// IsAdmin reports whether the role may run inventory administration.
func (r Role) IsAdmin() bool {
	return r.AtLeast(RoleAdmin)
}

// ResolveRole returns the role granted by an API key.
// Master wins when both keys are configured to the same value.
func (c Config) ResolveRole(apiKey string) Role {
	if apiKey == "" {
		return RolePublic
	}
	if c.MasterKey != "" && apiKey == c.MasterKey {
		return RoleMaster
	}
	if c.AdminKey != "" && apiKey == c.AdminKey {
		return RoleAdmin
	}
	return RolePublic
}

// Origins splits CorsOrigins into its entries.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CorsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
