package server_test

import (
	"testing"

	"equipment-tracker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want server.Role
	}{
		{"Admin", "admin", server.RoleAdmin},
		{"MasterMixedCase", " Master ", server.RoleMaster},
		{"Public", "public", server.RolePublic},
		{"Invalid", "root", server.RolePublic},
		{"Empty", "", server.RolePublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.ParseRole(tt.in))
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, server.RoleMaster.AtLeast(server.RoleAdmin))
	assert.True(t, server.RoleAdmin.AtLeast(server.RoleAdmin))
	assert.False(t, server.RolePublic.AtLeast(server.RoleAdmin))
	assert.False(t, server.RoleAdmin.AtLeast(server.RoleMaster))
	assert.True(t, server.RoleAdmin.IsAdmin())
	assert.False(t, server.RolePublic.IsAdmin())
}

func TestConfig_ResolveRole(t *testing.T) {
	c := server.Config{AdminKey: "admin-key", MasterKey: "master-key"}

	assert.Equal(t, server.RoleAdmin, c.ResolveRole("admin-key"))
	assert.Equal(t, server.RoleMaster, c.ResolveRole("master-key"))
	assert.Equal(t, server.RolePublic, c.ResolveRole("nope"))
	assert.Equal(t, server.RolePublic, c.ResolveRole(""))

	// Unset keys never match an empty header.
	empty := server.Config{}
	assert.Equal(t, server.RolePublic, empty.ResolveRole(""))
}

func TestConfig_Origins(t *testing.T) {
	c := server.Config{CorsOrigins: "https://a.example, https://b.example,,"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.Origins())
}
