package permissions_test

import (
	"lessons/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	assert.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{name: "public ledger read", path: "/v1/bookings", method: "GET", skip: true},
		{name: "trailing slash from subrouter", path: "/v1/bookings/", method: "POST", skip: true},
		{name: "route parameter", path: "/v1/bookings/{id}", method: "GET", skip: true},
		{name: "admin listing", path: "/v1/user-bookings/all", method: "GET", roles: []string{"admin", "superadmin"}},
		{name: "lowercase method", path: "/v1/user-bookings", method: "post", roles: []string{"user", "admin", "superadmin"}},
		{name: "unknown route", path: "/v1/rooms", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.Equal(t, tt.roles, permission.Permissions)
		})
	}
}
