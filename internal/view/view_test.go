package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bluewear/internal/domain/user"
)

func TestParse(t *testing.T) {
	for _, name := range []string{"home", "shop", "cart", "orders", "login", "account", "admin"} {
		v, ok := Parse(name)
		assert.True(t, ok, name)
		assert.Equal(t, View(name), v)
	}
	_, ok := Parse("checkout")
	assert.False(t, ok)
}

func TestNavigateAdminGuard(t *testing.T) {
	admin := &user.User{Name: "Ava", Role: user.RoleAdmin}
	customer := &user.User{Name: "Bo", Role: user.RoleCustomer}

	tests := []struct {
		name   string
		target View
		u      *user.User
		want   View
	}{
		{"anyone reaches shop", Shop, nil, Shop},
		{"admin reaches admin", Admin, admin, Admin},
		{"customer bounced to home", Admin, customer, Home},
		{"anonymous bounced to home", Admin, nil, Home},
		{"unknown view falls back", View("bogus"), admin, Home},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Navigate(tc.target, tc.u))
		})
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/", Home.Path())
	assert.Equal(t, "/admin", Admin.Path())
	assert.Equal(t, "/", View("bogus").Path())
}
