package view

import "bluewear/internal/domain/user"

// View is the active top-level screen.
type View string

const (
	Home    View = "home"
	Shop    View = "shop"
	Cart    View = "cart"
	Orders  View = "orders"
	Login   View = "login"
	Account View = "account"
	Admin   View = "admin"
)

var all = map[View]string{
	Home:    "/",
	Shop:    "/shop",
	Cart:    "/cart",
	Orders:  "/orders",
	Login:   "/login",
	Account: "/account",
	Admin:   "/admin",
}

func Parse(name string) (View, bool) {
	v := View(name)
	_, ok := all[v]
	return v, ok
}

// Navigate returns the view actually entered. The admin screen requires
// an admin user; a failed guard falls back to home without surfacing an
// error.
func Navigate(target View, u *user.User) View {
	if _, ok := all[target]; !ok {
		return Home
	}
	if target == Admin && !u.IsAdmin() {
		return Home
	}
	return target
}

// Path maps a view to its route, for redirects after form posts.
func (v View) Path() string {
	if p, ok := all[v]; ok {
		return p
	}
	return "/"
}
