package model

import "strings"

type View string

const (
	ViewLanding       View = "landing"
	ViewMarketplace   View = "marketplace"
	ViewHowItWorks    View = "how_it_works"
	ViewRoleSelection View = "role_selection"
	ViewBuyerForm     View = "buyer_form"
	ViewSellerType    View = "seller_type"
	ViewSellerForm    View = "seller_form"
	ViewDashboard     View = "dashboard"
)

var views = []View{
	ViewLanding,
	ViewMarketplace,
	ViewHowItWorks,
	ViewRoleSelection,
	ViewBuyerForm,
	ViewSellerType,
	ViewSellerForm,
	ViewDashboard,
}

func (v View) Valid() bool {
	switch v {
	case ViewLanding, ViewMarketplace, ViewHowItWorks, ViewRoleSelection,
		ViewBuyerForm, ViewSellerType, ViewSellerForm, ViewDashboard:
		return true
	default:
		return false
	}
}

func ParseView(raw string) (View, bool) {
	key := normalizeKey(raw)
	for _, v := range views {
		if string(v) == key {
			return v, true
		}
	}
	return "", false
}

type Role string

const (
	RoleNone   Role = ""
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

func ParseRole(raw string) (Role, bool) {
	switch normalizeKey(raw) {
	case string(RoleBuyer):
		return RoleBuyer, true
	case string(RoleSeller):
		return RoleSeller, true
	default:
		return RoleNone, false
	}
}

// normalizeKey folds "How It Works", "how-it-works" and "how_it_works" to the same identifier.
func normalizeKey(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(raw)
}
