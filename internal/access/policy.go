// Package access decides which views a role may enter.
package access

import "temanikan/internal/models"

// guestViews is the allow-list for guests and sessions without a role.
var guestViews = map[models.View]bool{
	models.ViewHome:         true,
	models.ViewEncyclopedia: true,
	models.ViewGuide:        true,
	models.ViewShop:         true,
}

// CanAccess reports whether role may open view.
func CanAccess(role models.Role, view models.View) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleMember:
		return view != models.ViewAdmin
	case models.RoleGuest:
		return guestViews[view]
	default:
		// absent role
		return guestViews[view]
	}
}

// AllowedViews lists the views role may open, in canonical order.
func AllowedViews(role models.Role) []models.View {
	out := make([]models.View, 0, len(models.AllViews()))
	for _, v := range models.AllViews() {
		if CanAccess(role, v) {
			out = append(out, v)
		}
	}
	return out
}

type tabDef struct {
	view  models.View
	label string
	badge string
}

var baseTabs = []tabDef{
	{view: models.ViewHome, label: "Home"},
	{view: models.ViewEncyclopedia, label: "Fish"},
	{view: models.ViewMonitoring, label: "Monitor", badge: "IoT"},
	{view: models.ViewDiagnosis, label: "AI"},
	{view: models.ViewForum, label: "Forum"},
}

var adminTab = tabDef{view: models.ViewAdmin, label: "Admin", badge: "ADM"}

// NavTabs builds the bottom navigation for role; tabs the role cannot open are locked.
func NavTabs(role models.Role, active models.View) []models.NavTab {
	defs := baseTabs
	if role == models.RoleAdmin {
		defs = append(append([]tabDef{}, baseTabs...), adminTab)
	}
	tabs := make([]models.NavTab, 0, len(defs))
	for _, d := range defs {
		tabs = append(tabs, models.NavTab{
			View:   d.view,
			Label:  d.label,
			Badge:  d.badge,
			Locked: !CanAccess(role, d.view),
			Active: d.view == active,
		})
	}
	return tabs
}
