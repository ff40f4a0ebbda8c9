package models

import "strings"

// View identifies one top-level screen.
type View string

const (
	ViewHome         View = "home"
	ViewEncyclopedia View = "ensiklopedia"
	ViewDiagnosis    View = "diagnosa"
	ViewForum        View = "forum"
	ViewShop         View = "shop"
	ViewGuide        View = "panduan"
	ViewAdmin        View = "admin"
	ViewMonitoring   View = "monitoring"
)

var allViews = []View{
	ViewHome,
	ViewEncyclopedia,
	ViewDiagnosis,
	ViewForum,
	ViewShop,
	ViewGuide,
	ViewAdmin,
	ViewMonitoring,
}

// AllViews returns every view identifier in canonical order.
func AllViews() []View {
	out := make([]View, len(allViews))
	copy(out, allViews)
	return out
}

// ParseView maps a raw identifier onto the closed set.
func ParseView(s string) (View, bool) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allViews {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// NavTab is one entry of the bottom navigation bar.
type NavTab struct {
	View   View   `json:"id"`
	Label  string `json:"label"`
	Badge  string `json:"badge,omitempty"`
	Locked bool   `json:"locked"`
	Active bool   `json:"active"`
}
