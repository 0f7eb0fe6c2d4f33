package service

import "github.com/nurpe/bizops-dashboard/internal/model"

type menuEntry struct {
	item  model.MenuItem
	roles []model.Role
}

var menuEntries = []menuEntry{
	{item: model.MenuItem{Key: "dashboard", Label: "Dashboard", Path: "/"}},
	{item: model.MenuItem{Key: "clients", Label: "Clients", Path: "/clients"}},
	{item: model.MenuItem{Key: "prospects", Label: "Prospects", Path: "/prospects"}},
	{item: model.MenuItem{Key: "price-references", Label: "Price structures", Path: "/price-references"}},
	{item: model.MenuItem{Key: "non-mining-prices", Label: "Non-mining prices", Path: "/non-mining-prices"}},
	{item: model.MenuItem{Key: "transport-rates", Label: "Transport rates", Path: "/transport-rates"}},
	{item: model.MenuItem{Key: "users", Label: "Users", Path: "/users"}, roles: []model.Role{model.RoleAdmin}},
}

// MenuFor returns the sections visible to a role. Entries without roles are
// visible to everyone.
func MenuFor(role model.Role) []model.MenuItem {
	items := make([]model.MenuItem, 0, len(menuEntries))
	for _, entry := range menuEntries {
		if len(entry.roles) == 0 || containsRole(entry.roles, role) {
			items = append(items, entry.item)
		}
	}
	return items
}

func containsRole(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
