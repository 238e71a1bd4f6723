package dashboard

import (
	"fmt"
	"net/url"
	"sort"

	"athlete-dashboard/core/events"
)

// QueryParam carries the active feature identifier in dashboard URLs.
const QueryParam = "dashboard_feature"

// Item is one entry of the dashboard navigation.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
	URL         string `json:"url"`
}

// Navigation lists the enabled features of a registry.
type Navigation struct {
	registry *Registry
}

// NewNavigation creates navigation over registry.
func NewNavigation(registry *Registry) *Navigation {
	return &Navigation{registry: registry}
}

// Enabled returns the enabled features sorted ascending by Metadata.Order.
// Features with equal order keep their registration order.
func (n *Navigation) Enabled() []Feature {
	all := n.registry.All()
	enabled := make([]Feature, 0, len(all))
	for _, f := range all {
		if f.IsEnabled() {
			enabled = append(enabled, f)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Metadata().Order < enabled[j].Metadata().Order
	})
	return enabled
}

// Items builds navigation entries, marking active and linking each entry from base.
func (n *Navigation) Items(base *url.URL, active string) []Item {
	features := n.Enabled()
	items := make([]Item, 0, len(features))
	for _, f := range features {
		md := f.Metadata()
		items = append(items, Item{
			ID:          f.ID(),
			Name:        md.Name,
			Description: md.Description,
			Icon:        md.Icon,
			Order:       md.Order,
			Active:      f.ID() == active,
			URL:         FeatureURL(base, f.ID()).String(),
		})
	}
	return items
}

// Navigate validates the target, emits events.Navigate through fc and returns the
// URL the client should push.
func (n *Navigation) Navigate(fc Context, from, to string, current *url.URL) (*url.URL, error) {
	f, ok := n.registry.Get(to)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, to)
	}
	if !f.IsEnabled() {
		return nil, fmt.Errorf("%w: %s", ErrFeatureDisabled, to)
	}

	fc.Emit(events.Navigate, events.NavigatePayload{UserID: fc.UserID, From: from, To: to})
	return FeatureURL(current, to), nil
}

// FeatureURL returns a copy of base with the feature query parameter set to id.
// Other query parameters are preserved.
func FeatureURL(base *url.URL, id string) *url.URL {
	u := &url.URL{}
	if base != nil {
		copied := *base
		u = &copied
	}
	q := u.Query()
	q.Set(QueryParam, id)
	u.RawQuery = q.Encode()
	return u
}

// RequestedFeature reads the feature identifier from a URL, or "" if absent.
func RequestedFeature(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Query().Get(QueryParam)
}
