// Package brand models a show identity: display name, default hosts, call to
// action, and platform links. Brand values come from configuration and are
// merged with per-invocation overrides through a pure function, never through
// ambient mutable state.
package brand

// PlatformKeys is the fixed set of link-map keys, in render order. "shop" is
// the brand-specific miscellaneous slot.
var PlatformKeys = []string{
	"youtube", "spotify", "apple", "anchor",
	"tiktok", "facebook", "instagram", "patreon", "shop",
}

// Brand describes one configured show identity.
type Brand struct {
	Name  string            `yaml:"name" json:"name"`
	Hosts []string          `yaml:"hosts" json:"hosts"`
	CTA   string            `yaml:"cta" json:"cta"`
	Links map[string]string `yaml:"links" json:"links"`
}

// Merge overlays overrides on top of defaults and returns a new Brand.
// Non-empty override fields win; link maps merge key-wise with override URLs
// replacing default URLs. Neither input is modified.
func Merge(defaults, overrides Brand) Brand {
	out := Brand{
		Name:  defaults.Name,
		CTA:   defaults.CTA,
		Hosts: append([]string(nil), defaults.Hosts...),
		Links: make(map[string]string, len(defaults.Links)+len(overrides.Links)),
	}
	for k, v := range defaults.Links {
		out.Links[k] = v
	}
	for k, v := range overrides.Links {
		if v != "" {
			out.Links[k] = v
		}
	}
	if overrides.Name != "" {
		out.Name = overrides.Name
	}
	if overrides.CTA != "" {
		out.CTA = overrides.CTA
	}
	if len(overrides.Hosts) > 0 {
		out.Hosts = append([]string(nil), overrides.Hosts...)
	}
	return out
}

// KnownPlatform reports whether key is one of the fixed platform keys.
func KnownPlatform(key string) bool {
	for _, k := range PlatformKeys {
		if k == key {
			return true
		}
	}
	return false
}
