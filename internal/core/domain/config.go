package domain

import "sort"

// Profile is a named bundle of Cloudflare credentials. The token doubles as
// API key and API token when exported. When Keyring is set the token lives
// in the operating system keyring instead of the config file.
type Profile struct {
	Email   string `json:"email"`
	Token   string `json:"token"`
	Zone    string `json:"zone,omitempty"`
	Keyring bool   `json:"keyring,omitempty"`
}

// Config is the root persisted document: all profiles plus the name of the
// currently active one. It is loaded fresh on every invocation and written
// back whole after any mutation.
type Config struct {
	Profiles map[string]Profile `json:"profiles"`
	Current  string             `json:"current,omitempty"`
}

func NewConfig() *Config {
	return &Config{Profiles: map[string]Profile{}}
}

func (c *Config) ProfileExists(name string) bool {
	_, ok := c.Profiles[name]
	return ok
}

// SortedNames returns all profile names in lexicographic order. This is the
// canonical iteration order for listing and rotation.
func (c *Config) SortedNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextProfileName returns the profile that follows Current in sorted order,
// wrapping from the last name back to the first. An unset or unknown Current
// counts as the position before the first name, so the first rotation lands
// on the lexicographically smallest profile. Must not be called on an empty
// config.
func (c *Config) NextProfileName() string {
	names := c.SortedNames()
	currentIndex := -1
	for i, name := range names {
		if name == c.Current {
			currentIndex = i
			break
		}
	}
	return names[(currentIndex+1)%len(names)]
}

// ActiveProfile returns the currently active profile. It distinguishes
// between no profile being active and Current referencing a profile that was
// removed from under it.
func (c *Config) ActiveProfile() (string, Profile, error) {
	if c.Current == "" {
		return "", Profile{}, ErrNoActiveProfile
	}
	profile, ok := c.Profiles[c.Current]
	if !ok {
		return c.Current, Profile{}, ErrDanglingCurrent
	}
	return c.Current, profile, nil
}
