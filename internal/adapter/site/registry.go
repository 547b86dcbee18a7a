package site

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"promptmark/config"
	"promptmark/internal/domain"
)

const defaultThemeColor = "#888"

// Site describes one supported AI chat site.
type Site struct {
	Name        string
	Hosts       []string
	ChatPath    string
	ThemeColor  string
	TitleSuffix string
	IDPrefix    string
}

// Registry matches URLs against the configured sites, first match wins.
type Registry struct {
	sites []Site
}

func NewRegistry(sites []Site) *Registry {
	return &Registry{sites: sites}
}

// FromConfig builds a Registry from site configuration.
func FromConfig(cfgs []config.SiteConfig) *Registry {
	sites := make([]Site, 0, len(cfgs))
	for _, c := range cfgs {
		sites = append(sites, Site{
			Name:        c.Name,
			Hosts:       c.Hosts,
			ChatPath:    c.ChatPath,
			ThemeColor:  c.ThemeColor,
			TitleSuffix: c.TitleSuffix,
			IDPrefix:    c.IDPrefix,
		})
	}
	return NewRegistry(sites)
}

// Lookup finds the site serving host. Ports are ignored.
func (r *Registry) Lookup(host string) (Site, bool) {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	for _, s := range r.sites {
		for _, pattern := range s.Hosts {
			matched, err := doublestar.Match(strings.ToLower(pattern), host)
			if err == nil && matched {
				return s, true
			}
		}
	}
	return Site{}, false
}

// Resolve parses rawURL and returns the site serving it. It fails with
// domain.ErrUnsupportedSite for unknown hosts and domain.ErrInvalidPage
// when the path is not a chat page of that site.
func (r *Registry) Resolve(rawURL string) (Site, *url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Site{}, nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	s, ok := r.Lookup(u.Host)
	if !ok {
		return Site{}, nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSite, u.Host)
	}
	if !s.IsChatPage(u.Path) {
		return Site{}, nil, fmt.Errorf("%w: %s", domain.ErrInvalidPage, u.Path)
	}
	return s, u, nil
}

// IsChatPage reports whether path is a chat page of the site. Leading
// slashes are ignored on both the pattern and the path.
func (s Site) IsChatPage(path string) bool {
	if s.ChatPath == "" {
		return true
	}
	pattern := strings.TrimPrefix(s.ChatPath, "/")
	matched, err := doublestar.Match(pattern, strings.TrimPrefix(path, "/"))
	return err == nil && matched
}

// CleanTitle strips the site suffix from a page title.
func (s Site) CleanTitle(title string) string {
	suffix := s.TitleSuffix
	if suffix == "" {
		suffix = " - " + s.Name
	}
	title = strings.TrimSpace(strings.Replace(title, suffix, "", 1))
	if title == "" {
		return "Untitled Chat"
	}
	return title
}

func (s Site) Color() string {
	if s.ThemeColor == "" {
		return defaultThemeColor
	}
	return s.ThemeColor
}

func (s Site) MessagePrefix() string {
	if s.IDPrefix == "" {
		return "msg"
	}
	return s.IDPrefix
}

// ChatID derives a chat identifier from a chat page URL: the chatId query
// parameter, else the last path segment, else "<site>-<unix ms>".
func (s Site) ChatID(u *url.URL, now time.Time) string {
	if id := u.Query().Get("chatId"); id != "" {
		return id
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if last := segments[len(segments)-1]; last != "" {
		return last
	}
	return fmt.Sprintf("%s-%d", strings.ToLower(s.Name), now.UnixMilli())
}
