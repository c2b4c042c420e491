package cli

import (
	"fmt"
	"net"
	"strings"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ParseFacetArg validates a facet argument such as "chats" or "People"
func ParseFacetArg(arg string) (models.FacetKey, error) {
	if strings.EqualFold(strings.TrimSpace(arg), string(models.TabAll)) {
		return "", fmt.Errorf("the All tab is always shown and cannot be toggled")
	}
	facet, ok := models.ParseFacet(arg)
	if !ok {
		return "", fmt.Errorf("invalid facet: %s (must be: files, people, chats, or lists)", arg)
	}
	return facet, nil
}

// ParseTabArg validates a --tab flag value
func ParseTabArg(arg string) (models.Tab, error) {
	tab, ok := models.ParseTab(arg)
	if !ok {
		return "", fmt.Errorf("invalid tab: %s (must be: all, files, people, chats, or lists)", arg)
	}
	return tab, nil
}

// ValidateAddr checks a host:port listen address
func ValidateAddr(addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
