package showcase

import (
	"fmt"
	"net/url"
	"strings"
)

// CuratorEmail receives interest requests for ideas.
const CuratorEmail = "curator@atelie.app"

// ActionLink returns the target of an item's primary action: the app link for apps and
// a prefilled interest email for ideas. It returns "" for an app without a link.
func ActionLink(it Item) string {
	if it.Kind != KindIdea {
		return strings.TrimSpace(it.AppLink)
	}
	subject := "Interest in " + it.Name
	body := fmt.Sprintf(
		"Hi,\n\nI'm interested in the idea %q by %s.\n\nMy name: \nMy background: \nReason for interest: \n",
		it.Name, it.DeveloperName,
	)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", CuratorEmail, encodeComponent(subject), encodeComponent(body))
}

// encodeComponent escapes s for a mailto header value. Spaces become %20, not '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
