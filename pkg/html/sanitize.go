package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// Sanitize strips markup that is unsafe to emit unencoded (scripts, event
// handlers, javascript: URLs) while keeping user-generated-content tags such
// as <b>, <a> and <code>.
func Sanitize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return contentSanitizer().Sanitize(raw)
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		contentPolicy = policy
	})
	return contentPolicy
}
