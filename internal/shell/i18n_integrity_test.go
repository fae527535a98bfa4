package shell

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contacts/internal/config"
)

// i18nKeys lists every translation key the shell relies on.
var i18nKeys = []string{
	config.TKeyWelcome,
	config.TKeyPrompt,
	config.TKeyGoodbye,
	config.TKeyGreeting,
	config.TKeyEmptyInput,
	config.TKeyInvalidCmd,
	config.TKeyExported,
	config.TKeyImported,
	config.TKeyCalWritten,
	config.TKeyDeleted,
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every embedded locale file, and that no locale carries orphans.
func TestI18nIntegrity(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := localeFS.ReadFile("locales/active." + lang + ".json")
			require.NoError(t, err, "locale file must be embedded")

			var jsonMap map[string]any
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for _, key := range i18nKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key %q defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				found := false
				for _, key := range i18nKeys {
					if key == jsonKey {
						found = true
						break
					}
				}
				assert.Truef(t, found, "Key %q in active.%s.json is not used by the shell", jsonKey, lang)
			}
		})
	}
}
