package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_KnownLocales(t *testing.T) {
	assert.Equal(t, "총 생산량", T("KO", "kpi_total_output"))
	assert.Equal(t, "Total Output", T("EN", "kpi_total_output"))
}

func TestT_UnknownLocaleFallsBackToDefault(t *testing.T) {
	assert.Equal(t, T(DefaultLocale, "no_data"), T("FR", "no_data"))
}

func TestT_UnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "nonexistent_key", T("KO", "nonexistent_key"))
}

func TestLabels_CoverSameKeysAcrossLocales(t *testing.T) {
	ko := Labels("KO")
	en := Labels("EN")

	assert.Equal(t, len(ko), len(en))
	for key := range ko {
		assert.Contains(t, en, key)
	}
}
