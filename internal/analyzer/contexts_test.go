package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/lexicrawl/internal/analyzer"
)

func TestExtractContexts(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	text := "Le gouvernement annonce des réformes. Les réformes seront débattues demain! " +
		"Le budget reste inchangé.\nLa croissance ralentit?"

	contexts := a.ExtractContexts(text, []string{"reformes", "budget", "croissance", "absent"})

	assert.Equal(t, "Le gouvernement annonce des réformes", contexts["reformes"],
		"first matching sentence wins")
	assert.Equal(t, "Le budget reste inchangé", contexts["budget"])
	assert.Equal(t, "La croissance ralentit", contexts["croissance"])
	assert.NotContains(t, contexts, "absent", "words with no match are omitted")
}

func TestExtractContexts_AccentFoldedMatch(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	text := "Les températures montent. Rien d'autre ici."

	contexts := a.ExtractContexts(text, []string{"temperatures"})
	assert.Equal(t, "Les températures montent", contexts["temperatures"])
}

func TestExtractContexts_Empty(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	assert.Empty(t, a.ExtractContexts("", []string{"mot"}))
	assert.Empty(t, a.ExtractContexts("une phrase simple.", nil))
}
