package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	assert.Equal(t, []string{"golang", "graphs"}, ExtractHashtags("Learning #Golang and #graphs, #golang again"))
	assert.Equal(t, []string{"ส้มตำ"}, ExtractHashtags("lunch #ส้มตำ"))
	assert.Empty(t, ExtractHashtags("no tags here"))
}
