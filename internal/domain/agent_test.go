package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/agenthub/internal/domain"
)

func TestColorTheme_Classes(t *testing.T) {
	theme := domain.ColorTheme{From: domain.ThemeEmerald, To: domain.ThemeTeal}

	assert.Equal(t, "from-emerald-500 to-teal-500", theme.Classes())
	assert.Equal(t, "hover:from-emerald-600 hover:to-teal-600", theme.HoverClasses())
}

func TestIcon_Valid(t *testing.T) {
	assert.True(t, domain.IconBrain.Valid())
	assert.True(t, domain.IconLink.Valid())
	assert.False(t, domain.Icon("rocket").Valid())
	assert.False(t, domain.Icon("").Valid())
}

func TestAgent_Optionals(t *testing.T) {
	a := domain.Agent{ID: "x"}
	assert.False(t, a.HasBadge())
	assert.False(t, a.HasShortLink())

	a.BadgeLabel = "Teams Chat"
	a.ShortLinkLabel = "aka.ms/x"
	assert.True(t, a.HasBadge())
	assert.True(t, a.HasShortLink())
}
