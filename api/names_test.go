package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascal(t *testing.T) {
	assert.Equal(t, "SonicSystem", Pascal("sonic-system"))
	assert.Equal(t, "RebootRequest", Pascal("reboot_request"))
	assert.Equal(t, "FactoryReset", Pascal("factory--reset"))
	assert.Equal(t, "Showtechsupport", Pascal("showtechsupport"))
	assert.Equal(t, "", Pascal(""))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "sonic_system", Plain("sonic-system"))
	assert.Equal(t, "plain", Plain("plain"))
}

func TestEnumHas(t *testing.T) {
	var nilEnum *Enum
	assert.False(t, nilEnum.Has("cold"))

	e := &Enum{Members: []string{"cold"}, MemberSet: map[string]bool{"cold": true}}
	assert.True(t, e.Has("cold"))
	assert.False(t, e.Has("warm"))
}
