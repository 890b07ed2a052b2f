package theme

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_DarkThenLight(t *testing.T) {
	c := NewController(ModeAuto, nil)
	c.SetMode(ModeDark)
	assert.Equal(t, "dark", c.Attribute())
	c.SetMode(ModeLight)
	assert.Equal(t, "light", c.Attribute())
}

func TestController_AutoTracksPreference(t *testing.T) {
	c := NewController(ModeAuto, nil)
	assert.Equal(t, "light", c.Attribute())

	require.True(t, c.Update(SystemPreferenceMsg{Dark: true}))
	assert.Equal(t, "dark", c.Attribute())

	c.Update(SystemPreferenceMsg{Dark: false})
	assert.Equal(t, "light", c.Attribute())

	c.Update(SystemPreferenceMsg{Dark: true})
	assert.Equal(t, "dark", c.Attribute())
}

func TestController_ExplicitModeIgnoresPreference(t *testing.T) {
	c := NewController(ModeLight, nil)
	c.Update(SystemPreferenceMsg{Dark: true})
	assert.Equal(t, "light", c.Attribute())

	// Switching back to auto picks up the last observed preference.
	c.SetMode(ModeAuto)
	assert.Equal(t, "dark", c.Attribute())
}

func TestController_UnknownModeFallsBackToAuto(t *testing.T) {
	c := NewController(Mode("sepia"), nil)
	assert.Equal(t, ModeAuto, c.Mode())
	assert.Equal(t, "light", c.Attribute())
}

func TestController_UpdateIgnoresOtherMessages(t *testing.T) {
	c := NewController(ModeAuto, nil)
	assert.False(t, c.Update("not a preference"))
}

func TestController_DetectCmd(t *testing.T) {
	c := NewController(ModeAuto, nil)
	c.SetDetector(func() bool { return true })
	msg := c.DetectCmd()()
	require.Equal(t, SystemPreferenceMsg{Dark: true}, msg)
	c.Update(msg)
	assert.True(t, c.Dark())
	assert.Equal(t, Dark, c.Palette())
}

func TestController_WatchCmdMarksPolled(t *testing.T) {
	c := NewController(ModeAuto, nil)
	c.SetDetector(func() bool { return true })
	msg := c.WatchCmd(time.Millisecond)()
	assert.Equal(t, SystemPreferenceMsg{Dark: true, Polled: true}, msg)
	assert.False(t, c.DetectCmd()().(SystemPreferenceMsg).Polled)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"light", "dark", "auto"} {
		m, ok := ParseMode(s)
		assert.True(t, ok, s)
		assert.Equal(t, Mode(s), m)
	}
	m, ok := ParseMode("")
	assert.False(t, ok)
	assert.Equal(t, ModeAuto, m)
}

func TestPalette_Accent(t *testing.T) {
	fg, bg := Light.Accent("error")
	assert.Equal(t, Light.Error, fg)
	assert.Equal(t, Light.ErrorBg, bg)
	fg, _ = Dark.Accent("bogus")
	assert.Equal(t, Dark.Primary, fg)
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "✓", Icon("success"))
	assert.Equal(t, "?", Icon("question"))
	assert.Equal(t, "", Icon("none"))
}
