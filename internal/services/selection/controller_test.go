package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

func label(s models.SelectionState) string {
	if s.SelectedLabel == nil {
		return ""
	}
	return *s.SelectedLabel
}

func TestController_Transitions(t *testing.T) {
	c := NewController()
	assert.Nil(t, c.State().SelectedLabel)

	assert.Equal(t, "A", label(c.Toggle("A")))
	assert.Equal(t, "B", label(c.Toggle("B")))
	assert.Equal(t, "", label(c.Toggle("B")))
	assert.Nil(t, c.State().SelectedLabel)
}

func TestController_ToggleTwiceReturnsToNone(t *testing.T) {
	c := NewController()
	c.Toggle("Technology")
	s := c.Toggle("Technology")
	assert.Nil(t, s.SelectedLabel)

	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestController_EmptyLabelIsSelectable(t *testing.T) {
	c := NewController()
	s := c.Toggle("")
	require.NotNil(t, s.SelectedLabel)
	assert.Equal(t, "", *s.SelectedLabel)
	assert.Nil(t, c.Toggle("").SelectedLabel)
}

func TestController_ResetSelectsArgmax(t *testing.T) {
	c := NewController()
	c.Toggle("C")

	s := c.Reset([]models.AllocationItem{
		{Label: "A", Percentage: 58},
		{Label: "B", Percentage: 20},
		{Label: "C", Percentage: 22},
	})
	assert.Equal(t, "A", label(s))
}

func TestController_ResetTieKeepsFirst(t *testing.T) {
	c := NewController()
	s := c.Reset([]models.AllocationItem{
		{Label: "X", Percentage: 30},
		{Label: "Y", Percentage: 30},
	})
	assert.Equal(t, "X", label(s))
}

func TestController_ResetEmptyClears(t *testing.T) {
	c := NewController()
	c.Toggle("A")
	s := c.Reset(nil)
	assert.Nil(t, s.SelectedLabel)
}

func TestController_StateIsACopy(t *testing.T) {
	c := NewController()
	s := c.Toggle("A")
	*s.SelectedLabel = "mutated"
	assert.Equal(t, "A", label(c.State()))
}

func TestController_Clear(t *testing.T) {
	c := NewController()
	c.Toggle("A")
	c.Clear()
	assert.Nil(t, c.State().SelectedLabel)
}

func TestArgmax(t *testing.T) {
	_, ok := Argmax(nil)
	assert.False(t, ok)

	l, ok := Argmax([]models.AllocationItem{{Label: "only", Percentage: 0}})
	assert.True(t, ok)
	assert.Equal(t, "only", l)
}
