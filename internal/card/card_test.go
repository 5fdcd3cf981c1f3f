package card_test

import (
	"testing"
	"unsafe"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := card.New("Ace")
	require.Equal(t, "Ace", c.Text())
	require.Equal(t, card.Up, c.Orientation())
	require.Equal(t, card.Rounded, c.CornerStyle())
	require.Nil(t, c.TextColor())
	require.Nil(t, c.BackgroundColor())
}

func TestText(t *testing.T) {
	t.Run("copies_source_buffer", func(t *testing.T) {
		buf := []byte("Queen")
		aliased := unsafe.String(&buf[0], len(buf))
		c := card.New("")
		c.SetText(aliased)
		copy(buf, "xxxxx")
		require.Equal(t, "xxxxx", aliased)
		require.Equal(t, "Queen", c.Text())

		buf = []byte("Jack")
		c = card.New(unsafe.String(&buf[0], len(buf)))
		copy(buf, "zzzz")
		require.Equal(t, "Jack", c.Text())
	})

	t.Run("accepts_empty_and_unicode", func(t *testing.T) {
		c := card.New("x")
		for _, s := range []string{"", "♠ 10", "Über\nZwei"} {
			c.SetText(s)
			require.Equal(t, s, c.Text())
		}
	})
}

func TestOrientationRoundTrip(t *testing.T) {
	c := card.New("")
	for _, o := range card.Orientations() {
		c.SetOrientation(o)
		require.Equal(t, o, c.Orientation())
	}
	require.Len(t, card.Orientations(), card.OrientationCount)
}

func TestCornerStyleRoundTrip(t *testing.T) {
	c := card.New("")
	for _, s := range card.CornerStyles() {
		c.SetCornerStyle(s)
		require.Equal(t, s, c.CornerStyle())
	}
	require.Len(t, card.CornerStyles(), card.CornerStyleCount)
}

func TestInvalidEnumPanics(t *testing.T) {
	c := card.New("")
	require.Panics(t, func() { c.SetOrientation(card.Orientation(card.OrientationCount)) })
	require.Panics(t, func() { c.SetCornerStyle(card.CornerStyle(card.CornerStyleCount)) })
	require.Equal(t, card.Up, c.Orientation())
	require.Equal(t, card.Rounded, c.CornerStyle())
}

func TestAttributesAreIndependent(t *testing.T) {
	c := card.New("Ace")
	c.SetOrientation(card.Up)
	c.SetCornerStyle(card.Rounded)

	c.SetOrientation(card.Right)

	require.Equal(t, "Ace", c.Text())
	require.Equal(t, card.Right, c.Orientation())
	require.Equal(t, card.Rounded, c.CornerStyle())
}

func TestColors(t *testing.T) {
	t.Run("text_and_background_are_independent", func(t *testing.T) {
		ink := color.NewShared(color.Black)
		paper := color.NewShared(color.White)
		c := card.New("")

		c.SetTextColor(ink)
		c.SetBackgroundColor(paper)
		c.SetTextColor(color.NewShared(color.RGB(1, 2, 3)))
		require.Same(t, paper, c.BackgroundColor())

		c.SetBackgroundColor(ink)
		require.Equal(t, color.RGB(1, 2, 3), c.TextColor().Color())
		require.Same(t, ink, c.BackgroundColor())
	})

	t.Run("reassignment_releases_previous", func(t *testing.T) {
		a := color.NewShared(color.Black)
		b := color.NewShared(color.White)
		c := card.New("")

		c.SetTextColor(a)
		require.Equal(t, 2, a.Refs())

		c.SetTextColor(b)
		require.Same(t, b, c.TextColor())
		require.Equal(t, 1, a.Refs())
		require.Equal(t, 2, b.Refs())
	})

	t.Run("same_handle_reassigned_survives", func(t *testing.T) {
		a := color.NewShared(color.Black)
		c := card.New("")
		c.SetTextColor(a)
		a.Release()

		c.SetTextColor(c.TextColor())
		require.Equal(t, 1, a.Refs())
		require.Equal(t, color.Black, c.TextColor().Color())
	})

	t.Run("cards_share_one_instance", func(t *testing.T) {
		a := color.NewShared(color.Black)
		one, two := card.New("1"), card.New("2")
		one.SetTextColor(a)
		two.SetTextColor(a)
		require.Same(t, one.TextColor(), two.TextColor())
		require.Equal(t, 3, a.Refs())

		one.Release()
		require.Nil(t, one.TextColor())
		require.Equal(t, 2, a.Refs())
		two.Release()
		require.True(t, a.Release())
	})

	t.Run("unset_clears", func(t *testing.T) {
		a := color.NewShared(color.Black)
		c := card.New("")
		c.SetBackgroundColor(a)
		c.SetBackgroundColor(nil)
		require.Nil(t, c.BackgroundColor())
		require.Equal(t, 1, a.Refs())
	})
}

func TestIndependentCards(t *testing.T) {
	build := func() *card.Card {
		c := card.New("King")
		c.SetOrientation(card.Left)
		c.SetCornerStyle(card.Cornered)
		return c
	}
	one, two := build(), build()
	require.Equal(t, one.Text(), two.Text())
	require.Equal(t, one.Orientation(), two.Orientation())
	require.Equal(t, one.CornerStyle(), two.CornerStyle())

	one.SetText("Jack")
	one.SetOrientation(card.Down)
	require.Equal(t, "King", two.Text())
	require.Equal(t, card.Left, two.Orientation())
}
