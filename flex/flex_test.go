package flex

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(w, h float32) *Node {
	return &Node{Style: Style{Width: Px(w), Height: Px(h)}}
}

func TestColumnStacksChildren(t *testing.T) {
	a, b := fixed(40, 10), fixed(60, 20)
	root := &Node{
		Style:    Style{Padding: Uniform(5), Gap: 3, AlignItems: AlignStart},
		Children: []*Node{a, b},
	}

	Calculate(root, math32.Inf(1), math32.Inf(1))

	assert.Equal(t, float32(70), root.Layout.Width)  // 60 + 2*5
	assert.Equal(t, float32(43), root.Layout.Height) // 10 + 3 + 20 + 2*5
	assert.Equal(t, Layout{Left: 5, Top: 5, Width: 40, Height: 10}, a.Layout)
	assert.Equal(t, Layout{Left: 5, Top: 18, Width: 60, Height: 20}, b.Layout)
	assert.Equal(t, Uniform(5), root.Layout.Padding)
}

func TestRowGrowDistributesFreeSpace(t *testing.T) {
	a := fixed(20, 10)
	b := &Node{Style: Style{Height: Px(10), Grow: 1}}
	c := &Node{Style: Style{Height: Px(10), Grow: 3}}
	root := &Node{
		Style:    Style{Direction: Row, Width: Px(100), Height: Px(10)},
		Children: []*Node{a, b, c},
	}

	Calculate(root, 500, 500)

	assert.Equal(t, float32(20), a.Layout.Width)
	assert.Equal(t, float32(20), b.Layout.Width)
	assert.Equal(t, float32(60), c.Layout.Width)
	assert.Equal(t, float32(40), c.Layout.Left)
}

func TestStretchFillsCrossAxis(t *testing.T) {
	child := &Node{Style: Style{Height: Px(10), Margin: Symmetric(4, 0)}}
	root := &Node{
		Style:    Style{Width: Px(200)},
		Children: []*Node{child},
	}

	Calculate(root, 1000, 1000)

	assert.Equal(t, float32(192), child.Layout.Width)
	assert.Equal(t, float32(4), child.Layout.Left)
}

func TestMeasureCallbackSizesLeaf(t *testing.T) {
	var gotW float32
	leaf := &Node{
		Style: Style{Padding: Uniform(2)},
		Measure: func(availW, availH float32) (float32, float32) {
			gotW = availW
			return 30, 8
		},
	}
	root := &Node{Style: Style{Width: Px(100), AlignItems: AlignStart}, Children: []*Node{leaf}}

	Calculate(root, 100, math32.Inf(1))

	assert.Equal(t, float32(96), gotW)
	assert.Equal(t, float32(34), leaf.Layout.Width)
	assert.Equal(t, float32(12), leaf.Layout.Height)
}

func TestPercentAndClamp(t *testing.T) {
	child := &Node{Style: Style{Width: Percent(50), Height: Px(5), MaxWidth: Px(40)}}
	root := &Node{Style: Style{Width: Px(200), AlignItems: AlignStart}, Children: []*Node{child}}

	Calculate(root, 200, 200)

	assert.Equal(t, float32(40), child.Layout.Width)
}

func TestAlignCenter(t *testing.T) {
	child := fixed(20, 10)
	root := &Node{
		Style:    Style{Direction: Row, Width: Px(100), Height: Px(30), AlignItems: AlignCenter},
		Children: []*Node{child},
	}

	Calculate(root, 100, 30)

	assert.Equal(t, float32(10), child.Layout.Top)
}

func TestNestedRelayoutPositionsGrandchildren(t *testing.T) {
	inner := fixed(10, 10)
	mid := &Node{Style: Style{Grow: 1, Direction: Row, AlignItems: AlignEnd}, Children: []*Node{inner}}
	root := &Node{Style: Style{Width: Px(50), Height: Px(100)}, Children: []*Node{mid}}

	Calculate(root, 50, 100)

	require.Equal(t, float32(100), mid.Layout.Height)
	assert.Equal(t, float32(50), mid.Layout.Width)
	assert.Equal(t, float32(90), inner.Layout.Top)
}

func TestCalculateNilRoot(t *testing.T) {
	assert.NotPanics(t, func() { Calculate(nil, 1, 1) })
}
