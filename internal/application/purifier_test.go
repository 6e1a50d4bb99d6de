package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"overlay-bot/internal/domain/entity"
)

func det(text string, score float64, tl, br [2]int, alpha, beta float64) entity.Detection {
	return entity.Detection{
		Text:        text,
		Score:       score,
		TopLeft:     entity.Point{X: tl[0], Y: tl[1]},
		BottomRight: entity.Point{X: br[0], Y: br[1]},
		Alpha:       alpha,
		Beta:        beta,
	}
}

func TestPurifier_Filter(t *testing.T) {
	p := NewPurifier()
	in := []entity.Detection{
		det("12", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
		det("123", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
		det("1.2", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
		det("ab", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
		det("7", 0.5, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
		det("", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
		det("7", 0.55, [2]int{0, 0}, [2]int{10, 10}, 1, 30),
	}

	out := p.Filter(in)
	require.Len(t, out, 2)
	require.Equal(t, "12", out[0].Text)
	require.Equal(t, "7", out[1].Text)
}

func TestPurifier_GroupByFirstMember(t *testing.T) {
	p := NewPurifier()
	in := []entity.Detection{
		det("1", 0.9, [2]int{100, 100}, [2]int{120, 120}, 1, 30),
		det("1", 0.9, [2]int{114, 90}, [2]int{130, 110}, 1, 30),
		det("1", 0.9, [2]int{128, 100}, [2]int{140, 120}, 1, 30), // близко ко второму, но не к первому
		det("2", 0.9, [2]int{300, 300}, [2]int{320, 320}, 1, 30),
	}

	groups := p.Group(in)
	require.Len(t, groups, 3)
	require.Len(t, groups[0], 2)
	require.Len(t, groups[1], 1)
	require.Equal(t, 128, groups[1][0].TopLeft.X)
}

func TestPurifier_Purify(t *testing.T) {
	p := NewPurifier()
	in := []entity.Detection{
		det("11", 0.70, [2]int{10, 10}, [2]int{21, 20}, 1.3, 40),
		det("17", 0.95, [2]int{11, 11}, [2]int{20, 21}, 1.0, 30),
		det("11", 0.80, [2]int{12, 10}, [2]int{20, 20}, 1.1, 50),
		det("x", 0.99, [2]int{12, 10}, [2]int{20, 20}, 1.1, 50),
	}

	out := p.Purify(in)
	require.Len(t, out, 1)
	got := out[0]
	require.Equal(t, "11", got.Text)
	require.Equal(t, 0.80, got.Score)
	require.Equal(t, 1.1, got.Alpha)
	require.Equal(t, 50.0, got.Beta)
	require.Equal(t, entity.Point{X: 11, Y: 10}, got.TopLeft)
	require.Equal(t, entity.Point{X: 20, Y: 20}, got.BottomRight)
}

func TestPurifier_TieKeepsFirstSeenText(t *testing.T) {
	p := NewPurifier()
	in := []entity.Detection{
		det("4", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1.2, 30),
		det("9", 0.9, [2]int{0, 0}, [2]int{10, 10}, 1.0, 30),
	}

	out := p.Purify(in)
	require.Len(t, out, 1)
	require.Equal(t, "4", out[0].Text)
	require.Equal(t, 1.2, out[0].Alpha)
}

func TestFloorDiv(t *testing.T) {
	require.Equal(t, 3, floorDiv(7, 2))
	require.Equal(t, -4, floorDiv(-7, 2))
	require.Equal(t, -3, floorDiv(-6, 2))
}
