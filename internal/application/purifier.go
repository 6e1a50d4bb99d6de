package app

import (
	"unicode"
	"unicode/utf8"

	"overlay-bot/internal/domain/entity"
)

// Purifier сводит результаты многократного распознавания одного изображения
// (с разными параметрами контраста и яркости) в одну запись на каждую рамку.
type Purifier struct {
	MinScore  float64 // минимальная уверенность распознавания
	MaxDigits int     // максимальная длина числа без учёта точек
	Proximity int     // допуск по каждой координате при группировке, px
}

// NewPurifier создаёт Purifier с порогами исходного конвейера.
func NewPurifier() *Purifier {
	return &Purifier{
		MinScore:  0.55,
		MaxDigits: 2,
		Proximity: 15,
	}
}

// Purify фильтрует, группирует и усредняет обнаружения.
func (p *Purifier) Purify(detections []entity.Detection) []entity.Detection {
	groups := p.Group(p.Filter(detections))

	purified := make([]entity.Detection, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		purified = append(purified, purifyGroup(g))
	}
	return purified
}

// Filter оставляет уверенно распознанные короткие числа.
func (p *Purifier) Filter(detections []entity.Detection) []entity.Detection {
	out := make([]entity.Detection, 0, len(detections))
	for _, d := range detections {
		if d.Score < p.MinScore || !isDigits(d.Text) {
			continue
		}
		if utf8.RuneCountInString(d.Text) > p.MaxDigits {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Group объединяет обнаружения, близкие к первому элементу группы.
func (p *Purifier) Group(detections []entity.Detection) [][]entity.Detection {
	var groups [][]entity.Detection
	for _, d := range detections {
		added := false
		for i := range groups {
			if p.close(d, groups[i][0]) {
				groups[i] = append(groups[i], d)
				added = true
				break
			}
		}
		if !added {
			groups = append(groups, []entity.Detection{d})
		}
	}
	return groups
}

func (p *Purifier) close(a, b entity.Detection) bool {
	return absInt(a.TopLeft.X-b.TopLeft.X) <= p.Proximity &&
		absInt(a.TopLeft.Y-b.TopLeft.Y) <= p.Proximity &&
		absInt(a.BottomRight.X-b.BottomRight.X) <= p.Proximity &&
		absInt(a.BottomRight.Y-b.BottomRight.Y) <= p.Proximity
}

// purifyGroup берёт самый частый текст (при равенстве первый встреченный),
// параметры обнаружения с наименьшим alpha и усреднённые координаты.
func purifyGroup(group []entity.Detection) entity.Detection {
	counts := make(map[string]int, len(group))
	order := make([]string, 0, len(group))
	for _, d := range group {
		if counts[d.Text] == 0 {
			order = append(order, d.Text)
		}
		counts[d.Text]++
	}
	text := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[text] {
			text = t
		}
	}

	var best *entity.Detection
	for i := range group {
		if group[i].Text != text {
			continue
		}
		if best == nil || group[i].Alpha < best.Alpha {
			best = &group[i]
		}
	}

	var tlx, tly, brx, bry int
	for _, d := range group {
		tlx += d.TopLeft.X
		tly += d.TopLeft.Y
		brx += d.BottomRight.X
		bry += d.BottomRight.Y
	}
	n := len(group)

	return entity.Detection{
		Text:        text,
		Score:       best.Score,
		TopLeft:     entity.Point{X: floorDiv(tlx, n), Y: floorDiv(tly, n)},
		BottomRight: entity.Point{X: floorDiv(brx, n), Y: floorDiv(bry, n)},
		Alpha:       best.Alpha,
		Beta:        best.Beta,
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
