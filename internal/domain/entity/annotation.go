package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Point координата в пикселях изображения, в JSON записывается как [x, y]
type Point struct {
	X int
	Y int
}

// UnmarshalJSON разбирает пару чисел; дробная часть отбрасывается.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("point: expected 2 coordinates, got %d", len(raw))
	}
	p.X = int(math.Trunc(raw[0]))
	p.Y = int(math.Trunc(raw[1]))
	return nil
}

// MarshalJSON записывает точку как [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// Value текстовое значение аннотации. В файле это может быть строка,
// число или любое другое JSON-значение, отображается всегда как строка.
type Value string

// UnmarshalJSON сохраняет строку как есть, остальные значения в их JSON-записи.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*v = Value(buf.String())
	return nil
}

func (v Value) String() string {
	return string(v)
}

// Annotation одна запись файла аннотаций: прямоугольник и подпись к нему
type Annotation struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
	Text        Value `json:"text"`
}

// Width ширина прямоугольника, может быть отрицательной для перевёрнутых рамок
func (a Annotation) Width() int {
	return a.BottomRight.X - a.TopLeft.X
}

// Height высота прямоугольника
func (a Annotation) Height() int {
	return a.BottomRight.Y - a.TopLeft.Y
}

// Valid сообщает, что правый нижний угол не левее и не выше левого верхнего.
// Рамки нулевого размера считаются допустимыми.
func (a Annotation) Valid() bool {
	return a.Width() >= 0 && a.Height() >= 0
}
