package entity

// Detection результат распознавания одного фрагмента текста.
// Alpha и Beta параметры контраста и яркости, с которыми было обработано изображение.
type Detection struct {
	Text        string  `json:"text"`
	Score       float64 `json:"score"`
	TopLeft     Point   `json:"top_left"`
	BottomRight Point   `json:"bottom_right"`
	Alpha       float64 `json:"alpha"`
	Beta        float64 `json:"beta"`
}
