package annotations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"overlay-bot/internal/domain/entity"
)

var errNotAList = errors.New("annotations are not a list")

// decode читает JSON-массив аннотаций. После массива допускаются только пробелы.
func decode(r io.Reader) ([]entity.Annotation, error) {
	dec := json.NewDecoder(r)

	var anns []entity.Annotation
	if err := dec.Decode(&anns); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}
	if anns == nil {
		return nil, fmt.Errorf("decode annotations: %w", errNotAList)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode annotations: unexpected data after list")
	}
	return anns, nil
}
