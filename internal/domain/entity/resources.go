package entity

import (
	"path"
	"strconv"
)

// Resources описывает, где по соглашению лежат изображения и аннотации.
// Пути относительные и разделены слешами, их можно использовать и как URL.
type Resources struct {
	ImageDir         string
	ImageExt         string
	AnnotationDir    string
	AnnotationPrefix string
}

// DefaultResources раскладка images/{i}.png и purified/purified{i}.json
func DefaultResources() Resources {
	return Resources{
		ImageDir:         "images",
		ImageExt:         ".png",
		AnnotationDir:    "purified",
		AnnotationPrefix: "purified",
	}
}

// ImagePath путь к изображению с номером index
func (r Resources) ImagePath(index int) string {
	return path.Join(r.ImageDir, strconv.Itoa(index)+r.ImageExt)
}

// AnnotationPath путь к JSON-файлу аннотаций изображения index
func (r Resources) AnnotationPath(index int) string {
	return path.Join(r.AnnotationDir, r.AnnotationPrefix+strconv.Itoa(index)+".json")
}
