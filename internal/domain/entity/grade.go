package entity

import "strings"

// GradeType clasificación de calidad/procedencia de un polímero.
type GradeType string

const (
	GradePrime    GradeType = "Prime"
	GradeOffSpec  GradeType = "Off Spec"
	GradeOffGrade GradeType = "Off Grade"
	GradeRecycled GradeType = "Recycled"
)

// GradeTypes conjunto cerrado de grados en orden canónico de presentación.
var GradeTypes = []GradeType{GradePrime, GradeOffSpec, GradeOffGrade, GradeRecycled}

// Valid indica si el grado pertenece al conjunto cerrado.
func (g GradeType) Valid() bool {
	for _, v := range GradeTypes {
		if g == v {
			return true
		}
	}
	return false
}

// ParseGradeType acepta el nombre del grado sin distinguir mayúsculas y con
// guion o guion bajo en lugar de espacio ("off-spec", "OFF_GRADE").
func ParseGradeType(s string) (GradeType, bool) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, v := range GradeTypes {
		if strings.EqualFold(norm, string(v)) {
			return v, true
		}
	}
	return "", false
}
