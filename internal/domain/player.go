package domain

const (
	LabelClub           = "Club"
	LabelAgeCategory    = "Alterskat."
	LabelClassification = "Klassierung"
	LabelRating         = "Wettkampfwert"
	LabelLicense        = "Lizenz-Nr."
	LabelBirthYear      = "Geburtsjahr"
	LabelRegion         = "Region"
)

// PlayerLabels lists the metadata labels recognized in a portal export.
var PlayerLabels = []string{
	LabelClub,
	LabelAgeCategory,
	LabelClassification,
	LabelRating,
	LabelLicense,
	LabelBirthYear,
	LabelRegion,
}

type PlayerInfo map[string]string

func (p PlayerInfo) Classification() string {
	return p[LabelClassification]
}
